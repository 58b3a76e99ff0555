// Package logger provides prefixed, colored component loggers on top of logrus.
package logger

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const colorReset = "\033[0m"

var ErrNilWriter = errors.New("logger output writer is nil")

// Logger writes messages tagged with a component prefix.
type Logger struct {
	prefix string
	color  string
	log    *logrus.Logger
}

// New creates a logger for one component. The color is applied to the prefix in text output.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if out == nil {
		return nil, ErrNilWriter
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, ForceColors: color != ""})

	return &Logger{
		prefix: prefix,
		color:  color,
		log:    l,
	}, nil
}

// SetLevel sets the minimum level written, e.g. "debug" or "warning".
func (l *Logger) SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	l.log.SetLevel(lvl)
	return nil
}

// SetFormat switches between "json" and colored "text" output.
func (l *Logger) SetFormat(format string) {
	if strings.ToLower(format) == "json" {
		l.log.SetFormatter(&logrus.JSONFormatter{})
		l.color = ""
		return
	}
	l.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, ForceColors: l.color != ""})
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.entry().Debug(l.decorate(msg))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.entry().Info(l.decorate(msg))
}

// Warning logs a warning message.
func (l *Logger) Warning(msg string) {
	l.entry().Warn(l.decorate(msg))
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.entry().Error(l.decorate(msg))
}

func (l *Logger) entry() *logrus.Entry {
	return l.log.WithField("component", l.prefix)
}

func (l *Logger) decorate(msg string) string {
	if l.color == "" {
		return msg
	}
	return fmt.Sprintf("%s[%s]%s %s", l.color, l.prefix, colorReset, msg)
}
