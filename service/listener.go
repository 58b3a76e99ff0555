package service

import (
	"fmt"

	"github.com/beka-birhanu/vinom-maze/layout"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

// NopListener ignores every notification.
type NopListener struct{}

func (NopListener) OnSizesReady(int, int, int, int)          {}
func (NopListener) OnMazeReady(int, int, int, []layout.Rect) {}
func (NopListener) OnWallTouch()                             {}
func (NopListener) OnFinish()                                {}

// LogListener logs the notifications of one round.
type LogListener struct {
	roundID uuid.UUID
	logger  i.Logger
}

// NewLogListener returns a listener writing the events of round id to logger.
func NewLogListener(id uuid.UUID, logger i.Logger) *LogListener {
	return &LogListener{roundID: id, logger: logger}
}

func (l *LogListener) OnSizesReady(width, height, marginStart, marginTop int) {
	l.logger.Debug(fmt.Sprintf("Round %s: background %dx%d at (%d,%d)", l.roundID, width, height, marginStart, marginTop))
}

func (l *LogListener) OnMazeReady(cols, rows, cellSize int, walls []layout.Rect) {
	l.logger.Info(fmt.Sprintf("Round %s: maze ready %dx%d cell=%d walls=%d", l.roundID, cols, rows, cellSize, len(walls)))
}

func (l *LogListener) OnWallTouch() {
	l.logger.Info(fmt.Sprintf("Round %s: wall touched", l.roundID))
}

func (l *LogListener) OnFinish() {
	l.logger.Info(fmt.Sprintf("Round %s: finish reached", l.roundID))
}
