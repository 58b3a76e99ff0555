package i

// Logger writes component log messages.
type Logger interface {
	Debug(string)
	Info(string)
	Warning(string)
	Error(string)
}
