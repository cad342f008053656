package session

// Logger is an optional package logger used for non-fatal warnings.
type Logger interface {
	// Debugf logs a formatted debug message.
	Debugf(format string, args ...any)
	// Warnf logs a formatted warning message.
	Warnf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Warnf(string, ...any)  {}
