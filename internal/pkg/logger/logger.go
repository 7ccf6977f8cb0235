// Package logger provides the process-wide logger used by processors, handlers and commands.
package logger

// Logger defines the logging interface
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})

	// With returns a logger that attaches the given key/value pairs to every record.
	With(keyvals ...interface{}) Logger
}
