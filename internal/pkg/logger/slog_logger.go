package logger

import (
	"fmt"
	"log/slog"
	"os"
)

// slogLogger adapts a *slog.Logger to Logger. Console and file loggers only differ in the
// handler they are built with.
type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(args ...interface{}) {
	l.logger.Debug(formatArgs(args...))
}

func (l *slogLogger) Info(args ...interface{}) {
	l.logger.Info(formatArgs(args...))
}

func (l *slogLogger) Warn(args ...interface{}) {
	l.logger.Warn(formatArgs(args...))
}

func (l *slogLogger) Error(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
}

// Fatal logs a fatal message and exits.
func (l *slogLogger) Fatal(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
	os.Exit(1)
}

// Panic logs a panic message and panics.
func (l *slogLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Error(msg)
	panic(msg)
}

func (l *slogLogger) With(keyvals ...interface{}) Logger {
	return &slogLogger{logger: l.logger.With(keyvals...)}
}

// formatArgs joins args the way fmt.Print does, so call sites can pass mixed values.
func formatArgs(args ...interface{}) string {
	if len(args) == 0 {
		return ""
	}
	return fmt.Sprint(args...)
}
