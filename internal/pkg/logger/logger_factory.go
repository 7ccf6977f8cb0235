package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/MGTheTrain/crypto-facade/internal/pkg/config"
)

var (
	loggerInstance Logger
	loggerErr      error
	loggerOnce     sync.Once
)

// levels maps configured level names to slog levels. slog has no critical level, so it
// shares the error level.
var levels = map[string]slog.Level{
	config.LogLevelDebug:    slog.LevelDebug,
	config.LogLevelInfo:     slog.LevelInfo,
	config.LogLevelWarning:  slog.LevelWarn,
	config.LogLevelError:    slog.LevelError,
	config.LogLevelCritical: slog.LevelError,
}

// InitLogger builds the process logger from settings. Only the first call has an effect,
// later calls return the outcome of the first one.
func InitLogger(settings *config.LoggerSettings) error {
	loggerOnce.Do(func() {
		loggerInstance, loggerErr = New(settings)
	})
	return loggerErr
}

// GetLogger returns the process logger set up by InitLogger.
func GetLogger() (Logger, error) {
	if loggerInstance == nil {
		return nil, fmt.Errorf("logger not initialized: call InitLogger first")
	}
	return loggerInstance, nil
}

// New builds a standalone logger from settings. Console loggers write to stderr so that
// command output on stdout stays machine readable.
func New(settings *config.LoggerSettings) (Logger, error) {
	if settings == nil {
		return nil, errors.New("logger settings are required")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger settings: %w", err)
	}

	switch settings.LogType {
	case config.LogTypeConsole:
		return NewConsoleLogger(settings.LogLevel), nil
	case config.LogTypeFile:
		return NewFileLogger(settings.LogLevel, settings.FilePath, settings.MaxSize, settings.MaxBackups, settings.MaxAge), nil
	default:
		return nil, fmt.Errorf("unsupported log type: %s", settings.LogType)
	}
}

func parseLevel(level string) slog.Level {
	if l, ok := levels[strings.ToLower(level)]; ok {
		return l
	}
	return slog.LevelInfo
}
