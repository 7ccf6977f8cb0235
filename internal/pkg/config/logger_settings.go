package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Log level constants
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// LoggerSettings configures the process logger. Rotation fields only apply to file loggers,
// where all of them are required.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=info debug error warning critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path" validate:"required_if=LogType file"`
	MaxSize    int    `mapstructure:"max_size" validate:"required_if=LogType file,min=0,max=100"`
	MaxBackups int    `mapstructure:"max_backups" validate:"required_if=LogType file,min=0,max=10"`
	MaxAge     int    `mapstructure:"max_age" validate:"required_if=LogType file,min=0,max=365"`
}

// DefaultLoggerSettings returns console logging at info level, as used by the CLI and tests.
func DefaultLoggerSettings() *LoggerSettings {
	return &LoggerSettings{
		LogLevel: LogLevelInfo,
		LogType:  LogTypeConsole,
	}
}

// Validate checks the settings against their validate tags.
func (s *LoggerSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}
	return nil
}
