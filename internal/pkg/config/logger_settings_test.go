//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rotatedFileSettings() *LoggerSettings {
	return &LoggerSettings{
		LogLevel:   LogLevelWarning,
		LogType:    LogTypeFile,
		FilePath:   "/var/log/crypto-facade/rest.log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

func TestLoggerSettingsValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(s *LoggerSettings)
		failField string
	}{
		{name: "rotated file", mutate: func(s *LoggerSettings) {}},
		{name: "critical level", mutate: func(s *LoggerSettings) { s.LogLevel = LogLevelCritical }},
		{name: "console ignores missing rotation", mutate: func(s *LoggerSettings) {
			s.LogType = LogTypeConsole
			s.FilePath, s.MaxSize, s.MaxBackups, s.MaxAge = "", 0, 0, 0
		}},
		{name: "unknown level", mutate: func(s *LoggerSettings) { s.LogLevel = "trace" }, failField: "LogLevel"},
		{name: "missing type", mutate: func(s *LoggerSettings) { s.LogType = "" }, failField: "LogType"},
		{name: "unknown type", mutate: func(s *LoggerSettings) { s.LogType = "syslog" }, failField: "LogType"},
		{name: "file without path", mutate: func(s *LoggerSettings) { s.FilePath = "" }, failField: "FilePath"},
		{name: "file without size", mutate: func(s *LoggerSettings) { s.MaxSize = 0 }, failField: "MaxSize"},
		{name: "size above 100 MB", mutate: func(s *LoggerSettings) { s.MaxSize = 101 }, failField: "MaxSize"},
		{name: "too many backups", mutate: func(s *LoggerSettings) { s.MaxBackups = 11 }, failField: "MaxBackups"},
		{name: "negative age", mutate: func(s *LoggerSettings) { s.MaxAge = -1 }, failField: "MaxAge"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := rotatedFileSettings()
			tt.mutate(settings)

			err := settings.Validate()
			if tt.failField == "" {
				assert.NoError(t, err)
				return
			}

			var validationErrs validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrs)
			assert.Equal(t, tt.failField, validationErrs[0].Field())
		})
	}
}

func TestDefaultLoggerSettings(t *testing.T) {
	settings := DefaultLoggerSettings()
	assert.NoError(t, settings.Validate())
	assert.Equal(t, LogTypeConsole, settings.LogType)
	assert.Equal(t, LogLevelInfo, settings.LogLevel)
}
