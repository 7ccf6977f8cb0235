// Package testutil holds helpers shared by unit tests: a test logger, file fixtures and RSA
// key fixtures in the PEM formats the key loader accepts.
package testutil

import (
	"testing"

	"github.com/MGTheTrain/crypto-facade/internal/pkg/config"
	"github.com/MGTheTrain/crypto-facade/internal/pkg/logger"

	"github.com/stretchr/testify/require"
)

// SetupTestLogger sets up a logger for testing purposes.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	err := logger.InitLogger(config.DefaultLoggerSettings())
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}
