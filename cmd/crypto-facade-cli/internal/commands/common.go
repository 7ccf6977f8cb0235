package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MGTheTrain/crypto-facade/internal/app"
	"github.com/MGTheTrain/crypto-facade/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-facade/internal/pkg/config"
	"github.com/MGTheTrain/crypto-facade/internal/pkg/logger"

	"github.com/spf13/cobra"
)

func setupLogger() (logger.Logger, error) {
	if err := logger.InitLogger(config.DefaultLoggerSettings()); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// setupCryptoService builds the facade the command handlers delegate to. The CLI exposes no
// metrics endpoint, so nothing is registered.
func setupCryptoService() (cryptoalg.CryptoService, logger.Logger, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	cryptoService, err := app.NewDefaultCryptoService(loggerInstance, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create crypto service: %w", err)
	}

	return cryptoService, loggerInstance, nil
}

func readFile(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("file path must not be empty")
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// readKeyFile reads raw key text. A single trailing line break is dropped so that keys written
// with an editor keep their length.
func readKeyFile(path string) (string, error) {
	data, err := readFile(path)
	if err != nil {
		return "", err
	}
	key := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(key, "\r"), nil
}

// readHexFile reads hex text, ignoring surrounding whitespace.
func readHexFile(path string) (string, error) {
	data, err := readFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// writeOutput writes data to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		if err == nil && len(data) > 0 && data[len(data)-1] != '\n' {
			_, err = io.WriteString(cmd.OutOrStdout(), "\n")
		}
		return err
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func stringFlags(cmd *cobra.Command, names ...string) (map[string]string, error) {
	values := make(map[string]string, len(names))
	for _, name := range names {
		v, err := cmd.Flags().GetString(name)
		if err != nil {
			return nil, fmt.Errorf("invalid %s flag: %w", name, err)
		}
		values[name] = v
	}
	return values, nil
}
