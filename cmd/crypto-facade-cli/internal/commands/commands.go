// Package commands implements the crypto-facade-cli sub-commands on top of the crypto service.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// InitCommands registers all command groups with the root command.
func InitCommands(rootCmd *cobra.Command) error {
	if err := InitHashCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize hash commands: %w", err)
	}

	if err := InitAESCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize AES commands: %w", err)
	}

	if err := InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	if err := InitHexCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize hex commands: %w", err)
	}

	return nil
}
