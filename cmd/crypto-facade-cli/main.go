// Package main is the entry point for the crypto-facade-cli application.
// It initializes the root command and registers the digest, HMAC, AES, RSA and hex sub-commands,
// then executes the command-line interface.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	commands "github.com/MGTheTrain/crypto-facade/cmd/crypto-facade-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "crypto-facade-cli",
		Short: "Cryptographic operations CLI tool",
		Long: `crypto-facade-cli is a command-line tool for cryptographic operations.
Supports SHA digests, HMAC, AES-CBC/AES-GCM encryption and RSA-OAEP/RSA-PSS with PEM keys.
Binary outputs are written hex encoded; AES ciphertexts are hex(IV || ciphertext).`,
		SilenceUsage: true,
	}

	// Initialize all command groups BEFORE executing
	if err := commands.InitCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
