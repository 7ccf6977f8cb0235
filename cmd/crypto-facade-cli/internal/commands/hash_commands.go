package commands

import (
	"fmt"

	"github.com/MGTheTrain/crypto-facade/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-facade/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// HashCommandHandler encapsulates logic for digest and HMAC operations via CLI.
type HashCommandHandler struct {
	cryptoService cryptoalg.CryptoService
	logger        logger.Logger
}

// NewHashCommandHandler initializes and returns a HashCommandHandler instance.
func NewHashCommandHandler() (*HashCommandHandler, error) {
	cryptoService, loggerInstance, err := setupCryptoService()
	if err != nil {
		return nil, err
	}

	return &HashCommandHandler{
		cryptoService: cryptoService,
		logger:        loggerInstance,
	}, nil
}

// DigestCmd hashes a file and writes the hex digest
func (commandHandler *HashCommandHandler) DigestCmd(cmd *cobra.Command, _ []string) error {
	flags, err := stringFlags(cmd, "algorithm", "input-file", "output-file")
	if err != nil {
		return err
	}

	data, err := readFile(flags["input-file"])
	if err != nil {
		return err
	}

	digest, err := commandHandler.cryptoService.Digest(cmd.Context(), flags["algorithm"], data)
	if err != nil {
		return err
	}

	return writeOutput(cmd, flags["output-file"], []byte(digest))
}

// HMACCmd computes the HMAC of a file and writes the hex tag
func (commandHandler *HashCommandHandler) HMACCmd(cmd *cobra.Command, _ []string) error {
	flags, err := stringFlags(cmd, "algorithm", "key-file", "input-file", "output-file")
	if err != nil {
		return err
	}

	key, err := readKeyFile(flags["key-file"])
	if err != nil {
		return err
	}

	data, err := readFile(flags["input-file"])
	if err != nil {
		return err
	}

	mac, err := commandHandler.cryptoService.HMAC(cmd.Context(), flags["algorithm"], key, data)
	if err != nil {
		return err
	}

	return writeOutput(cmd, flags["output-file"], []byte(mac))
}

// VerifyHMACCmd checks a hex tag against a file
func (commandHandler *HashCommandHandler) VerifyHMACCmd(cmd *cobra.Command, _ []string) error {
	flags, err := stringFlags(cmd, "algorithm", "key-file", "input-file", "mac-file")
	if err != nil {
		return err
	}

	key, err := readKeyFile(flags["key-file"])
	if err != nil {
		return err
	}

	data, err := readFile(flags["input-file"])
	if err != nil {
		return err
	}

	mac, err := readHexFile(flags["mac-file"])
	if err != nil {
		return err
	}

	valid, err := commandHandler.cryptoService.VerifyHMAC(cmd.Context(), flags["algorithm"], key, data, mac)
	if err != nil {
		return err
	}

	if !valid {
		return fmt.Errorf("HMAC verification failed")
	}

	commandHandler.logger.Info("HMAC is valid")
	return writeOutput(cmd, "", []byte("valid"))
}

// InitHashCommands registers digest and HMAC commands
func InitHashCommands(rootCmd *cobra.Command) error {
	handler, err := NewHashCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create hash command handler: %w", err)
	}

	var digestCmd = &cobra.Command{
		Use:   "digest",
		Short: "Compute the SHA digest of a file",
		RunE:  handler.DigestCmd,
	}
	digestCmd.Flags().StringP("algorithm", "", "SHA-256", "Digest (SHA-1, SHA-256, SHA-384, SHA-512)")
	digestCmd.Flags().StringP("input-file", "", "", "Path to the file to hash")
	digestCmd.Flags().StringP("output-file", "", "", "Path to the hex digest output (stdout if empty)")
	rootCmd.AddCommand(digestCmd)

	var hmacCmd = &cobra.Command{
		Use:   "hmac",
		Short: "Compute the HMAC of a file",
		RunE:  handler.HMACCmd,
	}
	hmacCmd.Flags().StringP("algorithm", "", "SHA-256", "Digest (SHA-1, SHA-256, SHA-384, SHA-512)")
	hmacCmd.Flags().StringP("key-file", "", "", "Path to the raw key (at least 32 bytes)")
	hmacCmd.Flags().StringP("input-file", "", "", "Path to the file to authenticate")
	hmacCmd.Flags().StringP("output-file", "", "", "Path to the hex tag output (stdout if empty)")
	rootCmd.AddCommand(hmacCmd)

	var verifyHMACCmd = &cobra.Command{
		Use:   "verify-hmac",
		Short: "Verify the HMAC of a file",
		RunE:  handler.VerifyHMACCmd,
	}
	verifyHMACCmd.Flags().StringP("algorithm", "", "SHA-256", "Digest (SHA-1, SHA-256, SHA-384, SHA-512)")
	verifyHMACCmd.Flags().StringP("key-file", "", "", "Path to the raw key (at least 32 bytes)")
	verifyHMACCmd.Flags().StringP("input-file", "", "", "Path to the authenticated file")
	verifyHMACCmd.Flags().StringP("mac-file", "", "", "Path to the hex tag")
	rootCmd.AddCommand(verifyHMACCmd)

	return nil
}
