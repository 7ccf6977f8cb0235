package commands

import (
	"fmt"

	"github.com/MGTheTrain/crypto-facade/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-facade/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// AESCommandHandler encapsulates logic for handling AES operations via CLI.
type AESCommandHandler struct {
	cryptoService cryptoalg.CryptoService
	logger        logger.Logger
}

// NewAESCommandHandler initializes and returns an AESCommandHandler instance with
// configured logger and crypto service.
func NewAESCommandHandler() (*AESCommandHandler, error) {
	cryptoService, loggerInstance, err := setupCryptoService()
	if err != nil {
		return nil, err
	}

	return &AESCommandHandler{
		cryptoService: cryptoService,
		logger:        loggerInstance,
	}, nil
}

// EncryptAESCmd encrypts a file and writes the hex envelope hex(IV || ciphertext)
func (commandHandler *AESCommandHandler) EncryptAESCmd(cmd *cobra.Command, _ []string) error {
	flags, err := stringFlags(cmd, "mode", "key-file", "input-file", "output-file")
	if err != nil {
		return err
	}

	key, err := readKeyFile(flags["key-file"])
	if err != nil {
		return err
	}

	plainText, err := readFile(flags["input-file"])
	if err != nil {
		return err
	}

	envelope, err := commandHandler.cryptoService.AESEncrypt(cmd.Context(), flags["mode"], key, plainText)
	if err != nil {
		return err
	}

	if err := writeOutput(cmd, flags["output-file"], []byte(envelope)); err != nil {
		return err
	}

	if flags["output-file"] != "" {
		commandHandler.logger.Info("Encrypted data saved to ", flags["output-file"])
	}
	return nil
}

// DecryptAESCmd decrypts a hex envelope file
func (commandHandler *AESCommandHandler) DecryptAESCmd(cmd *cobra.Command, _ []string) error {
	flags, err := stringFlags(cmd, "mode", "key-file", "input-file", "output-file")
	if err != nil {
		return err
	}

	key, err := readKeyFile(flags["key-file"])
	if err != nil {
		return err
	}

	envelope, err := readHexFile(flags["input-file"])
	if err != nil {
		return err
	}

	decryptedData, err := commandHandler.cryptoService.AESDecrypt(cmd.Context(), flags["mode"], key, envelope)
	if err != nil {
		return err
	}

	if err := writeOutput(cmd, flags["output-file"], decryptedData); err != nil {
		return err
	}

	if flags["output-file"] != "" {
		commandHandler.logger.Info("Decrypted data saved to ", flags["output-file"])
	}
	return nil
}

// InitAESCommands registers AES-related commands
func InitAESCommands(rootCmd *cobra.Command) error {
	handler, err := NewAESCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create AES command handler: %w", err)
	}

	var encryptAESFileCmd = &cobra.Command{
		Use:   "encrypt-aes",
		Short: "Encrypt a file using AES-CBC or AES-GCM",
		RunE:  handler.EncryptAESCmd,
	}
	encryptAESFileCmd.Flags().StringP("mode", "", "GCM", "Mode (CBC, GCM) or cipher suite such as aes-256-gcm")
	encryptAESFileCmd.Flags().StringP("key-file", "", "", "Path to the raw key (16 or 32 bytes)")
	encryptAESFileCmd.Flags().StringP("input-file", "", "", "Path to input file that needs to be encrypted")
	encryptAESFileCmd.Flags().StringP("output-file", "", "", "Path to the hex envelope output (stdout if empty)")
	rootCmd.AddCommand(encryptAESFileCmd)

	var decryptAESFileCmd = &cobra.Command{
		Use:   "decrypt-aes",
		Short: "Decrypt a hex envelope using AES-CBC or AES-GCM",
		RunE:  handler.DecryptAESCmd,
	}
	decryptAESFileCmd.Flags().StringP("mode", "", "GCM", "Mode (CBC, GCM) or cipher suite such as aes-256-gcm")
	decryptAESFileCmd.Flags().StringP("key-file", "", "", "Path to the raw key (16 or 32 bytes)")
	decryptAESFileCmd.Flags().StringP("input-file", "", "", "Path to the hex envelope")
	decryptAESFileCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file (stdout if empty)")
	rootCmd.AddCommand(decryptAESFileCmd)

	return nil
}
