package commands

import (
	"fmt"

	"github.com/MGTheTrain/crypto-facade/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-facade/internal/pkg/codec"
	"github.com/MGTheTrain/crypto-facade/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// RSACommandHandler encapsulates logic for handling RSA operations via CLI.
type RSACommandHandler struct {
	cryptoService cryptoalg.CryptoService
	logger        logger.Logger
}

// NewRSACommandHandler initializes a new RSACommandHandler with logging and the crypto service.
func NewRSACommandHandler() (*RSACommandHandler, error) {
	cryptoService, loggerInstance, err := setupCryptoService()
	if err != nil {
		return nil, err
	}

	return &RSACommandHandler{
		cryptoService: cryptoService,
		logger:        loggerInstance,
	}, nil
}

// EncryptRSACmd encrypts a small file with RSA-OAEP and writes hex ciphertext
func (commandHandler *RSACommandHandler) EncryptRSACmd(cmd *cobra.Command, _ []string) error {
	flags, err := stringFlags(cmd, "digest", "public-key", "input-file", "output-file")
	if err != nil {
		return err
	}

	publicKey, err := readFile(flags["public-key"])
	if err != nil {
		return err
	}

	plainText, err := readFile(flags["input-file"])
	if err != nil {
		return err
	}

	encryptedData, err := commandHandler.cryptoService.RSAEncryptOAEP(cmd.Context(), flags["digest"], string(publicKey), plainText)
	if err != nil {
		return err
	}

	return writeOutput(cmd, flags["output-file"], []byte(codec.ToHex(encryptedData)))
}

// DecryptRSACmd decrypts hex RSA-OAEP ciphertext
func (commandHandler *RSACommandHandler) DecryptRSACmd(cmd *cobra.Command, _ []string) error {
	flags, err := stringFlags(cmd, "digest", "private-key", "input-file", "output-file")
	if err != nil {
		return err
	}

	privateKey, err := readFile(flags["private-key"])
	if err != nil {
		return err
	}

	encryptedData, err := readHexFile(flags["input-file"])
	if err != nil {
		return err
	}

	decryptedData, err := commandHandler.cryptoService.RSADecryptOAEP(cmd.Context(), flags["digest"], string(privateKey), codec.FromHex(encryptedData))
	if err != nil {
		return err
	}

	return writeOutput(cmd, flags["output-file"], decryptedData)
}

// SignRSACmd signs a file with RSA-PSS and writes the hex signature
func (commandHandler *RSACommandHandler) SignRSACmd(cmd *cobra.Command, _ []string) error {
	flags, err := stringFlags(cmd, "digest", "private-key", "input-file", "output-file")
	if err != nil {
		return err
	}

	privateKey, err := readFile(flags["private-key"])
	if err != nil {
		return err
	}

	data, err := readFile(flags["input-file"])
	if err != nil {
		return err
	}

	signature, err := commandHandler.cryptoService.RSASignPSS(cmd.Context(), flags["digest"], string(privateKey), data)
	if err != nil {
		return err
	}

	return writeOutput(cmd, flags["output-file"], []byte(codec.ToHex(signature)))
}

// VerifyRSACmd verifies a hex RSA-PSS signature against a file
func (commandHandler *RSACommandHandler) VerifyRSACmd(cmd *cobra.Command, _ []string) error {
	flags, err := stringFlags(cmd, "digest", "public-key", "input-file", "signature-file")
	if err != nil {
		return err
	}

	publicKey, err := readFile(flags["public-key"])
	if err != nil {
		return err
	}

	data, err := readFile(flags["input-file"])
	if err != nil {
		return err
	}

	signature, err := readHexFile(flags["signature-file"])
	if err != nil {
		return err
	}

	valid, err := commandHandler.cryptoService.RSAVerifyPSS(cmd.Context(), flags["digest"], string(publicKey), codec.FromHex(signature), data)
	if err != nil {
		return err
	}

	if !valid {
		return fmt.Errorf("signature verification failed")
	}

	commandHandler.logger.Info("Signature is valid")
	return writeOutput(cmd, "", []byte("valid"))
}

// InitRSACommands registers RSA-related commands
func InitRSACommands(rootCmd *cobra.Command) error {
	handler, err := NewRSACommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create RSA command handler: %w", err)
	}

	var encryptRSAFileCmd = &cobra.Command{
		Use:   "encrypt-rsa",
		Short: "Encrypt a small file using RSA-OAEP",
		RunE:  handler.EncryptRSACmd,
	}
	encryptRSAFileCmd.Flags().StringP("digest", "", "SHA-256", "OAEP digest (SHA-1, SHA-256, SHA-384, SHA-512)")
	encryptRSAFileCmd.Flags().StringP("public-key", "", "", "Path to the SPKI public key (PEM)")
	encryptRSAFileCmd.Flags().StringP("input-file", "", "", "Path to input file that needs to be encrypted")
	encryptRSAFileCmd.Flags().StringP("output-file", "", "", "Path to the hex ciphertext output (stdout if empty)")
	rootCmd.AddCommand(encryptRSAFileCmd)

	var decryptRSAFileCmd = &cobra.Command{
		Use:   "decrypt-rsa",
		Short: "Decrypt hex ciphertext using RSA-OAEP",
		RunE:  handler.DecryptRSACmd,
	}
	decryptRSAFileCmd.Flags().StringP("digest", "", "SHA-256", "OAEP digest (SHA-1, SHA-256, SHA-384, SHA-512)")
	decryptRSAFileCmd.Flags().StringP("private-key", "", "", "Path to the PKCS8 private key (PEM)")
	decryptRSAFileCmd.Flags().StringP("input-file", "", "", "Path to the hex ciphertext")
	decryptRSAFileCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file (stdout if empty)")
	rootCmd.AddCommand(decryptRSAFileCmd)

	var signRSACmd = &cobra.Command{
		Use:   "sign-rsa",
		Short: "Sign a file using RSA-PSS",
		RunE:  handler.SignRSACmd,
	}
	signRSACmd.Flags().StringP("digest", "", "SHA-256", "PSS digest (SHA-1, SHA-256, SHA-384, SHA-512)")
	signRSACmd.Flags().StringP("private-key", "", "", "Path to the PKCS8 private key (PEM)")
	signRSACmd.Flags().StringP("input-file", "", "", "Path to the file to sign")
	signRSACmd.Flags().StringP("output-file", "", "", "Path to the hex signature output (stdout if empty)")
	rootCmd.AddCommand(signRSACmd)

	var verifyRSACmd = &cobra.Command{
		Use:   "verify-rsa",
		Short: "Verify an RSA-PSS signature",
		RunE:  handler.VerifyRSACmd,
	}
	verifyRSACmd.Flags().StringP("digest", "", "SHA-256", "PSS digest (SHA-1, SHA-256, SHA-384, SHA-512)")
	verifyRSACmd.Flags().StringP("public-key", "", "", "Path to the SPKI public key (PEM)")
	verifyRSACmd.Flags().StringP("input-file", "", "", "Path to the signed file")
	verifyRSACmd.Flags().StringP("signature-file", "", "", "Path to the hex signature")
	rootCmd.AddCommand(verifyRSACmd)

	return nil
}
