package commands

import (
	"fmt"
	"path/filepath"

	"github.com/MGTheTrain/crypto-facade/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-facade/internal/pkg/logger"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentFiles bounds how many files hex-encode converts at once
const maxConcurrentFiles = 8

// HexCommandHandler encapsulates logic for hex conversions via CLI.
type HexCommandHandler struct {
	cryptoService cryptoalg.CryptoService
	logger        logger.Logger
}

// NewHexCommandHandler initializes and returns a HexCommandHandler instance.
func NewHexCommandHandler() (*HexCommandHandler, error) {
	cryptoService, loggerInstance, err := setupCryptoService()
	if err != nil {
		return nil, err
	}

	return &HexCommandHandler{
		cryptoService: cryptoService,
		logger:        loggerInstance,
	}, nil
}

// HexEncodeCmd writes <file>.hex next to every input file, or into --output-dir
func (commandHandler *HexCommandHandler) HexEncodeCmd(cmd *cobra.Command, _ []string) error {
	inputFiles, err := cmd.Flags().GetStringSlice("input-file")
	if err != nil {
		return fmt.Errorf("invalid input-file flag: %w", err)
	}
	outputDir, err := cmd.Flags().GetString("output-dir")
	if err != nil {
		return fmt.Errorf("invalid output-dir flag: %w", err)
	}

	if len(inputFiles) == 0 {
		return fmt.Errorf("at least one --input-file is required")
	}

	outputFiles, err := hexOutputFiles(inputFiles, outputDir)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(maxConcurrentFiles)

	for i, inputFile := range inputFiles {
		outputFile := outputFiles[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := readFile(inputFile)
			if err != nil {
				return err
			}

			if err := writeOutput(cmd, outputFile, []byte(commandHandler.cryptoService.ToHex(data))); err != nil {
				return err
			}

			commandHandler.logger.Info("Hex encoded ", inputFile, " to ", outputFile)
			return nil
		})
	}

	return g.Wait()
}

// hexOutputFiles maps every input to its .hex target. Two inputs resolving to the same target
// are rejected since the workers would write the same file concurrently.
func hexOutputFiles(inputFiles []string, outputDir string) ([]string, error) {
	outputFiles := make([]string, len(inputFiles))
	sources := make(map[string]string, len(inputFiles))

	for i, inputFile := range inputFiles {
		outputFile := filepath.Clean(inputFile + ".hex")
		if outputDir != "" {
			outputFile = filepath.Join(outputDir, filepath.Base(inputFile)+".hex")
		}
		if previous, ok := sources[outputFile]; ok {
			return nil, fmt.Errorf("%s and %s would both be written to %s", previous, inputFile, outputFile)
		}
		sources[outputFile] = inputFile
		outputFiles[i] = outputFile
	}

	return outputFiles, nil
}

// HexDecodeCmd decodes a hex file. Decoding stops at the first pair that is not hex.
func (commandHandler *HexCommandHandler) HexDecodeCmd(cmd *cobra.Command, _ []string) error {
	flags, err := stringFlags(cmd, "input-file", "output-file")
	if err != nil {
		return err
	}

	hexText, err := readHexFile(flags["input-file"])
	if err != nil {
		return err
	}

	return writeOutput(cmd, flags["output-file"], commandHandler.cryptoService.FromHex(hexText))
}

// InitHexCommands registers hex conversion commands
func InitHexCommands(rootCmd *cobra.Command) error {
	handler, err := NewHexCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create hex command handler: %w", err)
	}

	var hexEncodeCmd = &cobra.Command{
		Use:   "hex-encode",
		Short: "Hex encode one or more files",
		RunE:  handler.HexEncodeCmd,
	}
	hexEncodeCmd.Flags().StringSliceP("input-file", "", nil, "Paths to the files to encode (repeatable)")
	hexEncodeCmd.Flags().StringP("output-dir", "", "", "Directory for the .hex files (next to the inputs if empty)")
	rootCmd.AddCommand(hexEncodeCmd)

	var hexDecodeCmd = &cobra.Command{
		Use:   "hex-decode",
		Short: "Decode a hex file",
		RunE:  handler.HexDecodeCmd,
	}
	hexDecodeCmd.Flags().StringP("input-file", "", "", "Path to the hex file")
	hexDecodeCmd.Flags().StringP("output-file", "", "", "Path to the decoded output (stdout if empty)")
	rootCmd.AddCommand(hexDecodeCmd)

	return nil
}
