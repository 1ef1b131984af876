package cmd

import (
	"fmt"
	"strings"

	"github.com/harrison/assetkit/internal/barcode"
	"github.com/harrison/assetkit/internal/logger"
	"github.com/harrison/assetkit/internal/models"
	"github.com/spf13/cobra"
)

// ErrorToken is the stdout line that tells a calling process generation failed
const ErrorToken = "ERROR"

// NewBarcodeCommand creates the barcode command
func NewBarcodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "barcode <serial-number>",
		Short: "Generate a Code128 barcode image for a serial number",
		Long: `Generate a Code128 barcode PNG for a serial number.

The image is written to <output_dir>/<serial>_barcode.png (output_dir defaults
to "barcodes" and is set in .assetkit/config.yaml). Exactly one line is printed
to stdout: the image path on success, or ERROR on failure. Diagnostics go to
stderr, so callers can read stdout as the result.

The serial is taken verbatim: any argument other than --config, --delete and
the "--" terminator is the serial, even when it starts with "-". --delete
prints ERROR when there was no image to remove.

Examples:
  barcode 12345678            # writes barcodes/12345678_barcode.png
  barcode -123                # writes barcodes/-123_barcode.png
  barcode --delete 12345678   # removes it again`,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Serials may look like flags, so flags are parsed by parseBarcodeArgs
		DisableFlagParsing: true,
		RunE:               runBarcode,
	}

	addConfigFlag(cmd)
	cmd.Flags().Bool("delete", false, "Delete the barcode image for the serial number instead of generating it")

	return cmd
}

// runBarcode prints the image path or ErrorToken. Generation and configuration
// failures are reported through stdout only, never as a command error.
func runBarcode(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	serial, err := parseBarcodeArgs(cmd, args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		logger.NewConsoleLogger(cmd.ErrOrStderr(), "info").LogError(fmt.Sprintf("Error generating barcode: %v", err))
		fmt.Fprintln(out, ErrorToken)
		return nil
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	generator := barcode.NewGeneratorFromConfig(cfg.Barcode, log)

	if deleteFlag, _ := cmd.Flags().GetBool("delete"); deleteFlag {
		if err := (models.BarcodeRequest{Serial: serial}).Validate(); err != nil {
			log.LogError(fmt.Sprintf("Error deleting barcode: %v", err))
			fmt.Fprintln(out, ErrorToken)
			return nil
		}
		path := generator.Path(serial)
		if !generator.Remove(path) {
			fmt.Fprintln(out, ErrorToken)
			return nil
		}
		fmt.Fprintln(out, path)
		return nil
	}

	path, ok := generator.GenerateBarcode(serial)
	if !ok {
		fmt.Fprintln(out, ErrorToken)
		return nil
	}

	fmt.Fprintln(out, path)
	return nil
}

// parseBarcodeArgs recognizes only the long flags --config (as "--config path"
// or "--config=path") and --delete, plus "--". Everything else is positional,
// and exactly one positional argument, the serial, is required.
func parseBarcodeArgs(cmd *cobra.Command, args []string) (string, error) {
	var positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case arg == "--delete":
			if err := cmd.Flags().Set("delete", "true"); err != nil {
				return "", err
			}
		case arg == "--config":
			if i+1 >= len(args) {
				return "", fmt.Errorf("flag needs an argument: --config")
			}
			i++
			if err := cmd.Flags().Set("config", args[i]); err != nil {
				return "", err
			}
		case strings.HasPrefix(arg, "--config="):
			if err := cmd.Flags().Set("config", strings.TrimPrefix(arg, "--config=")); err != nil {
				return "", err
			}
		default:
			positional = append(positional, arg)
		}
	}

	if len(positional) != 1 {
		return "", fmt.Errorf("accepts 1 arg(s), received %d", len(positional))
	}
	return positional[0], nil
}
