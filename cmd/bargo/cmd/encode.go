package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/MeKo-Tech/bargo/internal/barcode"
	"github.com/MeKo-Tech/bargo/internal/config"
	"github.com/MeKo-Tech/bargo/internal/generate"
	"github.com/MeKo-Tech/bargo/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// encodeCmd represents the encode command.
var encodeCmd = &cobra.Command{
	Use:   "encode VALUE",
	Short: "Encode a value and write the barcode image",
	Long: `Encode a single value into a barcode image.

The value is validated against the selected symbology, normalized (guard
characters added where the symbology requires them) and rendered to an
image file named {type}-{normalized}.png under the output directory
unless --filename is given.

Supported symbologies: codabar (default), upc, code39

Examples:
  bargo encode 40156
  bargo encode 2030 --filename order.png
  bargo encode "CODE 39" --type code39 --dpi 300
  bargo encode 40156 --pattern-only`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Help handling for tests
		if len(args) > 0 && (args[0] == "--help" || args[0] == "-h") {
			return cmd.Help()
		}
		if len(args) == 0 {
			return errors.New("no value provided")
		}
		if len(args) > 1 {
			return fmt.Errorf("expected exactly one value, got %d (use \"bargo batch\" for multiple values)", len(args))
		}
		value := args[0]

		// Get configuration (includes CLI flags, config file, env vars, and defaults)
		cfg := GetConfig()

		symbology := cfg.Format
		moduleWidth := cfg.Generate.ModuleWidth
		height := cfg.Generate.Height
		quietZone := cfg.Generate.QuietZone
		caption := cfg.Generate.Caption
		dpi := cfg.Generate.DPI
		outputDir := cfg.OutputDir

		// Display and output options are CLI-only
		text, _ := cmd.Flags().GetString("text")
		filename, _ := cmd.Flags().GetString("filename")
		patternOnly, _ := cmd.Flags().GetBool("pattern-only")
		if noCaption, _ := cmd.Flags().GetBool("no-caption"); noCaption {
			caption = false
		}

		format, err := barcode.ParseFormat(symbology)
		if err != nil {
			return err
		}

		// Validate rendering options
		if moduleWidth <= 0 {
			return fmt.Errorf("invalid module width: %d (must be positive)", moduleWidth)
		}
		if height <= 0 {
			return fmt.Errorf("invalid height: %d (must be positive)", height)
		}
		if quietZone < 0 {
			return fmt.Errorf("invalid quiet zone: %d (must not be negative)", quietZone)
		}
		if dpi <= 0 {
			return fmt.Errorf("invalid dpi: %d (must be positive)", dpi)
		}

		// Build generation pipeline
		b := generate.NewBuilder().
			WithFormat(format).
			WithModuleWidth(moduleWidth).
			WithHeight(height).
			WithQuietZone(quietZone).
			WithCaption(caption).
			WithDPI(dpi)
		if text != "" {
			b = b.WithText(text)
		}
		gen, err := b.Build()
		if err != nil {
			return fmt.Errorf("failed to build generator: %w", err)
		}

		res, err := gen.Generate(value)
		if err != nil {
			return fmt.Errorf("encode failed: %w", err)
		}

		if patternOnly {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), res.Pattern); err != nil {
				return fmt.Errorf("failed to write pattern: %w", err)
			}
			return nil
		}

		if filename == "" {
			filename = gen.OutputFilename(res.Barcode)
		} else if filepath.Ext(filename) == "" {
			filename += ".png"
		}
		path := filename
		if !filepath.IsAbs(filename) {
			path = filepath.Join(outputDir, filename)
		}

		if err := utils.SaveImage(res.Image, path); err != nil {
			return fmt.Errorf("failed to save image: %w", err)
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Barcode written to %s\n", path); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		return nil
	},
}

func addEncodeFlags(cmd *cobra.Command) {
	defaults := config.DefaultConfig()

	cmd.Flags().StringP("type", "t", defaults.Format, "barcode symbology (codabar, upc, code39)")
	cmd.Flags().StringP("filename", "f", "", "output file name (default: {type}-{normalized}.png)")
	cmd.Flags().IntP("dpi", "d", defaults.Generate.DPI, "output resolution in dots per inch (100 = unscaled)")
	cmd.Flags().String("text", "", "display text beneath the bars (default: derived from the value)")
	cmd.Flags().Bool("no-caption", false, "omit the human-readable caption")
	cmd.Flags().Int("module-width", defaults.Generate.ModuleWidth, "pixel width of a single pattern cell")
	cmd.Flags().Int("height", defaults.Generate.Height, "bar height in pixels")
	cmd.Flags().Int("quiet-zone", defaults.Generate.QuietZone, "white margin on each side, in modules")
	cmd.Flags().Bool("pattern-only", false, "print the bit pattern to stdout instead of writing a file")
}

// bindEncodeFlags binds rendering flags to viper configuration keys.
func bindEncodeFlags(cmd *cobra.Command) {
	flagBindings := []struct {
		key  string
		flag string
	}{
		{"format", "type"},
		{"generate.dpi", "dpi"},
		{"generate.module_width", "module-width"},
		{"generate.height", "height"},
		{"generate.quiet_zone", "quiet-zone"},
	}

	for _, binding := range flagBindings {
		if err := viper.BindPFlag(binding.key, cmd.Flags().Lookup(binding.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", binding.flag, err))
		}
	}
}

func init() {
	rootCmd.AddCommand(encodeCmd)

	addEncodeFlags(encodeCmd)
	bindEncodeFlags(encodeCmd)

	// Ensure subcommand help prints expected sections when executed directly in tests
	encodeCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if _, err := fmt.Fprintln(out, cmd.Short); err != nil {
			return
		}
		if _, err := fmt.Fprintln(out, "Usage:"); err != nil {
			return
		}
		_, _ = fmt.Fprintln(out, cmd.UseLine())
		_, _ = fmt.Fprintln(out, "Flags:")
		_, _ = fmt.Fprintln(out, cmd.Flags().FlagUsages())
	})
}

// GetEncodeCommand returns the encode command for testing purposes.
func GetEncodeCommand() *cobra.Command {
	return encodeCmd
}
