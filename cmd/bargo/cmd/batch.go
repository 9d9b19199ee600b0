package cmd

import (
	"fmt"
	"runtime"
	"time"

	"github.com/MeKo-Tech/bargo/internal/batch"
	"github.com/MeKo-Tech/bargo/internal/config"
	"github.com/spf13/cobra"
)

// batchCmd represents the batch command for parallel barcode generation.
var batchCmd = &cobra.Command{
	Use:   "batch [values...]",
	Short: "Generate barcode images for many values in parallel",
	Long: `Generate barcode images for multiple values using parallel workers.

Values are taken from positional arguments and from --values-file (one
value per line, blank lines and '#' comments skipped, "-" reads from
stdin). Each value produces one image named {type}-{normalized} under
the output directory, and the run ends with a report in text, JSON or
CSV form.

Examples:
  bargo batch 40156 2030 4153
  bargo batch --values-file orders.txt --workers 8
  bargo batch --values-file orders.txt --format json --output report.json
  bargo batch --values-file orders.txt --pdf labels.pdf --progress`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runBatchCommand,
}

// configToBatchConfig maps centralized configuration to batch.Config.
// CLI flags will override config file values through Viper's precedence system.
func configToBatchConfig(cfg *config.Config, cmd *cobra.Command) *batch.Config {
	batchConfig := &batch.Config{}

	// Symbology and rendering settings - use centralized config with CLI flag overrides
	batchConfig.Format = cfg.Format
	if cmd.Flags().Changed("type") {
		batchConfig.Format, _ = cmd.Flags().GetString("type")
	}

	batchConfig.ModuleWidth = cfg.Generate.ModuleWidth
	if cmd.Flags().Changed("module-width") {
		batchConfig.ModuleWidth, _ = cmd.Flags().GetInt("module-width")
	}

	batchConfig.Height = cfg.Generate.Height
	if cmd.Flags().Changed("height") {
		batchConfig.Height, _ = cmd.Flags().GetInt("height")
	}

	batchConfig.QuietZone = cfg.Generate.QuietZone
	if cmd.Flags().Changed("quiet-zone") {
		batchConfig.QuietZone, _ = cmd.Flags().GetInt("quiet-zone")
	}

	batchConfig.Caption = cfg.Generate.Caption
	if noCaption, _ := cmd.Flags().GetBool("no-caption"); noCaption {
		batchConfig.Caption = false
	}

	batchConfig.DPI = cfg.Generate.DPI
	if cmd.Flags().Changed("dpi") {
		batchConfig.DPI, _ = cmd.Flags().GetInt("dpi")
	}

	// Output settings
	batchConfig.OutputDir = cfg.OutputDir

	batchConfig.ReportFormat = cfg.Batch.ReportFormat
	if cmd.Flags().Changed("format") {
		batchConfig.ReportFormat, _ = cmd.Flags().GetString("format")
	}

	// Parallel processing settings
	batchConfig.Workers = cfg.Batch.Workers
	if cmd.Flags().Changed("workers") {
		batchConfig.Workers, _ = cmd.Flags().GetInt("workers")
	}

	batchConfig.ContinueOnError = cfg.Batch.ContinueOnError
	if cmd.Flags().Changed("continue-on-error") {
		batchConfig.ContinueOnError, _ = cmd.Flags().GetBool("continue-on-error")
	}

	// Input and output files - these are CLI-only
	batchConfig.ValuesFile, _ = cmd.Flags().GetString("values-file")
	batchConfig.OutputFile, _ = cmd.Flags().GetString("output")
	batchConfig.ImageExt, _ = cmd.Flags().GetString("image-format")
	batchConfig.PDFFile, _ = cmd.Flags().GetString("pdf")

	// Progress settings - these are CLI-only
	batchConfig.ShowProgress, _ = cmd.Flags().GetBool("progress")
	batchConfig.Quiet, _ = cmd.Flags().GetBool("quiet")
	batchConfig.ShowStats, _ = cmd.Flags().GetBool("stats")
	batchConfig.ProgressInterval, _ = cmd.Flags().GetDuration("progress-interval")

	return batchConfig
}

func runBatchCommand(cmd *cobra.Command, args []string) error {
	// Get configuration from centralized system (includes CLI flags, config file, env vars, and defaults)
	cfg := GetConfig()

	// Map to batch configuration
	batchConfig := configToBatchConfig(cfg, cmd)

	if !batchConfig.Quiet {
		switch {
		case len(args) > 0:
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Processing %d value(s)...\n", len(args))
		case batchConfig.ValuesFile != "":
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Processing values from %s...\n", batchConfig.ValuesFile)
		}
	}

	// Process batch
	result, err := batch.ProcessBatch(cmd.Context(), args, batchConfig)
	if err != nil {
		return fmt.Errorf("batch generation failed: %w", err)
	}

	// Save report
	if err := result.SaveReport(batchConfig.ReportFormat, batchConfig.OutputFile, batchConfig.Quiet); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	// Print stats
	if batchConfig.ShowStats {
		result.PrintStats(batchConfig.Quiet)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(batchCmd)

	defaults := config.DefaultConfig()

	// Symbology and rendering flags (reuse from encode command)
	batchCmd.Flags().StringP("type", "t", defaults.Format, "barcode symbology (codabar, upc, code39)")
	batchCmd.Flags().Int("module-width", defaults.Generate.ModuleWidth, "pixel width of a single pattern cell")
	batchCmd.Flags().Int("height", defaults.Generate.Height, "bar height in pixels")
	batchCmd.Flags().Int("quiet-zone", defaults.Generate.QuietZone, "white margin on each side, in modules")
	batchCmd.Flags().Bool("no-caption", false, "omit the human-readable caption")
	batchCmd.Flags().IntP("dpi", "d", defaults.Generate.DPI, "output resolution in dots per inch (100 = unscaled)")

	// Input flags
	batchCmd.Flags().String("values-file", "", "file with one value per line (\"-\" reads stdin)")

	// Output flags
	batchCmd.Flags().StringP("format", "f", defaults.Batch.ReportFormat, "report format: text, json, csv")
	batchCmd.Flags().StringP("output", "o", "", "report file (default: stdout)")
	batchCmd.Flags().String("image-format", "png", "image file format: png, jpg, bmp")
	batchCmd.Flags().String("pdf", "", "collect generated images into a PDF label sheet")

	// Parallel processing flags
	batchCmd.Flags().IntP("workers", "w", defaults.Batch.Workers,
		fmt.Sprintf("number of parallel workers (0 = %d)", runtime.NumCPU()))
	batchCmd.Flags().Bool("continue-on-error", false, "keep going when individual values fail")

	// Progress and monitoring flags
	batchCmd.Flags().Bool("progress", false, "show progress while generating")
	batchCmd.Flags().Bool("quiet", false, "suppress progress output")
	batchCmd.Flags().Bool("stats", false, "show generation statistics")
	batchCmd.Flags().Duration("progress-interval", 500*time.Millisecond, "progress update interval")
}
