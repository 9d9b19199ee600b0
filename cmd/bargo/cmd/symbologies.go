package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/MeKo-Tech/bargo/internal/barcode"
	"github.com/spf13/cobra"
)

const (
	outputFormatJSON = "json"
	outputFormatText = "text"
)

// symbologiesCmd represents the symbologies command.
var symbologiesCmd = &cobra.Command{
	Use:   "symbologies",
	Short: "List supported barcode symbologies",
	Long: `List the supported barcode symbologies with their character sets and
guard characters.

Symbologies marked as not encoding are recognized and validated but
cannot produce a bar pattern yet.

Examples:
  bargo symbologies
  bargo symbologies --format json`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		infos := barcode.Symbologies()
		out := cmd.OutOrStdout()

		switch format {
		case outputFormatJSON:
			bts, err := json.MarshalIndent(infos, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if _, err := fmt.Fprintln(out, string(bts)); err != nil {
				return fmt.Errorf("failed to write to stdout: %w", err)
			}
		case outputFormatText:
			_, _ = fmt.Fprintf(out, "%-10s %-8s %-6s %s\n", "NAME", "ENCODES", "GUARD", "CHARSET")
			for _, info := range infos {
				guard := info.Guard
				if guard == "" {
					guard = "-"
				}
				encodes := "yes"
				if !info.Encodes {
					encodes = "no"
				}
				_, _ = fmt.Fprintf(out, "%-10s %-8s %-6s %s\n", info.Name, encodes, guard, info.Charset)
			}
		default:
			return fmt.Errorf("invalid output format: %s (must be one of: %s, %s)",
				format, outputFormatText, outputFormatJSON)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(symbologiesCmd)

	symbologiesCmd.Flags().StringP("format", "f", "text", "output format (text, json)")
}
