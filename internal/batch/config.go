package batch

import (
	"fmt"
	"os"
	"time"

	"github.com/MeKo-Tech/bargo/internal/generate"
)

// Config holds all configuration for batch generation.
type Config struct {
	// Symbology and rendering settings
	Format      string
	ModuleWidth int
	Height      int
	QuietZone   int
	Caption     bool
	DPI         int

	// Values input settings
	ValuesFile string // one value per line, "-" reads stdin

	// Output settings
	OutputDir    string
	ImageExt     string // png, jpg or bmp
	ReportFormat string // text, json or csv
	OutputFile   string // report destination, empty writes to stdout
	PDFFile      string // optional label sheet collecting all images

	// Parallel processing settings
	Workers int

	// Progress settings
	ContinueOnError  bool
	ShowProgress     bool
	Quiet            bool
	ShowStats        bool
	ProgressInterval time.Duration
}

// Item is the reported outcome for a single value in a batch run.
type Item struct {
	Value      string `json:"value"`
	Format     string `json:"format"`
	Normalized string `json:"normalized,omitempty"`
	Display    string `json:"display_text,omitempty"`
	Pattern    string `json:"pattern,omitempty"`
	File       string `json:"file,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Result holds the result of batch generation.
type Result struct {
	Values      []string
	Results     []*generate.Result
	Items       []Item
	Duration    time.Duration
	WorkerCount int
	PDFFile     string
}

// Succeeded returns the number of values that produced an image.
func (r *Result) Succeeded() int {
	count := 0
	for _, item := range r.Items {
		if item.Error == "" {
			count++
		}
	}
	return count
}

// Failed returns the number of values that failed.
func (r *Result) Failed() int {
	return len(r.Items) - r.Succeeded()
}

// FormatReport formats the batch results in the specified format.
func (r *Result) FormatReport(format string) (string, error) {
	return formatReport(r.Items, format)
}

// SaveReport writes the formatted report to a file or stdout.
func (r *Result) SaveReport(format, outputFile string, quiet bool) error {
	output, err := r.FormatReport(format)
	if err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(output), 0o600); err != nil {
			return fmt.Errorf("failed to write report file: %w", err)
		}
		if !quiet {
			_, _ = fmt.Fprintf(os.Stdout, "Report written to %s\n", outputFile)
		}
	} else {
		_, _ = fmt.Fprint(os.Stdout, output)
	}

	return nil
}

// PrintStats prints generation statistics.
func (r *Result) PrintStats(quiet bool) {
	if quiet {
		return
	}

	stats := generate.CalculateBatchStats(r.Values, r.Results, r.Duration, r.WorkerCount)
	_, _ = fmt.Fprintf(os.Stdout, "\nGeneration Statistics:\n")
	_, _ = fmt.Fprintf(os.Stdout, "  Total values: %d\n", stats.TotalValues)
	_, _ = fmt.Fprintf(os.Stdout, "  Generated: %d\n", stats.GeneratedValues)
	_, _ = fmt.Fprintf(os.Stdout, "  Failed: %d\n", stats.FailedValues)
	_, _ = fmt.Fprintf(os.Stdout, "  Workers: %d\n", stats.WorkerCount)
	_, _ = fmt.Fprintf(os.Stdout, "  Duration: %v\n", stats.TotalDuration.Round(time.Millisecond))
	_, _ = fmt.Fprintf(os.Stdout, "  Throughput: %.1f values/sec\n", stats.ThroughputPerSec)
}
