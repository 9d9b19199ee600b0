// Package batch provides file-driven batch generation of barcode images.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/MeKo-Tech/bargo/internal/barcode"
	"github.com/MeKo-Tech/bargo/internal/generate"
)

// ProcessBatch generates barcode images for all values collected from
// args and the configured values file.
func ProcessBatch(ctx context.Context, args []string, config *Config) (*Result, error) {
	values, err := ReadValues(args, config.ValuesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read values: %w", err)
	}
	if len(values) == 0 {
		return nil, errors.New("no values provided")
	}

	ext, err := normalizeImageExt(config.ImageExt)
	if err != nil {
		return nil, err
	}

	// Set up progress callback
	var progressCallback generate.ProgressCallback
	if config.ShowProgress && !config.Quiet {
		progressCallback = generate.NewConsoleProgressCallback(
			os.Stdout,
			"Generating: ",
		).WithUpdateInterval(config.ProgressInterval)
	}

	gen, failures, err := buildGenerator(config, progressCallback)
	if err != nil {
		return nil, fmt.Errorf("failed to build generator: %w", err)
	}

	startTime := time.Now()
	results, genErr := gen.GenerateBatchContext(ctx, values)
	duration := time.Since(startTime)

	if results == nil {
		return nil, fmt.Errorf("batch generation failed: %w", genErr)
	}
	if genErr != nil && !config.ContinueOnError {
		return nil, fmt.Errorf("batch generation failed: %w", genErr)
	}

	items := assembleItems(gen.Config().Format.String(), values, results, failures)
	if err := saveImages(gen, results, items, ext, config); err != nil {
		return nil, err
	}

	result := &Result{
		Values:      values,
		Results:     results,
		Items:       items,
		Duration:    duration,
		WorkerCount: effectiveWorkers(config.Workers),
	}

	if config.PDFFile != "" {
		if err := writeSheet(ctx, items, config.PDFFile, config.Quiet); err != nil {
			if !config.ContinueOnError {
				return nil, err
			}
			slog.Warn("failed to write PDF sheet", "file", config.PDFFile, "error", err)
		} else {
			result.PDFFile = config.PDFFile
		}
	}

	return result, nil
}

// buildGenerator assembles the generation pipeline from the batch config.
// The returned failure log receives one entry per value that fails.
func buildGenerator(config *Config, progress generate.ProgressCallback) (*generate.Generator, *failureLog, error) {
	failures := newFailureLog()

	builder := generate.NewBuilder()
	if config.Format != "" {
		format, err := barcode.ParseFormat(config.Format)
		if err != nil {
			return nil, nil, err
		}
		builder.WithFormat(format)
	}

	builder.
		WithModuleWidth(config.ModuleWidth).
		WithHeight(config.Height).
		WithQuietZone(config.QuietZone).
		WithCaption(config.Caption).
		WithDPI(config.DPI).
		WithWorkers(config.Workers).
		WithErrorHandler(failures.record)

	if progress != nil {
		builder.WithProgress(progress)
	}

	gen, err := builder.Build()
	if err != nil {
		return nil, nil, err
	}
	return gen, failures, nil
}

// effectiveWorkers resolves the worker count the same way the pipeline does.
func effectiveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}
	return runtime.NumCPU()
}
