package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MeKo-Tech/bargo/internal/generate"
	"github.com/MeKo-Tech/bargo/internal/pdf"
	"github.com/MeKo-Tech/bargo/internal/utils"
)

// failureLog records per-value generation errors by input position.
type failureLog struct {
	mu   sync.Mutex
	errs map[int]error
}

func newFailureLog() *failureLog {
	return &failureLog{errs: make(map[int]error)}
}

func (f *failureLog) record(index int, _ string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[index] = err
}

func (f *failureLog) get(index int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errs[index]
}

// assembleItems builds the per-value report entries from the ordered
// generation results.
func assembleItems(format string, values []string, results []*generate.Result, failures *failureLog) []Item {
	items := make([]Item, len(values))

	for i, value := range values {
		item := Item{Value: value, Format: format}

		if res := results[i]; res != nil {
			item.Format = res.Barcode.Format().String()
			item.Normalized = res.Barcode.NormalizedData()
			item.Display = res.Barcode.DisplayText()
			item.Pattern = res.Pattern
		} else if err := failures.get(i); err != nil {
			item.Error = err.Error()
		} else {
			item.Error = "not generated"
		}

		items[i] = item
	}

	return items
}

// saveImages writes each generated image beneath the output directory
// and records the file path on its report item.
func saveImages(gen *generate.Generator, results []*generate.Result, items []Item, ext string, config *Config) error {
	for i, res := range results {
		if res == nil {
			continue
		}

		name := gen.OutputFilename(res.Barcode)
		if ext != "png" {
			name = strings.TrimSuffix(name, ".png") + "." + ext
		}
		path := filepath.Join(config.OutputDir, name)

		if err := utils.SaveImage(res.Image, path); err != nil {
			items[i].Error = err.Error()
			if !config.ContinueOnError {
				return fmt.Errorf("failed to save %s: %w", path, err)
			}
			slog.Warn("failed to save image", "file", path, "error", err)
			continue
		}

		items[i].File = path
	}

	return nil
}

// normalizeImageExt validates the configured image extension and
// returns it without a leading dot. An empty extension means PNG.
func normalizeImageExt(ext string) (string, error) {
	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	if ext == "" {
		return "png", nil
	}

	switch ext {
	case "png", "jpg", "jpeg", "bmp":
		return ext, nil
	default:
		return "", fmt.Errorf("unsupported image format: %s", ext)
	}
}

// writeSheet collects all saved images into a single PDF.
func writeSheet(ctx context.Context, items []Item, outPath string, quiet bool) error {
	var paths []string
	for _, item := range items {
		if item.File != "" {
			paths = append(paths, item.File)
		}
	}
	if len(paths) == 0 {
		return errors.New("no images available for PDF sheet")
	}

	if err := pdf.WriteSheet(ctx, paths, outPath); err != nil {
		return fmt.Errorf("failed to write PDF sheet: %w", err)
	}

	if !quiet {
		if pages, err := pdf.PageCount(outPath); err == nil {
			_, _ = fmt.Fprintf(os.Stdout, "PDF sheet written to %s (%d pages)\n", outPath, pages)
		}
	}

	return nil
}
