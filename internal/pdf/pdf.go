// Package pdf assembles rendered barcode images into printable label
// sheets using pdfcpu.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// WriteSheet collects the given label images into a single PDF at
// outPath, one page per image. The images must already exist on disk;
// PNG, JPEG and WebP are accepted by pdfcpu.
func WriteSheet(ctx context.Context, imagePaths []string, outPath string) error {
	if len(imagePaths) == 0 {
		return errors.New("no images to import")
	}

	for _, path := range imagePaths {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("cannot access %s: %w", path, err)
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// nil import config means one full-size page per image
	if err := api.ImportImagesFile(imagePaths, outPath, nil, nil); err != nil {
		return fmt.Errorf("failed to import images into %s: %w", outPath, err)
	}

	return nil
}

// PageCount returns the number of pages in a PDF file.
func PageCount(path string) (int, error) {
	count, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read page count of %s: %w", path, err)
	}
	return count, nil
}
