// Package generate orchestrates the encode-and-render pipeline: a
// Generator built once via the fluent Builder turns raw values into
// validated barcodes and rendered images, sequentially or through a
// worker pool for batches.
package generate

import (
	"fmt"
	"image"
	"time"

	"github.com/MeKo-Tech/bargo/internal/barcode"
	"github.com/MeKo-Tech/bargo/internal/common"
	"github.com/MeKo-Tech/bargo/internal/render"
	"github.com/MeKo-Tech/bargo/internal/utils"
)

// Generator produces barcode images for a fixed symbology and render
// configuration. It holds no mutable state and is safe for concurrent
// use.
type Generator struct {
	cfg Config
}

// Result is the outcome of generating a single barcode.
type Result struct {
	Barcode *barcode.Barcode
	Image   image.Image
	Pattern string
	Elapsed time.Duration
}

// Config returns a copy of the generator's configuration.
func (g *Generator) Config() Config { return g.cfg }

// Generate validates, encodes and renders a single value.
func (g *Generator) Generate(value string) (*Result, error) {
	timer := common.NewTimer()
	format := g.cfg.Format.String()

	b, err := barcode.New(value, g.cfg.Format, g.cfg.Options)
	if err != nil {
		generateFailures.WithLabelValues(format).Inc()
		return nil, fmt.Errorf("value %q: %w", value, err)
	}

	pattern, err := b.Encode()
	if err != nil {
		generateFailures.WithLabelValues(format).Inc()
		return nil, fmt.Errorf("value %q: %w", value, err)
	}

	img, err := render.Render(b, g.cfg.Render)
	if err != nil {
		generateFailures.WithLabelValues(format).Inc()
		return nil, fmt.Errorf("value %q: %w", value, err)
	}

	elapsed := timer.Stop()
	barcodesGenerated.WithLabelValues(format).Inc()
	generateDuration.WithLabelValues(format).Observe(elapsed.Seconds())

	return &Result{
		Barcode: b,
		Image:   img,
		Pattern: pattern,
		Elapsed: elapsed,
	}, nil
}

// OutputFilename derives the default image file name for a generated
// barcode, e.g. "codabar-A40156A.png".
func (g *Generator) OutputFilename(b *barcode.Barcode) string {
	return utils.DefaultFilename(b.Format().String(), b.NormalizedData())
}
