package generate

import (
	"fmt"

	"github.com/MeKo-Tech/bargo/internal/barcode"
	"github.com/MeKo-Tech/bargo/internal/render"
)

// Config holds configuration for the barcode generation pipeline.
type Config struct {
	Format  barcode.Format  // symbology applied to every value
	Options barcode.Options // per-barcode options such as the label override
	Render  render.Config   // rasterization settings

	// Parallel processing configuration
	Parallel ParallelConfig
}

// DefaultConfig returns a default generation config with component defaults.
func DefaultConfig() Config {
	return Config{
		Format:   barcode.FormatCodabar,
		Options:  barcode.Options{},
		Render:   render.DefaultConfig(),
		Parallel: DefaultParallelConfig(),
	}
}

// Validate checks the config for a known symbology and usable render
// settings.
func (c Config) Validate() error {
	known := false
	for _, f := range barcode.Formats() {
		if c.Format == f {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unsupported symbology %d", c.Format)
	}
	if err := c.Render.Validate(); err != nil {
		return fmt.Errorf("render config: %w", err)
	}
	return nil
}
