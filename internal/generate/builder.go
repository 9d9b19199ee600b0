package generate

import (
	"github.com/MeKo-Tech/bargo/internal/barcode"
	"github.com/MeKo-Tech/bargo/internal/render"
)

// Builder constructs a Generator with fluent configuration.
type Builder struct {
	cfg Config
}

// NewBuilder creates a new generator builder with defaults.
func NewBuilder() *Builder { return &Builder{cfg: DefaultConfig()} }

// WithFormat sets the symbology applied to every value.
func (b *Builder) WithFormat(f barcode.Format) *Builder {
	b.cfg.Format = f
	return b
}

// WithText overrides the display label for every generated barcode.
func (b *Builder) WithText(text string) *Builder {
	b.cfg.Options.Text = text
	return b
}

// WithModuleWidth sets the pixel width of one pattern cell.
func (b *Builder) WithModuleWidth(width int) *Builder {
	if width > 0 {
		b.cfg.Render.ModuleWidth = width
	}
	return b
}

// WithHeight sets the bar height in pixels.
func (b *Builder) WithHeight(height int) *Builder {
	if height > 0 {
		b.cfg.Render.Height = height
	}
	return b
}

// WithQuietZone sets the white margin width in modules.
func (b *Builder) WithQuietZone(modules int) *Builder {
	if modules >= 0 {
		b.cfg.Render.QuietZone = modules
	}
	return b
}

// WithCaption toggles the human-readable caption beneath the bars.
func (b *Builder) WithCaption(enabled bool) *Builder {
	b.cfg.Render.Caption = enabled
	return b
}

// WithDPI sets the output resolution, with 100 DPI as the unscaled base.
func (b *Builder) WithDPI(dpi int) *Builder {
	b.cfg.Render.Scale = render.ScaleForDPI(dpi)
	return b
}

// WithWorkers sets the worker count for batch generation.
func (b *Builder) WithWorkers(n int) *Builder {
	if n > 0 {
		b.cfg.Parallel.MaxWorkers = n
	}
	return b
}

// WithProgress sets the progress reporter for batch generation.
func (b *Builder) WithProgress(cb ProgressCallback) *Builder {
	b.cfg.Parallel.ProgressCallback = cb
	return b
}

// WithErrorHandler sets a callback invoked for every value that fails
// during batch generation, with the value's input position.
func (b *Builder) WithErrorHandler(handler func(index int, value string, err error)) *Builder {
	b.cfg.Parallel.ErrorHandler = handler
	return b
}

// Build validates the configuration and returns the generator.
func (b *Builder) Build() (*Generator, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{cfg: b.cfg}, nil
}
