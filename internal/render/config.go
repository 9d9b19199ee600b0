package render

import "fmt"

const (
	// DefaultModuleWidth is the horizontal pixel width of one pattern cell.
	DefaultModuleWidth = 4

	// DefaultHeight is the bar height in pixels, excluding the caption band.
	DefaultHeight = 160

	// DefaultQuietZone is the white margin on each side, in modules.
	DefaultQuietZone = 10

	// baseDPI is the dots-per-inch that maps to a 1.0 scale factor.
	baseDPI = 100
)

// Config controls how a bar pattern is rasterized.
type Config struct {
	ModuleWidth int     `mapstructure:"module_width" yaml:"module_width" json:"module_width"`
	Height      int     `mapstructure:"height"       yaml:"height"       json:"height"`
	QuietZone   int     `mapstructure:"quiet_zone"   yaml:"quiet_zone"   json:"quiet_zone"`
	Caption     bool    `mapstructure:"caption"      yaml:"caption"      json:"caption"`
	Scale       float64 `mapstructure:"scale"        yaml:"scale"        json:"scale"`
}

// DefaultConfig returns the rendering defaults: 4-pixel modules, 160-pixel
// bars, a 10-module quiet zone and a caption band.
func DefaultConfig() Config {
	return Config{
		ModuleWidth: DefaultModuleWidth,
		Height:      DefaultHeight,
		QuietZone:   DefaultQuietZone,
		Caption:     true,
		Scale:       1.0,
	}
}

// ScaleForDPI converts a dots-per-inch request into the scale factor
// applied after drawing, with 100 DPI mapping to 1.0.
func ScaleForDPI(dpi int) float64 {
	if dpi <= 0 {
		return 1.0
	}
	return float64(dpi) / baseDPI
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.ModuleWidth <= 0 {
		return fmt.Errorf("module width must be > 0, got %d", c.ModuleWidth)
	}
	if c.Height <= 0 {
		return fmt.Errorf("height must be > 0, got %d", c.Height)
	}
	if c.QuietZone < 0 {
		return fmt.Errorf("quiet zone must be >= 0, got %d", c.QuietZone)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be > 0, got %g", c.Scale)
	}
	return nil
}
