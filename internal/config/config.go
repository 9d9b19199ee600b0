package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MeKo-Tech/bargo/internal/barcode"
	"github.com/MeKo-Tech/bargo/internal/generate"
	"github.com/MeKo-Tech/bargo/internal/render"
)

// Config represents the complete configuration for the bargo barcode tool.
// It includes settings for all commands (encode, batch, serve) and
// supports loading from configuration files, environment variables, and command-line flags.
type Config struct {
	// Global settings
	Format    string `mapstructure:"format" yaml:"format" json:"format"`
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir" json:"output_dir"`
	LogLevel  string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose   bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Image generation settings
	Generate GenerateConfig `mapstructure:"generate" yaml:"generate" json:"generate"`

	// Batch processing configuration
	Batch BatchConfig `mapstructure:"batch" yaml:"batch" json:"batch"`

	// Server configuration (for serve command)
	Server ServerConfig `mapstructure:"server" yaml:"server" json:"server"`
}

// GenerateConfig contains barcode rendering settings.
type GenerateConfig struct {
	ModuleWidth int  `mapstructure:"module_width" yaml:"module_width" json:"module_width"`
	Height      int  `mapstructure:"height" yaml:"height" json:"height"`
	QuietZone   int  `mapstructure:"quiet_zone" yaml:"quiet_zone" json:"quiet_zone"`
	Caption     bool `mapstructure:"caption" yaml:"caption" json:"caption"`
	DPI         int  `mapstructure:"dpi" yaml:"dpi" json:"dpi"`
}

// BatchConfig contains batch processing settings.
type BatchConfig struct {
	Workers         int    `mapstructure:"workers" yaml:"workers" json:"workers"`
	ContinueOnError bool   `mapstructure:"continue_on_error" yaml:"continue_on_error" json:"continue_on_error"`
	ReportFormat    string `mapstructure:"report_format" yaml:"report_format" json:"report_format"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host            string  `mapstructure:"host" yaml:"host" json:"host"`
	Port            int     `mapstructure:"port" yaml:"port" json:"port"`
	CORSOrigin      string  `mapstructure:"cors_origin" yaml:"cors_origin" json:"cors_origin"`
	MaxBodyKB       int     `mapstructure:"max_body_kb" yaml:"max_body_kb" json:"max_body_kb"`
	TimeoutSec      int     `mapstructure:"timeout_sec" yaml:"timeout_sec" json:"timeout_sec"`
	ShutdownTimeout int     `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" json:"shutdown_timeout"`
	RateLimitRPS    float64 `mapstructure:"rate_limit_rps" yaml:"rate_limit_rps" json:"rate_limit_rps"`
	RateLimitBurst  int     `mapstructure:"rate_limit_burst" yaml:"rate_limit_burst" json:"rate_limit_burst"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	rc := render.DefaultConfig()

	return Config{
		Format:    barcode.FormatCodabar.String(),
		OutputDir: "export",
		LogLevel:  "info",
		Verbose:   false,
		Generate: GenerateConfig{
			ModuleWidth: rc.ModuleWidth,
			Height:      rc.Height,
			QuietZone:   rc.QuietZone,
			Caption:     rc.Caption,
			DPI:         100,
		},
		Batch: BatchConfig{
			Workers:         4,
			ContinueOnError: false,
			ReportFormat:    "text",
		},
		Server: ServerConfig{
			Host:            "localhost",
			Port:            8080,
			CORSOrigin:      "*",
			MaxBodyKB:       64,
			TimeoutSec:      30,
			ShutdownTimeout: 10,
			RateLimitRPS:    50,
			RateLimitBurst:  100,
		},
	}
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if _, err := barcode.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("invalid symbology: %w", err)
	}

	validReports := []string{"text", "json", "csv"}
	if c.Batch.ReportFormat != "" && !slices.Contains(validReports, c.Batch.ReportFormat) {
		return fmt.Errorf("invalid report format: %s (must be one of: %s)",
			c.Batch.ReportFormat, strings.Join(validReports, ", "))
	}

	if c.Generate.ModuleWidth <= 0 {
		return fmt.Errorf("invalid module width: %d (must be positive)", c.Generate.ModuleWidth)
	}
	if c.Generate.Height <= 0 {
		return fmt.Errorf("invalid height: %d (must be positive)", c.Generate.Height)
	}
	if c.Generate.QuietZone < 0 {
		return fmt.Errorf("invalid quiet zone: %d (must not be negative)", c.Generate.QuietZone)
	}
	if c.Generate.DPI <= 0 {
		return fmt.Errorf("invalid dpi: %d (must be positive)", c.Generate.DPI)
	}

	if c.Batch.Workers <= 0 {
		return fmt.Errorf("invalid batch workers: %d (must be positive)", c.Batch.Workers)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d (must be between 1 and 65535)", c.Server.Port)
	}
	if c.Server.MaxBodyKB <= 0 {
		return fmt.Errorf("invalid max body size: %d (must be positive)", c.Server.MaxBodyKB)
	}
	if c.Server.TimeoutSec <= 0 {
		return fmt.Errorf("invalid timeout: %d (must be positive)", c.Server.TimeoutSec)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid shutdown timeout: %d (must be positive)", c.Server.ShutdownTimeout)
	}
	if c.Server.RateLimitRPS <= 0 {
		return fmt.Errorf("invalid rate limit: %.1f (must be positive)", c.Server.RateLimitRPS)
	}
	if c.Server.RateLimitBurst <= 0 {
		return fmt.Errorf("invalid rate limit burst: %d (must be positive)", c.Server.RateLimitBurst)
	}

	return nil
}

// ToGenerateConfig converts the config to the internal generation
// pipeline format.
func (c *Config) ToGenerateConfig() (generate.Config, error) {
	format, err := barcode.ParseFormat(c.Format)
	if err != nil {
		return generate.Config{}, err
	}

	cfg := generate.DefaultConfig()
	cfg.Format = format
	cfg.Render = c.ToRenderConfig()
	cfg.Parallel.MaxWorkers = c.Batch.Workers
	return cfg, nil
}

// ToRenderConfig converts to render.Config.
func (c *Config) ToRenderConfig() render.Config {
	cfg := render.DefaultConfig()
	cfg.ModuleWidth = c.Generate.ModuleWidth
	cfg.Height = c.Generate.Height
	cfg.QuietZone = c.Generate.QuietZone
	cfg.Caption = c.Generate.Caption
	cfg.Scale = render.ScaleForDPI(c.Generate.DPI)
	return cfg
}
