package config

import (
	"strings"
	"testing"

	"github.com/MeKo-Tech/bargo/internal/barcode"
)

const (
	debugLevel = "debug"
	infoLevel  = "info"
	warnLevel  = "warn"
)

// TestDefaultConfig verifies that DefaultConfig returns expected values.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Global settings
	if cfg.Format != "codabar" {
		t.Errorf("Expected format 'codabar', got %s", cfg.Format)
	}
	if cfg.OutputDir != "export" {
		t.Errorf("Expected output_dir 'export', got %s", cfg.OutputDir)
	}
	if cfg.LogLevel != infoLevel {
		t.Errorf("Expected log_level '%s', got %s", infoLevel, cfg.LogLevel)
	}
	if cfg.Verbose {
		t.Error("Expected verbose to be false")
	}

	// Generation defaults
	if cfg.Generate.ModuleWidth != 4 {
		t.Errorf("Expected module_width 4, got %d", cfg.Generate.ModuleWidth)
	}
	if cfg.Generate.Height != 160 {
		t.Errorf("Expected height 160, got %d", cfg.Generate.Height)
	}
	if cfg.Generate.QuietZone != 10 {
		t.Errorf("Expected quiet_zone 10, got %d", cfg.Generate.QuietZone)
	}
	if !cfg.Generate.Caption {
		t.Error("Expected caption to be enabled by default")
	}
	if cfg.Generate.DPI != 100 {
		t.Errorf("Expected dpi 100, got %d", cfg.Generate.DPI)
	}

	// Batch defaults
	if cfg.Batch.Workers != 4 {
		t.Errorf("Expected batch workers 4, got %d", cfg.Batch.Workers)
	}
	if cfg.Batch.ContinueOnError {
		t.Error("Expected continue_on_error to be false")
	}
	if cfg.Batch.ReportFormat != "text" {
		t.Errorf("Expected report format 'text', got %s", cfg.Batch.ReportFormat)
	}

	// Server defaults
	if cfg.Server.Host != "localhost" {
		t.Errorf("Expected server host 'localhost', got %s", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Expected server port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.CORSOrigin != "*" {
		t.Errorf("Expected CORS origin '*', got %s", cfg.Server.CORSOrigin)
	}
	if cfg.Server.MaxBodyKB != 64 {
		t.Errorf("Expected max_body_kb 64, got %d", cfg.Server.MaxBodyKB)
	}
}

// TestConfigValidation tests validation of log level and report format.
func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     string
		reportFormat string
		wantErr      bool
	}{
		{"valid log level and format", infoLevel, "text", false},
		{"valid debug", debugLevel, "json", false},
		{"valid warn", warnLevel, "csv", false},
		{"invalid log level", "trace", "text", true},
		{"invalid report format", infoLevel, "xml", true},
		{"empty report format is valid", infoLevel, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.LogLevel = tt.logLevel
			cfg.Batch.ReportFormat = tt.reportFormat

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestConfigValidationSymbology tests the symbology name check.
func TestConfigValidationSymbology(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = "qrcode"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for unknown symbology, got nil")
	}
	if !strings.Contains(err.Error(), "invalid symbology") {
		t.Errorf("Expected symbology error, got: %v", err)
	}
}

// TestConfigValidationBounds tests numeric bounds checks.
func TestConfigValidationBounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero module width", func(c *Config) { c.Generate.ModuleWidth = 0 }},
		{"negative height", func(c *Config) { c.Generate.Height = -1 }},
		{"negative quiet zone", func(c *Config) { c.Generate.QuietZone = -1 }},
		{"zero dpi", func(c *Config) { c.Generate.DPI = 0 }},
		{"zero batch workers", func(c *Config) { c.Batch.Workers = 0 }},
		{"port too low", func(c *Config) { c.Server.Port = 0 }},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }},
		{"zero max body", func(c *Config) { c.Server.MaxBodyKB = 0 }},
		{"zero timeout", func(c *Config) { c.Server.TimeoutSec = 0 }},
		{"zero shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }},
		{"zero rate limit", func(c *Config) { c.Server.RateLimitRPS = 0 }},
		{"zero rate limit burst", func(c *Config) { c.Server.RateLimitBurst = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			if err := cfg.Validate(); err == nil {
				t.Error("Validate() expected error, got nil")
			}
		})
	}
}

// TestToGenerateConfig tests conversion to the pipeline config.
func TestToGenerateConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = "code39"
	cfg.Generate.ModuleWidth = 2
	cfg.Generate.Height = 80
	cfg.Generate.Caption = false
	cfg.Batch.Workers = 7

	genCfg, err := cfg.ToGenerateConfig()
	if err != nil {
		t.Fatalf("ToGenerateConfig() error: %v", err)
	}

	if genCfg.Format != barcode.FormatCode39 {
		t.Errorf("Expected format code39, got %v", genCfg.Format)
	}
	if genCfg.Render.ModuleWidth != 2 {
		t.Errorf("Expected module width 2, got %d", genCfg.Render.ModuleWidth)
	}
	if genCfg.Render.Height != 80 {
		t.Errorf("Expected height 80, got %d", genCfg.Render.Height)
	}
	if genCfg.Render.Caption {
		t.Error("Expected caption to be disabled")
	}
	if genCfg.Parallel.MaxWorkers != 7 {
		t.Errorf("Expected 7 workers, got %d", genCfg.Parallel.MaxWorkers)
	}
}

// TestToGenerateConfigUnknownFormat tests conversion failure for unknown formats.
func TestToGenerateConfigUnknownFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = "datamatrix"

	if _, err := cfg.ToGenerateConfig(); err == nil {
		t.Error("ToGenerateConfig() expected error for unknown format, got nil")
	}
}

// TestToRenderConfigDPIScale verifies that DPI translates to a render scale.
func TestToRenderConfigDPIScale(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generate.DPI = 200

	rc := cfg.ToRenderConfig()
	if rc.Scale != 2.0 {
		t.Errorf("Expected scale 2.0 for 200 dpi, got %f", rc.Scale)
	}
}
