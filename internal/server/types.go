package server

import (
	"net/http"

	"github.com/MeKo-Tech/bargo/internal/barcode"
	"github.com/MeKo-Tech/bargo/internal/generate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	format      barcode.Format
	moduleWidth int
	height      int
	quietZone   int
	caption     bool
	dpi         int

	corsOrigin  string
	maxBodyKB   int
	rateLimiter *RateLimiter
}

// Config holds server configuration.
type Config struct {
	CORSOrigin string
	MaxBodyKB  int

	// Default generation settings, applied when a request leaves the
	// corresponding field unset.
	Format      string
	ModuleWidth int
	Height      int
	QuietZone   int
	Caption     bool
	DPI         int

	RateLimit RateLimitConfig
}

// RateLimitConfig holds token-bucket rate limiting settings.
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	Burst             int
}

// EncodeRequest is the body of POST /encode. Zero-valued fields fall
// back to the server's configured defaults; QuietZone and Caption are
// pointers so an explicit zero/false survives JSON decoding.
type EncodeRequest struct {
	Value       string `json:"value"`
	Format      string `json:"format,omitempty"`
	Text        string `json:"text,omitempty"`
	ModuleWidth int    `json:"module_width,omitempty"`
	Height      int    `json:"height,omitempty"`
	QuietZone   *int   `json:"quiet_zone,omitempty"`
	Caption     *bool  `json:"caption,omitempty"`
	DPI         int    `json:"dpi,omitempty"`
}

// Response types for API endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Time    string `json:"time"`
}

type SymbologiesResponse struct {
	Symbologies []barcode.Info `json:"symbologies"`
	Count       int            `json:"count"`
}

type EncodeResult struct {
	Value       string `json:"value"`
	Format      string `json:"format"`
	Normalized  string `json:"normalized"`
	DisplayText string `json:"display_text"`
	Pattern     string `json:"pattern"`
	Modules     int    `json:"modules"`
	ElapsedMs   int64  `json:"elapsed_ms"`
}

type EncodeResponse struct {
	Success bool          `json:"success"`
	Result  *EncodeResult `json:"result,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// NewServer creates a new encode server instance.
func NewServer(config Config) (*Server, error) {
	format := barcode.FormatCodabar
	if config.Format != "" {
		parsed, err := barcode.ParseFormat(config.Format)
		if err != nil {
			return nil, err
		}
		format = parsed
	}

	s := &Server{
		format:      format,
		moduleWidth: config.ModuleWidth,
		height:      config.Height,
		quietZone:   config.QuietZone,
		caption:     config.Caption,
		dpi:         config.DPI,
		corsOrigin:  config.CORSOrigin,
		maxBodyKB:   config.MaxBodyKB,
	}

	if config.RateLimit.Enabled {
		s.rateLimiter = NewRateLimiter(config.RateLimit.RequestsPerSecond, config.RateLimit.Burst)
	}

	// Reject unusable generation defaults at startup rather than on the
	// first request.
	if _, err := s.generatorForRequest(&EncodeRequest{}); err != nil {
		return nil, err
	}

	return s, nil
}

// SetupRoutes configures the HTTP routes.
func (s *Server) SetupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", s.corsMiddleware(s.healthHandler))
	mux.HandleFunc("/symbologies", s.corsMiddleware(s.symbologiesHandler))
	mux.HandleFunc("/encode", s.corsMiddleware(s.rateLimitMiddleware(s.encodeHandler)))
	mux.HandleFunc("/encode/stream", s.encodeStreamHandler)
	mux.Handle("/metrics", promhttp.Handler())
}

// newEncodeResult converts a generation result into its API shape,
// shared by the HTTP and WebSocket encode paths.
func newEncodeResult(res *generate.Result) *EncodeResult {
	b := res.Barcode
	return &EncodeResult{
		Value:       b.RawData(),
		Format:      b.Format().String(),
		Normalized:  b.NormalizedData(),
		DisplayText: b.DisplayText(),
		Pattern:     res.Pattern,
		Modules:     len(res.Pattern),
		ElapsedMs:   res.Elapsed.Milliseconds(),
	}
}
