package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/MeKo-Tech/bargo/internal/barcode"
	"github.com/MeKo-Tech/bargo/internal/generate"
	"github.com/MeKo-Tech/bargo/internal/version"
)

// healthHandler returns server health status.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := HealthResponse{
		Status:  "healthy",
		Version: version.Version,
		Time:    time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding health response: %v\n", err)
	}
}

// symbologiesHandler returns the supported symbologies with their
// character sets and guard characters.
func (s *Server) symbologiesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	infos := barcode.Symbologies()
	response := SymbologiesResponse{
		Symbologies: infos,
		Count:       len(infos),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding symbologies response: %v\n", err)
	}
}

// encodeHandler processes barcode encode requests.
func (s *Server) encodeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, err := s.parseEncodeRequest(w, r)
	if err != nil {
		encodeRequestsTotal.WithLabelValues("unknown", "error").Inc()
		return // error already written
	}

	gen, err := s.generatorForRequest(req)
	if err != nil {
		encodeRequestsTotal.WithLabelValues("unknown", "error").Inc()
		s.writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	format := gen.Config().Format.String()

	start := time.Now()
	res, err := gen.Generate(req.Value)
	duration := time.Since(start)

	if err != nil {
		encodeRequestsTotal.WithLabelValues(format, "error").Inc()
		slog.Error("Encode request failed", "value", req.Value, "format", format, "error", err)
		s.writeEncodeError(w, err)
		return
	}

	encodeRequestsTotal.WithLabelValues(format, "success").Inc()
	encodeDuration.WithLabelValues(format).Observe(duration.Seconds())
	patternModules.WithLabelValues(format).Observe(float64(len(res.Pattern)))

	s.writeEncodeResponse(w, r, res)
}

// parseEncodeRequest decodes and validates the encode request body.
// On failure the HTTP error has already been written.
func (s *Server) parseEncodeRequest(w http.ResponseWriter, r *http.Request) (*EncodeRequest, error) {
	if s.maxBodyKB > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, int64(s.maxBodyKB)*1024)
	}

	var req EncodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeErrorResponse(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return nil, err
		}
		s.writeErrorResponse(w, "Invalid JSON request body", http.StatusBadRequest)
		return nil, err
	}

	if req.Value == "" {
		err := errors.New("no value provided")
		s.writeErrorResponse(w, "No value provided", http.StatusBadRequest)
		return nil, err
	}

	return &req, nil
}

// generatorForRequest returns a generator configured for the specific
// request, starting from the server defaults.
func (s *Server) generatorForRequest(req *EncodeRequest) (*generate.Generator, error) {
	format := s.format
	if req.Format != "" {
		parsed, err := barcode.ParseFormat(req.Format)
		if err != nil {
			return nil, err
		}
		format = parsed
	}

	moduleWidth := s.moduleWidth
	if req.ModuleWidth > 0 {
		moduleWidth = req.ModuleWidth
	}

	height := s.height
	if req.Height > 0 {
		height = req.Height
	}

	quietZone := s.quietZone
	if req.QuietZone != nil && *req.QuietZone >= 0 {
		quietZone = *req.QuietZone
	}

	caption := s.caption
	if req.Caption != nil {
		caption = *req.Caption
	}

	dpi := s.dpi
	if req.DPI > 0 {
		dpi = req.DPI
	}

	return generate.NewBuilder().
		WithFormat(format).
		WithText(req.Text).
		WithModuleWidth(moduleWidth).
		WithHeight(height).
		WithQuietZone(quietZone).
		WithCaption(caption).
		WithDPI(dpi).
		Build()
}

// writeEncodeResponse sends either the JSON encode result or, when the
// client asked for one, the rendered PNG.
func (s *Server) writeEncodeResponse(w http.ResponseWriter, r *http.Request, res *generate.Result) {
	if wantsImage(r) {
		w.Header().Set("Content-Type", "image/png")
		if err := png.Encode(w, res.Image); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding PNG response: %v\n", err)
		}
		return
	}

	response := EncodeResponse{
		Success: true,
		Result:  newEncodeResult(res),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding encode response: %v\n", err)
	}
}

// wantsImage reports whether the client asked for a rendered PNG
// instead of the JSON result, via ?render=1 or an image/png Accept
// header.
func wantsImage(r *http.Request) bool {
	if r.URL.Query().Get("render") == "1" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "image/png")
}

// writeEncodeError maps encode failures to HTTP status codes.
func (s *Server) writeEncodeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, barcode.ErrNotImplemented):
		status = http.StatusNotImplemented
	case errors.Is(err, barcode.ErrInvalidInput):
		status = http.StatusBadRequest
	}
	s.writeErrorResponse(w, err.Error(), status)
}

// writeErrorResponse writes a JSON error response.
func (s *Server) writeErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := EncodeResponse{
		Success: false,
		Error:   message,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		// Log error, but can't send another response
		fmt.Fprintf(os.Stderr, "Error writing error response: %v\n", err)
	}
}
