package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_Defaults(t *testing.T) {
	srv, err := NewServer(Config{CORSOrigin: "*", MaxBodyKB: 64})
	require.NoError(t, err)

	assert.Equal(t, "*", srv.corsOrigin)
	assert.Equal(t, 64, srv.maxBodyKB)
	assert.Nil(t, srv.rateLimiter)
}

func TestNewServer_UnknownFormat(t *testing.T) {
	srv, err := NewServer(Config{Format: "qrcode"})
	require.Error(t, err)
	assert.Nil(t, srv)
}

func TestNewServer_RateLimiterEnabled(t *testing.T) {
	srv, err := NewServer(Config{
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 50,
			Burst:             100,
		},
	})
	require.NoError(t, err)
	require.NotNil(t, srv.rateLimiter)
	assert.InDelta(t, 50.0, srv.rateLimiter.rate, 0.0001)
	assert.InDelta(t, 100.0, srv.rateLimiter.burst, 0.0001)
}

func TestNewServer_GenerationDefaults(t *testing.T) {
	srv, err := NewServer(Config{
		Format:      "code39",
		ModuleWidth: 2,
		Height:      80,
		QuietZone:   4,
		Caption:     true,
		DPI:         200,
	})
	require.NoError(t, err)

	gen, err := srv.generatorForRequest(&EncodeRequest{})
	require.NoError(t, err)

	cfg := gen.Config()
	assert.Equal(t, "code39", cfg.Format.String())
	assert.Equal(t, 2, cfg.Render.ModuleWidth)
	assert.Equal(t, 80, cfg.Render.Height)
	assert.Equal(t, 4, cfg.Render.QuietZone)
	assert.True(t, cfg.Render.Caption)
	assert.InDelta(t, 2.0, cfg.Render.Scale, 0.0001)
}

func TestServer_GeneratorForRequest_Overrides(t *testing.T) {
	srv := newTestServer(t)

	quietZone := 0
	caption := false
	gen, err := srv.generatorForRequest(&EncodeRequest{
		Format:      "code39",
		ModuleWidth: 1,
		Height:      40,
		QuietZone:   &quietZone,
		Caption:     &caption,
		DPI:         300,
	})
	require.NoError(t, err)

	cfg := gen.Config()
	assert.Equal(t, "code39", cfg.Format.String())
	assert.Equal(t, 1, cfg.Render.ModuleWidth)
	assert.Equal(t, 40, cfg.Render.Height)
	assert.Equal(t, 0, cfg.Render.QuietZone)
	assert.False(t, cfg.Render.Caption)
	assert.InDelta(t, 3.0, cfg.Render.Scale, 0.0001)
}

func TestHealthResponse_Serialization(t *testing.T) {
	response := HealthResponse{
		Status:  "healthy",
		Version: "1.0.0",
		Time:    "2023-12-01T12:00:00Z",
	}

	data, err := json.Marshal(response)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"status":"healthy"`)
	assert.Contains(t, string(data), `"version":"1.0.0"`)
	assert.Contains(t, string(data), `"time":"2023-12-01T12:00:00Z"`)

	var unmarshaled HealthResponse
	err = json.Unmarshal(data, &unmarshaled)
	require.NoError(t, err)

	assert.Equal(t, response, unmarshaled)
}

func TestEncodeResponse_Serialization(t *testing.T) {
	tests := []struct {
		name     string
		response EncodeResponse
	}{
		{
			name: "success response",
			response: EncodeResponse{
				Success: true,
				Result: &EncodeResult{
					Value:       "1234",
					Format:      "codabar",
					Normalized:  "A1234A",
					DisplayText: "1234",
					Pattern:     "101100100101",
					Modules:     12,
				},
			},
		},
		{
			name: "error response",
			response: EncodeResponse{
				Success: false,
				Error:   "barcode: invalid input",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.response)
			require.NoError(t, err)

			var unmarshaled EncodeResponse
			err = json.Unmarshal(data, &unmarshaled)
			require.NoError(t, err)

			assert.Equal(t, tt.response.Success, unmarshaled.Success)
			if tt.response.Success {
				require.NotNil(t, unmarshaled.Result)
				assert.Equal(t, tt.response.Result.Pattern, unmarshaled.Result.Pattern)
			} else {
				assert.Nil(t, unmarshaled.Result)
				assert.Equal(t, tt.response.Error, unmarshaled.Error)
			}
		})
	}
}

// Test JSON field names match the documented API format.
func TestJSON_FieldNames(t *testing.T) {
	t.Run("EncodeResult field names", func(t *testing.T) {
		result := EncodeResult{
			Value:       "1234",
			Format:      "codabar",
			Normalized:  "A1234A",
			DisplayText: "1234",
			Pattern:     "1011",
			Modules:     4,
		}
		data, _ := json.Marshal(result)
		jsonStr := string(data)

		assert.Contains(t, jsonStr, `"pattern"`)
		assert.Contains(t, jsonStr, `"display_text"`)
		assert.Contains(t, jsonStr, `"normalized"`)
		assert.Contains(t, jsonStr, `"format"`)
	})

	t.Run("EncodeResponse field names", func(t *testing.T) {
		response := EncodeResponse{Success: true, Error: "test"}
		data, _ := json.Marshal(response)
		jsonStr := string(data)

		assert.Contains(t, jsonStr, `"success"`)
		assert.Contains(t, jsonStr, `"error"`)
	})
}

func TestServer_SetupRoutes(t *testing.T) {
	srv := newTestServer(t)

	mux := http.NewServeMux()
	srv.SetupRoutes(mux)

	t.Run("healthz", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("symbologies", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/symbologies", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("encode", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/encode", strings.NewReader(`{"value":"1234"}`))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var response EncodeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Success)
	})

	t.Run("metrics", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "bargo_http_requests_in_flight")
	})
}
