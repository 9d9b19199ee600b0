package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MeKo-Tech/bargo/internal/server"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server for the barcode encode API",
	Long: `Start an HTTP server that provides REST API endpoints for barcode encoding.

The server provides the following endpoints:
  POST /encode        - Encode a value (JSON result or PNG image)
  GET  /encode/stream - WebSocket streaming encode
  GET  /symbologies   - List supported symbologies
  GET  /healthz       - Health check endpoint
  GET  /metrics       - Prometheus metrics

Examples:
  bargo serve
  bargo serve --port 8080
  bargo serve --host 0.0.0.0 --port 3000 --rate-limit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Get configuration from centralized system (includes CLI flags, config file, env vars, and defaults)
		cfg := GetConfig()

		// Extract server configuration with CLI flag overrides
		host := cfg.Server.Host
		if cmd.Flags().Changed("host") {
			host, _ = cmd.Flags().GetString("host")
		}

		port := cfg.Server.Port
		if cmd.Flags().Changed("port") {
			port, _ = cmd.Flags().GetInt("port")
		}

		corsOrigin := cfg.Server.CORSOrigin
		if cmd.Flags().Changed("cors-origin") {
			corsOrigin, _ = cmd.Flags().GetString("cors-origin")
		}

		maxBodyKB := cfg.Server.MaxBodyKB
		if cmd.Flags().Changed("max-body-kb") {
			maxBodyKB, _ = cmd.Flags().GetInt("max-body-kb")
		}

		timeout := cfg.Server.TimeoutSec
		if cmd.Flags().Changed("timeout") {
			timeout, _ = cmd.Flags().GetInt("timeout")
		}

		shutdownTimeout := cfg.Server.ShutdownTimeout
		if cmd.Flags().Changed("shutdown-timeout") {
			shutdownTimeout, _ = cmd.Flags().GetInt("shutdown-timeout")
		}

		// Extract rate limiting configuration
		rateLimitEnabled, _ := cmd.Flags().GetBool("rate-limit")

		rateLimitRPS := cfg.Server.RateLimitRPS
		if cmd.Flags().Changed("rate-limit-rps") {
			rateLimitRPS, _ = cmd.Flags().GetFloat64("rate-limit-rps")
		}

		rateLimitBurst := cfg.Server.RateLimitBurst
		if cmd.Flags().Changed("rate-limit-burst") {
			rateLimitBurst, _ = cmd.Flags().GetInt("rate-limit-burst")
		}

		// Extract encoding defaults with CLI flag overrides
		symbology := cfg.Format
		if cmd.Flags().Changed("type") {
			symbology, _ = cmd.Flags().GetString("type")
		}

		// Validate port number
		if port < 1 || port > 65535 {
			return fmt.Errorf("invalid port number: %d (must be between 1 and 65535)", port)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Create server configuration
		serverConfig := server.Config{
			CORSOrigin:  corsOrigin,
			MaxBodyKB:   maxBodyKB,
			Format:      symbology,
			ModuleWidth: cfg.Generate.ModuleWidth,
			Height:      cfg.Generate.Height,
			QuietZone:   cfg.Generate.QuietZone,
			Caption:     cfg.Generate.Caption,
			DPI:         cfg.Generate.DPI,
			RateLimit: server.RateLimitConfig{
				Enabled:           rateLimitEnabled,
				RequestsPerSecond: rateLimitRPS,
				Burst:             rateLimitBurst,
			},
		}

		// Initialize server
		encodeServer, err := server.NewServer(serverConfig)
		if err != nil {
			return fmt.Errorf("failed to initialize server: %w", err)
		}

		mux := http.NewServeMux()
		encodeServer.SetupRoutes(mux)

		httpServer := &http.Server{
			Addr:              fmt.Sprintf("%s:%d", host, port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       time.Duration(timeout) * time.Second,
			WriteTimeout:      time.Duration(timeout) * time.Second,
		}

		go func() {
			slog.Info("Starting encode server", "host", host, "port", port, "symbology", symbology)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				slog.Error("Server error", "error", err)
				cancel()
			}
		}()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

		select {
		case sig := <-sigChan:
			slog.Info("Received shutdown signal", "signal", sig.String())
		case <-ctx.Done():
			slog.Info("Context cancelled, initiating shutdown")
		}

		slog.Info("Starting graceful shutdown", "timeout", fmt.Sprintf("%ds", shutdownTimeout))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(shutdownTimeout)*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("HTTP server shutdown error", "error", err)
		} else {
			slog.Info("HTTP server shutdown completed")
		}

		slog.Info("Graceful shutdown completed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("host", "H", "localhost", "server host")
	serveCmd.Flags().IntP("port", "p", 8080, "server port")
	serveCmd.Flags().String("cors-origin", "*", "CORS allowed origins")
	serveCmd.Flags().Int("max-body-kb", 64, "maximum request body size in KB")
	serveCmd.Flags().Int("timeout", 30, "request timeout in seconds")
	serveCmd.Flags().Int("shutdown-timeout", 10, "shutdown timeout in seconds")
	// Encoding defaults applied when a request leaves options unset
	serveCmd.Flags().StringP("type", "t", "codabar", "default barcode symbology")
	// Rate limiting flags
	serveCmd.Flags().Bool("rate-limit", false, "enable rate limiting")
	serveCmd.Flags().Float64("rate-limit-rps", 50, "sustained requests per second per client")
	serveCmd.Flags().Int("rate-limit-burst", 100, "maximum burst size per client")
}
