// Package preview serves a previously built artifact over HTTP so picker
// frontends can be developed against real data without rebuilding.
package preview

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 5 * time.Second

// Server exposes the artifact, a health check, and Prometheus metrics.
type Server struct {
	addr         string
	artifactPath string
}

// NewServer creates a preview server for the artifact at artifactPath.
func NewServer(addr, artifactPath string) *Server {
	return &Server{addr: addr, artifactPath: artifactPath}
}

// Router builds the HTTP routes. Exposed separately so tests can drive
// the handlers without binding a port.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/emojis.json", s.handleArtifact)
	r.Get("/healthz", handleHealthz)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	if _, err := os.Stat(s.artifactPath); err != nil {
		return fmt.Errorf("artifact %s not found, run a build first: %w", s.artifactPath, err)
	}

	srv := &http.Server{Addr: s.addr, Handler: s.Router()}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("address", s.addr).Str("artifact", s.artifactPath).Msg("Starting preview server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("preview server: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info().Msg("Shutting down preview server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// handleArtifact reads the artifact from disk on every request, so a
// rebuild is picked up without restarting the server.
func (s *Server) handleArtifact(w http.ResponseWriter, _ *http.Request) {
	data, err := os.ReadFile(s.artifactPath)
	if err != nil {
		if os.IsNotExist(err) {
			http.Error(w, "artifact not found, run a build first", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("path", s.artifactPath).Msg("Failed to read artifact")
		http.Error(w, "failed to read artifact", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write(data)
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}
