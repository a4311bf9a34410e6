package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/ffaiyaz23/antisell/internal/config"
	"github.com/ffaiyaz23/antisell/internal/metrics"
)

type Server struct {
	httpServer *http.Server
}

// NewRouter builds the route table. Exposed for tests.
func NewRouter(mod Moderator, presence config.Presence) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)
	r.Use(metrics.Middleware)
	r.Use(recoverMiddleware)

	r.Get("/", HandleStatus(mod))
	r.Get("/health", HandleHealth(presence))
	r.Post("/webhook", HandleWebhook(mod))
	r.Post("/test", HandleTestDelete(mod))
	r.Handle("/metrics", promhttp.Handler())

	return otelhttp.NewHandler(r, "antisell.http")
}

// NewServer creates a new Server instance listening on addr.
func NewServer(addr string, mod Moderator, presence config.Presence) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(mod, presence),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start blocks serving HTTP until Stop is called.
func (s *Server) Start() error {
	zap.S().Infow("server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
