package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gen3ops/dictops/pkg/domain/model"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// config holds internal HTTP server configuration
type config struct {
	addr string
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// Server serves a bundled dictionary for local development.
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server exposing the given dictionary bundle.
func NewServer(
	ctx context.Context,
	bundle model.Bundle,
	opts ...Option,
) (*Server, error) {
	cfg := &config{
		addr: "localhost:8080",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	// Health check
	router.Get("/health", handleHealth)

	// Dictionary endpoints
	dict := NewDictionaryHandler(bundle)
	router.Get("/schema.json", dict.HandleBundle)
	router.Get("/schema/{name}", dict.HandleSchema)

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
