// Package api exposes the PNG container codec over a small REST surface:
// upload a buffer, get back decoded metadata and a chunk listing, or apply
// a palette edit and receive the re-exported bytes.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StartServer starts the HTTP server with all routes configured
func StartServer(config ServerConfig) error {
	// Initialize metrics
	metrics := NewMetrics()

	server := NewServer(config, metrics)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API key authentication middleware for protected routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiKeyMiddleware(config.APIKey))

		// Health check
		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))

		// Codec operations
		r.Post("/inspect", metrics.InstrumentHandler("POST", "/api/v1/inspect", server.handleInspect))
		r.Post("/palette/shift", metrics.InstrumentHandler("POST", "/api/v1/palette/shift", server.handlePaletteShift))
	})

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	fmt.Printf("Starting pngbox inspection API on %s\n", addr)
	fmt.Printf("Metrics available at: http://%s/metrics\n", addr)
	return http.ListenAndServe(addr, r)
}
