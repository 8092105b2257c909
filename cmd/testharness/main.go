// Command testharness exposes the same engine the D-Bus daemon runs,
// wrapped in a small HTTP API — the "test harness" host variant spec.md §1
// names for exercising the engine without a real Fcitx5 frontend.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/username/goviet-ime/internal/hostapi"
)

func main() {
	cfg := hostapi.Load()
	hostapi.InitLogging(cfg.LogLevel)

	srv := newServer()
	router := chi.NewRouter()
	router.Use(recoverer)
	router.Use(requestID)
	router.Use(requestLogger)
	router.Use(rateLimiter(cfg.RateLimitRPS))

	router.Get("/health", srv.handleHealth)
	router.Get("/version", srv.handleVersion)
	router.Route("/config", func(r chi.Router) {
		r.Get("/", srv.handleConfig)
		r.Post("/", srv.handleConfig)
	})
	router.Post("/process-key", srv.handleProcessKey)

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("test harness listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
}
