// Package main provides the entry point for the Shortlink web front end:
// the user-facing service that serves the shorten form, the per-user link
// dashboard and the per-link analytics page, talking to the external
// shortening/analytics backend over HTTP.
package main

import (
	"Shortlink-Web/internal/apiclient"
	"Shortlink-Web/internal/config"
	httpHandler "Shortlink-Web/internal/handler/http"
	"Shortlink-Web/internal/identity"
	"Shortlink-Web/internal/view"
	"Shortlink-Web/pkg/logger"
	"context"
	lg "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)
	defer func() {
		if err := log.Sync(); err != nil {
			lg.Printf("ERROR: failed to sync zap logger: %v\n", err)
		}
	}()

	log.Info("starting shortlink web front end",
		zap.String("env", cfg.Env),
		zap.String("backend", cfg.Backend.BaseURL))

	// Backend API client
	backend := apiclient.New(cfg.Backend.BaseURL, cfg.Backend.RequestTimeout, log)

	// Page renderer from embedded templates
	renderer, err := view.NewRenderer(log)
	if err != nil {
		log.Fatal("failed to initialize renderer", zap.Error(err))
	}

	// Identity resolution (anonymous cookie / Google credential)
	resolver := identity.NewResolver(&identity.Config{
		AnonymousCookie:  cfg.Identity.AnonymousCookie,
		CredentialCookie: cfg.Identity.CredentialCookie,
		AnonymousTTL:     cfg.Identity.AnonymousTTL,
	}, log)
	middleware := identity.NewMiddleware(resolver, log)

	// HTTP server with pages, JSON endpoints and probes
	server := httpHandler.NewServer(
		backend,
		renderer,
		middleware,
		cfg.Identity.GoogleClientID,
		cfg.Identity.CredentialCookie,
		log,
	)

	httpServer := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      server.SetupRoutes(),
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	log.Info("starting HTTP server", zap.String("address", cfg.HTTPServer.Address))

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down shortlink web front end...")

	// Gracefully stop HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown HTTP server", zap.Error(err))
	} else {
		log.Info("HTTP server stopped")
	}
}
