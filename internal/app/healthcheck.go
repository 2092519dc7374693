// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// healthHandler reports OK and the fingerprint of the current plan, if any.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	if p := a.LastPlan(); p != nil {
		w.Header().Set("X-Plan-Fingerprint", p.Fingerprint)
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// startHealthcheckServer initializes and runs the health check HTTP server.
func (a *App) startHealthcheckServer(ctx context.Context) {
	if a.config.HealthcheckPort <= 0 {
		a.logger.Debug("Health check server not started: disabled")
		return
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.healthHandler)

	addr := fmt.Sprintf(":%d", a.config.HealthcheckPort)
	a.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	srv := a.httpServer
	go func() {
		a.logger.Info("Health check server starting", "address", fmt.Sprintf("http://localhost%s/health", addr))
		// ListenAndServe returns ErrServerClosed on graceful shutdown.
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("Health check server failed unexpectedly", "error", err)
		}
	}()
}

func (a *App) closeHealthcheckServer(ctx context.Context) error {
	if a.httpServer == nil {
		return nil
	}

	// ctx is usually already cancelled here.
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	a.logger.Info("Shutting down health check server...")
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Health check server shutdown failed", "error", err)
		return err
	}
	a.logger.Debug("Health check server shut down gracefully.")
	return nil
}
