// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/plotwise/plotwise/internal/api"
	"github.com/plotwise/plotwise/internal/config"
	"github.com/plotwise/plotwise/internal/logging"
	"github.com/plotwise/plotwise/internal/metrics"
	"github.com/plotwise/plotwise/internal/registry"
	"github.com/plotwise/plotwise/internal/series"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Msg("Starting PlotWise")

	reg := registry.New()
	logging.Info().
		Int("locations", len(reg.Locations())).
		Int("states", len(reg.States())).
		Msg("Registry loaded")

	data := series.Generate(reg, series.Config{
		Seed:      cfg.Series.Seed,
		StartYear: cfg.Series.StartYear,
		EndYear:   cfg.Series.EndYear,
	})
	metrics.DatasetLocations.Set(float64(len(reg.Locations())))
	metrics.DatasetObservations.Set(float64(len(data.All())))
	logging.Info().
		Int64("seed", cfg.Series.Seed).
		Int("start_year", cfg.Series.StartYear).
		Int("end_year", cfg.Series.EndYear).
		Int("observations", len(data.All())).
		Msg("Historical series generated")

	handler := api.NewHandler(cfg, reg, data)
	mw := api.NewChiMiddleware(&api.ChiMiddlewareConfig{
		CORSAllowedOrigins:   cfg.API.CORSOrigins,
		CORSAllowedMethods:   []string{"GET", "OPTIONS"},
		CORSAllowedHeaders:   []string{"Content-Type"},
		CORSExposedHeaders:   []string{"X-Request-ID", "ETag"},
		CORSAllowCredentials: false,
		CORSMaxAge:           86400,
		RateLimitRequests:    cfg.API.RateLimitReqs,
		RateLimitWindow:      cfg.API.RateLimitWindow,
	})
	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server error")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}

	logging.Info().Msg("Application stopped gracefully")
}
