// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package api

import (
	"time"

	"github.com/plotwise/plotwise/internal/cache"
	"github.com/plotwise/plotwise/internal/config"
	"github.com/plotwise/plotwise/internal/logging"
	"github.com/plotwise/plotwise/internal/models"
	"github.com/plotwise/plotwise/internal/registry"
	"github.com/plotwise/plotwise/internal/series"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: shared helper functions
//   - handlers_core.go: health, location, and series endpoints
//   - handlers_forecast.go: forecast, ROI, and comparison endpoints
//   - handlers_scoring.go: development, legal-risk, and area-risk endpoints
type Handler struct {
	config    *config.Config
	registry  *registry.Registry
	data      *series.Dataset
	forecasts *cache.LRU[*models.Forecast]
	startTime time.Time
}

// NewHandler creates a new API handler with all required dependencies.
//
// The dataset is generated once at startup and immutable afterwards, so
// every handler here is a pure read: the only mutable state is the
// forecast memoization cache.
func NewHandler(cfg *config.Config, reg *registry.Registry, data *series.Dataset) *Handler {
	return &Handler{
		config:    cfg,
		registry:  reg,
		data:      data,
		forecasts: cache.New[*models.Forecast](cfg.Cache.Capacity, cfg.Cache.TTL),
		startTime: time.Now(),
	}
}

// ClearCache invalidates all memoized forecast results.
func (h *Handler) ClearCache() {
	if h.forecasts != nil {
		h.forecasts.Clear()
		logging.Info().Msg("Forecast cache cleared")
	}
}
