// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/plotwise/plotwise/internal/forecast"
	"github.com/plotwise/plotwise/internal/metrics"
)

// forecastRequest validates the /forecast query parameters. The horizon
// upper bound is enforced against config separately since it is not a
// compile-time constant.
type forecastRequest struct {
	Location string `validate:"required,min=2,max=120"`
	Years    int    `validate:"min=1"`
}

// Forecast fits the quadratic trend for a location and extrapolates it
// ?horizon= steps ahead (default from config; ?years= is accepted as an
// alias). Results are memoized per (location, horizon) pair: the dataset
// never changes within a process, so a cached forecast is always current.
func (h *Handler) Forecast(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	req := forecastRequest{
		Location: r.URL.Query().Get("location"),
		Years: getIntParam(r, "horizon",
			getIntParam(r, "years", h.config.Forecast.DefaultHorizon)),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	if req.Years > h.config.Forecast.MaxHorizon {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			fmt.Sprintf("years must be at most %d", h.config.Forecast.MaxHorizon), nil)
		return
	}

	cacheKey := fmt.Sprintf("%s|%d", req.Location, req.Years)
	if cached, ok := h.forecasts.Get(cacheKey); ok {
		metrics.RecordCacheAccess("forecast", true)
		respondSuccess(w, cached, started, true)
		return
	}
	metrics.RecordCacheAccess("forecast", false)

	history := h.data.ForLocation(req.Location)
	if len(history) == 0 {
		metrics.RecordForecast("unknown_location", time.Since(started))
		respondError(w, http.StatusNotFound, "NOT_FOUND",
			fmt.Sprintf("Unknown location %q", sanitizeLogValue(req.Location)), nil)
		return
	}

	result := forecast.Predict(history, req.Years)
	if result == nil {
		metrics.RecordForecast("insufficient_data", time.Since(started))
		respondError(w, http.StatusUnprocessableEntity, "INSUFFICIENT_DATA",
			fmt.Sprintf("Location %q has fewer than %d observations",
				sanitizeLogValue(req.Location), forecast.MinHistory), nil)
		return
	}

	metrics.RecordForecast("ok", time.Since(started))
	h.forecasts.Add(cacheKey, result)
	respondSuccess(w, result, started, false)
}

// roiRequest validates the /roi query parameters.
type roiRequest struct {
	Location string  `validate:"required,min=2,max=120"`
	Amount   float64 `validate:"gt=0"`
	Years    int     `validate:"min=1"`
}

// ROI projects the value of a lump investment in a location over time.
// The investment is treated as a proportional stake at the current rate;
// area may come out fractional.
func (h *Handler) ROI(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	req := roiRequest{
		Location: r.URL.Query().Get("location"),
		Amount:   getFloatParam(r, "amount", 0),
		Years:    getIntParam(r, "years", h.config.Forecast.DefaultHorizon),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	if req.Years > h.config.Forecast.MaxHorizon {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			fmt.Sprintf("years must be at most %d", h.config.Forecast.MaxHorizon), nil)
		return
	}

	history := h.data.ForLocation(req.Location)
	if len(history) == 0 {
		respondError(w, http.StatusNotFound, "NOT_FOUND",
			fmt.Sprintf("Unknown location %q", sanitizeLogValue(req.Location)), nil)
		return
	}

	result := forecast.ProjectROI(history, req.Amount, req.Years)
	if result == nil {
		respondError(w, http.StatusUnprocessableEntity, "INSUFFICIENT_DATA",
			fmt.Sprintf("Location %q has fewer than %d observations",
				sanitizeLogValue(req.Location), forecast.MinHistory), nil)
		return
	}

	respondSuccess(w, result, started, false)
}

// Compare produces a side-by-side summary for ?locations=a;b;c (repeated
// parameters also work). Unknown locations are skipped rather than failing
// the whole comparison.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	locations := parseListParam(r.URL.Query()["locations"])
	if len(locations) < 2 {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"locations must name at least 2 semicolon-separated locations", nil)
		return
	}
	if len(locations) > h.config.API.MaxCompare {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			fmt.Sprintf("locations must name at most %d locations", h.config.API.MaxCompare), nil)
		return
	}

	rows := forecast.Compare(h.data, h.registry, locations)
	respondSuccess(w, rows, started, false)
}
