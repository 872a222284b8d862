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
	"github.com/plotwise/plotwise/internal/models"
)

const apiVersion = "1.0.0"

// Health handles health check requests. The service has no external
// dependencies once the dataset is generated, so health reduces to
// process liveness plus the dataset dimensions.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	health := models.HealthStatus{
		Status:       "healthy",
		Version:      apiVersion,
		Locations:    len(h.registry.Locations()),
		States:       len(h.registry.States()),
		Observations: len(h.data.All()),
		SeriesSpan: fmt.Sprintf("%d-%d",
			h.config.Series.StartYear, h.config.Series.EndYear),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthLive is the liveness probe: the process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     map[string]string{"status": "alive"},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthReady is the readiness probe: ready once the dataset exists. The
// dataset is built before the listener starts, so this only reports not
// ready if wiring broke.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.data == nil || len(h.data.All()) == 0 {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY",
			"Dataset not generated", nil)
		return
	}
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     map[string]string{"status": "ready"},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// Locations lists all known location profiles, optionally filtered by
// the ?state= query parameter.
func (h *Handler) Locations(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	locations := h.registry.Locations()

	if state := r.URL.Query().Get("state"); state != "" {
		filtered := locations[:0:0]
		for _, loc := range locations {
			if loc.State == state {
				filtered = append(filtered, loc)
			}
		}
		locations = filtered
	}

	respondSuccess(w, locations, started, false)
}

// States lists all states and union territories present in the registry.
func (h *Handler) States(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	respondSuccess(w, h.registry.States(), started, false)
}

// StateCities lists the cities of one state, from the {state} path value.
func (h *Handler) StateCities(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	state := r.PathValue("state")
	cities := h.registry.CitiesInState(state)
	if len(cities) == 0 {
		respondError(w, http.StatusNotFound, "NOT_FOUND",
			fmt.Sprintf("No cities found for state %q", sanitizeLogValue(state)), nil)
		return
	}

	respondSuccess(w, cities, started, false)
}

// seriesRequest validates the /series query parameters.
type seriesRequest struct {
	Location string `validate:"omitempty,min=2,max=120"`
}

// Series returns the yearly observation series: one location's rows when
// ?location= is given, the entire table otherwise. The full table runs to
// thousands of rows; the compression middleware keeps that cheap.
func (h *Handler) Series(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	req := seriesRequest{Location: r.URL.Query().Get("location")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	if req.Location == "" {
		respondSuccess(w, h.data.All(), started, false)
		return
	}

	history := h.data.ForLocation(req.Location)
	if len(history) == 0 {
		respondError(w, http.StatusNotFound, "NOT_FOUND",
			fmt.Sprintf("Unknown location %q", sanitizeLogValue(req.Location)), nil)
		return
	}

	respondSuccess(w, history, started, false)
}

// Insights summarizes one location's history, from the {location} path value.
func (h *Handler) Insights(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	location := r.PathValue("location")
	history := h.data.ForLocation(location)
	if len(history) == 0 {
		respondError(w, http.StatusNotFound, "NOT_FOUND",
			fmt.Sprintf("Unknown location %q", sanitizeLogValue(location)), nil)
		return
	}

	respondSuccess(w, forecast.Insights(history), started, false)
}
