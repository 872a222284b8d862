// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/plotwise/plotwise/internal/metrics"
	"github.com/plotwise/plotwise/internal/models"
	"github.com/plotwise/plotwise/internal/scoring"
)

// scoringRequest validates the location parameter shared by all three
// scoring endpoints.
type scoringRequest struct {
	Location string `validate:"required,min=2,max=120"`
}

// latestFor resolves the newest observation for a query location,
// writing the error response itself when the location is unknown.
func (h *Handler) latestFor(w http.ResponseWriter, r *http.Request) (models.Observation, bool) {
	req := scoringRequest{Location: r.URL.Query().Get("location")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return models.Observation{}, false
	}

	latest, ok := h.data.Latest(req.Location)
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND",
			fmt.Sprintf("Unknown location %q", sanitizeLogValue(req.Location)), nil)
		return models.Observation{}, false
	}

	return latest, true
}

// Development scores a location's development outlook from its latest
// observation and zone profile.
func (h *Handler) Development(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	latest, ok := h.latestFor(w, r)
	if !ok {
		return
	}

	metrics.ScoringRequests.WithLabelValues("development").Inc()
	respondSuccess(w, scoring.ScoreDevelopment(h.registry, latest), started, false)
}

// LegalRisk scores legal and regulatory risk. Callers either name a
// known location (state and zone resolve from its latest observation) or
// pass ?state= and ?zone= directly for what-if queries. Unknown states
// resolve to a fallback law profile rather than erroring.
func (h *Handler) LegalRisk(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	location := r.URL.Query().Get("location")
	state := r.URL.Query().Get("state")
	zone := r.URL.Query().Get("zone")

	if location != "" {
		latest, ok := h.data.Latest(location)
		if !ok {
			respondError(w, http.StatusNotFound, "NOT_FOUND",
				fmt.Sprintf("Unknown location %q", sanitizeLogValue(location)), nil)
			return
		}
		if state == "" {
			state = latest.State
		}
		if zone == "" {
			zone = latest.ZoneType
		}
	} else if state == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"either location or state is required", nil)
		return
	}

	metrics.ScoringRequests.WithLabelValues("legal").Inc()
	profile := scoring.ScoreLegalRisk(h.registry, state, zone, location)
	respondSuccess(w, profile, started, false)
}

// AreaRisk evaluates the five area sub-risks for a location.
func (h *Handler) AreaRisk(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	latest, ok := h.latestFor(w, r)
	if !ok {
		return
	}

	metrics.ScoringRequests.WithLabelValues("area").Inc()
	report := scoring.ScoreAreaRisk(h.registry,
		latest.Location, latest.State, latest.ZoneType,
		latest.InfraScore, latest.Latitude, latest.Longitude)
	respondSuccess(w, report, started, false)
}
