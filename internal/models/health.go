// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package models

// HealthStatus reports service health and dataset dimensions.
type HealthStatus struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Locations     int     `json:"locations"`
	States        int     `json:"states"`
	Observations  int     `json:"observations"`
	SeriesSpan    string  `json:"series_span"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}
