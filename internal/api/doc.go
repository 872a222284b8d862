// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

/*
Package api provides the HTTP surface: chi routing, middleware wiring,
and handlers for every endpoint under /api/v1.

Endpoints:

	GET /api/v1/health                          service health and dataset dimensions
	GET /api/v1/health/live                     liveness probe
	GET /api/v1/health/ready                    readiness probe
	GET /api/v1/locations                       location profiles (?state= filter)
	GET /api/v1/locations/{location}/insights   historical summary for one location
	GET /api/v1/states                          all states and union territories
	GET /api/v1/states/{state}/cities           cities of one state
	GET /api/v1/series?location=                yearly observations (all rows without ?location=)
	GET /api/v1/forecast?location=&horizon=     fitted trend extrapolation
	GET /api/v1/roi?location=&amount=&years=    investment projection
	GET /api/v1/compare?locations=a;b           side-by-side location summary
	GET /api/v1/development?location=           development outlook score
	GET /api/v1/legal-risk?location=            legal risk profile (or ?state=&zone= directly)
	GET /api/v1/area-risk?location=             flood/water/layout/dispute/distance risks
	GET /metrics                                Prometheus metrics

Every successful response uses the models.APIResponse envelope with
compute-time metadata. Errors carry a structured code: VALIDATION_ERROR
for bad input, NOT_FOUND for unknown locations or states, and
INSUFFICIENT_DATA when a series is too short to fit.

Registry lookups inside the scoring endpoints never error: unknown
states and zone types resolve to documented fallback profiles, so a 404
here always means the location itself is absent from the dataset.
*/
package api
