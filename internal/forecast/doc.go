// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

// Package forecast fits per-location land-rate trends and derives
// projections from them: rate forecasts with widening confidence bands,
// investment ROI tables, historical insights, and multi-location
// comparison rows.
//
// The model is a degree-2 polynomial fit by ordinary least squares over
// the full history. Every function is pure and deterministic given its
// inputs; insufficient history (fewer than MinHistory points) is signaled
// by a nil result, never an error.
package forecast
