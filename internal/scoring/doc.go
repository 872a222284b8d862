// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

// Package scoring derives qualitative assessments for a location:
// development potential, legal and regulatory risk, and area-level
// hazard risk. All scores are deterministic functions of registry
// tables and the latest observation, so repeated calls for the same
// location always agree.
package scoring
