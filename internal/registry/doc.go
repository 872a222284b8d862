// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

// Package registry holds the static reference data the analytics engine is
// built on: location profiles, zone archetype factors, state land-law
// profiles, and the area-risk lookup tables with their city-level override
// maps.
//
// All tables are loaded once at startup into an immutable Registry and are
// safe for concurrent reads. Lookups never fail: unknown keys resolve to a
// designated default entry or a numeric constant, and the substitution is
// logged where it could hide a caller bug.
//
// The two-tier lookup (state default + city exception) reflects that legal
// and environmental attributes are nominally state-scoped while sub-regions
// deviate; resolveScore/resolveBool implement that precedence chain in one
// place for every consumer.
package registry
