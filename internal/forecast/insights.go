// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package forecast

import (
	"math"

	"github.com/plotwise/plotwise/internal/models"
)

// Insights summarizes a location's historical series: growth between the
// first and last observation plus the latest derived scores. Returns nil
// for an empty history.
func Insights(history []models.Observation) *models.LocationInsights {
	if len(history) == 0 {
		return nil
	}

	earliest := history[0]
	latest := history[len(history)-1]

	totalGrowth := (latest.RatePerSqft - earliest.RatePerSqft) / earliest.RatePerSqft * 100
	years := latest.Year - earliest.Year
	if years < 1 {
		years = 1
	}

	return &models.LocationInsights{
		CurrentRate:          latest.RatePerSqft,
		InitialRate:          earliest.RatePerSqft,
		TotalGrowthPct:       round2(totalGrowth),
		AvgAnnualGrowth:      round2(totalGrowth / float64(years)),
		ZoneType:             latest.ZoneType,
		InfraScore:           latest.InfraScore,
		DevelopmentPotential: latest.DevelopmentPotential,
		AmenitiesScore:       latest.AmenitiesScore,
		TransportScore:       latest.TransportScore,
		CAGRPct:              round2(cagr(earliest.RatePerSqft, latest.RatePerSqft, years)),
	}
}

// cagr is the compound annual growth rate in percent over years.
func cagr(start, end float64, years int) float64 {
	return (math.Pow(end/start, 1/float64(years)) - 1) * 100
}
