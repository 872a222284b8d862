// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package forecast

import (
	"github.com/plotwise/plotwise/internal/models"
	"github.com/plotwise/plotwise/internal/registry"
)

// compareHorizon is the forecast horizon used for the predicted-rate column.
const compareHorizon = 5

// History is the read interface Compare needs from the dataset.
type History interface {
	ForLocation(name string) []models.Observation
}

// Compare builds one summary row per resolvable location. Locations with no
// historical data are silently skipped, so a partially valid list yields a
// partial result rather than an error. The predicted-rate column is omitted
// (nil) when a location has too little history to forecast.
func Compare(data History, reg *registry.Registry, locations []string) []models.ComparisonRow {
	rows := make([]models.ComparisonRow, 0, len(locations))
	for _, name := range locations {
		history := data.ForLocation(name)
		if len(history) == 0 {
			continue
		}

		earliest := history[0]
		latest := history[len(history)-1]
		years := latest.Year - earliest.Year
		if years < 1 {
			years = 1
		}

		factor := reg.Zone(latest.ZoneType)

		var predicted *float64
		if fc := Predict(history, compareHorizon); fc != nil {
			v := fc.Steps[len(fc.Steps)-1].PredictedRate
			predicted = &v
		}

		rows = append(rows, models.ComparisonRow{
			Location:         name,
			CurrentRate:      latest.RatePerSqft,
			CAGRPct:          round2(cagr(earliest.RatePerSqft, latest.RatePerSqft, years)),
			TotalGrowthPct:   round2((latest.RatePerSqft - earliest.RatePerSqft) / earliest.RatePerSqft * 100),
			ZoneType:         latest.ZoneType,
			InfraScore:       latest.InfraScore,
			DevPotential:     latest.DevelopmentPotential,
			Risk:             factor.RiskLevel,
			Predicted5YrRate: predicted,
			GrowthMultiplier: factor.GrowthMultiplier,
		})
	}
	return rows
}
