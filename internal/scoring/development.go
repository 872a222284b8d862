// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package scoring

import (
	"math"

	"github.com/plotwise/plotwise/internal/models"
	"github.com/plotwise/plotwise/internal/registry"
)

// Development outlook weights. Infrastructure and development potential
// carry most of the score; growth is capped so hyper-growth corridors do
// not saturate it.
const (
	devWeightInfra      = 0.3
	devWeightPotential  = 0.3
	devWeightGrowth     = 0.2
	devWeightMultiplier = 0.2
)

// ScoreDevelopment combines a location's latest observation with its zone
// factor into a 0-100 development outlook. Unknown zone types resolve to
// the registry's default factor, so scoring never fails.
func ScoreDevelopment(reg *registry.Registry, latest models.Observation) models.DevelopmentScore {
	factor := reg.Zone(latest.ZoneType)

	overall := float64(latest.InfraScore)*devWeightInfra +
		float64(latest.DevelopmentPotential)*devWeightPotential +
		math.Min(latest.AnnualGrowthPct*8, 100)*devWeightGrowth +
		factor.GrowthMultiplier*50*devWeightMultiplier

	var outlook string
	switch {
	case overall >= 75:
		outlook = "Excellent"
	case overall >= 60:
		outlook = "Good"
	case overall >= 45:
		outlook = "Moderate"
	default:
		outlook = "Below Average"
	}

	return models.DevelopmentScore{
		Location:             latest.Location,
		ZoneType:             latest.ZoneType,
		Description:          factor.Description,
		GrowthMultiplier:     factor.GrowthMultiplier,
		RiskLevel:            factor.RiskLevel,
		KeyDrivers:           factor.KeyDrivers,
		Forecast:             factor.Forecast,
		InfraScore:           latest.InfraScore,
		DevelopmentPotential: latest.DevelopmentPotential,
		OverallScore:         math.Round(overall*10) / 10,
		Outlook:              outlook,
		CurrentRate:          latest.RatePerSqft,
		GrowthRate:           latest.AnnualGrowthPct,
	}
}
