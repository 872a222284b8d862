// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package scoring

import (
	"testing"

	"github.com/plotwise/plotwise/internal/models"
)

func TestScoreDevelopment_Weighting(t *testing.T) {
	t.Parallel()

	reg := fixtureRegistry()
	latest := models.Observation{
		Location:             "Alpha, Stateville",
		ZoneType:             "Tier-2 City",
		InfraScore:           90,
		DevelopmentPotential: 90,
		AnnualGrowthPct:      12,
		RatePerSqft:          1800,
	}

	score := ScoreDevelopment(reg, latest)
	// 90*0.3 + 90*0.3 + min(96,100)*0.2 + 1.0*50*0.2 = 83.2
	if score.OverallScore != 83.2 {
		t.Errorf("OverallScore = %v, want 83.2", score.OverallScore)
	}
	if score.Outlook != "Excellent" {
		t.Errorf("Outlook = %q, want Excellent", score.Outlook)
	}
	if score.GrowthMultiplier != 1.0 || score.RiskLevel != "Medium" {
		t.Errorf("zone factor not carried: %v / %q", score.GrowthMultiplier, score.RiskLevel)
	}
	if score.CurrentRate != 1800 || score.GrowthRate != 12 {
		t.Errorf("latest observation fields not carried: %+v", score)
	}
}

func TestScoreDevelopment_GrowthCapped(t *testing.T) {
	t.Parallel()

	reg := fixtureRegistry()
	base := models.Observation{ZoneType: "Tier-2 City", InfraScore: 50, DevelopmentPotential: 50}

	atCap := base
	atCap.AnnualGrowthPct = 12.5 // 12.5*8 = 100, exactly at the cap
	beyond := base
	beyond.AnnualGrowthPct = 20

	if ScoreDevelopment(reg, atCap).OverallScore != ScoreDevelopment(reg, beyond).OverallScore {
		t.Error("growth contribution should cap at 100")
	}
}

func TestScoreDevelopment_OutlookBands(t *testing.T) {
	t.Parallel()

	reg := fixtureRegistry()

	tests := []struct {
		name    string
		infra   int
		devPot  int
		growth  float64
		outlook string
	}{
		{"excellent", 90, 90, 12, "Excellent"},
		{"good", 70, 60, 8, "Good"},
		{"moderate", 50, 50, 5, "Moderate"},
		{"below average", 30, 30, 2, "Below Average"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ScoreDevelopment(reg, models.Observation{
				ZoneType:             "Tier-2 City",
				InfraScore:           tt.infra,
				DevelopmentPotential: tt.devPot,
				AnnualGrowthPct:      tt.growth,
			})
			if got.Outlook != tt.outlook {
				t.Errorf("Outlook = %q (score %v), want %q", got.Outlook, got.OverallScore, tt.outlook)
			}
		})
	}
}

func TestScoreDevelopment_UnknownZoneFallsBack(t *testing.T) {
	t.Parallel()

	reg := fixtureRegistry()
	got := ScoreDevelopment(reg, models.Observation{ZoneType: "Moon Base", InfraScore: 50, DevelopmentPotential: 50, AnnualGrowthPct: 5})
	// Fallback factor is the Tier-2 City archetype.
	if got.GrowthMultiplier != 1.0 {
		t.Errorf("GrowthMultiplier = %v, want fallback 1.0", got.GrowthMultiplier)
	}
}
