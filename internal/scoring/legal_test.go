// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package scoring

import (
	"testing"

	"github.com/plotwise/plotwise/internal/registry"
)

func fixtureRegistry() *registry.Registry {
	return registry.FromTables(registry.Tables{
		Locations: []registry.LocationProfile{
			{Name: "Alpha, Stateville", City: "Alpha", State: "Stateville", BaseRate: 1000, ZoneType: "Tier-2 City", InfraScore: 60},
		},
		Zones: map[string]registry.ZoneFactor{
			"Tier-2 City": {Description: "Established mid-size city", GrowthMultiplier: 1.0, RiskLevel: "Medium"},
			"Port City":   {GrowthMultiplier: 1.2, RiskLevel: "Low-Medium"},
		},
		StateLaws: map[string]registry.StateLawProfile{
			"Delhi": {
				RERAActive: true, LandCeilingAct: true, AgriConversionEase: "Moderate",
				StampDutyPct: 6, RegistrationPct: 1, NRIAllowed: true,
			},
			"Stateville": {
				RERAActive: true, LandCeilingAct: true, AgriConversionEase: "Easy",
				StampDutyPct: 5, RegistrationPct: 1, NRIAllowed: true, CoastalZone: true,
			},
			"Riskland": {
				RERAActive: false, LandCeilingAct: false, AgriConversionEase: "Difficult",
				StampDutyPct: 8, RegistrationPct: 1, NRIAllowed: false,
				TribalRestriction: true, CoastalZone: true,
			},
		},
		CoastalOverride: map[string]bool{"Inland, Stateville": false},
		TribalOverride:  map[string]bool{"TribalTown, Stateville": true},
	})
}

func TestScoreLegalRisk_Baseline(t *testing.T) {
	t.Parallel()

	reg := fixtureRegistry()

	// Stateville: only the coastal flag adds risk.
	profile := ScoreLegalRisk(reg, "Stateville", "Tier-2 City", "Alpha, Stateville")
	if profile.RiskScore != 35 {
		t.Errorf("RiskScore = %d, want 35 (base 30 + coastal 5)", profile.RiskScore)
	}
	if profile.RiskLevel != "Moderate Risk" || profile.RiskColor != "yellow" {
		t.Errorf("level/color = %q/%q", profile.RiskLevel, profile.RiskColor)
	}
	if profile.TotalDutyPct != 6 {
		t.Errorf("TotalDutyPct = %v, want 6", profile.TotalDutyPct)
	}
	if len(profile.Documents) == 0 {
		t.Error("Documents checklist should not be empty")
	}
}

func TestScoreLegalRisk_CityOverrides(t *testing.T) {
	t.Parallel()

	reg := fixtureRegistry()

	// City override removes the state's coastal flag: back to the base score.
	inland := ScoreLegalRisk(reg, "Stateville", "Tier-2 City", "Inland, Stateville")
	if inland.RiskScore != 30 {
		t.Errorf("inland RiskScore = %d, want 30", inland.RiskScore)
	}
	if inland.StateLaw.CoastalZone {
		t.Error("resolved law should carry the city coastal override")
	}

	// Tribal override adds 10 on top of the state profile.
	tribal := ScoreLegalRisk(reg, "Stateville", "Tier-2 City", "TribalTown, Stateville")
	if tribal.RiskScore != 45 {
		t.Errorf("tribal RiskScore = %d, want 45 (35 + tribal 10)", tribal.RiskScore)
	}
	if !tribal.StateLaw.TribalRestriction {
		t.Error("resolved law should carry the city tribal override")
	}
}

func TestScoreLegalRisk_ClampAndBands(t *testing.T) {
	t.Parallel()

	reg := fixtureRegistry()

	// Riskland accumulates every adjustment (base 30 + 12 + 8 + 10 + 5 + 12
	// + 5 + 3 = 85), and a high-risk zone pushes it past the cap.
	profile := ScoreLegalRisk(reg, "Riskland", "Border Town", "Anywhere, Riskland")
	if profile.RiskScore != 95 {
		t.Errorf("RiskScore = %d, want 95 (clamped)", profile.RiskScore)
	}
	if profile.RiskLevel != "High Risk" || profile.RiskColor != "red" {
		t.Errorf("level/color = %q/%q", profile.RiskLevel, profile.RiskColor)
	}
	if len(profile.Warnings) != 5 {
		t.Errorf("len(Warnings) = %d, want 5", len(profile.Warnings))
	}
}

func TestScoreLegalRisk_ZoneBuckets(t *testing.T) {
	t.Parallel()

	reg := fixtureRegistry()
	base := ScoreLegalRisk(reg, "Stateville", "Tier-2 City", "Alpha, Stateville").RiskScore

	tests := []struct {
		zone  string
		delta int
	}{
		{"New Capital", 10},
		{"Tier-3 Town", 5},
		{"Planned City", -8},
		{"Tier-2 City", 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.zone, func(t *testing.T) {
			t.Parallel()
			got := ScoreLegalRisk(reg, "Stateville", tt.zone, "Alpha, Stateville").RiskScore
			if got != base+tt.delta {
				t.Errorf("score = %d, want %d", got, base+tt.delta)
			}
		})
	}
}

func TestScoreLegalRisk_UnknownStateFallsBack(t *testing.T) {
	t.Parallel()

	reg := fixtureRegistry()
	got := ScoreLegalRisk(reg, "Atlantis", "Tier-2 City", "")
	want := ScoreLegalRisk(reg, "Delhi", "Tier-2 City", "")
	if got.RiskScore != want.RiskScore {
		t.Errorf("unknown state score = %d, want Delhi profile score %d",
			got.RiskScore, want.RiskScore)
	}
}
