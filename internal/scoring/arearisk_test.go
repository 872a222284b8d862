// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package scoring

import (
	"testing"

	"github.com/plotwise/plotwise/internal/registry"
)

func areaFixture() *registry.Registry {
	return registry.FromTables(registry.Tables{
		Zones: map[string]registry.ZoneFactor{
			"Tier-2 City": {GrowthMultiplier: 1.0},
		},
		StateLaws: map[string]registry.StateLawProfile{
			"Delhi": {RERAActive: true, NRIAllowed: true},
		},
		FloodByState: map[string]int{"Stateville": 70},
		WaterByState: map[string]int{"Stateville": 60},
		FloodByCity:  map[string]int{"Beta, Stateville": 80, "Seaville, Stateville": 95},
		IllegalLayouts: map[string]registry.LayoutRisk{
			"Beta, Stateville": {Score: 50, Details: "Unapproved layouts reported on the outskirts.", ReportedCases: "Multiple"},
		},
		Disputes: map[string]registry.DisputeRisk{
			"Beta, Stateville": {Score: 40, Details: "Scattered title disputes.", DisputeType: "Title"},
		},
		ZoneDevDistance: map[string]int{"Tier-2 City": 20},
	})
}

func TestScoreAreaRisk_WeightedOverall(t *testing.T) {
	t.Parallel()

	report := ScoreAreaRisk(areaFixture(), "Beta, Stateville", "Stateville", "Tier-2 City", 60, 0, 0)

	if report.Scores.Flood != 80 || report.Scores.WaterScarcity != 60 ||
		report.Scores.IllegalLayout != 50 || report.Scores.LandDispute != 40 ||
		report.Scores.DevDistance != 20 {
		t.Fatalf("sub-scores = %+v, want 80/60/50/40/20", report.Scores)
	}

	// 80*.25 + 60*.20 + 50*.25 + 40*.20 + 20*.10 = 54.5
	if report.OverallScore != 54.5 {
		t.Errorf("OverallScore = %v, want 54.5", report.OverallScore)
	}
	if report.OverallLabel != "Moderate Area Risk" {
		t.Errorf("OverallLabel = %q", report.OverallLabel)
	}
	if len(report.Alerts) != 5 {
		t.Fatalf("len(Alerts) = %d, want 5", len(report.Alerts))
	}

	// Flood 80 is High/red; layout and dispute below 60 stay Moderate/orange;
	// dev distance 20 maps to the blue growth-corridor band.
	if report.Alerts[0].Severity != "High" || report.Alerts[0].Color != "red" {
		t.Errorf("flood alert = %s/%s", report.Alerts[0].Severity, report.Alerts[0].Color)
	}
	if report.Alerts[2].Severity != "Moderate" || report.Alerts[3].Severity != "Moderate" {
		t.Errorf("layout/dispute severities = %s/%s",
			report.Alerts[2].Severity, report.Alerts[3].Severity)
	}
	if report.Alerts[4].Color != "blue" {
		t.Errorf("dev distance alert color = %s, want blue", report.Alerts[4].Color)
	}
}

func TestScoreAreaRisk_ZoneBoosts(t *testing.T) {
	t.Parallel()

	reg := areaFixture()

	// Coastal zone type boosts flood risk, capped at 100.
	coastal := ScoreAreaRisk(reg, "Beta, Stateville", "Stateville", "Port City", 60, 0, 0)
	if coastal.Scores.Flood != 92 {
		t.Errorf("coastal flood = %d, want 92 (80 + 12)", coastal.Scores.Flood)
	}
	capped := ScoreAreaRisk(reg, "Seaville, Stateville", "Stateville", "Beach Town", 60, 0, 0)
	if capped.Scores.Flood != 100 {
		t.Errorf("capped flood = %d, want 100", capped.Scores.Flood)
	}

	// Border towns and arid states get a water-scarcity boost.
	border := ScoreAreaRisk(reg, "Beta, Stateville", "Stateville", "Border Town", 60, 0, 0)
	if border.Scores.WaterScarcity != 68 {
		t.Errorf("border water = %d, want 68 (60 + 8)", border.Scores.WaterScarcity)
	}
	arid := ScoreAreaRisk(reg, "Dry, Rajasthan", "Rajasthan", "Tier-2 City", 60, 0, 0)
	if arid.Scores.WaterScarcity != registry.DefaultWaterScarcity+8 {
		t.Errorf("arid water = %d, want %d", arid.Scores.WaterScarcity, registry.DefaultWaterScarcity+8)
	}
}

func TestScoreAreaRisk_SyntheticFallbacks(t *testing.T) {
	t.Parallel()

	reg := areaFixture()

	// Unlisted city: layout and dispute scores derive from infrastructure.
	high := ScoreAreaRisk(reg, "Unknown, Atlantis", "Atlantis", "Tier-2 City", 80, 0, 0)
	if high.Scores.IllegalLayout != 15 {
		t.Errorf("layout = %d, want floor 15", high.Scores.IllegalLayout)
	}
	if high.Scores.LandDispute != 14 {
		t.Errorf("dispute = %d, want 14 (40 - 80/3)", high.Scores.LandDispute)
	}

	low := ScoreAreaRisk(reg, "Unknown, Atlantis", "Atlantis", "Tier-2 City", 20, 0, 0)
	if low.Scores.IllegalLayout != 40 {
		t.Errorf("layout = %d, want 40 (50 - 20/2)", low.Scores.IllegalLayout)
	}
	if low.Scores.LandDispute != 34 {
		t.Errorf("dispute = %d, want 34 (40 - 20/3)", low.Scores.LandDispute)
	}

	// Unknown state also falls through to the numeric defaults.
	if high.Scores.Flood != registry.DefaultFloodRisk {
		t.Errorf("flood = %d, want default %d", high.Scores.Flood, registry.DefaultFloodRisk)
	}
	if high.Scores.WaterScarcity != registry.DefaultWaterScarcity {
		t.Errorf("water = %d, want default %d", high.Scores.WaterScarcity, registry.DefaultWaterScarcity)
	}
}

func TestScoreAreaRisk_Labels(t *testing.T) {
	t.Parallel()

	reg := areaFixture()

	// All defaults with strong infra: 30*.25 + 40*.20 + 15*.25 + 14*.20 +
	// 20*.10 ~= 24, the lowest band.
	report := ScoreAreaRisk(reg, "Unknown, Atlantis", "Atlantis", "Tier-2 City", 80, 0, 0)
	if report.OverallScore >= 30 {
		t.Errorf("OverallScore = %v, want below 30", report.OverallScore)
	}
	if report.OverallLabel != "Low Area Risk" {
		t.Errorf("OverallLabel = %q, want Low Area Risk", report.OverallLabel)
	}
}
