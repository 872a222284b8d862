// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package forecast

import (
	"testing"

	"github.com/plotwise/plotwise/internal/models"
	"github.com/plotwise/plotwise/internal/registry"
)

// mapHistory satisfies History for tests without a generated dataset.
type mapHistory map[string][]models.Observation

func (m mapHistory) ForLocation(name string) []models.Observation {
	return m[name]
}

func compareRegistry() *registry.Registry {
	return registry.FromTables(registry.Tables{
		Locations: []registry.LocationProfile{
			{Name: "Alpha, Stateville", City: "Alpha", State: "Stateville", BaseRate: 1000, ZoneType: "Tier-2 City"},
		},
		Zones: map[string]registry.ZoneFactor{
			"Tier-2 City": {GrowthMultiplier: 1.0, RiskLevel: "Medium"},
			"Port City":   {GrowthMultiplier: 1.2, RiskLevel: "Low-Medium"},
		},
	})
}

func TestCompare_SkipsUnknownLocations(t *testing.T) {
	t.Parallel()

	data := mapHistory{
		"Alpha, Stateville": linearHistory("Alpha, Stateville", 2018, 9, 1000, 100),
	}
	for i := range data["Alpha, Stateville"] {
		data["Alpha, Stateville"][i].ZoneType = "Tier-2 City"
	}

	rows := Compare(data, compareRegistry(), []string{"Alpha, Stateville", "Nowhere, Atlantis"})
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1 (unknown location skipped)", len(rows))
	}
	row := rows[0]
	if row.Location != "Alpha, Stateville" {
		t.Errorf("Location = %q", row.Location)
	}
	if row.CurrentRate != 1800 {
		t.Errorf("CurrentRate = %v, want 1800", row.CurrentRate)
	}
	// 80% over 8 years
	if row.TotalGrowthPct != 80 {
		t.Errorf("TotalGrowthPct = %v, want 80", row.TotalGrowthPct)
	}
	if row.Risk != "Medium" || row.GrowthMultiplier != 1.0 {
		t.Errorf("zone factor not applied: risk %q mult %v", row.Risk, row.GrowthMultiplier)
	}
	if row.Predicted5YrRate == nil {
		t.Fatal("Predicted5YrRate should be set with 9 observations")
	}
	// Exact linear series: 1800 + 5*100
	if !almostEqual(*row.Predicted5YrRate, 2300, 1e-6) {
		t.Errorf("Predicted5YrRate = %v, want 2300", *row.Predicted5YrRate)
	}
}

func TestCompare_ShortHistoryOmitsPrediction(t *testing.T) {
	t.Parallel()

	short := linearHistory("Alpha, Stateville", 2025, 2, 1500, 100)
	for i := range short {
		short[i].ZoneType = "Tier-2 City"
	}
	data := mapHistory{"Alpha, Stateville": short}

	rows := Compare(data, compareRegistry(), []string{"Alpha, Stateville"})
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	if rows[0].Predicted5YrRate != nil {
		t.Error("Predicted5YrRate should be nil with only 2 observations")
	}
}
