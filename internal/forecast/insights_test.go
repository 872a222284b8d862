// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package forecast

import (
	"testing"

	"github.com/plotwise/plotwise/internal/models"
)

func TestInsights_Empty(t *testing.T) {
	t.Parallel()

	if got := Insights(nil); got != nil {
		t.Error("Expected nil insights for empty history")
	}
}

func TestInsights_Growth(t *testing.T) {
	t.Parallel()

	history := []models.Observation{
		{
			Location: "Alpha, Stateville", Year: 2018, RatePerSqft: 1000,
			ZoneType: "Tier-2 City", InfraScore: 60,
		},
		{Location: "Alpha, Stateville", Year: 2020, RatePerSqft: 1200},
		{
			Location: "Alpha, Stateville", Year: 2022, RatePerSqft: 1440,
			ZoneType: "Tier-2 City", InfraScore: 65,
			DevelopmentPotential: 70, AmenitiesScore: 55, TransportScore: 50,
		},
	}

	ins := Insights(history)
	if ins == nil {
		t.Fatal("Insights returned nil")
	}

	if ins.CurrentRate != 1440 {
		t.Errorf("CurrentRate = %v, want 1440", ins.CurrentRate)
	}
	if ins.InitialRate != 1000 {
		t.Errorf("InitialRate = %v, want 1000", ins.InitialRate)
	}
	if ins.TotalGrowthPct != 44 {
		t.Errorf("TotalGrowthPct = %v, want 44", ins.TotalGrowthPct)
	}
	// 44% over 4 years
	if ins.AvgAnnualGrowth != 11 {
		t.Errorf("AvgAnnualGrowth = %v, want 11", ins.AvgAnnualGrowth)
	}
	// 1.44^(1/4) = 1.095445
	if ins.CAGRPct != 9.54 {
		t.Errorf("CAGRPct = %v, want 9.54", ins.CAGRPct)
	}
	// Scores come from the latest observation
	if ins.ZoneType != "Tier-2 City" || ins.InfraScore != 65 {
		t.Errorf("zone/infra = %q/%d, want Tier-2 City/65", ins.ZoneType, ins.InfraScore)
	}
	if ins.DevelopmentPotential != 70 || ins.AmenitiesScore != 55 || ins.TransportScore != 50 {
		t.Errorf("latest scores not carried through: %+v", ins)
	}
}

func TestInsights_SingleObservation(t *testing.T) {
	t.Parallel()

	ins := Insights([]models.Observation{
		{Location: "X", Year: 2026, RatePerSqft: 2500},
	})
	if ins == nil {
		t.Fatal("Insights returned nil for single observation")
	}
	if ins.TotalGrowthPct != 0 || ins.CAGRPct != 0 {
		t.Errorf("growth should be zero for a single point, got %v / %v",
			ins.TotalGrowthPct, ins.CAGRPct)
	}
}
