// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package forecast

import (
	"testing"
)

func TestProjectROI_InsufficientData(t *testing.T) {
	t.Parallel()

	if got := ProjectROI(linearHistory("X", 2024, 2, 1000, 100), 500000, 5); got != nil {
		t.Error("Expected nil projection for fewer than 3 observations")
	}
}

func TestProjectROI_LinearSeries(t *testing.T) {
	t.Parallel()

	// Last observed rate is 1800, so 1,800,000 buys exactly 1000 sqft and
	// every downstream number works out to round values.
	history := linearHistory("Alpha, Stateville", 2018, 9, 1000, 100)
	proj := ProjectROI(history, 1800000, 3)
	if proj == nil {
		t.Fatal("ProjectROI returned nil for valid input")
	}

	if proj.Location != "Alpha, Stateville" {
		t.Errorf("Location = %q", proj.Location)
	}
	if proj.Investment != 1800000 {
		t.Errorf("Investment = %v", proj.Investment)
	}
	if proj.AreaSqft != 1000 {
		t.Errorf("AreaSqft = %v, want 1000", proj.AreaSqft)
	}
	if proj.CurrentRate != 1800 {
		t.Errorf("CurrentRate = %v, want 1800", proj.CurrentRate)
	}
	if len(proj.Years) != 3 {
		t.Fatalf("len(Years) = %d, want 3", len(proj.Years))
	}

	tests := []struct {
		year           int
		projectedValue float64
		profit         float64
		roiPct         float64
		annualizedPct  float64
		rate           float64
	}{
		{2027, 1900000, 100000, 5.56, 5.56, 1900},
		{2028, 2000000, 200000, 11.11, 5.41, 2000},
		{2029, 2100000, 300000, 16.67, 5.27, 2100},
	}

	for i, want := range tests {
		got := proj.Years[i]
		if got.Year != want.year {
			t.Errorf("row %d year = %d, want %d", i, got.Year, want.year)
		}
		if !almostEqual(got.ProjectedValue, want.projectedValue, 0.01) {
			t.Errorf("row %d projected value = %v, want %v", i, got.ProjectedValue, want.projectedValue)
		}
		if !almostEqual(got.Profit, want.profit, 0.01) {
			t.Errorf("row %d profit = %v, want %v", i, got.Profit, want.profit)
		}
		if got.ROIPct != want.roiPct {
			t.Errorf("row %d roi pct = %v, want %v", i, got.ROIPct, want.roiPct)
		}
		if got.AnnualizedROIPct != want.annualizedPct {
			t.Errorf("row %d annualized = %v, want %v", i, got.AnnualizedROIPct, want.annualizedPct)
		}
		if !almostEqual(got.RatePerSqft, want.rate, 0.01) {
			t.Errorf("row %d rate = %v, want %v", i, got.RatePerSqft, want.rate)
		}
	}
}
