// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package forecast

import (
	"math"

	"github.com/plotwise/plotwise/internal/models"
)

// roiEpochYear anchors the annualized-ROI exponent. The annualization
// divides by years since this fixed epoch, not since the investment start,
// with the denominator floored at 1. Kept as-is for compatibility with the
// established output; see DESIGN.md.
const roiEpochYear = 2026

// ProjectROI models investing amount at the location's current rate as a
// proportional (possibly fractional) stake and projects its value across
// the forecast horizon. Returns nil under the same insufficient-data
// condition as Predict. Input validation (amount > 0, years >= 1) is the
// API boundary's job.
func ProjectROI(history []models.Observation, amount float64, years int) *models.ROIProjection {
	fc := Predict(history, years)
	if fc == nil {
		return nil
	}

	area := amount / fc.CurrentRate

	rows := make([]models.ROIYear, 0, len(fc.Steps))
	for _, step := range fc.Steps {
		futureValue := area * step.PredictedRate
		profit := futureValue - amount
		denom := float64(step.Year - roiEpochYear)
		if denom < 1 {
			denom = 1
		}
		annualized := (math.Pow(futureValue/amount, 1/denom) - 1) * 100

		rows = append(rows, models.ROIYear{
			Year:             step.Year,
			ProjectedValue:   round2(futureValue),
			Profit:           round2(profit),
			ROIPct:           round2(profit / amount * 100),
			AnnualizedROIPct: round2(annualized),
			RatePerSqft:      step.PredictedRate,
		})
	}

	return &models.ROIProjection{
		Location:    fc.Location,
		Investment:  amount,
		AreaSqft:    round2(area),
		CurrentRate: fc.CurrentRate,
		Years:       rows,
	}
}
