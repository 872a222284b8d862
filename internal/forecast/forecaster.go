// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package forecast

import (
	"math"

	"github.com/plotwise/plotwise/internal/models"
)

// MinHistory is the minimum number of historical observations required to
// fit a trend. Below this, Predict returns nil (insufficient data is a
// routine condition callers branch on, not an error).
const MinHistory = 3

const (
	// predictionFloor keeps extrapolation from collapsing implausibly:
	// every predicted rate is at least this fraction of the last actual.
	predictionFloor = 0.9

	// bandZ is the 95% normal quantile used for the confidence band.
	bandZ = 1.96

	// bandWidening widens the margin per forecast step.
	bandWidening = 0.1

	// confidenceDecay reduces per-step confidence with forecast distance.
	confidenceDecay = 0.02

	confidenceMin = 0.5
	confidenceMax = 0.95
)

// Predict fits a degree-2 polynomial to a location's historical rates and
// extrapolates horizon years past the last observed year. The history must
// be sorted ascending by year. Returns nil when fewer than MinHistory
// observations exist.
//
// ModelR2 is computed in-sample over the fitting data; there is no holdout,
// so it describes fit quality, not predictive accuracy.
func Predict(history []models.Observation, horizon int) *models.Forecast {
	if len(history) < MinHistory || horizon < 1 {
		return nil
	}

	xs := make([]float64, len(history))
	ys := make([]float64, len(history))
	for i, obs := range history {
		xs[i] = float64(obs.Year)
		ys[i] = obs.RatePerSqft
	}

	fit, ok := fitQuadratic(xs, ys)
	if !ok {
		return nil
	}

	preds := make([]float64, len(xs))
	for i, x := range xs {
		preds[i] = fit.eval(x)
	}
	r2 := rSquared(ys, preds)
	sigma := residualStd(ys, preds)

	lastYear := history[len(history)-1].Year
	lastRate := ys[len(ys)-1]

	steps := make([]models.ForecastStep, 0, horizon)
	for i := 1; i <= horizon; i++ {
		year := lastYear + i
		pred := math.Max(fit.eval(float64(year)), lastRate*predictionFloor)
		margin := sigma * bandZ * (1 + bandWidening*float64(i))
		steps = append(steps, models.ForecastStep{
			Year:          year,
			PredictedRate: round2(pred),
			LowerBound:    round2(math.Max(pred-margin, 0)),
			UpperBound:    round2(pred + margin),
			Confidence:    round2(clamp(r2-confidenceDecay*float64(i), confidenceMin, confidenceMax)),
		})
	}

	historical := make([]models.RatePoint, len(history))
	for i, obs := range history {
		historical[i] = models.RatePoint{Year: obs.Year, Rate: obs.RatePerSqft}
	}

	return &models.Forecast{
		Location:    history[0].Location,
		ModelR2:     round4(r2),
		CurrentRate: round2(lastRate),
		Steps:       steps,
		Historical:  historical,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
