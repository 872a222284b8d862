// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package forecast

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestFitQuadratic_ExactRecovery(t *testing.T) {
	t.Parallel()

	// y = 3 + 2x + 0.5x^2 sampled exactly
	xs := []float64{2018, 2019, 2020, 2021, 2022, 2023}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 3 + 2*x + 0.5*x*x
	}

	fit, ok := fitQuadratic(xs, ys)
	if !ok {
		t.Fatal("fitQuadratic failed on well-conditioned input")
	}

	for i, x := range xs {
		if got := fit.eval(x); !almostEqual(got, ys[i], 1e-6) {
			t.Errorf("eval(%v) = %v, want %v", x, got, ys[i])
		}
	}

	// Extrapolation must also match the generating polynomial
	want := 3 + 2*2026 + 0.5*2026*2026
	if got := fit.eval(2026); !almostEqual(got, want, 1e-6) {
		t.Errorf("eval(2026) = %v, want %v", got, want)
	}
}

func TestFitQuadratic_LinearSeries(t *testing.T) {
	t.Parallel()

	// A pure line is inside the quadratic model space: c2 should be ~0
	xs := []float64{2018, 2019, 2020, 2021, 2022}
	ys := []float64{1000, 1100, 1200, 1300, 1400}

	fit, ok := fitQuadratic(xs, ys)
	if !ok {
		t.Fatal("fitQuadratic failed on linear input")
	}
	if !almostEqual(fit.c2, 0, 1e-6) {
		t.Errorf("c2 = %v, want ~0 for linear data", fit.c2)
	}
	if got := fit.eval(2023); !almostEqual(got, 1500, 1e-6) {
		t.Errorf("eval(2023) = %v, want 1500", got)
	}
}

func TestFitQuadratic_Degenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		xs   []float64
		ys   []float64
	}{
		{"too few points", []float64{1, 2}, []float64{1, 2}},
		{"length mismatch", []float64{1, 2, 3}, []float64{1, 2}},
		{"identical xs", []float64{5, 5, 5, 5}, []float64{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, ok := fitQuadratic(tt.xs, tt.ys); ok {
				t.Error("expected fit to fail")
			}
		})
	}
}

func TestRSquared(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ys    []float64
		preds []float64
		want  float64
	}{
		{"perfect fit", []float64{1, 2, 3}, []float64{1, 2, 3}, 1},
		{"zero variance exact", []float64{5, 5, 5}, []float64{5, 5, 5}, 1},
		{"zero variance inexact", []float64{5, 5, 5}, []float64{4, 5, 6}, 0},
		{"mean-only fit", []float64{1, 2, 3}, []float64{2, 2, 2}, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := rSquared(tt.ys, tt.preds); !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("rSquared = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResidualStd(t *testing.T) {
	t.Parallel()

	if got := residualStd([]float64{1, 2, 3}, []float64{1, 2, 3}); got != 0 {
		t.Errorf("residualStd of exact fit = %v, want 0", got)
	}

	// Residuals -1, +1 around their mean 0: population sigma = 1
	if got := residualStd([]float64{9, 11}, []float64{10, 10}); !almostEqual(got, 1, 1e-9) {
		t.Errorf("residualStd = %v, want 1", got)
	}
}
