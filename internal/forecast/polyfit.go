// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package forecast

import "math"

// quadFit is a fitted degree-2 polynomial y = c0 + c1*x' + c2*x'^2 where
// x' = x - shift. Inputs are centered before fitting: raw year values make
// the normal equations catastrophically ill-conditioned (year^4 ~ 1e13)
// while centered values keep every entry small.
type quadFit struct {
	c0, c1, c2 float64
	shift      float64
}

// fitQuadratic computes the ordinary least squares degree-2 fit of ys on
// xs. Returns false when fewer than 3 points are given or the system is
// singular (all xs identical).
func fitQuadratic(xs, ys []float64) (quadFit, bool) {
	n := len(xs)
	if n < 3 || len(ys) != n {
		return quadFit{}, false
	}

	var shift float64
	for _, x := range xs {
		shift += x
	}
	shift /= float64(n)

	// Accumulate the normal equations A*c = b for the basis [1, x, x^2].
	var s1, s2, s3, s4 float64
	var t0, t1, t2 float64
	for i, x := range xs {
		xc := x - shift
		x2 := xc * xc
		s1 += xc
		s2 += x2
		s3 += x2 * xc
		s4 += x2 * x2
		t0 += ys[i]
		t1 += ys[i] * xc
		t2 += ys[i] * x2
	}

	a := [3][4]float64{
		{float64(n), s1, s2, t0},
		{s1, s2, s3, t1},
		{s2, s3, s4, t2},
	}

	// Gaussian elimination with partial pivoting on the 3x4 augmented matrix.
	for col := 0; col < 3; col++ {
		pivot := col
		for row := col + 1; row < 3; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		a[col], a[pivot] = a[pivot], a[col]
		if math.Abs(a[col][col]) < 1e-12 {
			return quadFit{}, false
		}
		for row := col + 1; row < 3; row++ {
			f := a[row][col] / a[col][col]
			for k := col; k < 4; k++ {
				a[row][k] -= f * a[col][k]
			}
		}
	}

	var c [3]float64
	for row := 2; row >= 0; row-- {
		v := a[row][3]
		for k := row + 1; k < 3; k++ {
			v -= a[row][k] * c[k]
		}
		c[row] = v / a[row][row]
	}

	return quadFit{c0: c[0], c1: c[1], c2: c[2], shift: shift}, true
}

// eval evaluates the fitted polynomial at x.
func (f quadFit) eval(x float64) float64 {
	xc := x - f.shift
	return f.c0 + f.c1*xc + f.c2*xc*xc
}

// rSquared is the in-sample coefficient of determination. A zero-variance
// target yields 1 when the fit is exact, 0 otherwise.
func rSquared(ys, preds []float64) float64 {
	var mean float64
	for _, y := range ys {
		mean += y
	}
	mean /= float64(len(ys))

	var ssRes, ssTot float64
	for i, y := range ys {
		ssRes += (y - preds[i]) * (y - preds[i])
		ssTot += (y - mean) * (y - mean)
	}
	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}
		return 0
	}
	return 1 - ssRes/ssTot
}

// residualStd is the population standard deviation of the fit residuals.
func residualStd(ys, preds []float64) float64 {
	var mean float64
	res := make([]float64, len(ys))
	for i, y := range ys {
		res[i] = y - preds[i]
		mean += res[i]
	}
	mean /= float64(len(res))

	var sum float64
	for _, r := range res {
		sum += (r - mean) * (r - mean)
	}
	return math.Sqrt(sum / float64(len(res)))
}
