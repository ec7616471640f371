// Package regression implements a linear regression estimator with
// elastic-net regularization, fit by cyclic coordinate descent.
//
// The estimator follows the Fit/Predict/Score convention: Fit returns a
// Model that can score new data or be persisted and reloaded later.
package regression

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrNotConverged is returned when coordinate descent fails to reach the
// tolerance within MaxIter sweeps.
var ErrNotConverged = errors.New("coordinate descent did not converge")

// Default solver controls.
const (
	DefaultMaxIter = 1000
	DefaultTol     = 1e-4
)

// ElasticNet configures one fit of the estimator.
//
// The objective minimized over weights w and unpenalized intercept b is
//
//	(1/2n)·||y − b − Xw||² + Alpha·(L1Ratio·||w||₁ + ½·(1−L1Ratio)·||w||₂²)
//
// L1Ratio = 1 is a pure lasso penalty, L1Ratio = 0 a pure ridge penalty,
// and Alpha = 0 reduces the fit to ordinary least squares.
type ElasticNet struct {
	Alpha   float64
	L1Ratio float64
	MaxIter int
	Tol     float64
}

// NewElasticNet returns an estimator with the default solver controls.
func NewElasticNet(alpha, l1Ratio float64) *ElasticNet {
	return &ElasticNet{
		Alpha:   alpha,
		L1Ratio: l1Ratio,
		MaxIter: DefaultMaxIter,
		Tol:     DefaultTol,
	}
}

func (e *ElasticNet) validate() error {
	if e.Alpha < 0 || math.IsNaN(e.Alpha) {
		return fmt.Errorf("alpha must be non-negative, got %v", e.Alpha)
	}
	if e.L1Ratio < 0 || e.L1Ratio > 1 || math.IsNaN(e.L1Ratio) {
		return fmt.Errorf("l1_ratio must be in [0, 1], got %v", e.L1Ratio)
	}
	if e.MaxIter <= 0 {
		return fmt.Errorf("max iterations must be positive, got %d", e.MaxIter)
	}
	return nil
}

// Fit runs coordinate descent on the given samples and returns the fitted
// model. X must have one row per element of y.
func (e *ElasticNet) Fit(x *mat.Dense, y []float64) (*Model, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}
	rows, cols := x.Dims()
	if rows != len(y) {
		return nil, fmt.Errorf("feature matrix has %d rows but target has %d values", rows, len(y))
	}
	if rows == 0 {
		return nil, fmt.Errorf("cannot fit on an empty dataset")
	}

	n := float64(rows)
	lam1 := e.Alpha * e.L1Ratio
	lam2 := e.Alpha * (1 - e.L1Ratio)

	// Per-feature mean squared norms, constant across sweeps.
	z := make([]float64, cols)
	for j := 0; j < cols; j++ {
		var s float64
		for i := 0; i < rows; i++ {
			v := x.At(i, j)
			s += v * v
		}
		z[j] = s / n
		if z[j]+lam2 == 0 {
			return nil, fmt.Errorf("feature %d is constant zero and unregularized", j)
		}
	}

	w := make([]float64, cols)
	var b float64
	for _, v := range y {
		b += v
	}
	b /= n

	// resid holds y − b − Xw throughout.
	resid := make([]float64, rows)
	for i, v := range y {
		resid[i] = v - b
	}

	for iter := 0; iter < e.MaxIter; iter++ {
		var maxDelta float64
		for j := 0; j < cols; j++ {
			var rho float64
			for i := 0; i < rows; i++ {
				xij := x.At(i, j)
				rho += xij * (resid[i] + xij*w[j])
			}
			rho /= n

			wj := softThreshold(rho, lam1) / (z[j] + lam2)
			if delta := wj - w[j]; delta != 0 {
				for i := 0; i < rows; i++ {
					resid[i] -= x.At(i, j) * delta
				}
				w[j] = wj
				maxDelta = math.Max(maxDelta, math.Abs(delta))
			}
		}

		// Re-center the unpenalized intercept.
		var db float64
		for _, r := range resid {
			db += r
		}
		db /= n
		if db != 0 {
			b += db
			for i := range resid {
				resid[i] -= db
			}
			maxDelta = math.Max(maxDelta, math.Abs(db))
		}

		if maxDelta < e.Tol {
			return &Model{
				Weights:   w,
				Intercept: b,
				Alpha:     e.Alpha,
				L1Ratio:   e.L1Ratio,
				Iters:     iter + 1,
			}, nil
		}
	}

	return nil, fmt.Errorf("%w after %d sweeps (alpha=%v, l1_ratio=%v)", ErrNotConverged, e.MaxIter, e.Alpha, e.L1Ratio)
}

func softThreshold(v, t float64) float64 {
	switch {
	case v > t:
		return v - t
	case v < -t:
		return v + t
	default:
		return 0
	}
}
