package regression

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Model is a fitted linear model: one weight per feature column plus an
// intercept. The hyperparameters it was fit with travel with the model so
// a reloaded artifact is self-describing.
type Model struct {
	Weights   []float64
	Intercept float64
	Alpha     float64
	L1Ratio   float64
	Iters     int
}

// Predict returns one prediction per row of x.
func (m *Model) Predict(x *mat.Dense) ([]float64, error) {
	rows, cols := x.Dims()
	if cols != len(m.Weights) {
		return nil, fmt.Errorf("model has %d weights but input has %d features", len(m.Weights), cols)
	}
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		p := m.Intercept
		for j := 0; j < cols; j++ {
			p += m.Weights[j] * x.At(i, j)
		}
		out[i] = p
	}
	return out, nil
}

// Score returns the coefficient of determination (R²) of the model's
// predictions against y. 1.0 is a perfect fit; the value is negative when
// the model does worse than predicting the mean.
func (m *Model) Score(x *mat.Dense, y []float64) (float64, error) {
	preds, err := m.Predict(x)
	if err != nil {
		return 0, err
	}
	if len(preds) != len(y) {
		return 0, fmt.Errorf("got %d predictions for %d targets", len(preds), len(y))
	}

	mean := stat.Mean(y, nil)
	var ssr, sst float64
	for i, yi := range y {
		d := yi - preds[i]
		ssr += d * d
		t := yi - mean
		sst += t * t
	}
	if sst == 0 {
		return 0, fmt.Errorf("target variance is zero, R² undefined")
	}
	return 1 - ssr/sst, nil
}

// Sparsity returns the number of exactly-zero weights. Useful for
// inspecting the effect of the L1 penalty.
func (m *Model) Sparsity() int {
	var zeros int
	for _, w := range m.Weights {
		if w == 0 {
			zeros++
		}
	}
	return zeros
}
