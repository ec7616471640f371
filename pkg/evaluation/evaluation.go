// Package evaluation computes holdout regression metrics.
package evaluation

import (
	"fmt"
	"math"
)

// Eval holds the metrics reported for one holdout evaluation.
type Eval struct {
	// R2 coefficient of determination.
	R2 float64

	// MAE mean absolute error.
	MAE float64

	// MSE mean squared error.
	MSE float64

	// RMSE root mean squared error.
	RMSE float64
}

// Evaluate computes R², MAE, MSE and RMSE of predictions against the true
// targets.
func Evaluate(preds, truth []float64) (*Eval, error) {
	if len(preds) != len(truth) {
		return nil, fmt.Errorf("got %d predictions for %d targets", len(preds), len(truth))
	}
	if len(preds) == 0 {
		return nil, fmt.Errorf("cannot evaluate an empty holdout")
	}

	n := float64(len(truth))
	var maeSum, mseSum, mean float64
	for i, y := range truth {
		d := y - preds[i]
		maeSum += math.Abs(d)
		mseSum += d * d
		mean += y
	}
	mean /= n

	var tssSum float64
	for _, y := range truth {
		tssSum += (y - mean) * (y - mean)
	}
	if tssSum == 0 {
		return nil, fmt.Errorf("target variance is zero, R² undefined")
	}

	return &Eval{
		R2:   1 - mseSum/tssSum,
		MAE:  maeSum / n,
		MSE:  mseSum / n,
		RMSE: math.Sqrt(mseSum / n),
	}, nil
}

// Check rejects evaluations that degenerated into NaN or infinities, which
// signal a diverged or malformed fit rather than a bad-but-valid model.
func (e *Eval) Check() error {
	for name, v := range map[string]float64{"r2": e.R2, "mae": e.MAE, "mse": e.MSE, "rmse": e.RMSE} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("metric %s is not finite: %v", name, v)
		}
	}
	return nil
}
