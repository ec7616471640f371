package evaluation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	truth := []float64{1, 2, 3, 4, 5}

	t.Run("perfect predictions", func(t *testing.T) {
		ev, err := Evaluate(truth, truth)
		require.NoError(t, err)
		assert.Equal(t, 1.0, ev.R2)
		assert.Equal(t, 0.0, ev.MAE)
		assert.Equal(t, 0.0, ev.MSE)
		assert.Equal(t, 0.0, ev.RMSE)
	})

	t.Run("mean predictor scores zero", func(t *testing.T) {
		preds := []float64{3, 3, 3, 3, 3}
		ev, err := Evaluate(preds, truth)
		require.NoError(t, err)
		assert.InDelta(t, 0, ev.R2, 1e-12)
	})

	t.Run("worse than the mean goes negative", func(t *testing.T) {
		preds := []float64{5, 4, 3, 2, 1}
		ev, err := Evaluate(preds, truth)
		require.NoError(t, err)
		assert.Less(t, ev.R2, 0.0)
	})

	t.Run("known values", func(t *testing.T) {
		preds := []float64{1.5, 2.5, 2.5, 4.5, 5.5}
		ev, err := Evaluate(preds, truth)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, ev.MAE, 1e-12)
		assert.InDelta(t, 0.25, ev.MSE, 1e-12)
		assert.InDelta(t, 0.5, ev.RMSE, 1e-12)
		assert.InDelta(t, 1-1.25/10.0, ev.R2, 1e-12)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := Evaluate([]float64{1}, truth)
		assert.Error(t, err)
	})

	t.Run("empty holdout", func(t *testing.T) {
		_, err := Evaluate(nil, nil)
		assert.Error(t, err)
	})

	t.Run("constant target", func(t *testing.T) {
		_, err := Evaluate([]float64{2, 2}, []float64{2, 2})
		assert.Error(t, err)
	})
}

func TestCheck(t *testing.T) {
	good := &Eval{R2: 0.5, MAE: 1, MSE: 2, RMSE: math.Sqrt2}
	assert.NoError(t, good.Check())

	bad := &Eval{R2: math.NaN()}
	assert.Error(t, bad.Check())

	inf := &Eval{MSE: math.Inf(1)}
	assert.Error(t, inf.Check())
}
