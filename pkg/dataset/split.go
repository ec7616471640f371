package dataset

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// DefaultSeed is the split seed used by the training workflow. Keeping it
// fixed makes the holdout partition, and therefore every reported metric,
// reproducible across runs.
const DefaultSeed int64 = 0

// DefaultHoldout is the fraction of samples reserved for evaluation.
const DefaultHoldout = 0.25

// Split partitions a table into training and holdout tables by a seeded
// permutation. The same seed always yields the same partition.
func Split(t *Table, holdout float64, seed int64) (train, test *Table, err error) {
	if holdout <= 0 || holdout >= 1 {
		return nil, nil, fmt.Errorf("holdout fraction must be in (0, 1), got %v", holdout)
	}
	n := t.Len()
	nTest := int(math.Round(float64(n) * holdout))
	if nTest == 0 || nTest == n {
		return nil, nil, fmt.Errorf("holdout fraction %v leaves an empty partition for %d samples", holdout, n)
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	test = t.subset(perm[:nTest])
	train = t.subset(perm[nTest:])
	return train, test, nil
}

// subset builds a new table from the given row indices, copying the data
// so partitions never alias the source table.
func (t *Table) subset(idx []int) *Table {
	cols := t.Features()
	x := mat.NewDense(len(idx), cols, nil)
	target := make([]float64, len(idx))
	for i, src := range idx {
		x.SetRow(i, t.X.RawRowView(src))
		target[i] = t.Target[src]
	}
	return &Table{Names: t.Names, X: x, Target: target}
}
