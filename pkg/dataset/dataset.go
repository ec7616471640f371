// Package dataset provides the bundled reference dataset used by the
// training workflow: 442 clinical records with ten standardized
// (zero mean, unit variance) features and a real-valued disease
// progression target.
//
// The data ships inside the binary, so loading it cannot depend on the
// working directory or any external download.
package dataset

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

//go:embed reference.csv
var referenceCSV []byte

// Table is an immutable feature matrix with its aligned target vector.
type Table struct {
	Names  []string
	X      *mat.Dense
	Target []float64
}

// Len returns the number of samples in the table.
func (t *Table) Len() int {
	r, _ := t.X.Dims()
	return r
}

// Features returns the number of feature columns.
func (t *Table) Features() int {
	_, c := t.X.Dims()
	return c
}

// Load parses the embedded reference dataset. The last CSV column is the
// target; everything before it is a feature.
func Load() (*Table, error) {
	r := csv.NewReader(bytes.NewReader(referenceCSV))
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse bundled dataset: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("bundled dataset is empty")
	}

	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("bundled dataset needs at least one feature and a target column")
	}
	names := header[:len(header)-1]
	cols := len(names)

	rows := len(records) - 1
	x := mat.NewDense(rows, cols, nil)
	target := make([]float64, rows)
	for i, rec := range records[1:] {
		if len(rec) != cols+1 {
			return nil, fmt.Errorf("bundled dataset row %d: expected %d columns, got %d", i+1, cols+1, len(rec))
		}
		for j, cell := range rec {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("bundled dataset row %d column %q: %w", i+1, header[j], err)
			}
			if j == cols {
				target[i] = v
			} else {
				x.Set(i, j, v)
			}
		}
	}

	return &Table{Names: names, X: x, Target: target}, nil
}
