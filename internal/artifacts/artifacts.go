// Package artifacts writes the outputs of a training run.
package artifacts

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dberenbaum/diabetes/pkg/evaluation"
)

// Default artifact locations, relative to the working directory.
const (
	DefaultMetricsPath = "metrics.yaml"
	DefaultModelPath   = "model.bin"
)

// metricsFile fixes the key names and order of metrics.yaml. r2 stays
// first: downstream tooling reads it as the primary metric.
type metricsFile struct {
	R2   float64 `yaml:"r2"`
	MAE  float64 `yaml:"mae"`
	MSE  float64 `yaml:"mse"`
	RMSE float64 `yaml:"rmse"`
}

// WriteMetrics serializes the evaluation to a key-value YAML file. Like
// the model artifact, the file is written to a temp path and renamed so a
// failed run cannot leave a half-written metrics file.
func WriteMetrics(path string, ev *evaluation.Eval) error {
	data, err := yaml.Marshal(metricsFile{R2: ev.R2, MAE: ev.MAE, MSE: ev.MSE, RMSE: ev.RMSE})
	if err != nil {
		return fmt.Errorf("failed to serialize metrics: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create metrics temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to flush metrics file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to finalize metrics file: %w", err)
	}
	return nil
}

// ReadMetrics reads a metrics file back into an evaluation. Used by tests
// and by tooling that compares runs.
func ReadMetrics(path string) (*evaluation.Eval, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metrics file: %w", err)
	}
	var mf metricsFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("failed to parse metrics file %s: %w", path, err)
	}
	return &evaluation.Eval{R2: mf.R2, MAE: mf.MAE, MSE: mf.MSE, RMSE: mf.RMSE}, nil
}
