// Package config loads the training parameters file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the workflow looks for parameters when no override
// is given.
const DefaultPath = "params.yaml"

// ErrMissingKey marks a parameters file that parses but lacks a required
// key. No defaults are substituted: a partial configuration aborts the run.
var ErrMissingKey = errors.New("missing required parameter")

// Params are the hyperparameters of one training run. They are read once
// at startup and never mutated afterwards.
type Params struct {
	// Alpha is the overall regularization strength, >= 0.
	Alpha float64 `mapstructure:"alpha"`

	// L1Ratio mixes the L1 and L2 penalties, in [0, 1].
	L1Ratio float64 `mapstructure:"l1_ratio"`
}

// Load reads and validates a params.yaml-style file. Unrecognized keys are
// ignored; missing required keys or out-of-range values are errors.
func Load(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read params file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for _, key := range []string{"alpha", "l1_ratio"} {
		if _, ok := raw[key]; !ok {
			return nil, fmt.Errorf("%w %q in %s", ErrMissingKey, key, path)
		}
	}

	var p Params
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: &p})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid parameters in %s: %w", path, err)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters in %s: %w", path, err)
	}
	return &p, nil
}

// Validate checks the documented hyperparameter ranges.
func (p *Params) Validate() error {
	if p.Alpha < 0 {
		return fmt.Errorf("alpha must be non-negative, got %v", p.Alpha)
	}
	if p.L1Ratio < 0 || p.L1Ratio > 1 {
		return fmt.Errorf("l1_ratio must be in [0, 1], got %v", p.L1Ratio)
	}
	return nil
}
