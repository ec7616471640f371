package diabetes

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dberenbaum/diabetes/internal/artifacts"
	"github.com/dberenbaum/diabetes/internal/config"
	"github.com/dberenbaum/diabetes/internal/logging"
	"github.com/dberenbaum/diabetes/pkg/dataset"
	"github.com/dberenbaum/diabetes/pkg/evaluation"
	"github.com/dberenbaum/diabetes/pkg/regression"
)

// Version of the module, reported by the CLI.
var Version = "0.1.0"

// Experiment is the high-level entry point for the training workflow. It
// wires the configuration, dataset, solver and artifact writers together
// and provides a single Run call for consumers.
type Experiment struct {
	paramsPath  string
	metricsPath string
	modelPath   string
	holdout     float64
	seed        int64
	logger      *slog.Logger
}

// Option defines a functional option for configuring the Experiment.
type Option func(*Experiment)

// WithParamsPath overrides where the parameters file is read from.
func WithParamsPath(path string) Option {
	return func(e *Experiment) {
		e.paramsPath = path
	}
}

// WithMetricsPath overrides where the metrics file is written.
func WithMetricsPath(path string) Option {
	return func(e *Experiment) {
		e.metricsPath = path
	}
}

// WithModelPath overrides where the model artifact is written.
func WithModelPath(path string) Option {
	return func(e *Experiment) {
		e.modelPath = path
	}
}

// WithLogger sets a custom structured logger for the workflow.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Experiment) {
		e.logger = logger
	}
}

// WithSplitSeed overrides the dataset split seed. The default is fixed so
// runs are reproducible; changing it changes the holdout partition.
func WithSplitSeed(seed int64) Option {
	return func(e *Experiment) {
		e.seed = seed
	}
}

// New creates an Experiment with default paths (params.yaml, metrics.yaml,
// model.bin in the working directory) and a discarded logger.
func New(opts ...Option) *Experiment {
	e := &Experiment{
		paramsPath:  config.DefaultPath,
		metricsPath: artifacts.DefaultMetricsPath,
		modelPath:   artifacts.DefaultModelPath,
		holdout:     dataset.DefaultHoldout,
		seed:        dataset.DefaultSeed,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.NewNop()
	}
	return e
}

// Result collects what a run produced, for callers that want more than
// the side-effect artifacts.
type Result struct {
	Params config.Params
	Eval   evaluation.Eval
	Model  *regression.Model
}

// Run executes the workflow start to finish: load parameters, load and
// split the dataset, fit, evaluate, persist. The first error aborts the
// run; artifacts are only written after a successful fit and evaluation.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	params, err := config.Load(e.paramsPath)
	if err != nil {
		return nil, err
	}
	e.logger.Info("loaded parameters", "alpha", params.Alpha, "l1_ratio", params.L1Ratio)

	tbl, err := dataset.Load()
	if err != nil {
		return nil, err
	}
	train, test, err := dataset.Split(tbl, e.holdout, e.seed)
	if err != nil {
		return nil, err
	}
	e.logger.Info("split dataset", "train", train.Len(), "holdout", test.Len(), "seed", e.seed)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	model, err := regression.NewElasticNet(params.Alpha, params.L1Ratio).Fit(train.X, train.Target)
	if err != nil {
		return nil, fmt.Errorf("fit failed: %w", err)
	}
	e.logger.Info("fit model", "sweeps", model.Iters, "zero_weights", model.Sparsity())

	preds, err := model.Predict(test.X)
	if err != nil {
		return nil, err
	}
	ev, err := evaluation.Evaluate(preds, test.Target)
	if err != nil {
		return nil, err
	}
	if err := ev.Check(); err != nil {
		return nil, fmt.Errorf("evaluation failed: %w", err)
	}
	e.logger.Info("evaluated model", "r2", ev.R2, "rmse", ev.RMSE)

	if err := artifacts.WriteMetrics(e.metricsPath, ev); err != nil {
		return nil, err
	}
	if err := regression.Save(model, e.modelPath); err != nil {
		return nil, err
	}
	e.logger.Info("persisted artifacts", "metrics", e.metricsPath, "model", e.modelPath)

	return &Result{Params: *params, Eval: *ev, Model: model}, nil
}
