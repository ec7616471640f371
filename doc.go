/*
Package diabetes runs a reproducible batch training workflow: it reads a
small YAML parameters file, fits an elastic-net linear regression on a
bundled reference dataset, scores the fit on a fixed holdout partition,
and persists the metrics and the fitted model to disk.

The workflow is a straight line. Configuration is read once; the dataset
split uses a fixed seed, so for a given params.yaml every run reproduces
the same partitions and the same R². Any failure (missing parameter,
corrupt dataset, non-convergent fit, write error) aborts the run before
artifacts are finalized.

# Usage

Run the whole workflow with defaults (params.yaml in, metrics.yaml and
model.bin out):

	package main

	import (
		"context"
		"log"

		"github.com/dberenbaum/diabetes"
	)

	func main() {
		res, err := diabetes.Run(context.Background())
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("holdout R²: %.4f", res.Eval.R2)
	}

For finer control build an Experiment with options:

	exp := diabetes.New(
		diabetes.WithParamsPath("conf/params.yaml"),
		diabetes.WithModelPath("out/model.bin"),
		diabetes.WithLogger(slog.Default()),
	)
	res, err := exp.Run(context.Background())

A persisted model can be reloaded for scoring without retraining:

	model, err := regression.Load("model.bin")
	preds, err := model.Predict(x)

The solver and model types live in pkg/regression, the bundled dataset in
pkg/dataset, and the metric computations in pkg/evaluation.
*/
package diabetes
