package diabetes

import "context"

// Run builds an Experiment from the given options and executes it. This is
// the one-shot entry point used by the CLI and by hosts that don't need to
// hold on to the Experiment.
func Run(ctx context.Context, opts ...Option) (*Result, error) {
	return New(opts...).Run(ctx)
}
