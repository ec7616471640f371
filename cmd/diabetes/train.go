package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dberenbaum/diabetes"
	"github.com/dberenbaum/diabetes/internal/logging"
)

// trainCmd represents the train command
var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Run the training workflow and persist metrics and model",
	Run: func(cmd *cobra.Command, args []string) {
		paramsPath, _ := cmd.Flags().GetString("params")
		metricsPath, _ := cmd.Flags().GetString("metrics")
		modelPath, _ := cmd.Flags().GetString("model")
		verbose, _ := cmd.Flags().GetBool("verbose")

		res, err := diabetes.Run(context.Background(),
			diabetes.WithParamsPath(paramsPath),
			diabetes.WithMetricsPath(metricsPath),
			diabetes.WithModelPath(modelPath),
			diabetes.WithLogger(logging.New(verbose)),
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("r2: %v\n", res.Eval.R2)
	},
}

func init() {
	rootCmd.AddCommand(trainCmd)

	trainCmd.Flags().String("params", "params.yaml", "Path to the parameters file")
	trainCmd.Flags().String("metrics", "metrics.yaml", "Path to write the metrics file")
	trainCmd.Flags().String("model", "model.bin", "Path to write the model artifact")
	trainCmd.Flags().BoolP("verbose", "v", false, "Log each workflow step to stderr")

	// Running the binary with no subcommand trains.
	rootCmd.Run = trainCmd.Run
	rootCmd.Flags().AddFlagSet(trainCmd.Flags())
}
