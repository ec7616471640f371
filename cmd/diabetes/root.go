package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "diabetes",
	Short: "Train and evaluate an elastic-net regression on the bundled reference dataset",
	Long: `diabetes runs a reproducible batch training workflow: it reads
hyperparameters from params.yaml, fits an elastic-net linear regression on
the bundled reference dataset, and writes metrics.yaml and a reloadable
model artifact.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
