package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dberenbaum/diabetes"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of diabetes",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("diabetes version %s\n", strings.TrimSpace(diabetes.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
