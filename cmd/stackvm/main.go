// Package main implements the stackvm CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "stackvm",
	Short:         "Run and inspect stack-based VM scripts",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(disasmCmd)
	rootCmd.PersistentFlags().String("config", "", "path to a TOML config file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
