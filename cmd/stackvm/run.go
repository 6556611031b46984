package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stackvm"
)

var runCmd = &cobra.Command{
	Use:   "run <demo>",
	Short: "Execute one of the built-in demo scripts",
	Args:  cobra.ExactArgs(1),
	RunE:  runExecute,
}

func runExecute(cmd *cobra.Command, args []string) error {
	build, ok := demoScripts[args[0]]
	if !ok {
		return fmt.Errorf("unknown demo %q (available: %v)", args[0], demoNames())
	}
	script := build()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg := stackvm.Config{}
	if configPath != "" {
		cfg, err = stackvm.LoadConfig(configPath)
		if err != nil {
			return err
		}
	}

	if err := stackvm.Run(script, os.Stdin, os.Stdout, cfg); err != nil {
		stackvm.ReportError(os.Stderr, err)
		return err
	}
	return nil
}
