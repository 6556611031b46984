package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stackvm"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm <demo>",
	Short: "Disassemble one of the built-in demo scripts",
	Args:  cobra.ExactArgs(1),
	RunE:  disasmExecute,
}

func disasmExecute(cmd *cobra.Command, args []string) error {
	build, ok := demoScripts[args[0]]
	if !ok {
		return fmt.Errorf("unknown demo %q (available: %v)", args[0], demoNames())
	}
	return stackvm.Disassemble(os.Stdout, build())
}
