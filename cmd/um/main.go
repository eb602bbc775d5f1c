package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ktstephano/um/vm"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "um <program>",
		Short: "Run a Universal Machine program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgram(args[0])
		},
	}
	// Cobra's default Execute() path prints "Error: ..." plus the full
	// usage block on any RunE error; the single diagnostic line below is
	// the only one we want on a load error or a runtime trap.
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runProgram(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	program, err := vm.Load(f)
	if err != nil {
		return err
	}

	m := vm.NewMachine(program, os.Stdout, os.Stdin)
	if err := m.Run(); err != nil {
		return err
	}
	return nil
}
