// Command cmparith is the CLI entry point for the shell and the library
// showcase (SPEC_FULL.md §6.3).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skafara/cmparith"
	"github.com/skafara/cmparith/shell"
)

// fixedShellWidth is mode 2's width: 32 bytes (256-bit signed), chosen per
// SPEC_FULL.md §6.3 as a generous fixed mode distinct from the terminal's
// usual 4-byte/int32 default that the library's own tests exercise.
const fixedShellWidth = 32

func main() {
	root := &cobra.Command{
		Use:   "cmparith <mode>",
		Short: "Multi-precision signed integer arithmetic shell and showcase",
		Args:  cobra.ExactArgs(1),
		RunE:  runMode,
	}
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runMode(cmd *cobra.Command, args []string) error {
	switch args[0] {
	case "1":
		return shell.New(cmparith.Unlimited, os.Stdin, os.Stdout).Run()
	case "2":
		return shell.New(cmparith.FixedWidth(fixedShellWidth), os.Stdin, os.Stdout).Run()
	case "3":
		runShowcase(os.Stdout)
		return nil
	default:
		return fmt.Errorf("unknown mode %q: must be 1, 2 or 3", args[0])
	}
}
