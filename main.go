//go:build !(js || wasm)

package main

import (
	"os"

	"github.com/cottand/nform/cmd"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		cmd.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "nform [subcommand]",
	Short:             "nform converts propositional formulas to conjunctive and disjunctive normal form",
	PersistentPreRunE: cmd.Setup,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func init() {
	cmd.AddPersistentFlags(rootCmd)
	rootCmd.AddCommand(cmd.ConvertCmd)
	rootCmd.AddCommand(cmd.TokenizeCmd)
	rootCmd.AddCommand(cmd.ParseCmd)
}
