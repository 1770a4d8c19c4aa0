package cmd

import (
	"fmt"

	"github.com/cottand/nform/frontend"
	"github.com/cottand/nform/frontend/ast"
	"github.com/cottand/nform/nform"
	"github.com/cottand/nform/parser"
	"github.com/spf13/cobra"
)

var ParseCmd = &cobra.Command{
	Use:          "parse <formula>",
	Short:        "Print the syntax tree of a formula and its negation normal form",
	RunE:         runParse,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var parseLenient bool

func init() {
	ParseCmd.Flags().BoolVar(&parseLenient, "lenient", false, "skip illegal characters instead of failing")
}

func runParse(cmd *cobra.Command, args []string) error {
	formula := args[0]
	p := parser.NewParser(parser.WithLexMode(lexModeFor(cmd, parseLenient)))
	n, diagnostics, err := p.Parse(formula)
	if err != nil {
		return fmt.Errorf("invalid formula:\n%s", nform.FormatError(err, formula))
	}
	printWarnings(cmd.ErrOrStderr(), diagnostics.Messages(formula))
	nnf, err := frontend.Normalize(n)
	if err != nil {
		return fmt.Errorf("could not normalize formula (this is a bug): %w", err)
	}

	out := cmd.OutOrStdout()
	printLabelled(out, "Tree", ast.Dump(n))
	printLabelled(out, "Formula", ast.String(n))
	printLabelled(out, "NNF", ast.String(nnf))
	printLabelled(out, "Variables", fmt.Sprint(ast.Vars(n)))
	return nil
}
