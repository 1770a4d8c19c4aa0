package cmd

import (
	"fmt"

	"github.com/cottand/nform/nform"
	"github.com/cottand/nform/parser"
	"github.com/spf13/cobra"
)

var TokenizeCmd = &cobra.Command{
	Use:          "tokenize <formula>",
	Short:        "Print the tokens of a formula, one per line",
	RunE:         runTokenize,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var tokenizeLenient bool

func init() {
	TokenizeCmd.Flags().BoolVar(&tokenizeLenient, "lenient", false, "skip illegal characters instead of failing")
}

func lexModeFor(cmd *cobra.Command, lenient bool) parser.LexMode {
	if !cmd.Flags().Changed("lenient") {
		lenient = settings.Lenient
	}
	if lenient {
		return parser.LexLenient
	}
	return parser.LexStrict
}

func runTokenize(cmd *cobra.Command, args []string) error {
	formula := args[0]
	tokens, diagnostics, err := parser.Tokenize(formula, lexModeFor(cmd, tokenizeLenient))
	if err != nil {
		return fmt.Errorf("invalid formula:\n%s", nform.FormatError(err, formula))
	}
	printWarnings(cmd.ErrOrStderr(), diagnostics.Messages(formula))
	out := cmd.OutOrStdout()
	for _, tok := range tokens {
		_, _ = fmt.Fprintf(out, "%d:%d\t%s\t%q\n", tok.Line, tok.Offset, tok.Kind, tok.Text)
	}
	return nil
}
