// Package nform converts propositional formulas into simplified
// conjunctive and disjunctive normal forms.
//
// Formulas are written with /\ (and), \/ (or), ~ (not), -> (implication)
// and parentheses, over variables made of one letter and optional
// digits, like x, Y or x12:
//
//	res, err := nform.Convert(`(A->B)->C`, nform.Options{})
//	// res.CNF == `(A\/C)/\(C\/~B)`, res.DNF == `(A/\~B)\/C`
package nform

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/cottand/nform/frontend"
	"github.com/cottand/nform/frontend/ast"
	"github.com/cottand/nform/frontend/nferr"
	"github.com/cottand/nform/internal/log"
	"github.com/cottand/nform/parser"
)

var logger = log.DefaultLogger.With("section", "nform")

type Options struct {
	// Lenient skips illegal characters instead of failing on them.
	// The skipped characters are reported in Result.Diagnostics.
	Lenient bool
	// Verify checks both normal forms against the input formula with a
	// truth table, for formulas of at most frontend.MaxEquivalenceVars variables
	Verify bool
	// MaxDepth bounds nesting in the input, parser.DefaultMaxDepth if zero
	MaxDepth int
}

func (o Options) parser() *parser.Parser {
	mode := parser.LexStrict
	if o.Lenient {
		mode = parser.LexLenient
	}
	depth := o.MaxDepth
	if depth == 0 {
		depth = parser.DefaultMaxDepth
	}
	return parser.NewParser(parser.WithLexMode(mode), parser.WithMaxDepth(depth))
}

// Result holds both normal forms of a formula
type Result struct {
	// Input is the formula as parsed, with implications desugared
	Input ast.Node
	CNF   string
	DNF   string
	// CNFGroups and DNFGroups are the clauses and terms CNF and DNF are rendered from
	CNFGroups []frontend.Group
	DNFGroups []frontend.Group
	// Diagnostics holds non-fatal problems, like characters skipped in lenient mode
	Diagnostics *nferr.Errors
}

// Convert parses text once and computes both its normal forms
func Convert(text string, opts Options) (*Result, error) {
	c := frontend.NewConverter(opts.parser())
	n, diagnostics, err := c.Parser().Parse(text)
	if err != nil {
		return nil, err
	}
	res := &Result{Input: n, Diagnostics: diagnostics}
	if res.CNFGroups, err = c.ConvertNode(n, frontend.CNF); err != nil {
		return nil, err
	}
	if res.DNFGroups, err = c.ConvertNode(n, frontend.DNF); err != nil {
		return nil, err
	}
	res.CNF = frontend.Render(res.CNFGroups, frontend.CNF.Target())
	res.DNF = frontend.Render(res.DNFGroups, frontend.DNF.Target())

	if opts.Verify {
		if err := verify(n, res.CNFGroups, frontend.CNF); err != nil {
			return nil, err
		}
		if err := verify(n, res.DNFGroups, frontend.DNF); err != nil {
			return nil, err
		}
		logger.Debug("verified normal forms", "input", text)
	}
	return res, nil
}

func verify(input ast.Node, groups []frontend.Group, form frontend.Form) error {
	counterexample, err := frontend.FindCounterexample(input, frontend.ToNode(groups, form.Target()))
	if err != nil {
		return fmt.Errorf("could not verify %s: %w", form, err)
	}
	if counterexample != nil {
		return nferr.NewStructural("verification", input, "%s %s is not equivalent to the input, see %s",
			form, frontend.Render(groups, form.Target()), showAssignment(counterexample))
	}
	return nil
}

func showAssignment(assignment map[string]bool) string {
	names := make([]string, 0, len(assignment))
	for name := range assignment {
		names = append(names, name)
	}
	slices.Sort(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%t", name, assignment[name])
	}
	return strings.Join(parts, " ")
}

// FormatError renders err for display. Diagnostics raised by the
// conversion point at the offending position in source.
func FormatError(err error, source string) string {
	var nfErr nferr.NfError
	if errors.As(err, &nfErr) {
		return nferr.FormatWithSource(nfErr, source)
	}
	return err.Error()
}
