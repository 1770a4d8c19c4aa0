package frontend

import (
	"fmt"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/cottand/nform/frontend/ast"
)

// MaxEquivalenceVars bounds the truth tables Equivalent is willing to enumerate
const MaxEquivalenceVars = 20

type nameComparer struct{}

func (nameComparer) Compare(a, b string) int { return strings.Compare(a, b) }

// Equivalent reports whether a and b have the same truth value under
// every assignment of their variables
func Equivalent(a, b ast.Node) (bool, error) {
	counterexample, err := FindCounterexample(a, b)
	if err != nil {
		return false, err
	}
	return counterexample == nil, nil
}

// FindCounterexample returns an assignment of the variables of a and b
// under which they evaluate differently, or nil if there is none.
func FindCounterexample(a, b ast.Node) (map[string]bool, error) {
	vars := ast.Vars(a, b)
	if len(vars) > MaxEquivalenceVars {
		return nil, fmt.Errorf("cannot compare formulas over %d variables, at most %d are supported", len(vars), MaxEquivalenceVars)
	}
	e := &enumerator{a: a, b: b, vars: vars}
	found, err := e.search(0, immutable.NewSortedMap[string, bool](nameComparer{}))
	if err != nil || found == nil {
		return nil, err
	}
	counterexample := make(map[string]bool, len(vars))
	for _, name := range vars {
		counterexample[name], _ = found.Get(name)
	}
	return counterexample, nil
}

type enumerator struct {
	a, b ast.Node
	vars []string
}

// search extends assignment with every value of vars[i:], sharing the
// common prefix between branches
func (e *enumerator) search(i int, assignment *immutable.SortedMap[string, bool]) (*immutable.SortedMap[string, bool], error) {
	if i == len(e.vars) {
		va, err := ast.Eval(e.a, assignment)
		if err != nil {
			return nil, err
		}
		vb, err := ast.Eval(e.b, assignment)
		if err != nil {
			return nil, err
		}
		if va != vb {
			return assignment, nil
		}
		return nil, nil
	}
	for _, value := range []bool{false, true} {
		found, err := e.search(i+1, assignment.Set(e.vars[i], value))
		if err != nil || found != nil {
			return found, err
		}
	}
	return nil, nil
}
