package ast

import (
	"fmt"
	"iter"
	"sort"

	"github.com/cottand/nform/util"
	"github.com/xtgo/set"
)

// Valuation binds variable names to truth values.
// immutable.SortedMap[string, bool] and MapValuation both satisfy it.
type Valuation interface {
	Get(name string) (value bool, ok bool)
}

// MapValuation is a Valuation backed by a plain map
type MapValuation map[string]bool

func (m MapValuation) Get(name string) (bool, bool) {
	v, ok := m[name]
	return v, ok
}

// Eval computes the truth value of n under v.
// It fails if v lacks a binding for one of the variables of n.
func Eval(n Node, v Valuation) (bool, error) {
	switch n := n.(type) {
	case *Literal:
		b, ok := v.Get(n.Name)
		if !ok {
			return false, fmt.Errorf("valuation lacks binding for variable %s", n.Name)
		}
		return b, nil
	case *Negation:
		b, err := Eval(n.Child, v)
		return !b, err
	case *Binary:
		l, err := Eval(n.Left, v)
		if err != nil {
			return false, err
		}
		// no short-circuit, so that missing bindings are always reported
		r, err := Eval(n.Right, v)
		if err != nil {
			return false, err
		}
		if n.Op == And {
			return l && r, nil
		}
		return l || r, nil
	default:
		return false, fmt.Errorf("cannot evaluate %T", n)
	}
}

// Nodes iterates over n and all its descendants, in pre-order
func Nodes(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		var stack util.Stack[Node]
		stack.Push(n)
		for {
			current, ok := stack.Pop()
			if !ok {
				return
			}
			if current == nil {
				continue
			}
			if !yield(current) {
				return
			}
			switch current := current.(type) {
			case *Negation:
				stack.Push(current.Child)
			case *Binary:
				stack.Push(current.Right)
				stack.Push(current.Left)
			}
		}
	}
}

// Vars returns the names of the variables occurring in nodes,
// sorted and without duplicates
func Vars(nodes ...Node) []string {
	all := make([]iter.Seq[Node], len(nodes))
	for i, n := range nodes {
		all[i] = Nodes(n)
	}
	var names []string
	for n := range util.ConcatIter(all...) {
		if l, ok := n.(*Literal); ok {
			names = append(names, l.Name)
		}
	}
	sorted := sort.StringSlice(names)
	sort.Sort(sorted)
	return sorted[:set.Uniq(sorted)]
}

// Depth is the number of nodes on the longest root-to-leaf path of n
func Depth(n Node) int {
	switch n := n.(type) {
	case *Negation:
		return 1 + Depth(n.Child)
	case *Binary:
		return 1 + max(Depth(n.Left), Depth(n.Right))
	case nil:
		return 0
	default:
		return 1
	}
}
