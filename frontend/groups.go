package frontend

import (
	"cmp"
	"slices"
	"strings"

	"github.com/cottand/nform/frontend/ast"
	"github.com/cottand/nform/frontend/nferr"
	"github.com/hashicorp/go-set/v3"
)

const phaseGroups = "flattening"

var compareLiterals set.CompareFunc[string] = cmp.Compare[string]

// Group is a set of literals, like "x" or "~x", joined by the connective
// opposite to the normal form's outer one: a clause in a CNF, a term in
// a DNF. Literals are kept in lexicographic order.
type Group struct {
	literals set.Collection[string]
	// sorted caches literals.Slice(), groups are compared many times while simplifying
	sorted []string
}

func NewGroup(literals ...string) Group {
	return groupOf(set.TreeSetFrom(literals, compareLiterals))
}

func groupOf(literals set.Collection[string]) Group {
	return Group{literals: literals, sorted: literals.Slice()}
}

// Literals returns the literals of g in lexicographic order
func (g Group) Literals() []string {
	return slices.Clone(g.sorted)
}

func (g Group) Len() int {
	return len(g.sorted)
}

func (g Group) Contains(literal string) bool {
	return g.literals != nil && g.literals.Contains(literal)
}

func (g Group) Equal(other Group) bool {
	return slices.Equal(g.sorted, other.sorted)
}

// StrictSuperset reports whether g contains every literal of other, and more
func (g Group) StrictSuperset(other Group) bool {
	return g.Len() > other.Len() && g.literals.Subset(other.literals)
}

func (g Group) String() string {
	return "{" + strings.Join(g.sorted, ", ") + "}"
}

// CompareGroups is the total order of groups: lexicographic over
// their sorted literals, a prefix sorting first
func CompareGroups(a, b Group) int {
	return slices.Compare(a.sorted, b.sorted)
}

// ToGroups flattens n, in the shape produced by DistributeTo(n, s), into
// the groups it is made of. A literal is a single one-literal group, an
// s-rooted node contributes the groups of both operands, and a node
// rooted at the opposite connective is one group of all literals below it.
func ToGroups(n ast.Node, s ast.Op) ([]Group, error) {
	if lit, ok := ast.LiteralString(n); ok {
		return []Group{NewGroup(lit)}, nil
	}
	b, ok := n.(*ast.Binary)
	if !ok || b == nil {
		return nil, nferr.NewStructural(phaseGroups, n, "expected literal or connective, found %s", describe(n))
	}
	if b.Op != s {
		literals := set.NewTreeSet(compareLiterals)
		if err := collectLiterals(b, s, literals); err != nil {
			return nil, err
		}
		return []Group{groupOf(literals)}, nil
	}
	left, err := ToGroups(b.Left, s)
	if err != nil {
		return nil, err
	}
	right, err := ToGroups(b.Right, s)
	if err != nil {
		return nil, err
	}
	return append(left, right...), nil
}

// collectLiterals inserts every literal below n into literals. Only
// literals and nodes with the connective opposite to s may appear below n.
func collectLiterals(n ast.Node, s ast.Op, literals *set.TreeSet[string]) error {
	if lit, ok := ast.LiteralString(n); ok {
		literals.Insert(lit)
		return nil
	}
	b, ok := n.(*ast.Binary)
	if !ok || b == nil {
		return nferr.NewStructural(phaseGroups, n, "expected literal, found %s", describe(n))
	}
	if b.Op == s {
		return nferr.NewStructural(phaseGroups, b, "%s nested inside a group, the formula was not distributed", b.Describe())
	}
	if err := collectLiterals(b.Left, s, literals); err != nil {
		return err
	}
	return collectLiterals(b.Right, s, literals)
}
