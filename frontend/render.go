package frontend

import (
	"strings"

	"github.com/cottand/nform/frontend/ast"
)

// Render writes groups back as formula text: groups joined by s, each
// group with more than one literal parenthesised and joined by the
// opposite connective. A normal form made of a single group needs no
// parentheses at all.
func Render(groups []Group, s ast.Op) string {
	o := s.Opposite()
	if len(groups) == 1 {
		return strings.Join(groups[0].Literals(), o.Symbol())
	}
	sb := &strings.Builder{}
	for i, g := range groups {
		if i > 0 {
			sb.WriteString(s.Symbol())
		}
		if g.Len() == 1 {
			sb.WriteString(g.Literals()[0])
			continue
		}
		sb.WriteString("(")
		sb.WriteString(strings.Join(g.Literals(), o.Symbol()))
		sb.WriteString(")")
	}
	return sb.String()
}

// ToNode builds the tree of the normal form described by groups, with
// left-nested chains of s over left-nested chains of its opposite.
// It returns nil for no groups.
func ToNode(groups []Group, s ast.Op) ast.Node {
	var res ast.Node
	for _, g := range groups {
		var group ast.Node
		for _, lit := range g.Literals() {
			var litNode ast.Node
			if name, negated := strings.CutPrefix(lit, ast.NotSymbol); negated {
				litNode = ast.Not(ast.Var(name))
			} else {
				litNode = ast.Var(lit)
			}
			if group == nil {
				group = litNode
			} else {
				group = ast.NewBinary(s.Opposite(), group, litNode)
			}
		}
		if group == nil {
			continue
		}
		if res == nil {
			res = group
		} else {
			res = ast.NewBinary(s, res, group)
		}
	}
	return res
}
