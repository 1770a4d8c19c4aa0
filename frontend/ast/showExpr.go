package ast

import (
	"strings"
)

// binding strength, higher binds tighter
const (
	precOr  int16 = 1
	precAnd int16 = 2
	precNot int16 = 3
)

func precedence(op Op) int16 {
	if op == And {
		return precAnd
	}
	return precOr
}

// String renders n back to formula syntax, parenthesising only where
// needed to preserve the tree shape. The result parses back to a tree
// Equal to n.
func String(n Node) string {
	ctx := newShowContext()
	ctx.showWalker(n, 0)
	return ctx.String()
}

type showContext struct {
	*strings.Builder
}

func newShowContext() *showContext {
	return &showContext{
		Builder: &strings.Builder{},
	}
}

func (ctx *showContext) showWalker(n Node, outerPrecedence int16) {
	switch n := n.(type) {
	case nil:
		ctx.WriteString("nil")
	case *Literal:
		ctx.WriteString(n.Name)
	case *Negation:
		ctx.WriteString(NotSymbol)
		ctx.showWalker(n.Child, precNot)
	case *Binary:
		prec := precedence(n.Op)
		if outerPrecedence >= prec {
			ctx.WriteString("(")
			defer ctx.WriteString(")")
		}
		// left-associative: a left child with the same connective needs no parens
		ctx.showWalker(n.Left, prec-1)
		ctx.WriteString(n.Op.Symbol())
		ctx.showWalker(n.Right, prec)
	}
}

// Dump renders the tree structure of n, as in
// Binary(Or, Negation(Literal(A)), Literal(B))
func Dump(n Node) string {
	sb := &strings.Builder{}
	dumpWalker(sb, n)
	return sb.String()
}

func dumpWalker(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case nil:
		sb.WriteString("nil")
	case *Literal:
		sb.WriteString("Literal(" + n.Name + ")")
	case *Negation:
		sb.WriteString("Negation(")
		dumpWalker(sb, n.Child)
		sb.WriteString(")")
	case *Binary:
		sb.WriteString("Binary(" + n.Op.String() + ", ")
		dumpWalker(sb, n.Left)
		sb.WriteString(", ")
		dumpWalker(sb, n.Right)
		sb.WriteString(")")
	}
}
