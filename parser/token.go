package parser

import (
	"fmt"
	"go/token"

	"github.com/cottand/nform/frontend/ast"
)

// Kind represents the category of a formula token.
type Kind uint8

const (
	// Invalid is the zero Kind, never produced by the lexer
	Invalid Kind = iota
	// Variable is a letter optionally followed by digits, like x1 or Y
	Variable
	And         // /\
	Or          // \/
	Not         // ~
	Implication // ->
	LeftParen   // (
	RightParen  // )
)

func (k Kind) String() string {
	switch k {
	case Variable:
		return "Variable"
	case And:
		return "And"
	case Or:
		return "Or"
	case Not:
		return "Not"
	case Implication:
		return "Implication"
	case LeftParen:
		return "LeftParen"
	case RightParen:
		return "RightParen"
	default:
		return "Invalid"
	}
}

// Token is a single lexeme of a formula
type Token struct {
	Kind Kind
	Text string
	// Offset is the character offset of the first character of the token
	Offset int
	// Line is the 1-based line the token starts on
	Line int
}

func (t Token) Pos() token.Pos { return token.Pos(t.Offset) }
func (t Token) End() token.Pos { return token.Pos(t.Offset + len([]rune(t.Text))) }

func (t Token) Range() ast.Range {
	return ast.Range{PosStart: t.Pos(), PosEnd: t.End()}
}

func (t Token) String() string {
	if t.Kind == Variable {
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	}
	return t.Kind.String()
}
