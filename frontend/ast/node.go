package ast

import (
	"encoding/binary"
	"hash/fnv"
)

// Op is a binary connective
type Op uint8

const (
	And Op = iota + 1
	Or
)

const (
	AndSymbol = `/\`
	OrSymbol  = `\/`
	NotSymbol = `~`
)

// Opposite returns Or for And and And for Or
func (o Op) Opposite() Op {
	switch o {
	case And:
		return Or
	case Or:
		return And
	default:
		panic("unhandled default case")
	}
}

// Symbol is the textual connective as written in formulas
func (o Op) Symbol() string {
	switch o {
	case And:
		return AndSymbol
	case Or:
		return OrSymbol
	default:
		return "?"
	}
}

func (o Op) String() string {
	switch o {
	case And:
		return "And"
	case Or:
		return "Or"
	default:
		return "Op(?)"
	}
}

// Node is the base interface for all formula nodes.
//
// The following nodes exist:
//
//	Literal:   variable reference
//	Negation:  ~child
//	Binary:    left /\ right, or left \/ right
//
// Implication is not a node: the parser desugars A -> B into
// Binary(Or, Negation(A), B).
//
// Passes never mutate a Node they receive. A Node that must appear
// in two places of a tree is duplicated with Copy.
type Node interface {
	Positioner
	// Describe is what to call this node in error messages
	Describe() string
	Hash() uint64
	node() // Marker method to close the set of nodes
}

var (
	_ Node = (*Literal)(nil)
	_ Node = (*Negation)(nil)
	_ Node = (*Binary)(nil)
)

// Literal is a variable, like x1 or A
type Literal struct {
	Name string
	Range
}

type Negation struct {
	Child Node
	Range
}

type Binary struct {
	Op          Op
	Left, Right Node
	Range
}

func (*Literal) node()  {}
func (*Negation) node() {}
func (*Binary) node()   {}

func (e *Literal) Describe() string  { return "variable" }
func (e *Negation) Describe() string { return "negation" }
func (e *Binary) Describe() string {
	if e.Op == And {
		return "conjunction"
	}
	return "disjunction"
}

// Hash returns a hash value for the Literal, based on its name only
func (e *Literal) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Literal"))
	_, _ = h.Write([]byte(e.Name))
	return h.Sum64()
}

// Hash returns a hash value for the Negation, based on its structural characteristics
func (e *Negation) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("Negation")
	if e.Child != nil {
		arr = binary.LittleEndian.AppendUint64(arr, e.Child.Hash())
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

// Hash returns a hash value for the Binary, based on its structural characteristics
func (e *Binary) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte{'B', byte(e.Op)}
	if e.Left != nil {
		arr = binary.LittleEndian.AppendUint64(arr, e.Left.Hash())
	}
	if e.Right != nil {
		arr = binary.LittleEndian.AppendUint64(arr, e.Right.Hash())
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

func Var(name string) *Literal {
	return &Literal{Name: name}
}

func Not(child Node) *Negation {
	return &Negation{Child: child, Range: RangeOf(child)}
}

func NewBinary(op Op, left, right Node) *Binary {
	return &Binary{
		Op:    op,
		Left:  left,
		Right: right,
		Range: RangeBetween(left, right),
	}
}

func AndOf(left, right Node) *Binary { return NewBinary(And, left, right) }
func OrOf(left, right Node) *Binary  { return NewBinary(Or, left, right) }

// RootOp returns the connective at the root of n, if n is a Binary
func RootOp(n Node) (Op, bool) {
	if b, ok := n.(*Binary); ok {
		return b.Op, true
	}
	return 0, false
}

// IsRootedAt reports whether n is a Binary with connective op
func IsRootedAt(n Node, op Op) bool {
	root, ok := RootOp(n)
	return ok && root == op
}

// LiteralString returns "x" for the variable x and "~x" for its negation.
// ok is false for any other node.
func LiteralString(n Node) (lit string, ok bool) {
	switch n := n.(type) {
	case *Literal:
		return n.Name, true
	case *Negation:
		if l, isLit := n.Child.(*Literal); isLit {
			return NotSymbol + l.Name, true
		}
	}
	return "", false
}

// IsLiteral reports whether n is a variable or a negated variable
func IsLiteral(n Node) bool {
	_, ok := LiteralString(n)
	return ok
}

// Equal reports whether a and b are structurally identical, ignoring positions
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case *Literal:
		b, ok := b.(*Literal)
		return ok && a.Name == b.Name
	case *Negation:
		b, ok := b.(*Negation)
		return ok && Equal(a.Child, b.Child)
	case *Binary:
		b, ok := b.(*Binary)
		return ok && a.Op == b.Op && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	default:
		return a == nil && b == nil
	}
}
