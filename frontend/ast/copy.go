package ast

// Copy returns a deep copy of n, so that the result shares no
// pointers with n
func Copy(n Node) Node {
	switch n := n.(type) {
	case *Literal:
		copied := *n
		return &copied
	case *Negation:
		copied := *n
		copied.Child = Copy(n.Child)
		return &copied
	case *Binary:
		copied := *n
		copied.Left = Copy(n.Left)
		copied.Right = Copy(n.Right)
		return &copied
	case nil:
		return nil
	default:
		panic("unhandled default case")
	}
}

// Transform copies n bottom-up, calling f on each copied node once its
// children have been transformed, and returns the result of f on the root
func Transform(n Node, f func(Node) Node) Node {
	switch n := n.(type) {
	case *Literal:
		copied := *n
		return f(&copied)
	case *Negation:
		copied := *n
		copied.Child = Transform(n.Child, f)
		return f(&copied)
	case *Binary:
		copied := *n
		copied.Left = Transform(n.Left, f)
		copied.Right = Transform(n.Right, f)
		return f(&copied)
	default:
		panic("unhandled default case")
	}
}
