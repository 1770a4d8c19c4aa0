package frontend

import (
	"github.com/cottand/nform/frontend/ast"
	"github.com/cottand/nform/frontend/nferr"
	"github.com/cottand/nform/internal/log"
)

var nnfLogger = ast.NodeLogger(log.DefaultLogger).With("section", "frontend.nnf")

const phaseNNF = "negation normalization"

// Normalize rewrites n into negation normal form, where every Negation
// applies to a Literal. It uses De Morgan's laws to push negations
// towards the leaves and removes double negations.
//
// n is not modified; the result shares no nodes with it.
func Normalize(n ast.Node) (ast.Node, error) {
	switch n := n.(type) {
	case *ast.Literal:
		return ast.Copy(n), nil
	case *ast.Negation:
		return normalizeNegation(n)
	case *ast.Binary:
		if !validOp(n.Op) {
			return nil, nferr.NewStructural(phaseNNF, n, "unknown connective %v", n.Op)
		}
		left, err := Normalize(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := Normalize(n.Right)
		if err != nil {
			return nil, err
		}
		return &ast.Binary{Op: n.Op, Left: left, Right: right, Range: n.Range}, nil
	case nil:
		return nil, nferr.NewStructural(phaseNNF, nil, "missing node")
	default:
		return nil, nferr.NewStructural(phaseNNF, n, "unexpected node %T", n)
	}
}

func normalizeNegation(n *ast.Negation) (ast.Node, error) {
	switch child := n.Child.(type) {
	case *ast.Literal:
		return &ast.Negation{Child: ast.Copy(child), Range: n.Range}, nil
	case *ast.Negation:
		// ~~X = X
		nnfLogger.Debug("eliminating double negation", "node", n)
		return Normalize(child.Child)
	case *ast.Binary:
		if !validOp(child.Op) {
			return nil, nferr.NewStructural(phaseNNF, child, "unknown connective %v", child.Op)
		}
		// ~(L /\ R) = ~L \/ ~R, and ~(L \/ R) = ~L /\ ~R
		nnfLogger.Debug("applying De Morgan", "node", n)
		left, err := Normalize(&ast.Negation{Child: child.Left, Range: ast.RangeOf(child.Left)})
		if err != nil {
			return nil, err
		}
		right, err := Normalize(&ast.Negation{Child: child.Right, Range: ast.RangeOf(child.Right)})
		if err != nil {
			return nil, err
		}
		return &ast.Binary{Op: child.Op.Opposite(), Left: left, Right: right, Range: n.Range}, nil
	case nil:
		return nil, nferr.NewStructural(phaseNNF, n, "negation without operand")
	default:
		return nil, nferr.NewStructural(phaseNNF, n, "unexpected node %T under negation", child)
	}
}

func validOp(op ast.Op) bool {
	return op == ast.And || op == ast.Or
}
