package frontend

import (
	"github.com/cottand/nform/frontend/ast"
	"github.com/cottand/nform/frontend/nferr"
	"github.com/cottand/nform/internal/log"
)

var distLogger = ast.NodeLogger(log.DefaultLogger).With("section", "frontend.distribute")

const phaseDistribute = "distribution"

// NeedsDistribution reports whether n still has an s-rooted node
// nested under the opposite connective, which DistributeTo must
// push outwards. n must be in negation normal form.
func NeedsDistribution(n ast.Node, s ast.Op) bool {
	b, ok := n.(*ast.Binary)
	if !ok || b.Op == s {
		return false
	}
	if ast.IsRootedAt(b.Left, s) || ast.IsRootedAt(b.Right, s) {
		return true
	}
	return NeedsDistribution(b.Left, s) || NeedsDistribution(b.Right, s)
}

// DistributeTo rewrites the negation normal form n so that s is the
// outer connective: ast.And yields a conjunction of disjunctions of
// literals, ast.Or a disjunction of conjunctions.
//
// It applies (A s B) o C = (A o C) s (B o C) and its mirror image, where
// o is the opposite of s. C is duplicated by the rewrite, and the
// duplicate is a deep copy. n itself is not modified.
func DistributeTo(n ast.Node, s ast.Op) (ast.Node, error) {
	if !validOp(s) {
		return nil, nferr.NewStructural(phaseDistribute, n, "unknown target connective %v", s)
	}
	d := &distributor{target: s, opposite: s.Opposite()}
	res, err := d.distribute(n)
	if err != nil {
		return nil, err
	}
	distLogger.Debug("distributed", "target", s, "rewrites", d.rewrites, "result", res)
	return res, nil
}

type distributor struct {
	target, opposite ast.Op
	rewrites         int
}

func (d *distributor) distribute(n ast.Node) (ast.Node, error) {
	switch n := n.(type) {
	case *ast.Literal:
		return n, nil
	case *ast.Negation:
		if _, ok := n.Child.(*ast.Literal); !ok {
			return nil, nferr.NewStructural(phaseDistribute, n, "negation of %s is not in negation normal form", describe(n.Child))
		}
		return n, nil
	case *ast.Binary:
		return d.distributeBinary(n)
	case nil:
		return nil, nferr.NewStructural(phaseDistribute, nil, "missing node")
	default:
		return nil, nferr.NewStructural(phaseDistribute, n, "unexpected node %T", n)
	}
}

func (d *distributor) distributeBinary(n *ast.Binary) (ast.Node, error) {
	if n.Left == nil || n.Right == nil {
		return nil, nferr.NewStructural(phaseDistribute, n, "%s with a missing operand", n.Describe())
	}
	if !validOp(n.Op) {
		return nil, nferr.NewStructural(phaseDistribute, n, "unknown connective %v", n.Op)
	}
	left, right := n.Left, n.Right
	var err error
	if n.Op == d.opposite {
		// deeply nested chains of the opposite connective are fixed
		// before this node is rewritten
		if ast.IsRootedAt(left, d.opposite) && NeedsDistribution(left, d.target) {
			if left, err = d.distribute(left); err != nil {
				return nil, err
			}
		}
		if ast.IsRootedAt(right, d.opposite) && NeedsDistribution(right, d.target) {
			if right, err = d.distribute(right); err != nil {
				return nil, err
			}
		}
	}
	current := &ast.Binary{Op: n.Op, Left: left, Right: right, Range: n.Range}
	if NeedsDistribution(current, d.target) {
		if current, err = d.applyDistributiveLaw(current); err != nil {
			return nil, err
		}
	}
	if current.Left, err = d.distribute(current.Left); err != nil {
		return nil, err
	}
	if current.Right, err = d.distribute(current.Right); err != nil {
		return nil, err
	}
	return current, nil
}

// applyDistributiveLaw rewrites the opposite-rooted n, one of whose
// operands is target-rooted, into a target-rooted node
func (d *distributor) applyDistributiveLaw(n *ast.Binary) (*ast.Binary, error) {
	d.rewrites++
	o := n.Op
	// (A s B) o C = (A o C) s (B o C)
	if l, ok := n.Left.(*ast.Binary); ok && l.Op == d.target {
		c := n.Right
		return &ast.Binary{
			Op:    d.target,
			Left:  ast.NewBinary(o, l.Left, c),
			Right: ast.NewBinary(o, l.Right, ast.Copy(c)),
			Range: n.Range,
		}, nil
	}
	// C o (A s B) = (C o A) s (C o B)
	if r, ok := n.Right.(*ast.Binary); ok && r.Op == d.target {
		c := n.Left
		return &ast.Binary{
			Op:    d.target,
			Left:  ast.NewBinary(o, c, r.Left),
			Right: ast.NewBinary(o, ast.Copy(c), r.Right),
			Range: n.Range,
		}, nil
	}
	return nil, nferr.NewStructural(phaseDistribute, n, "%s needs distribution but has no %s operand", n.Describe(), d.target)
}

func describe(n ast.Node) string {
	if n == nil {
		return "nothing"
	}
	return n.Describe()
}
