package frontend

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/cottand/nform/frontend/ast"
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
	"github.com/stretchr/testify/assert"
)

// circuit adds the gates computing n to c, creating an input for every
// variable not yet in vars
func circuit(c *logic.C, n ast.Node, vars map[string]z.Lit) z.Lit {
	switch n := n.(type) {
	case *ast.Literal:
		lit, ok := vars[n.Name]
		if !ok {
			lit = c.Lit()
			vars[n.Name] = lit
		}
		return lit
	case *ast.Negation:
		return circuit(c, n.Child, vars).Not()
	case *ast.Binary:
		l, r := circuit(c, n.Left, vars), circuit(c, n.Right, vars)
		if n.Op == ast.And {
			return c.And(l, r)
		}
		return c.Or(l, r)
	default:
		panic(fmt.Sprintf("unexpected node %T", n))
	}
}

// satEquivalent reports whether a xor b is unsatisfiable
func satEquivalent(a, b ast.Node) bool {
	c := logic.NewC()
	vars := map[string]z.Lit{}
	differ := c.Xor(circuit(c, a, vars), circuit(c, b, vars))

	g := gini.New()
	c.ToCnf(g)
	g.Assume(differ)
	return g.Solve() == -1
}

func TestSatOracleAgreesWithTruthTable(t *testing.T) {
	assert.True(t, satEquivalent(mustParse(t, `A->B`), mustParse(t, `~B->~A`)))
	assert.False(t, satEquivalent(mustParse(t, `A->B`), mustParse(t, `B->A`)))
}

func TestRandomFormulasAgainstSatOracle(t *testing.T) {
	r := rand.New(rand.NewPCG(13, 17))
	c := NewConverter(nil)
	for i := range 100 {
		// more variables than the truth tables of the other tests enumerate
		input := randomFormula(r, 4, 12)
		for _, form := range []Form{CNF, DNF} {
			groups, err := c.ConvertNode(input, form)
			if !assert.NoError(t, err) {
				continue
			}
			out := ToNode(groups, form.Target())
			assert.True(t, satEquivalent(input, out), "%d: %s of %s is %s", i, form, ast.String(input), Render(groups, form.Target()))
		}
	}
}
