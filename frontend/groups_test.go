package frontend

import (
	"testing"

	"github.com/cottand/nform/frontend/ast"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func literalsOf(groups []Group) [][]string {
	res := make([][]string, len(groups))
	for i, g := range groups {
		res[i] = g.Literals()
	}
	return res
}

func groupsOf(literals ...[]string) []Group {
	res := make([]Group, len(literals))
	for i, l := range literals {
		res[i] = NewGroup(l...)
	}
	return res
}

func assertGroups(t *testing.T, expected [][]string, actual []Group) {
	t.Helper()
	if diff := cmp.Diff(expected, literalsOf(actual), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupIsASet(t *testing.T) {
	g := NewGroup("~A", "B", "A", "B")
	assert.Equal(t, []string{"A", "B", "~A"}, g.Literals())
	assert.Equal(t, 3, g.Len())
	assert.True(t, g.Contains("~A"))
	assert.False(t, g.Contains("~B"))
	assert.Equal(t, "{A, B, ~A}", g.String())

	assert.True(t, g.Equal(NewGroup("B", "~A", "A")))
	assert.False(t, g.Equal(NewGroup("A", "B")))
}

func TestGroupLiteralsAreACopy(t *testing.T) {
	g := NewGroup("B", "A")
	lits := g.Literals()
	lits[0] = "Z"
	assert.Equal(t, []string{"A", "B"}, g.Literals())
	assert.True(t, g.Equal(NewGroup("A", "B")))
	assert.Zero(t, CompareGroups(g, NewGroup("A", "B")))

	groups, err := ToGroups(mustParse(t, `C\/~A\/C\/B`), ast.And)
	assert.NoError(t, err)
	if assert.Len(t, groups, 1) {
		assert.Equal(t, 3, groups[0].Len())
		assert.True(t, groups[0].Equal(NewGroup("B", "C", "~A")))
		assert.Equal(t, "{B, C, ~A}", groups[0].String())
	}
}

func TestSimplifyReordersUnsortedInput(t *testing.T) {
	in := groupsOf([]string{"~A", "B"}, []string{"B", "A"}, []string{"A", "B"})
	assert.Equal(t, [][]string{{"B", "~A"}, {"A", "B"}, {"A", "B"}}, literalsOf(in))
	assertGroups(t, [][]string{{"A", "B"}, {"B", "~A"}}, Simplify(in))
	assertGroups(t, [][]string{{"B", "~A"}, {"A", "B"}, {"A", "B"}}, in)
}

func TestGroupStrictSuperset(t *testing.T) {
	ab := NewGroup("A", "B")
	assert.True(t, NewGroup("A", "B", "C").StrictSuperset(ab))
	assert.False(t, ab.StrictSuperset(ab))
	assert.False(t, ab.StrictSuperset(NewGroup("A", "B", "C")))
	assert.False(t, NewGroup("A", "C", "D").StrictSuperset(ab))
}

func TestCompareGroups(t *testing.T) {
	assert.Negative(t, CompareGroups(NewGroup("A"), NewGroup("A", "B")))
	assert.Negative(t, CompareGroups(NewGroup("A", "C"), NewGroup("B")))
	assert.Negative(t, CompareGroups(NewGroup("B"), NewGroup("~A")))
	assert.Zero(t, CompareGroups(NewGroup("B", "A"), NewGroup("A", "B")))
	assert.Positive(t, CompareGroups(NewGroup("a"), NewGroup("B")))
}

func TestToGroups(t *testing.T) {
	cnf := distributed(t, `(A/\B)\/(C\/~D)`, ast.And)
	groups, err := ToGroups(cnf, ast.And)
	assert.NoError(t, err)
	assertGroups(t, [][]string{{"A", "C", "~D"}, {"B", "C", "~D"}}, groups)

	groups, err = ToGroups(ast.Not(ast.Var("x")), ast.Or)
	assert.NoError(t, err)
	assertGroups(t, [][]string{{"~x"}}, groups)

	groups, err = ToGroups(mustParse(t, `A\/A\/B`), ast.And)
	assert.NoError(t, err)
	assertGroups(t, [][]string{{"A", "B"}}, groups)
}

func TestToGroupsRejectsUndistributed(t *testing.T) {
	_, err := ToGroups(mustParse(t, `A\/(B/\C)`), ast.And)
	assert.ErrorContains(t, err, "was not distributed")

	_, err = ToGroups(mustParse(t, `~~A`), ast.And)
	assert.ErrorContains(t, err, "expected literal or connective")

	_, err = ToGroups(nil, ast.Or)
	assert.ErrorContains(t, err, "found nothing")
}

func TestSimplify(t *testing.T) {
	cases := []struct {
		name     string
		in       [][]string
		expected [][]string
	}{
		{"empty", nil, [][]string{}},
		{"sorts", [][]string{{"B"}, {"A", "C"}}, [][]string{{"A", "C"}, {"B"}}},
		{"idempotence", [][]string{{"A", "B"}, {"B", "A"}, {"A", "B"}}, [][]string{{"A", "B"}}},
		{"absorption", [][]string{{"A", "B"}, {"A"}, {"A", "C", "D"}}, [][]string{{"A"}}},
		{"absorption keeps unrelated", [][]string{{"A", "B"}, {"B", "C"}, {"A", "B", "C"}}, [][]string{{"A", "B"}, {"B", "C"}}},
		{"negations are distinct literals", [][]string{{"A"}, {"~A", "B"}}, [][]string{{"A"}, {"B", "~A"}}},
		{"duplicates of an absorbed group", [][]string{{"A", "B"}, {"A", "B"}, {"B"}}, [][]string{{"B"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := groupsOf(tc.in...)
			before := literalsOf(in)
			assertGroups(t, tc.expected, Simplify(in))
			// the input slice is left alone
			assertGroups(t, before, in)
		})
	}
}

func TestRender(t *testing.T) {
	cnf := groupsOf([]string{"A", "B"}, []string{"C", "~D"})
	assert.Equal(t, `(A\/B)/\(C\/~D)`, Render(cnf, ast.And))
	assert.Equal(t, `(A/\B)\/(C/\~D)`, Render(cnf, ast.Or))

	mixed := groupsOf([]string{"A"}, []string{"B", "C"}, []string{"~E"})
	assert.Equal(t, `A/\(B\/C)/\~E`, Render(mixed, ast.And))

	single := groupsOf([]string{"A", "~B"})
	assert.Equal(t, `A\/~B`, Render(single, ast.And))
	assert.Equal(t, `A/\~B`, Render(single, ast.Or))

	assert.Equal(t, "", Render(nil, ast.And))
}

func TestToNodeRoundTrip(t *testing.T) {
	groups := groupsOf([]string{"A", "B"}, []string{"C"}, []string{"~D", "E"})
	n := ToNode(groups, ast.And)
	assert.Equal(t, `(A\/B)/\C/\(E\/~D)`, ast.String(n))

	back, err := ToGroups(n, ast.And)
	assert.NoError(t, err)
	assertGroups(t, literalsOf(groups), back)

	assert.Nil(t, ToNode(nil, ast.Or))
}
