package frontend

import (
	"errors"
	"testing"

	"github.com/cottand/nform/frontend/ast"
	"github.com/cottand/nform/frontend/nferr"
	"github.com/cottand/nform/parser"
	"github.com/stretchr/testify/assert"
)

func testConvert(t *testing.T, form Form, input, expected string) {
	t.Run(form.String()+" "+input, func(t *testing.T) {
		res, err := Convert(input, form)
		assert.NoError(t, err)
		assert.Equal(t, expected, res)
	})
}

func TestToCNF(t *testing.T) {
	testConvert(t, CNF, `A\/A`, `A`)
	testConvert(t, CNF, `A->E`, `E\/~A`)
	testConvert(t, CNF, `~(~(A/\B))`, `A/\B`)
	testConvert(t, CNF, `(A/\C)\/(A/\D)\/(B/\D)\/(B/\C)`, `(A\/B)/\(C\/D)`)
	testConvert(t, CNF, `A\/(A/\B)`, `A`)
	testConvert(t, CNF, `(A->B)->C`, `(A\/C)/\(C\/~B)`)
	testConvert(t, CNF, `A/\B/\A`, `A/\B`)
}

func TestToDNF(t *testing.T) {
	testConvert(t, DNF, `(A->B)->C`, `(A/\~B)\/C`)
	testConvert(t, DNF, `(A\/C)/\(A\/D)/\(B\/D)/\(B\/C)`, `(A/\B)\/(C/\D)`)
	testConvert(t, DNF, `A/\(A\/B)`, `A`)
	testConvert(t, DNF, `~(A\/B)`, `~A/\~B`)
	testConvert(t, DNF, `A/\~A`, `A/\~A`)
}

func TestShortcuts(t *testing.T) {
	cnf, err := ToCNF(`~(A/\B)`)
	assert.NoError(t, err)
	assert.Equal(t, `~A\/~B`, cnf)

	dnf, err := ToDNF(`~(A/\B)`)
	assert.NoError(t, err)
	assert.Equal(t, `~A\/~B`, dnf)
}

func TestConvertErrors(t *testing.T) {
	_, err := ToCNF(`A $\/ B`)
	var lexErr nferr.LexError
	assert.True(t, errors.As(err, &lexErr))

	res, err := Convert(`A $\/ B`, CNF, parser.WithLexMode(parser.LexLenient))
	assert.NoError(t, err)
	assert.Equal(t, `A\/B`, res)

	_, err = ToDNF(`A /\`)
	var syntaxErr nferr.SyntaxError
	assert.True(t, errors.As(err, &syntaxErr))

	_, err = ToCNF(`ab`)
	assert.True(t, errors.As(err, &syntaxErr))
}

func TestConvertNodeRejectsUnknownForm(t *testing.T) {
	_, err := NewConverter(nil).ConvertNode(ast.Var("A"), Form(9))
	assert.ErrorContains(t, err, "unknown normal form")
}

func TestParseForm(t *testing.T) {
	f, err := ParseForm("CNF")
	assert.NoError(t, err)
	assert.Equal(t, CNF, f)
	f, err = ParseForm("dnf")
	assert.NoError(t, err)
	assert.Equal(t, DNF, f)
	_, err = ParseForm("anf")
	assert.Error(t, err)

	assert.Equal(t, ast.And, CNF.Target())
	assert.Equal(t, ast.Or, DNF.Target())
}

func TestConverterIsReusable(t *testing.T) {
	c := NewConverter(parser.NewParser())
	for range 3 {
		res, err := c.Convert(`(A/\B)\/C`, CNF)
		assert.NoError(t, err)
		assert.Equal(t, `(A\/C)/\(B\/C)`, res)
	}
}
