package frontend

import (
	"fmt"
	"strings"

	"github.com/cottand/nform/frontend/ast"
	"github.com/cottand/nform/frontend/nferr"
	"github.com/cottand/nform/internal/log"
	"github.com/cottand/nform/parser"
)

var pipelineLogger = ast.NodeLogger(log.DefaultLogger).With("section", "pipeline")

// Form is a target normal form
type Form uint8

const (
	// CNF is a conjunction of clauses, each a disjunction of literals
	CNF Form = iota + 1
	// DNF is a disjunction of terms, each a conjunction of literals
	DNF
)

// Target is the outer connective of f
func (f Form) Target() ast.Op {
	if f == DNF {
		return ast.Or
	}
	return ast.And
}

func (f Form) String() string {
	switch f {
	case CNF:
		return "CNF"
	case DNF:
		return "DNF"
	default:
		return "Form(?)"
	}
}

// ParseForm reads "cnf" or "dnf", in any case
func ParseForm(s string) (Form, error) {
	switch strings.ToLower(s) {
	case "cnf":
		return CNF, nil
	case "dnf":
		return DNF, nil
	default:
		return 0, fmt.Errorf("unknown normal form %q, expected cnf or dnf", s)
	}
}

// Converter runs the whole pipeline
//
//	text -> tokens -> ast -> nnf -> distributed ast -> groups -> simplified groups -> text
//
// Each stage only consumes the output of the previous one, and the first
// failing stage aborts the conversion.
type Converter struct {
	parser *parser.Parser
}

// NewConverter returns a Converter parsing with p, or with a default
// strict parser if p is nil
func NewConverter(p *parser.Parser) *Converter {
	if p == nil {
		p = parser.NewParser()
	}
	return &Converter{parser: p}
}

// Parser returns the parser c reads formulas with
func (c *Converter) Parser() *parser.Parser {
	return c.parser
}

// Convert parses text and returns its simplified normal form, rendered
func (c *Converter) Convert(text string, form Form) (string, error) {
	n, _, err := c.parser.Parse(text)
	if err != nil {
		return "", err
	}
	groups, err := c.ConvertNode(n, form)
	if err != nil {
		return "", err
	}
	res := Render(groups, form.Target())
	pipelineLogger.Debug("converted formula", "form", form.String(), "input", text, "output", res)
	return res, nil
}

// ConvertNode converts an already parsed formula into the simplified
// groups of its normal form
func (c *Converter) ConvertNode(n ast.Node, form Form) ([]Group, error) {
	if form != CNF && form != DNF {
		return nil, nferr.NewStructural("pipeline", n, "unknown normal form %v", form)
	}
	target := form.Target()
	nnf, err := Normalize(n)
	if err != nil {
		return nil, err
	}
	pipelineLogger.Debug("negation normal form", "form", form.String(), "nnf", nnf)
	distributed, err := DistributeTo(nnf, target)
	if err != nil {
		return nil, err
	}
	groups, err := ToGroups(distributed, target)
	if err != nil {
		return nil, err
	}
	return Simplify(groups), nil
}

// Convert converts text with a default strict parser, see Converter.Convert
func Convert(text string, form Form, opts ...parser.Option) (string, error) {
	return NewConverter(parser.NewParser(opts...)).Convert(text, form)
}

// ToCNF returns the simplified conjunctive normal form of text
func ToCNF(text string) (string, error) {
	return Convert(text, CNF)
}

// ToDNF returns the simplified disjunctive normal form of text
func ToDNF(text string) (string, error) {
	return Convert(text, DNF)
}
