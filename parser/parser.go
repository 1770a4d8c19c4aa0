package parser

import (
	"go/token"

	"github.com/cottand/nform/frontend/ast"
	"github.com/cottand/nform/frontend/nferr"
)

// parseState is the cursor of a single ParseTokens call, so that
// the Parser itself holds no per-input state
type parseState struct {
	tokens   []Token
	pos      int
	depth    int
	maxDepth int
	// end is the offset just past the last token, used for errors at end of input
	end token.Pos
}

func (s *parseState) eof() bool {
	return s.pos >= len(s.tokens)
}

func (s *parseState) peek() Kind {
	if s.eof() {
		return Invalid
	}
	return s.tokens[s.pos].Kind
}

func (s *parseState) next() Token {
	tok := s.tokens[s.pos]
	s.pos++
	return tok
}

// errorf builds a SyntaxError pointing at the current token
func (s *parseState) errorf(msg string) error {
	if s.eof() {
		return nferr.New(nferr.SyntaxError{
			Range:         ast.Range{PosStart: s.end, PosEnd: s.end},
			ParserMessage: msg,
		})
	}
	tok := s.tokens[s.pos]
	return nferr.New(nferr.SyntaxError{
		Range:         tok.Range(),
		Found:         tok.Text,
		ParserMessage: msg,
	})
}

func (s *parseState) enter() error {
	s.depth++
	if s.maxDepth > 0 && s.depth > s.maxDepth {
		return s.errorf("formula nested too deeply")
	}
	return nil
}

func (s *parseState) leave() {
	s.depth--
}

// parseFormula parses a whole formula and requires all tokens to be consumed
func (s *parseState) parseFormula() (ast.Node, error) {
	if s.eof() {
		return nil, s.errorf("expected formula")
	}
	n, err := s.parseImplies()
	if err != nil {
		return nil, err
	}
	if !s.eof() {
		return nil, s.errorf("expected operator or end of input")
	}
	return n, nil
}

// parseImplies is the loosest level: right-associative ->
func (s *parseState) parseImplies() (ast.Node, error) {
	if err := s.enter(); err != nil {
		return nil, err
	}
	defer s.leave()

	left, err := s.parseOr()
	if err != nil {
		return nil, err
	}
	if s.peek() != Implication {
		return left, nil
	}
	s.next()
	right, err := s.parseImplies()
	if err != nil {
		return nil, err
	}
	// A -> B is ~A \/ B
	negated := &ast.Negation{Child: left, Range: ast.RangeOf(left)}
	return ast.NewBinary(ast.Or, negated, right), nil
}

// parseOr parses left-associative \/ chains
func (s *parseState) parseOr() (ast.Node, error) {
	left, err := s.parseAnd()
	if err != nil {
		return nil, err
	}
	for s.peek() == Or {
		s.next()
		right, err := s.parseAnd()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(ast.Or, left, right)
	}
	return left, nil
}

// parseAnd parses left-associative /\ chains
func (s *parseState) parseAnd() (ast.Node, error) {
	left, err := s.parseNot()
	if err != nil {
		return nil, err
	}
	for s.peek() == And {
		s.next()
		right, err := s.parseNot()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(ast.And, left, right)
	}
	return left, nil
}

func (s *parseState) parseNot() (ast.Node, error) {
	if s.peek() != Not {
		return s.parseAtom()
	}
	if err := s.enter(); err != nil {
		return nil, err
	}
	defer s.leave()

	notTok := s.next()
	child, err := s.parseNot()
	if err != nil {
		return nil, err
	}
	return &ast.Negation{
		Child: child,
		Range: ast.Range{PosStart: notTok.Pos(), PosEnd: child.End()},
	}, nil
}

func (s *parseState) parseAtom() (ast.Node, error) {
	switch s.peek() {
	case Variable:
		tok := s.next()
		return &ast.Literal{Name: tok.Text, Range: tok.Range()}, nil
	case LeftParen:
		s.next()
		inner, err := s.parseImplies()
		if err != nil {
			return nil, err
		}
		if s.peek() != RightParen {
			return nil, s.errorf("expected closing parenthesis")
		}
		s.next()
		return inner, nil
	default:
		return nil, s.errorf("expected variable, '~' or '('")
	}
}
