package parser

import (
	"log/slog"

	"github.com/cottand/nform/frontend/ast"
	"github.com/cottand/nform/frontend/nferr"
	"github.com/cottand/nform/internal/log"
)

const DefaultMaxDepth = 10_000

// Parser turns formula text into an ast.Node.
//
// A Parser holds only its configuration, so one Parser can be
// reused for any number of formulas, including concurrently.
type Parser struct {
	mode     LexMode
	maxDepth int
	logger   *slog.Logger
}

type Option func(*Parser)

// WithLexMode sets how illegal characters are handled, LexStrict by default
func WithLexMode(mode LexMode) Option {
	return func(p *Parser) { p.mode = mode }
}

// WithMaxDepth bounds the nesting of parentheses, negations and
// implications. Zero or negative means unbounded.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) { p.maxDepth = depth }
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) { p.logger = logger }
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{
		mode:     LexStrict,
		maxDepth: DefaultMaxDepth,
		logger:   log.DefaultLogger,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = ast.NodeLogger(p.logger).With("section", "parser")
	return p
}

func (p *Parser) LexMode() LexMode { return p.mode }

// Parse tokenizes and parses text.
//
// diagnostics holds the characters skipped by a LexLenient parser and
// is empty otherwise. A non-nil err is a nferr.LexError or a
// nferr.SyntaxError, and then n is nil.
func (p *Parser) Parse(text string) (n ast.Node, diagnostics *nferr.Errors, err error) {
	tokens, diagnostics, err := Tokenize(text, p.mode)
	if err != nil {
		return nil, nil, err
	}
	if diagnostics.HasError() {
		p.logger.Warn("formula contained illegal characters", "diagnostics", diagnostics)
	}
	n, err = p.ParseTokens(tokens)
	if err != nil {
		return nil, diagnostics, err
	}
	return n, diagnostics, nil
}

// ParseTokens parses an already tokenized formula
func (p *Parser) ParseTokens(tokens []Token) (ast.Node, error) {
	state := &parseState{
		tokens:   tokens,
		maxDepth: p.maxDepth,
	}
	if len(tokens) > 0 {
		state.end = tokens[len(tokens)-1].End()
	}
	n, err := state.parseFormula()
	if err != nil {
		p.logger.Debug("could not parse formula", "tokens", len(tokens), "error", err)
		return nil, err
	}
	p.logger.Debug("parsed formula", "ast", n)
	return n, nil
}
