package parser

import (
	"go/token"
	"log/slog"

	"github.com/antlr4-go/antlr/v4"
	"github.com/cottand/nform/frontend/ast"
	"github.com/cottand/nform/frontend/nferr"
	"github.com/cottand/nform/internal/log"
)

var lexLogger = log.DefaultLogger.With("section", "lexer")

// LexMode decides what happens on an illegal character
type LexMode int

const (
	// LexStrict aborts tokenization on the first illegal character
	LexStrict LexMode = iota
	// LexLenient reports the illegal character, skips it and carries on.
	// The resulting token stream may not be what the user meant.
	LexLenient
)

func (m LexMode) String() string {
	if m == LexLenient {
		return "lenient"
	}
	return "strict"
}

// Lexer turns formula text into Tokens. A Lexer is single-use:
// once it has reached the end of its input it keeps reporting it.
type Lexer struct {
	input  *antlr.InputStream
	mode   LexMode
	line   int
	errs   *nferr.Errors
	logger *slog.Logger
}

func NewLexer(text string, mode LexMode) *Lexer {
	return &Lexer{
		input:  antlr.NewInputStream(text),
		mode:   mode,
		line:   1,
		logger: lexLogger,
	}
}

// Diagnostics returns the illegal characters skipped so far in LexLenient mode
func (l *Lexer) Diagnostics() *nferr.Errors {
	return l.errs
}

func (l *Lexer) peek(offset int) int {
	return l.input.LA(offset)
}

func (l *Lexer) take(kind Kind, width int) Token {
	start := l.input.Index()
	for range width {
		l.input.Consume()
	}
	return Token{
		Kind:   kind,
		Text:   l.input.GetText(start, start+width-1),
		Offset: start,
		Line:   l.line,
	}
}

// Next returns the next token of the input. ok is false once the input
// is exhausted. In LexStrict mode an illegal character is returned as a
// nferr.LexError.
func (l *Lexer) Next() (tok Token, ok bool, err error) {
	for {
		c := l.peek(1)
		switch {
		case c == antlr.TokenEOF:
			return Token{}, false, nil
		case c == ' ' || c == '\t' || c == '\r':
			l.input.Consume()
		case c == '\n':
			for l.peek(1) == '\n' {
				l.line++
				l.input.Consume()
			}
		case c == '/' && l.peek(2) == '\\':
			return l.take(And, 2), true, nil
		case c == '\\' && l.peek(2) == '/':
			return l.take(Or, 2), true, nil
		case c == '~':
			return l.take(Not, 1), true, nil
		case c == '-' && l.peek(2) == '>':
			return l.take(Implication, 2), true, nil
		case c == '(':
			return l.take(LeftParen, 1), true, nil
		case c == ')':
			return l.take(RightParen, 1), true, nil
		case isLetter(c):
			width := 1
			for isDigit(l.peek(width + 1)) {
				width++
			}
			return l.take(Variable, width), true, nil
		default:
			illegal := nferr.New(nferr.LexError{
				Range: ast.Range{
					PosStart: token.Pos(l.input.Index()),
					PosEnd:   token.Pos(l.input.Index() + 1),
				},
				Char: rune(c),
				Line: l.line,
			})
			if l.mode == LexStrict {
				return Token{}, false, illegal
			}
			l.logger.Warn("skipping illegal character", "char", string(rune(c)), "offset", l.input.Index(), "line", l.line)
			l.errs = l.errs.With(illegal)
			l.input.Consume()
		}
	}
}

// All drains the lexer
func (l *Lexer) All() ([]Token, error) {
	var tokens []Token
	for {
		tok, ok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// Tokenize returns every token of text. The returned diagnostics are
// the characters skipped in LexLenient mode; in LexStrict mode the first
// illegal character is returned as err instead, with no tokens.
func Tokenize(text string, mode LexMode) ([]Token, *nferr.Errors, error) {
	l := NewLexer(text, mode)
	tokens, err := l.All()
	if err != nil {
		return nil, nil, err
	}
	l.logger.Debug("tokenized", "count", len(tokens), "lines", l.line, "skipped", len(l.errs.Errors()))
	return tokens, l.errs, nil
}

func isLetter(c int) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isDigit(c int) bool {
	return '0' <= c && c <= '9'
}
