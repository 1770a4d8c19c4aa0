package nferr

import (
	"fmt"
	"runtime/debug"
	"strings"
	"sync/atomic"

	"github.com/cottand/nform/frontend/ast"
	"github.com/pkg/errors"
)

// enableDebugErrorPrinting makes errors include the frame that created them when printed
var enableDebugErrorPrinting atomic.Bool

const enableDebugFullStacktrace bool = false

// SetDebugPrinting toggles whether FormatWithCode includes where the
// diagnostic was raised
func SetDebugPrinting(enabled bool) {
	enableDebugErrorPrinting.Store(enabled)
}

type ErrCode int

const (
	None ErrCode = iota
	Lex
	Syntax
	Structural
)

func (c ErrCode) String() string {
	switch c {
	case Lex:
		return "lexical error"
	case Syntax:
		return "syntax error"
	case Structural:
		return "internal error"
	default:
		return "error"
	}
}

// NfError is a diagnostic raised by one of the stages of the conversion.
// Its concrete type is one of LexError, SyntaxError or StructuralError.
type NfError interface {
	Error() string
	Code() ErrCode
	ast.Positioner

	withStack([]byte) NfError
	getStack() []byte
}

func FormatWithCode(e NfError) string {
	if enableDebugErrorPrinting.Load() && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			lines := strings.Split(stack, "\n")
			if len(lines) > 6 {
				stack = strings.TrimSpace(lines[6])
			}
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

// FormatWithSource renders e followed by the formula it was found in,
// with carets under the offending characters. Formulas spanning several
// lines are not quoted.
func FormatWithSource(e NfError, source string) string {
	sb := &strings.Builder{}
	sb.WriteString(FormatWithCode(e))
	if source == "" || strings.ContainsRune(source, '\n') {
		return sb.String()
	}
	runes := []rune(source)
	pos := min(max(int(e.Pos()), 0), len(runes))
	width := min(max(ast.RangeOf(e).Len(), 1), len(runes)-pos+1)
	sb.WriteString("\n    ")
	sb.WriteString(source)
	sb.WriteString("\n    ")
	sb.WriteString(strings.Repeat(" ", pos))
	sb.WriteString(strings.Repeat("^", width))
	return sb.String()
}

func New[E NfError](err E) NfError {
	return err.withStack(debug.Stack())
}

// LexError is an unrecognised character in the input
type LexError struct {
	ast.Range
	Char  rune
	Line  int
	stack []byte
}

func (e LexError) Error() string {
	return fmt.Sprintf("illegal character '%c' at line %d, offset %d", e.Char, e.Line, e.PosStart)
}
func (e LexError) Code() ErrCode    { return Lex }
func (e LexError) getStack() []byte { return e.stack }
func (e LexError) withStack(stack []byte) NfError {
	e.stack = stack
	return e
}

// SyntaxError is a token sequence the grammar cannot reduce
type SyntaxError struct {
	ast.Range
	// Found is the text of the offending token, empty at end of input
	Found         string
	ParserMessage string
	stack         []byte
}

func (e SyntaxError) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("%s, found end of input", e.ParserMessage)
	}
	return fmt.Sprintf("%s, found '%s' at offset %d", e.ParserMessage, e.Found, e.PosStart)
}
func (e SyntaxError) Code() ErrCode    { return Syntax }
func (e SyntaxError) getStack() []byte { return e.stack }
func (e SyntaxError) withStack(stack []byte) NfError {
	e.stack = stack
	return e
}

// StructuralError means a stage received input violating the invariant
// the previous stage guarantees. It is always a bug.
type StructuralError struct {
	ast.Range
	// Phase is the stage that detected the violation
	Phase string
	cause error
	stack []byte
}

// NewStructural creates a StructuralError whose cause carries the stack
// of the caller, printed with %+v
func NewStructural(phase string, at ast.Positioner, format string, args ...any) NfError {
	return New(StructuralError{
		Range: ast.RangeOf(at),
		Phase: phase,
		cause: errors.Errorf(format, args...),
	})
}

func (e StructuralError) Error() string {
	return fmt.Sprintf("%s: invariant violated: %v", e.Phase, e.cause)
}
func (e StructuralError) Code() ErrCode    { return Structural }
func (e StructuralError) Unwrap() error    { return e.cause }
func (e StructuralError) Cause() error     { return e.cause }
func (e StructuralError) getStack() []byte { return e.stack }
func (e StructuralError) withStack(stack []byte) NfError {
	e.stack = stack
	return e
}

// Format supports %+v, printing the stack of the violation
func (e StructuralError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "%s: invariant violated: %+v", e.Phase, e.cause)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}
