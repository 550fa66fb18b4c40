package obj

import (
	"errors"
	"fmt"
)

// Error kinds. A *ParseError matches its kind with errors.Is.
var (
	ErrUnexpectedEOF       = errors.New("unexpected end of input")
	ErrUnexpectedEOL       = errors.New("unexpected end of line")
	ErrExpectedKeyword     = errors.New("expected keyword")
	ErrUnknownKeyword      = errors.New("unknown keyword")
	ErrInvalidNumber       = errors.New("invalid number")
	ErrInvalidIndexSyntax  = errors.New("invalid index syntax")
	ErrExpectedInteger     = errors.New("expected integer")
	ErrInsufficientIndices = errors.New("insufficient indices")
)

// ParseError is the single error type returned by the parser. Line is the
// 1-based source line the error was raised on.
type ParseError struct {
	Kind     error
	Line     int
	Found    string // offending token, keyword or text
	Expected string // ErrExpectedKeyword only

	// ErrInsufficientIndices only.
	Element ElementKind
	Count   int
	Minimum int
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrExpectedKeyword:
		return fmt.Sprintf("line %d: expected %s but got %s", e.Line, describe(e.Expected), describe(e.Found))
	case ErrUnknownKeyword:
		return fmt.Sprintf("line %d: unknown keyword %q", e.Line, e.Found)
	case ErrInvalidNumber:
		return fmt.Sprintf("line %d: invalid number %q", e.Line, e.Found)
	case ErrInvalidIndexSyntax:
		return fmt.Sprintf("line %d: invalid index %q", e.Line, e.Found)
	case ErrExpectedInteger:
		return fmt.Sprintf("line %d: expected integer but got %q", e.Line, e.Found)
	case ErrInsufficientIndices:
		return fmt.Sprintf("line %d: %s record has %d indices, need at least %d",
			e.Line, e.Element, e.Count, e.Minimum)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Kind)
}

// Unwrap exposes the kind sentinel so errors.Is(err, ErrInvalidNumber) works.
func (e *ParseError) Unwrap() error {
	return e.Kind
}

func describe(tok string) string {
	if tok == newlineToken {
		return "end of line"
	}
	return fmt.Sprintf("%q", tok)
}
