package obj

import (
	"math"
	"strconv"
)

// parserState wraps the lexer with one token of lookahead and typed field
// extraction. Every error it builds carries the line of the token that
// caused it.
type parserState struct {
	lx     *lexer
	peeked token
	ahead  bool
	line   int
}

func newParserState(src string) *parserState {
	return &parserState{lx: newLexer(src), line: 1}
}

func (s *parserState) fill() bool {
	if !s.ahead {
		s.peeked, s.ahead = s.lx.next()
	}
	return s.ahead
}

// peek returns the next token without consuming it.
func (s *parserState) peek() (string, bool) {
	if !s.fill() {
		return "", false
	}
	return s.peeked.text, true
}

// peekLine returns the line of the next token, or the current line at the
// end of input.
func (s *parserState) peekLine() int {
	if !s.fill() {
		return s.lx.line
	}
	return s.peeked.line
}

func (s *parserState) advance() (token, bool) {
	if !s.fill() {
		s.line = s.lx.line
		return token{}, false
	}
	s.ahead = false
	s.line = s.peeked.line
	return s.peeked, true
}

// nextString consumes the next token, including a record-ending newline.
func (s *parserState) nextString() (string, error) {
	tok, ok := s.advance()
	if !ok {
		return "", s.error(ErrUnexpectedEOF, "")
	}
	return tok.text, nil
}

// field consumes the next token as a record field; the record must not
// have ended.
func (s *parserState) field() (string, error) {
	text, err := s.nextString()
	if err != nil {
		return "", err
	}
	if text == newlineToken {
		return "", s.error(ErrUnexpectedEOL, "")
	}
	return text, nil
}

func (s *parserState) expect(keyword string) error {
	text, err := s.nextString()
	if err != nil {
		return err
	}
	if text != keyword {
		e := s.error(ErrExpectedKeyword, text)
		e.Expected = keyword
		return e
	}
	return nil
}

// atEndOfRecord reports whether the current record has no fields left.
func (s *parserState) atEndOfRecord() bool {
	text, ok := s.peek()
	return !ok || text == newlineToken
}

// endRecord consumes the newline closing a record. End of input also
// closes it.
func (s *parserState) endRecord() error {
	text, ok := s.peek()
	if !ok {
		return nil
	}
	if text != newlineToken {
		s.advance()
		e := s.error(ErrExpectedKeyword, text)
		e.Expected = newlineToken
		return e
	}
	s.advance()
	return nil
}

func (s *parserState) parseU32() (uint32, error) {
	text, err := s.field()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, s.error(ErrInvalidNumber, text)
	}
	return uint32(n), nil
}

// parseF64 reads a finite floating-point field.
func (s *parserState) parseF64() (float64, error) {
	text, err := s.field()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, s.error(ErrInvalidNumber, text)
	}
	return f, nil
}

// error stamps the current line onto a new error of the given kind.
func (s *parserState) error(kind error, found string) *ParseError {
	return &ParseError{Kind: kind, Line: s.line, Found: found}
}
