package obj

// newlineToken marks the end of a record. The lexer emits it once per line
// that produced at least one token, so blank and comment-only lines never
// reach the parser.
const newlineToken = "\n"

type token struct {
	text string
	line int // 1-based line the token starts on
}

func (t token) isNewline() bool { return t.text == newlineToken }

// lexer splits source text into whitespace-separated tokens, dropping
// '#' comments and tracking the current line.
type lexer struct {
	src      string
	pos      int
	line     int
	onRecord bool // a token was emitted since the last newline
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1}
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\\' || ch == '\f' || ch == '\v'
}

// next returns the next token, or false once the input is exhausted.
// Tokens are substrings of the source; next never copies.
func (lx *lexer) next() (token, bool) {
	for lx.pos < len(lx.src) {
		ch := lx.src[lx.pos]
		if n := lx.breakLen(lx.pos); n > 0 {
			lx.pos += n
			lx.line++
			if lx.onRecord {
				lx.onRecord = false
				return token{text: newlineToken, line: lx.line - 1}, true
			}
			continue
		}
		switch {
		case ch == '\\' && lx.continuesLine():
			// joined with the following line
		case isWhitespace(ch):
			lx.pos++
		case ch == '#':
			lx.skipComment()
		default:
			return lx.word(), true
		}
	}
	return token{}, false
}

// continuesLine consumes a backslash that ends its line together with the
// line break, reporting whether it did so.
func (lx *lexer) continuesLine() bool {
	n := lx.breakLen(lx.pos + 1)
	if n == 0 {
		return false
	}
	lx.pos += 1 + n
	lx.line++
	return true
}

// breakLen returns the length of the line break at i: 2 for "\r\n", 1 for
// a lone '\n' or '\r', 0 when there is none.
func (lx *lexer) breakLen(i int) int {
	if i >= len(lx.src) {
		return 0
	}
	switch lx.src[i] {
	case '\n':
		return 1
	case '\r':
		if i+1 < len(lx.src) && lx.src[i+1] == '\n' {
			return 2
		}
		return 1
	}
	return 0
}

// skipComment advances to the line break ending the comment, leaving it
// unread.
func (lx *lexer) skipComment() {
	for lx.pos < len(lx.src) && lx.breakLen(lx.pos) == 0 {
		lx.pos++
	}
}

func (lx *lexer) word() token {
	start := lx.pos
	for lx.pos < len(lx.src) {
		ch := lx.src[lx.pos]
		if ch == '\n' || ch == '\r' || ch == '#' || isWhitespace(ch) {
			break
		}
		lx.pos++
	}
	lx.onRecord = true
	return token{text: lx.src[start:lx.pos], line: lx.line}
}
