package gcl

import (
	"fmt"
	"strings"
)

// lexer pulls tokens from a resident byte buffer. It borrows the buffer
// from the caller and never reads past its length; input is treated as
// raw bytes (ASCII-compatible superset).
type lexer struct {
	src []byte       // Borrowed input buffer
	pos position     // Position of the current character
	idx int          // Index of the current character
	ch  byte         // Current character, 0 at end of input
	opt ParseOptions // Options for the lexer
}

// position represents a position in the input.
type position struct {
	line int // Line number, 1-based
	col  int // Column number, 0-based
}

// newLexer creates a lexer over the given buffer.
func newLexer(src []byte, opt ParseOptions) *lexer {
	l := &lexer{src: src, opt: opt, pos: position{line: 1, col: 0}}
	if len(src) > 0 {
		l.ch = src[0]
	}

	return l
}

// next produces one token. Dispatch order is fixed priority, first
// match wins: identifier, number, punctuation, string, fallback.
// Reserved words lex as plain identifiers; the parser gives them
// meaning.
func (l *lexer) next() (token, error) {
	l.skipWhitespace()
	if !l.opt.DisableComments {
		for l.ch == '#' {
			l.skipComment()
			l.skipWhitespace()
		}
	}

	begin := l.pos

	if isAlpha(l.ch) {
		return l.readIdent(begin), nil
	}

	if isDigit(l.ch, 10) || l.ch == '-' || l.ch == '+' {
		return l.readNumber(begin)
	}

	if p, ok := punctFor(l.ch); ok {
		l.advanceChar()
		return token{Kind: tokPunct, Punct: p, Span: l.spanFrom(begin)}, nil
	}

	if l.ch == '"' {
		return l.readString(begin)
	}

	return l.readMisc(begin)
}

// advanceChar moves the cursor one byte forward. At the end of the
// buffer the current character pins to 0 and the cursor stays put.
func (l *lexer) advanceChar() bool {
	if l.idx+1 >= len(l.src) {
		l.ch = 0
		return false
	}

	l.idx++
	l.ch = l.src[l.idx]

	if l.ch == '\n' {
		l.pos.line++
		l.pos.col = 0
	} else {
		l.pos.col++
	}

	return true
}

// skipWhitespace skips spaces, tabs, and newlines.
func (l *lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' {
		if !l.advanceChar() {
			return
		}
	}
}

// skipComment skips a # comment up to the end of the line.
func (l *lexer) skipComment() {
	l.advanceChar()
	for l.ch != '\n' {
		if !l.advanceChar() {
			break
		}
	}
}

// readIdent reads an identifier.
func (l *lexer) readIdent(begin position) token {
	var b strings.Builder
	b.WriteByte(l.ch)

	for l.advanceChar() && (isAlnum(l.ch) || l.ch == '_') {
		b.WriteByte(l.ch)
	}

	return token{Kind: tokIdent, Lit: b.String(), Span: l.spanFrom(begin)}
}

// readNumber reads an integer literal. A leading 0 followed by b/B or
// x/X selects base 2 or 16; the magnitude accumulates unsigned and a
// leading minus applies two's-complement negation. Float literals are
// not lexed.
func (l *lexer) readNumber(begin position) (token, error) {
	neg := false
	base := 10

	if !isDigit(l.ch, 10) {
		// Dispatch guarantees '+' or '-' here.
		neg = l.ch == '-'
		l.advanceChar()
		if !isDigit(l.ch, 10) {
			return token{}, l.errorf(ErrIDInvalidDigit, begin, "invalid digit `%c` for base %d", l.ch, base)
		}
	}

	if l.ch == '0' {
		l.advanceChar()
		if !isDigit(l.ch, 10) {
			switch l.ch {
			case 'b', 'B':
				base = 2
			case 'x', 'X':
				base = 16
			default:
				// A bare zero; the current character starts the next token.
				return token{Kind: tokInt, Int: 0, Span: l.spanFrom(begin)}, nil
			}

			l.advanceChar()
			if !isDigit(l.ch, base) {
				return token{}, l.errorf(ErrIDInvalidDigit, begin, "invalid digit `%c` for base %d", l.ch, base)
			}
		}
	}

	value := uint64(charToDigit(l.ch, base))
	for l.advanceChar() && isDigit(l.ch, base) {
		value *= uint64(base)
		value += uint64(charToDigit(l.ch, base))
	}

	// An alphanumeric tail after the digit run rejects the whole literal.
	if isAlnum(l.ch) {
		bad := l.ch
		for l.advanceChar() && isAlnum(l.ch) {
		}

		return token{}, l.errorf(ErrIDInvalidDigit, begin, "invalid digit `%c` for base %d", bad, base)
	}

	if neg {
		value = -value
	}

	return token{Kind: tokInt, Int: value, Span: l.spanFrom(begin)}, nil
}

// readString reads a quoted string, processing the escape set. A raw
// newline or end of input before the closing quote fails the string.
func (l *lexer) readString(begin position) (token, error) {
	var b strings.Builder

	for l.advanceChar() && l.ch != '"' {
		if l.ch == '\n' {
			return token{}, l.errorf(ErrIDExpectedStringEnd, begin, "expected string end")
		}

		if l.ch == '\\' {
			l.advanceChar()

			switch l.ch {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			default:
				return token{}, l.errorf(ErrIDInvalidEscape, begin, "invalid escape sequence `%c`", l.ch)
			}

			continue
		}

		b.WriteByte(l.ch)
	}

	if l.ch != '"' {
		return token{}, l.errorf(ErrIDExpectedStringEnd, begin, "expected string end")
	}
	l.advanceChar()

	return token{Kind: tokString, Lit: b.String(), Span: l.spanFrom(begin)}, nil
}

// readMisc handles the fallback: end of input or an unknown character.
func (l *lexer) readMisc(begin position) (token, error) {
	if l.ch == 0 {
		return token{Kind: tokEOF, Span: l.spanFrom(begin)}, nil
	}

	return token{}, l.errorf(ErrIDUnknownChar, begin, "unknown character `%c`", l.ch)
}

// spanFrom builds a span from a start position to the cursor.
func (l *lexer) spanFrom(begin position) Span {
	return Span{
		BeginLine: begin.line,
		BeginCol:  begin.col,
		EndLine:   l.pos.line,
		EndCol:    l.pos.col,
	}
}

// errorf builds a structured diagnostic spanning from begin.
func (l *lexer) errorf(id ErrorID, begin position, format string, args ...any) error {
	return &Error{ID: id, Span: l.spanFrom(begin), Message: fmt.Sprintf(format, args...)}
}

// punctFor maps a character to its punctuation symbol.
func punctFor(ch byte) (punctuation, bool) {
	switch ch {
	case '{':
		return punctLBrace, true
	case '}':
		return punctRBrace, true
	case '[':
		return punctLSqb, true
	case ']':
		return punctRSqb, true
	case ',':
		return punctComma, true
	case ':':
		return punctColon, true
	default:
		return 0, false
	}
}

// isAlpha checks if a character is an ASCII letter.
func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// isDigit checks if a character is a digit in the given base.
func isDigit(ch byte, base int) bool {
	switch base {
	case 10:
		return ch >= '0' && ch <= '9'
	case 16:
		return (ch >= '0' && ch <= '9') || (ch >= 'A' && ch <= 'F') || (ch >= 'a' && ch <= 'f')
	case 2:
		return ch == '0' || ch == '1'
	}

	return false
}

// isAlnum checks if a character is an ASCII letter or decimal digit.
func isAlnum(ch byte) bool {
	return isAlpha(ch) || isDigit(ch, 10)
}

// charToDigit converts a digit character to its value in the given base.
func charToDigit(ch byte, base int) int {
	if base <= 10 {
		return int(ch - '0')
	}

	switch {
	case ch <= '9':
		return int(ch - '0')
	case ch <= 'F':
		return int(ch-'A') + 10
	default:
		return int(ch-'a') + 10
	}
}
