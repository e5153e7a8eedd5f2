package gcl

import (
	"fmt"
	"io"
	"os"
)

// Parse parses a GCL document from bytes. The buffer must stay alive
// and unmodified for the duration of the call.
func Parse(data []byte, opt *ParseOptions) (Value, error) {
	popt := opt.normalize()
	p := &parser{l: newLexer(data, popt), opt: popt}

	return p.parseDocument()
}

// Decode parses a GCL document from a reader. The input is read fully
// into memory before parsing starts.
func Decode(r io.Reader, opt *ParseOptions) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Value{}, err
	}

	return Parse(data, opt)
}

// DecodeFile parses a GCL document from a file.
func DecodeFile(path string, opt *ParseOptions) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Value{}, err
	}

	return Parse(data, opt)
}

// parser is a recursive-descent consumer of the lexer with a single
// buffered token of lookahead.
type parser struct {
	l   *lexer       // Lexer for the document
	buf token        // Buffered token
	has bool         // Has buffered token
	opt ParseOptions // Options for the parser
}

// next returns the next token from the document.
func (p *parser) next() (token, error) {
	if p.has {
		p.has = false
		return p.buf, nil
	}

	return p.l.next()
}

// peek returns the next token without consuming it.
func (p *parser) peek() (token, error) {
	if p.has {
		return p.buf, nil
	}

	tok, err := p.l.next()
	if err != nil {
		return tok, err
	}

	p.buf = tok
	p.has = true

	return tok, nil
}

// parseDocument parses exactly one top-level value.
func (p *parser) parseDocument() (Value, error) {
	v, err := p.requireValue()
	if err != nil {
		return Value{}, err
	}

	if p.opt.DisableTrailing {
		tok, err := p.peek()
		if err != nil {
			return Value{}, err
		}
		if tok.Kind != tokEOF {
			return Value{}, p.errorf(ErrIDExpectedPunctuaction, tok, "expected end of input but found `%s`", tok)
		}
	}

	return v, nil
}

// parseValue attempts to consume one value starting at the current
// token. It reports false, without consuming anything, when the token
// cannot start a value.
func (p *parser) parseValue() (Value, bool, error) {
	tok, err := p.peek()
	if err != nil {
		return Value{}, false, err
	}

	switch tok.Kind {
	case tokPunct:
		switch tok.Punct {
		case punctLBrace:
			v, err := p.parseDict()
			return v, true, err
		case punctLSqb:
			v, err := p.parseArray()
			return v, true, err
		}
		return Value{}, false, nil

	case tokString:
		_, _ = p.next()
		return String(tok.Lit), true, nil

	case tokInt:
		_, _ = p.next()
		return Int(int64(tok.Int)), true, nil

	case tokIdent:
		switch tok.Lit {
		case "true":
			_, _ = p.next()
			return Bool(true), true, nil
		case "false":
			_, _ = p.next()
			return Bool(false), true, nil
		case "null":
			_, _ = p.next()
			return Null(), true, nil
		}
		return Value{}, false, nil

	default:
		return Value{}, false, nil
	}
}

// requireValue parses a value or fails with ExpectedValue naming the
// offending token.
func (p *parser) requireValue() (Value, error) {
	v, ok, err := p.parseValue()
	if err != nil {
		return Value{}, err
	}
	if !ok {
		tok, err := p.peek()
		if err != nil {
			return Value{}, err
		}

		return Value{}, p.errorf(ErrIDExpectedValue, tok, "expected a value but found `%s`", tok)
	}

	return v, nil
}

// parseDict parses a brace-delimited group of identifier-keyed pairs.
func (p *parser) parseDict() (Value, error) {
	// Eat the left brace.
	_, _ = p.next()

	d := NewDict()
	for {
		tok, err := p.peek()
		if err != nil {
			return Value{}, err
		}
		if tok.Kind != tokIdent {
			break
		}
		_, _ = p.next()

		colon, err := p.next()
		if err != nil {
			return Value{}, err
		}
		if !colon.isPunct(punctColon) {
			return Value{}, p.errorf(ErrIDExpectedPunctuaction, colon, "expected `:` but found `%s`", colon)
		}

		v, err := p.requireValue()
		if err != nil {
			return Value{}, err
		}

		// Uniqueness is enforced at insert time, not by overwrite.
		if !d.Insert(tok.Lit, v) {
			return Value{}, p.errorf(ErrIDKeyAlreadyDefined, tok, "key `%s` already defined", tok.Lit)
		}

		sep, err := p.peek()
		if err != nil {
			return Value{}, err
		}
		if sep.isPunct(punctComma) {
			_, _ = p.next()
			continue
		}
		if sep.isPunct(punctRBrace) {
			break
		}

		return Value{}, p.errorf(ErrIDExpectedPunctuaction, sep, "expected `,` but found `%s`", sep)
	}

	end, err := p.next()
	if err != nil {
		return Value{}, err
	}
	if !end.isPunct(punctRBrace) {
		return Value{}, p.errorf(ErrIDExpectedPunctuaction, end, "expected `}` but found `%s`", end)
	}

	return DictOf(d), nil
}

// parseArray parses a bracket-delimited sequence of values.
func (p *parser) parseArray() (Value, error) {
	// Eat the left square bracket.
	_, _ = p.next()

	var elems []Value
	first, err := p.peek()
	if err != nil {
		return Value{}, err
	}

	if !first.isPunct(punctRSqb) {
		for {
			v, err := p.requireValue()
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, v)

			sep, err := p.peek()
			if err != nil {
				return Value{}, err
			}
			if sep.isPunct(punctComma) {
				_, _ = p.next()
				continue
			}
			if sep.isPunct(punctRSqb) {
				break
			}

			return Value{}, p.errorf(ErrIDExpectedPunctuaction, sep, "expected `,` but found `%s`", sep)
		}
	}

	// Eat the right square bracket.
	_, _ = p.next()

	return ArrayOf(elems...), nil
}

// errorf builds a structured diagnostic at the given token.
func (p *parser) errorf(id ErrorID, tok token, format string, args ...any) error {
	return &Error{ID: id, Span: tok.Span, Message: fmt.Sprintf(format, args...)}
}
