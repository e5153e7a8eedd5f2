package gcl

import (
	"fmt"
	"strconv"
)

// tokenKind represents a type of a token.
type tokenKind int

// token kinds.
const (
	tokEOF    tokenKind = iota // End of input
	tokInt                     // Integer literal
	tokFloat                   // Float literal (reserved, never lexed)
	tokIdent                   // Identifier
	tokString                  // String literal
	tokPunct                   // Punctuation
)

// punctuation represents a punctuation symbol.
type punctuation int

// punctuation symbols.
const (
	punctLBrace punctuation = iota // {
	punctRBrace                    // }
	punctLSqb                      // [
	punctRSqb                      // ]
	punctComma                     // ,
	punctColon                     // :
)

// Span is a source-position range attached to tokens and diagnostics.
// Lines are 1-based, columns 0-based. Spans are purely descriptive and
// never drive parsing decisions.
type Span struct {
	BeginLine int // Line of the first character
	BeginCol  int // Column of the first character
	EndLine   int // Line of the last character
	EndCol    int // Column of the last character
}

// String renders the span as "line:col" or "line:col-line:col".
func (s Span) String() string {
	if s.BeginLine == s.EndLine && s.BeginCol == s.EndCol {
		return fmt.Sprintf("%d:%d", s.BeginLine, s.BeginCol)
	}

	return fmt.Sprintf("%d:%d-%d:%d", s.BeginLine, s.BeginCol, s.EndLine, s.EndCol)
}

// token represents a lexical unit of a GCL document. Exactly one payload
// field is meaningful per kind: Int for tokInt, Lit for tokIdent and
// tokString, Punct for tokPunct.
type token struct {
	Lit   string      // Identifier or string text
	Int   uint64      // Unsigned magnitude, sign already folded in
	Punct punctuation // Punctuation symbol
	Kind  tokenKind   // Kind of the token
	Span  Span        // Source range of the token
}

// isPunct reports whether the token is the given punctuation symbol.
func (t token) isPunct(p punctuation) bool {
	return t.Kind == tokPunct && t.Punct == p
}

// String renders the token for diagnostics.
func (t token) String() string {
	switch t.Kind {
	case tokInt:
		return strconv.FormatInt(int64(t.Int), 10)
	case tokIdent, tokString:
		return t.Lit
	case tokPunct:
		return t.Punct.String()
	default:
		return tokenName(t.Kind)
	}
}

// String returns the glyph of a punctuation symbol.
func (p punctuation) String() string {
	switch p {
	case punctLBrace:
		return "{"
	case punctRBrace:
		return "}"
	case punctLSqb:
		return "["
	case punctRSqb:
		return "]"
	case punctComma:
		return ","
	case punctColon:
		return ":"
	default:
		return "punctuation"
	}
}

// tokenName returns the name of a token kind.
func tokenName(tk tokenKind) string {
	switch tk {
	case tokEOF:
		return "eof"
	case tokInt:
		return "int"
	case tokFloat:
		return "float"
	case tokIdent:
		return "identifier"
	case tokString:
		return "string"
	case tokPunct:
		return "punctuation"
	default:
		return "token"
	}
}
