package gcl

import (
	"errors"
	"fmt"
)

var (
	// ErrLex indicates a lexical failure.
	ErrLex = errors.New("lex error")

	// ErrParse indicates a structural failure.
	ErrParse = errors.New("parse error")

	// ErrTypeMismatch indicates a Value accessor was called for a kind
	// other than the one currently held.
	ErrTypeMismatch = errors.New("type mismatch")
)

// ErrorID enumerates the failure kinds a parse can report.
type ErrorID int

// Error kinds. ExpectedIdentifier and ExpectedNumber are reserved: no
// grammar dispatch path currently produces them.
const (
	ErrIDExpectedIdentifier ErrorID = iota
	ErrIDExpectedNumber
	ErrIDExpectedPunctuaction
	ErrIDExpectedStringEnd
	ErrIDExpectedValue
	ErrIDKeyAlreadyDefined
	ErrIDInvalidDigit
	ErrIDInvalidEscape
	ErrIDUnknownChar
)

// String returns the name of the error kind.
func (id ErrorID) String() string {
	switch id {
	case ErrIDExpectedIdentifier:
		return "ExpectedIdentifier"
	case ErrIDExpectedNumber:
		return "ExpectedNumber"
	case ErrIDExpectedPunctuaction:
		return "ExpectedPunctuaction"
	case ErrIDExpectedStringEnd:
		return "ExpectedStringEnd"
	case ErrIDExpectedValue:
		return "ExpectedValue"
	case ErrIDKeyAlreadyDefined:
		return "KeyAlreadyDefined"
	case ErrIDInvalidDigit:
		return "InvalidDigit"
	case ErrIDInvalidEscape:
		return "InvalidEscape"
	case ErrIDUnknownChar:
		return "UnknownChar"
	default:
		return "Unknown"
	}
}

// lexical reports whether the kind originates in the tokenizer.
func (id ErrorID) lexical() bool {
	switch id {
	case ErrIDExpectedStringEnd, ErrIDInvalidDigit, ErrIDInvalidEscape, ErrIDUnknownChar:
		return true
	default:
		return false
	}
}

// Error is a structured parse diagnostic. The first error encountered
// aborts the parse; no partial tree is returned alongside it.
type Error struct {
	Message string  // Rendered message naming the offending token, character, or key
	Span    Span    // Source range of the failure
	ID      ErrorID // Error kind
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%v at %d:%d: %s", e.Unwrap(), e.Span.BeginLine, e.Span.BeginCol, e.Message)
}

// Unwrap returns ErrLex or ErrParse depending on the error kind, so
// callers can match with errors.Is.
func (e *Error) Unwrap() error {
	if e.ID.lexical() {
		return ErrLex
	}

	return ErrParse
}
