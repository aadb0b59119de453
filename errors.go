package jsonly

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates decode failure classes.
type ErrorKind int

const (
	// ErrSyntax reports a token that does not match the expected grammar
	// production.
	ErrSyntax ErrorKind = iota
	// ErrEndOfStream reports input exhausted mid token or mid structure.
	ErrEndOfStream
	// ErrInvalidNumber reports a numeral that could not be parsed as a
	// 64-bit float.
	ErrInvalidNumber
)

func (k ErrorKind) String() string {
	switch k {
	case ErrSyntax:
		return "syntax error"
	case ErrEndOfStream:
		return "end of stream"
	case ErrInvalidNumber:
		return "invalid number"
	}
	return "unknown"
}

// Error is the typed failure surfaced by the decoder. Offset is the byte
// offset into the source at which the failure was detected.
type Error struct {
	Kind    ErrorKind
	Offset  int64
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%v at %d", e.Kind, e.Offset)
	}
	return fmt.Sprintf("%s at %d", e.Message, e.Offset)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// KindOf returns the kind of err when it originates from this package.
func KindOf(err error) (ErrorKind, bool) {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Kind, true
	}
	return 0, false
}

func syntaxErrorf(offset int64, format string, args ...interface{}) *Error {
	return &Error{Kind: ErrSyntax, Offset: offset, Message: fmt.Sprintf(format, args...)}
}

func endOfStreamError(offset int64, production string, cause error) *Error {
	return &Error{Kind: ErrEndOfStream, Offset: offset, Message: "unexpected end of input in " + production, cause: cause}
}

func numberError(offset int64, token string, cause error) *Error {
	return &Error{Kind: ErrInvalidNumber, Offset: offset, Message: fmt.Sprintf("invalid number %q", token), cause: cause}
}
