package core

import (
	"errors"
	"fmt"
)

// CSS parse-error codes (spec.md §4.2, §7): every construct the syntax
// parser gives up on and recovers from is tagged with one of these,
// rather than relying on callers to string-match the message, so a
// caller can tell "ran out of input" apart from "this token sequence
// doesn't parse" without inspecting error text.
const (
	NoError int = 0

	// ErrUnexpectedEOF: the tokenizer ran out of input before a
	// required closing token (';', '{', '}') was seen.
	ErrUnexpectedEOF int = 1

	// ErrMalformedConstruct: a qualified rule's prelude, a
	// declaration's name/colon, or similar well-formed-but-wrong token
	// sequence was rejected (the construct is discarded, not fatal).
	ErrMalformedConstruct int = 2
)

func errorText(code int) string {
	switch code {
	case NoError:
		return "OK"
	case ErrUnexpectedEOF:
		return "unexpected end of input"
	case ErrMalformedConstruct:
		return "malformed CSS construct"
	}
	return "undefined error"
}

// AppError is an error carrying a parse-error code and a user-facing
// message, the interface css/syntax's parser wraps every recovered
// parse error in.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type coreError struct {
	error
	code int
	msg  string
}

func (e coreError) Unwrap() error {
	return e.error
}

func (e coreError) Error() string {
	return fmt.Sprintf("[%d] %v", e.code, e.error)
}

func (e coreError) ErrorCode() int {
	return e.code
}

func (e coreError) UserMessage() string {
	return e.msg
}

var _ AppError = coreError{}

// WrapError wraps err in a coreError carrying code and a message
// formatted from format/v. If err is nil, an error naming code's own
// text is synthesized first (the syntax parser's errorf always passes a
// non-nil err; the nil case is handled here for other callers).
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return coreError{err, code, fmt.Sprintf(format, v...)}
}
