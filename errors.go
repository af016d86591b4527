package ujson

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors reachable through errors.Is on any failure returned by
// this package.
var (
	ErrSyntax          = errors.New("syntax error in JSON")
	ErrUnexpectedEnd   = errors.New("unexpected end of JSON input")
	ErrTrailingData    = errors.New("extra data after top-level value")
	ErrInvalidEscape   = errors.New("invalid escape sequence")
	ErrInvalidNumber   = errors.New("invalid number literal")
	ErrNonStringKey    = errors.New("keys must be strings")
	ErrUnsupportedType = errors.New("object is not JSON serializable")
	ErrOutOfRangeFloat = errors.New("out of range float values are not JSON compliant")
)

// A DecodeError reports malformed JSON input. It is always recoverable:
// no partial value is ever returned alongside it. I/O failures from the
// input stream are surfaced as-is and are never wrapped in a DecodeError.
type DecodeError struct {
	Msg string
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("json decode: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("json decode: %s", e.Msg)
}

// Unwrap returns the wrapped sentinel, if any.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

func newDecodeError(msg string, cause error) *DecodeError {
	return &DecodeError{Msg: msg, Err: cause}
}

// An EncodeError reports a value that has no JSON representation:
// a non-finite float, a mapping with non-string keys, or a Go type
// outside the supported set.
type EncodeError struct {
	Msg string
	Err error
}

// Error implements the error interface.
func (e *EncodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("json encode: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("json encode: %s", e.Msg)
}

// Unwrap returns the wrapped sentinel, if any.
func (e *EncodeError) Unwrap() error {
	return e.Err
}

func newEncodeError(msg string, cause error) *EncodeError {
	return &EncodeError{Msg: msg, Err: cause}
}
