package conftree

import "errors"

// ErrDecodingUnsupported is returned by the typed accessor when a non-string
// type is requested from a Value that does not implement Decoder. It is a
// capability-missing error, distinct from *Error which reports data
// problems (absent paths, shape mismatches).
var ErrDecodingUnsupported = errors.New("configuration backend does not support deserialization")

// Error is the configuration error: a required path is absent, or a path
// resolves to the wrong shape. It carries a message and an optional causing
// error.
type Error struct {
	msg   string
	cause error
}

// NewError creates an Error with the given message and optional cause.
func NewError(msg string, cause error) *Error {
	return &Error{msg: msg, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}

	return e.msg
}

// Unwrap returns the causing error, if any.
func (e *Error) Unwrap() error {
	return e.cause
}
