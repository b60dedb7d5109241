package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind represents the category of a failure that ends a run
type Kind string

const (
	KindTransport  Kind = "transport"
	KindUnexpected Kind = "unexpected"
)

// Error carries the failure category together with the operation that failed
type Error struct {
	Kind       Kind
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	msg := string(e.Kind) + " error"
	if e.Op != "" {
		msg += " during " + e.Op
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.URL != "" {
		msg += ": " + e.URL
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// Transport builds an error for connection failures, timeouts and non-2xx responses
func Transport(op, url string, statusCode int, err error) *Error {
	return &Error{
		Kind:       KindTransport,
		Op:         op,
		URL:        url,
		StatusCode: statusCode,
		Err:        err,
	}
}

// Unexpected builds an error for anything that is not a network failure
func Unexpected(op string, err error) *Error {
	return &Error{
		Kind: KindUnexpected,
		Op:   op,
		Err:  err,
	}
}

// KindOf reports the kind of err. Errors that were never classified are
// treated as unexpected; nil has no kind.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// IsTransport checks whether err is a network-layer failure
func IsTransport(err error) bool {
	return KindOf(err) == KindTransport
}

// IsUnexpected checks whether err is anything other than a network-layer failure
func IsUnexpected(err error) bool {
	return KindOf(err) == KindUnexpected
}

// StatusText returns a short description used for non-2xx responses
func StatusText(statusCode int) error {
	return fmt.Errorf("unexpected status code: %d", statusCode)
}
