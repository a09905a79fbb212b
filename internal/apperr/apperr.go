package apperr

import (
	"errors"
	"net/http"
)

// Kind tags an error with the failure class the HTTP layer maps to a status.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuthorization
	KindForbidden
	KindNotFound
	KindState
	KindInternal
)

// Error carries a client-visible message. Messages for validation and
// authorization failures are literal API contract strings.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, msg string) *Error { return &Error{Kind: kind, Message: msg} }

func Validation(msg string) *Error    { return New(KindValidation, msg) }
func Authorization(msg string) *Error { return New(KindAuthorization, msg) }
func Forbidden(msg string) *Error     { return New(KindForbidden, msg) }
func NotFound(msg string) *Error      { return New(KindNotFound, msg) }
func State(msg string) *Error         { return New(KindState, msg) }
func Internal(msg string) *Error      { return New(KindInternal, msg) }

// HTTPStatus maps an error to its response code. Unknown errors are 500 and
// the generic message hides internals from the caller.
func HTTPStatus(err error) int {
	var ae *Error
	if !errors.As(err, &ae) {
		return http.StatusInternalServerError
	}
	switch ae.Kind {
	case KindValidation, KindState:
		return http.StatusBadRequest
	case KindAuthorization:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-visible message, or a generic one for untagged
// errors so internals never leak.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "internal server error"
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}
