package api

import (
	"errors"
	"net/http"
)

// Kind is the category a failed call is normalized into.
type Kind string

const (
	KindNotFound   Kind = "not_found"
	KindBadRequest Kind = "bad_request"
	KindServer     Kind = "server_error"
	KindNetwork    Kind = "network_error"
)

// Display messages for the fixed categories.
const (
	MsgNotFound   = "Resource not found"
	MsgBadRequest = "Bad request"
	MsgServer     = "Server error. Please try again later."
	MsgNetwork    = "Network error"
)

// Failure is the raw outcome of a failed call before normalization.
type Failure struct {
	// Status is the HTTP status code, zero when no response was received.
	Status int
	// Detail is the server supplied "detail" field, if any.
	Detail string
	// Message is the transport level description of the failure.
	Message string
	// Err is the underlying cause, kept for logging and errors.Is.
	Err error
}

// Error is a normalized API failure. Message is safe to show to users.
type Error struct {
	Kind    Kind
	Message string
	Status  int
	Detail  string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Normalize classifies f. The first matching rule wins:
//
//  1. 404 is "Resource not found"
//  2. 400 uses the server detail, or "Bad request"
//  3. 5xx is a generic server error
//  4. anything else uses the failure's own message, or "Network error"
func Normalize(f Failure) *Error {
	e := &Error{
		Status: f.Status,
		Detail: f.Detail,
		cause:  f.Err,
	}

	switch {
	case f.Status == http.StatusNotFound:
		e.Kind, e.Message = KindNotFound, MsgNotFound
	case f.Status == http.StatusBadRequest:
		e.Kind, e.Message = KindBadRequest, firstNonEmpty(f.Detail, MsgBadRequest)
	case f.Status >= http.StatusInternalServerError:
		e.Kind, e.Message = KindServer, MsgServer
	default:
		e.Kind, e.Message = KindNetwork, firstNonEmpty(f.Message, MsgNetwork)
	}

	return e
}

// AsError returns the normalized error in err's chain, if any.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// Message returns the user facing message for err. Errors that did not come
// from the client are returned as-is.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := AsError(err); ok {
		return apiErr.Message
	}
	return err.Error()
}

// IsConflict reports whether err is a rejected duplicate, signalled by the
// API with HTTP 409.
func IsConflict(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Status == http.StatusConflict
}

// IsNotFound reports whether err was normalized as not found.
func IsNotFound(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Kind == KindNotFound
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
