package api

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed API call.
type ErrorKind int

const (
	// ErrConnection means the server could not be reached.
	ErrConnection ErrorKind = iota
	// ErrTransport means the request could not be built or the body read.
	ErrTransport
	// ErrHTTP means the server answered with a non-2xx status.
	ErrHTTP
	// ErrDecode means the response body was not the expected JSON.
	ErrDecode
)

func (k ErrorKind) String() string {
	switch k {
	case ErrConnection:
		return "CONNECTION"
	case ErrTransport:
		return "TRANSPORT"
	case ErrHTTP:
		return "HTTP"
	case ErrDecode:
		return "DECODE"
	default:
		return "UNKNOWN"
	}
}

// ClientError is returned by every Client method.
type ClientError struct {
	Kind    ErrorKind
	Message string
	// Status is the HTTP status code, set only for ErrHTTP.
	Status int
	Cause  error
}

func (e *ClientError) Error() string {
	if e.Kind == ErrHTTP {
		return fmt.Sprintf("api %s %d: %s", e.Kind, e.Status, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("api %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("api %s: %s", e.Kind, e.Message)
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

func newClientError(kind ErrorKind, msg string, cause error) *ClientError {
	return &ClientError{Kind: kind, Message: msg, Cause: cause}
}

func newHTTPError(status int, msg string) *ClientError {
	return &ClientError{Kind: ErrHTTP, Status: status, Message: msg}
}

// AsClientError extracts a ClientError from an error chain.
func AsClientError(err error) (*ClientError, bool) {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr, true
	}
	return nil, false
}

// IsKind reports whether err is a ClientError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	clientErr, ok := AsClientError(err)
	return ok && clientErr.Kind == kind
}
