package gateway

import (
	"errors"
	"fmt"
)

// Kind classifies a FetchError.
type Kind string

const (
	// NetworkError is a transport failure or a non-2xx answer.
	NetworkError Kind = "NetworkError"
	// DecodeError is a malformed envelope, body or record.
	DecodeError Kind = "DecodeError"
	// NotFoundError is a detail lookup whose collection lacks the requested code.
	NotFoundError Kind = "NotFoundError"
)

// FetchError is the only error type the gateway returns.
type FetchError struct {
	Kind       Kind
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("fetch %s: %s", e.Endpoint, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a FetchError of kind k anywhere in its chain.
func IsKind(err error, k Kind) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == k
}
