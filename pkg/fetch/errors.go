package fetch

import (
	"errors"
	"fmt"
)

var (
	ErrMissingURL = errors.New("missing url")
	ErrInvalidURL = errors.New("invalid url")
	ErrEmptyBody  = errors.New("empty response body")
)

// TransportError is returned when the exchange itself failed: DNS, dial, TLS,
// redirect limit, cancellation or a broken body read.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
