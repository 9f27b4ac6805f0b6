package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrEmptyQuery is returned by exact-match lookups for a blank query.
var ErrEmptyQuery = errors.New("query is empty")

// TransportError is a response with a status other than 200.
type TransportError struct {
	URL        string
	StatusCode int
	Body       string // Server-supplied error text, possibly empty
}

func (e *TransportError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("GET %s returned status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("GET %s returned status %d: %s", e.URL, e.StatusCode, body)
}

// NotFound reports whether the remote had no exact match.
func (e *TransportError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// NetworkError is a connection or timeout failure before any response arrived.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("GET %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError is a body that is not valid JSON or does not match the expected shape.
type DecodeError struct {
	Kind string // "listing" or "detail"
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err carries a 404 TransportError.
func IsNotFound(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.NotFound()
}

// OperationError is the flattened, human-readable form of any failure.
type OperationError struct {
	Message string `json:"message"`
}

func (e OperationError) Error() string {
	return e.Message
}

// NewOperationError flattens err. A nil err yields nil.
func NewOperationError(err error) *OperationError {
	if err == nil {
		return nil
	}
	return &OperationError{Message: err.Error()}
}
