package expander

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	// ErrNoBearerToken indicates the client was built without a bearer
	// credential.
	ErrNoBearerToken = errors.New("expander: no bearer token configured")

	// ErrNotAuthenticated indicates a resource call was attempted before a
	// successful Authenticate (and without a pre-minted token).
	ErrNotAuthenticated = errors.New("expander: not authenticated, call Authenticate first")

	// ErrEndDateBeforeStart is returned when the requested event window ends
	// before it starts.
	ErrEndDateBeforeStart = errors.New("end_date must be the same as or later than start_date")

	// ErrEndDateToday is returned when the requested event window does not end
	// strictly before the current date.
	ErrEndDateToday = errors.New("end_date must be earlier than today")
)

// AuthError indicates the authentication endpoint rejected the bearer
// credential with an explicit error payload.
type AuthError struct {
	// Reason is the error text returned by the API, verbatim.
	Reason string
}

func (e *AuthError) Error() string {
	return "API returned an error: " + e.Reason
}

// TransportError wraps a transport-level failure: connection refused, timeout,
// DNS failure, or a malformed response body. There is no retry; a transport
// failure is fatal to the operation that hit it.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "Request returned an exception: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError represents a non-2xx response from a resource endpoint.
type APIError struct {
	StatusCode int    `json:"status"`
	Message    string `json:"message"`
	Endpoint   string `json:"-"`
}

func (e *APIError) Error() string {
	if e.Endpoint != "" {
		return fmt.Sprintf("expander: API error %d on %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("expander: API error %d: %s", e.StatusCode, e.Message)
}

// newAPIError builds an APIError from a non-2xx response body. The body is
// used verbatim when it is not a structured error document.
func newAPIError(statusCode int, body []byte, endpoint string) *APIError {
	e := &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
	}
	if len(body) > 0 {
		e.Message = string(body)
	}
	return e
}
