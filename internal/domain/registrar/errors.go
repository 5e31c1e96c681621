package registrar

import (
	"errors"
	"fmt"
)

// ErrUnexpectedResponse is returned when a registrar reply cannot be parsed
var ErrUnexpectedResponse = errors.New("unexpected registrar response")

// APIError is a failure reported by the registrar itself
type APIError struct {
	Provider    string
	Command     string
	Code        int
	Description string
	// Raw is the unparsed response body
	Raw string
	// Cause is set when the response itself could not be understood
	Cause error
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s %s failed: code %d: %s", e.Provider, e.Command, e.Code, e.Description)
	}
	return fmt.Sprintf("%s %s failed: %s", e.Provider, e.Command, e.Description)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// AsAPIError unwraps err into an *APIError when it is one
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
