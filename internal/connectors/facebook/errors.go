package facebook

import (
	"errors"
	"fmt"
)

// Error types for Graph API client operations.
var (
	// ErrConfiguration indicates the client was created without an access
	// token and without the full set of app credentials.
	ErrConfiguration = errors.New("facebook: either an access token or app id, app secret and redirect url are required")

	// ErrMissingToken indicates an API call was made with no access token
	// available, neither per call nor stored on the client.
	ErrMissingToken = errors.New("facebook: access token is required")

	// ErrUnsupportedMethod indicates a request was dispatched with an HTTP
	// method other than GET, POST or DELETE.
	ErrUnsupportedMethod = errors.New("facebook: unsupported method")
)

// StatusError is returned when the Graph API answers with a non-2xx status.
// The body is kept verbatim; it is not interpreted.
type StatusError struct {
	StatusCode int
	Body       []byte
	Response   *Response
}

func (e *StatusError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("facebook: request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("facebook: request failed with status %d: %s", e.StatusCode, string(e.Body))
}

// IsStatus reports whether err is a *StatusError with the given status code.
func IsStatus(err error, statusCode int) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == statusCode
	}
	return false
}
