package facebook

import (
	"fmt"
	"net/http"
)

// Method identifies the HTTP verbs the client dispatches.
type Method int

const (
	// MethodGet issues a GET request.
	MethodGet Method = iota + 1
	// MethodPost issues a POST request with a JSON body.
	MethodPost
	// MethodDelete issues a DELETE request.
	MethodDelete
)

// String returns the HTTP method name.
func (m Method) String() string {
	name, err := m.httpMethod()
	if err != nil {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return name
}

func (m Method) httpMethod() (string, error) {
	switch m {
	case MethodGet:
		return http.MethodGet, nil
	case MethodPost:
		return http.MethodPost, nil
	case MethodDelete:
		return http.MethodDelete, nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnsupportedMethod, int(m))
	}
}
