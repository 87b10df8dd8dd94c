package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// APIError is a non-2xx response from the portal, carrying the server's
// own explanation when one was sent.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf(
			"portal API error (%d) on %s %s: %s",
			e.StatusCode, e.Method, e.Path, e.Message,
		)
	}
	return fmt.Sprintf(
		"unexpected status %d on %s %s", e.StatusCode, e.Method, e.Path,
	)
}

// IsNotFound reports whether err is a portal 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

// errorBody matches the portal's error envelope. Handlers are not
// consistent about the key, so both are accepted.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func decodeError(status int, method, path string, body []byte) error {
	var envelope errorBody
	if json.Unmarshal(body, &envelope) == nil {
		msg := envelope.Error
		if msg == "" {
			msg = envelope.Message
		}
		if msg != "" {
			return &APIError{
				StatusCode: status,
				Method:     method,
				Path:       path,
				Message:    msg,
			}
		}
	}

	return &APIError{
		StatusCode: status,
		Method:     method,
		Path:       path,
		Message:    strings.TrimSpace(string(body)),
	}
}
