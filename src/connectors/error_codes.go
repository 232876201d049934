package connectors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidCredentials is returned by Login when the API answers 401.
var ErrInvalidCredentials = errors.New("invalid username or password")

// StatusMessages maps CarDex API status codes to human-readable messages.
var StatusMessages = map[int]string{
	http.StatusBadRequest:          "request rejected by server",
	http.StatusUnauthorized:        "session expired or invalid, please login again",
	http.StatusForbidden:           "access denied",
	http.StatusNotFound:            "resource not found",
	http.StatusRequestTimeout:      "server timed out waiting for the request",
	http.StatusConflict:            "conflicting request",
	http.StatusTooManyRequests:     "rate limited by server, slow down",
	http.StatusInternalServerError: "server error",
	http.StatusBadGateway:          "bad gateway",
	http.StatusServiceUnavailable:  "server unavailable",
	http.StatusGatewayTimeout:      "gateway timeout",
}

// GetErrorMsg returns a human-readable message for a given HTTP status.
// If the status is unknown, returns a generic message including the code.
func GetErrorMsg(status int) string {
	if msg, ok := StatusMessages[status]; ok {
		return msg
	}
	return fmt.Sprintf("unexpected HTTP status %d", status)
}

const maxErrorBody = 200

// APIError is a non-2xx answer from the CarDex API.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	body := e.Body
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody] + "..."
	}
	if body == "" {
		return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.Path, e.StatusCode, GetErrorMsg(e.StatusCode))
	}
	return fmt.Sprintf("%s %s: HTTP %d: %s: %s", e.Method, e.Path, e.StatusCode, GetErrorMsg(e.StatusCode), body)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
