package devmarks

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMalformedResponse marks failures that happened before a usable response
// was obtained. There is no status code to report for them.
var ErrMalformedResponse = errors.New("malformed response")

// ResponseError is returned by the sub-clients when the server answered with
// a non-2xx status.
type ResponseError struct {
	StatusCode int
	Code       string
	Message    string
	Details    string
	Raw        *http.Response
}

func (e *ResponseError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("devmarks: %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("devmarks: %d: %s", e.StatusCode, e.Message)
}

// RequiredError reports a missing required parameter. It is raised before
// any request is sent.
type RequiredError struct {
	Field     string
	Operation string
}

func (e *RequiredError) Error() string {
	return fmt.Sprintf("devmarks: required parameter %s was empty when calling %s", e.Field, e.Operation)
}

func statusMessage(code int) string {
	if text := http.StatusText(code); text != "" {
		return text
	}
	return fmt.Sprintf("status %d", code)
}
