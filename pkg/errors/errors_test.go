package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapKeepsCause(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := Wrap(cause, CodeInternal, "create bookmark failed")

	require.ErrorIs(t, err, cause)
	assert.Equal(t, "internal: create bookmark failed: connection reset", err.Error())
	assert.True(t, IsCode(err, CodeInternal))
	assert.False(t, IsCode(err, CodeNotFound))
}

func TestWrapNilBehavesLikeNew(t *testing.T) {
	err := Wrap(nil, CodeNotFound, "bookmark not found")
	assert.Nil(t, err.Err)
	assert.Equal(t, "not_found: bookmark not found", err.Error())
}

func TestCodeOfThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("login: %w", New(CodeUnauthorized, "invalid credentials"))
	assert.Equal(t, CodeUnauthorized, CodeOf(err))
	assert.Equal(t, CodeUnknown, CodeOf(fmt.Errorf("plain")))
}

func TestWithMeta(t *testing.T) {
	err := New(CodeValidation, "name is required").WithMeta("field", "name")
	assert.Equal(t, "name", err.Meta["field"])
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeInvalid:       http.StatusBadRequest,
		CodeValidation:    http.StatusUnprocessableEntity,
		CodeUnauthorized:  http.StatusUnauthorized,
		CodeForbidden:     http.StatusForbidden,
		CodeNotFound:      http.StatusNotFound,
		CodeConflict:      http.StatusConflict,
		CodeAlreadyExists: http.StatusConflict,
		CodeUnavailable:   http.StatusServiceUnavailable,
		CodeDeadline:      http.StatusGatewayTimeout,
		CodeInternal:      http.StatusInternalServerError,
		CodeUnknown:       http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, HTTPStatus(code), "code %s", code)
	}
}
