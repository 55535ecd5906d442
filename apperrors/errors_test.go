package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err    *AppError
		status int
	}{
		{NotFound("x"), http.StatusNotFound},
		{BadRequest("x"), http.StatusBadRequest},
		{Internal("x"), http.StatusInternalServerError},
		{Unauthorized("x"), http.StatusUnauthorized},
		{Conflict("x"), http.StatusConflict},
	}
	for _, c := range cases {
		assert.Equal(t, c.status, c.err.Status())
	}
}

func TestHTTPStatus_UnwrapsWrappedAppError(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", Conflict("Email %s is already taken", "a@b.c"))

	status, msg := HTTPStatus(wrapped)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Email a@b.c is already taken", msg)
}

func TestHTTPStatus_FoldsUnknownErrorInto500(t *testing.T) {
	status, msg := HTTPStatus(errors.New("something odd"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "something odd", msg)
}

func TestErrorMessageIsTheEnvelopeMessage(t *testing.T) {
	err := NotFound("User with id %s not found", "abc")
	assert.Equal(t, "User with id abc not found", err.Error())
}
