// Package apperrors is the closed error taxonomy shared by all layers.
// The service translates storage failures into one of the five kinds and
// the HTTP boundary maps each kind onto exactly one status code.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind enumerates the five error categories the API can return.
type Kind int

const (
	KindNotFound Kind = iota
	KindBadRequest
	KindInternal
	KindUnauthorized
	KindConflict
)

// AppError carries a kind plus a human-readable message. The message is
// what ends up in the response envelope, so it must make sense to callers.
type AppError struct {
	Kind    Kind
	Message string
}

func (e *AppError) Error() string { return e.Message }

// Status maps the kind onto its HTTP status code.
func (e *AppError) Status() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func NotFound(format string, args ...any) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func BadRequest(format string, args ...any) *AppError {
	return &AppError{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

func Internal(format string, args ...any) *AppError {
	return &AppError{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(format string, args ...any) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *AppError {
	return &AppError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// HTTPStatus resolves any error to a status code and message for the
// boundary. Errors that are not AppErrors fold into a 500 with their
// message preserved.
func HTTPStatus(err error) (int, string) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Status(), ae.Message
	}
	return http.StatusInternalServerError, err.Error()
}
