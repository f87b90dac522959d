package errors

import (
	"errors"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// NewClientError is returned for payloads the client has to fix.
func NewClientError(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

func NewNotFoundError(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

// NewAuthorizationError is returned when the caller is known but does not own the resource.
func NewAuthorizationError(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusForbidden}
}

func NewAuthenticationError(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusUnauthorized}
}

// StatusCode reports the http status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode, true
	}
	return 0, false
}

func IsNotFound(err error) bool {
	code, ok := StatusCode(err)
	return ok && code == http.StatusNotFound
}

// DomainError carries a failure code raised by entities and use cases,
// e.g. NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY.
type DomainError struct {
	Code string
}

func (e *DomainError) Error() string {
	return e.Code
}

func NewDomainError(code string) *DomainError {
	return &DomainError{Code: code}
}

// HasCode checks if err is a DomainError with the given code
func HasCode(err error, code string) bool {
	var e *DomainError
	return errors.As(err, &e) && e.Code == code
}
