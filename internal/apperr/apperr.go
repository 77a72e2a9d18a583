// Package apperr holds the error taxonomy every operation boundary maps
// to an HTTP response: validation, not-found, authorization and
// upstream-service failures.
package apperr

import (
	"errors"
	"fmt"
)

// ValidationError rejects a request before any side effect happens.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string { return e.Msg }

// Validation builds a ValidationError with a formatted message.
func Validation(format string, args ...interface{}) error {
	return ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError means no matching record exists. No side effect occurred.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string { return e.Resource + " not found" }

// NotFound builds a NotFoundError for the named resource.
func NotFound(resource string) error {
	return NotFoundError{Resource: resource}
}

// AuthorizationError covers unauthenticated and non-admin access.
type AuthorizationError struct {
	Msg string
	// Forbidden distinguishes "authenticated but not allowed" from
	// "not authenticated".
	Forbidden bool
}

func (e AuthorizationError) Error() string { return e.Msg }

// UpstreamError wraps a failure from an external collaborator (database,
// blob storage, mail relay). Callers never retry automatically.
type UpstreamError struct {
	Service string
	Err     error
}

func (e UpstreamError) Error() string {
	return e.Service + " error: " + e.Err.Error()
}

func (e UpstreamError) Unwrap() error { return e.Err }

// Upstream wraps err as a failure of the named service. A nil err stays nil.
func Upstream(service string, err error) error {
	if err == nil {
		return nil
	}
	return UpstreamError{Service: service, Err: err}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var n NotFoundError
	return errors.As(err, &n)
}
