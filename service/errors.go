package service

import (
	"errors"
	"fmt"

	"github.com/ncobase/blogpost/ecode"
)

// ErrMalformedBody is returned when a request body is not a JSON object.
var ErrMalformedBody = errors.New("malformed request body")

// MissingFieldError reports the first required key absent from a body.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return ecode.MissingInBody(e.Field)
}

// IDMismatchError reports an update whose body id differs from the path id.
type IDMismatchError struct {
	PathID string
	BodyID string
}

func (e *IDMismatchError) Error() string {
	return ecode.IDsMustMatch(e.PathID, e.BodyID)
}

// CastError reports a field value that cannot be stored in the document.
type CastError struct {
	Field string
	Err   error
}

func (e *CastError) Error() string {
	return fmt.Sprintf("cast to %s failed: %v", e.Field, e.Err)
}

func (e *CastError) Unwrap() error {
	return e.Err
}
