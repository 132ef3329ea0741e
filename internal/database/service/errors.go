package service

import (
	"errors"
	"fmt"
)

// Service errors
var (
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
)

// NotFoundError is returned by write operations that reference a row
// which must already exist. It carries the exact client-facing message.
type NotFoundError struct {
	msg string
}

func (e *NotFoundError) Error() string {
	return e.msg
}

func notFoundErrorf(format string, args ...any) *NotFoundError {
	return &NotFoundError{msg: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
