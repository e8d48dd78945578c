package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the resource exists but the caller may not act on it,
// or that the requested mutation would break the category hierarchy.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates that the caller identity could not be established.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal indicates an unexpected failure in a collaborator (usually the store).
var ErrInternal = errors.New("internal error")

// AppError carries a status-like code alongside the wrapped cause.
// Store adapters use it for infrastructure failures whose detail must not reach clients.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError. A nil err is replaced by ErrInternal.
func NewAppError(code int, message string, err error) *AppError {
	if err == nil {
		err = ErrInternal
	}
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(appErr, ErrInternal) hold for every 5xx AppError.
func (e *AppError) Is(target error) bool {
	return target == ErrInternal && e.Code >= 500
}
