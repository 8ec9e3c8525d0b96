package apperror

import (
	"errors"
	"fmt"
)

// Code classifies an application error.
type Code int

const (
	CodeNotFound Code = iota + 1
	CodeValidation
	CodeConflict
	CodeReferenced
	CodeUnauthorized
	CodeForbidden
	CodeInternal
)

// Error is the application error type carried across layer boundaries.
// Fields holds field-keyed validation messages when Code is CodeValidation.
type Error struct {
	Code    Code              `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Err     error             `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(resource string) *Error {
	return &Error{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func Validation(fields map[string]string) *Error {
	return &Error{
		Code:    CodeValidation,
		Message: "validation failed",
		Fields:  fields,
	}
}

// ValidationField reports a single-field validation failure.
func ValidationField(field, message string) *Error {
	return Validation(map[string]string{field: message})
}

func Conflict(resource string, err error) *Error {
	return &Error{
		Code:    CodeConflict,
		Message: fmt.Sprintf("%s was modified by another request", resource),
		Err:     err,
	}
}

// Referenced reports a delete blocked by dependent rows.
func Referenced(resource string, err error) *Error {
	return &Error{
		Code:    CodeReferenced,
		Message: fmt.Sprintf("%s is referenced by existing appointments and cannot be deleted", resource),
		Err:     err,
	}
}

func Unauthorized(message string) *Error {
	return &Error{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

func Forbidden(message string) *Error {
	return &Error{
		Code:    CodeForbidden,
		Message: message,
	}
}

func Internal(err error) *Error {
	return &Error{
		Code:    CodeInternal,
		Message: "internal server error",
		Err:     err,
	}
}

// CodeOf extracts the Code from err, or CodeInternal when err is not an *Error.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

func IsNotFound(err error) bool   { return CodeOf(err) == CodeNotFound }
func IsValidation(err error) bool { return CodeOf(err) == CodeValidation }
func IsConflict(err error) bool   { return CodeOf(err) == CodeConflict }
func IsReferenced(err error) bool { return CodeOf(err) == CodeReferenced }

// FieldsOf returns the field messages from a validation error, or nil.
func FieldsOf(err error) map[string]string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}
