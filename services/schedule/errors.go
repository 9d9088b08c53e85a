package schedule

import (
	"errors"
	"fmt"
)

// Error codes carried by ServiceError.
const (
	CodeValidation  = "validationError"
	CodeNotFound    = "notFound"
	CodeStorage     = "storageUnavailable"
	CodeInterpreter = "interpreterError"
)

type ServiceError struct {
	Code    string
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func NewValidationError(msg string) error {
	return &ServiceError{Code: CodeValidation, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &ServiceError{Code: CodeNotFound, Message: msg}
}

func NewStorageError(msg string, err error) error {
	return &ServiceError{Code: CodeStorage, Message: msg, Err: err}
}

func NewInterpreterError(msg string, err error) error {
	return &ServiceError{Code: CodeInterpreter, Message: msg, Err: err}
}

// ErrorCode extracts the service error code from err, or "" for foreign errors.
func ErrorCode(err error) string {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Code
	}
	return ""
}
