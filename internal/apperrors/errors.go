package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrBadEnum indicates that a value could not be parsed into one of the recognized enum values.
var ErrBadEnum = errors.New("unrecognized enum value")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrAuthentication indicates that supplied credentials did not match.
var ErrAuthentication = errors.New("authentication failed")

// AppError carries a user-facing message together with the sentinel that classifies it.
// Error() returns the message verbatim, errors.Is matches the sentinel.
type AppError struct {
	Code    int    // Optional transport hint, 0 when unset
	Kind    error  // One of the sentinels above, nil for infrastructure failures
	Message string // Message surfaced to the caller
	Err     error  // Underlying cause, if any
}

func (e *AppError) Error() string {
	if e.Message == "" && e.Err != nil {
		return e.Err.Error()
	}
	if e.Kind == nil && e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes both the classifying sentinel and the underlying cause.
func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewAppError wraps an infrastructure failure with a status code hint and context message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError reports a business-rule violation.
func NewValidationError(message string) *AppError {
	return &AppError{Kind: ErrValidation, Message: message}
}

// NewNotFoundError reports a missing entry or owner.
func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: ErrNotFound, Message: message}
}

// NewBadEnumError reports a value outside an enumeration.
func NewBadEnumError(message string) *AppError {
	return &AppError{Kind: ErrBadEnum, Message: message}
}

// NewDuplicateError reports a uniqueness conflict.
func NewDuplicateError(message string) *AppError {
	return &AppError{Kind: ErrDuplicate, Message: message}
}

// NewAuthenticationError reports a credential mismatch.
func NewAuthenticationError(message string) *AppError {
	return &AppError{Kind: ErrAuthentication, Message: message}
}
