package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that a write lost a race against a concurrent write
// (exclusion or uniqueness constraint violated at commit time).
var ErrConflict = errors.New("constraint conflict")

// ErrTransient indicates a connectivity or timeout failure at the persistence layer.
// Callers that are idempotent may retry.
var ErrTransient = errors.New("transient store error")

// AppError carries an HTTP-ish status code alongside a message and the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets 5xx AppErrors match ErrTransient without every call site wrapping it twice.
func (e *AppError) Is(target error) bool {
	return target == ErrTransient && e.Code >= 500
}

// NewAppError creates an AppError. A 5xx code marks the error as transient.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError wraps ErrNotFound with a message.
func NewNotFoundError(message string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, message)
}

// NewConflictError wraps ErrConflict with a message.
func NewConflictError(message string) error {
	return fmt.Errorf("%w: %s", ErrConflict, message)
}

// NewValidationError wraps ErrValidation with a message that is not tied to a field.
func NewValidationError(message string) error {
	return NewValidationFailedError(NonFieldErrors, message)
}

// NewValidationFailedError builds a ValidationFailedError with a single field message.
func NewValidationFailedError(field, message string) error {
	v := &ValidationFailedError{}
	v.Add(field, message)
	return v
}

// NonFieldErrors is the key used for messages that concern the record as a whole.
const NonFieldErrors = "non_field_errors"

// ValidationFailedError collects field-keyed validation messages.
// errors.Is(err, ErrValidation) reports true for it.
type ValidationFailedError struct {
	Fields map[string][]string
}

// Add appends a message for the given field.
func (v *ValidationFailedError) Add(field, message string) {
	if v.Fields == nil {
		v.Fields = make(map[string][]string)
	}
	v.Fields[field] = append(v.Fields[field], message)
}

// HasErrors reports whether any message was recorded.
func (v *ValidationFailedError) HasErrors() bool {
	return v != nil && len(v.Fields) > 0
}

// OrNil returns v as an error when it has messages, nil otherwise.
func (v *ValidationFailedError) OrNil() error {
	if !v.HasErrors() {
		return nil
	}
	return v
}

func (v *ValidationFailedError) Error() string {
	keys := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(v.Fields[k], "; "))
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, ", ")
}

func (v *ValidationFailedError) Is(target error) bool {
	return target == ErrValidation
}

// AsValidationFailed extracts the field messages from err, if it carries any.
func AsValidationFailed(err error) (*ValidationFailedError, bool) {
	var v *ValidationFailedError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
