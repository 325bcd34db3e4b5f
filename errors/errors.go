package errors

import (
	"errors"
	"fmt"
)

// Error represents an object service operation error with context about the operation that failed.
// It wraps the underlying cause (I/O, transport or service rejection) with additional context.
type Error struct {
	// Op is the operation that failed (e.g., "upload", "createUpload", "finishUpload")
	Op string

	// ProjectID is the project the object belongs to (if applicable)
	ProjectID string

	// Name is the object name (if applicable)
	Name string

	// code overrides the classification derived from Err
	code ErrorCode

	// Err is the underlying error
	Err error
}

// Error implements the error interface by providing a formatted error message.
func (e *Error) Error() string {
	if e.ProjectID != "" && e.Name != "" {
		return fmt.Sprintf("object.%s %s/%s: %v", e.Op, e.ProjectID, e.Name, e.Err)
	}
	if e.Name != "" {
		return fmt.Sprintf("object.%s %s: %v", e.Op, e.Name, e.Err)
	}
	if e.ProjectID != "" {
		return fmt.Sprintf("object.%s project %s: %v", e.Op, e.ProjectID, e.Err)
	}
	return fmt.Sprintf("object.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// Code returns the error classification.
func (e *Error) Code() ErrorCode {
	if e.code != "" {
		return e.code
	}
	return CodeOf(e.Err)
}

// WithProjectID adds project context to an existing error.
func (e *Error) WithProjectID(projectID string) *Error {
	e.ProjectID = projectID
	return e
}

// WithName adds object name context to an existing error.
func (e *Error) WithName(name string) *Error {
	e.Name = name
	return e
}

// WithCode overrides the derived error classification.
func (e *Error) WithCode(code ErrorCode) *Error {
	e.code = code
	return e
}

// WithMessage wraps the underlying error with a custom message.
func (e *Error) WithMessage(message string) *Error {
	e.Err = fmt.Errorf("%s: %w", message, e.Err)
	return e
}

// NewError creates a new Error with the given operation and underlying error.
func NewError(op string, err error) *Error {
	return &Error{
		Op:  op,
		Err: err,
	}
}

// NewObjectError creates a new Error with project and object name context.
func NewObjectError(op, projectID, name string, err error) *Error {
	return &Error{
		Op:        op,
		ProjectID: projectID,
		Name:      name,
		Err:       err,
	}
}

// Sentinel errors for common object service failures.
// These can be used with errors.Is() for error checking.
var (
	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("object: invalid input")

	// ErrInvalidConfig indicates that the client configuration is invalid
	ErrInvalidConfig = errors.New("object: invalid configuration")

	// ErrObjectNotFound indicates that the object or upload does not exist
	ErrObjectNotFound = errors.New("object: not found")

	// ErrAccessDenied indicates that the service handle is not authorized for the operation
	ErrAccessDenied = errors.New("object: access denied")

	// ErrConflict indicates that the service rejected the request because of a conflicting upload
	ErrConflict = errors.New("object: conflict")

	// ErrTooManyRequests indicates that the request rate is too high
	ErrTooManyRequests = errors.New("object: too many requests")

	// ErrServiceUnavailable indicates that the service failed or is temporarily unavailable
	ErrServiceUnavailable = errors.New("object: service unavailable")

	// ErrConnection indicates a connection error
	ErrConnection = errors.New("object: connection error")

	// ErrSourceIO indicates the data source could not be measured or read
	ErrSourceIO = errors.New("object: data source error")

	// ErrUploadMethodRejected indicates the service accepted none of the proposed upload methods
	ErrUploadMethodRejected = errors.New("object: upload method rejected")

	// ErrNotImplemented indicates that the requested upload strategy is not implemented
	ErrNotImplemented = errors.New("object: not implemented")
)

// CodeOf classifies err by the sentinel it wraps.
func CodeOf(err error) ErrorCode {
	var oe *Error
	if errors.As(err, &oe) && oe.code != "" {
		return oe.code
	}

	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, ErrInvalidConfig):
		return CodeInvalidConfig
	case errors.Is(err, ErrObjectNotFound):
		return CodeNotFound
	case errors.Is(err, ErrAccessDenied):
		return CodeForbidden
	case errors.Is(err, ErrConflict), errors.Is(err, ErrUploadMethodRejected):
		return CodeConflict
	case errors.Is(err, ErrTooManyRequests):
		return CodeRateLimit
	case errors.Is(err, ErrServiceUnavailable):
		return CodeUnavailable
	case errors.Is(err, ErrConnection):
		return CodeNetwork
	case errors.Is(err, ErrSourceIO):
		return CodeIO
	case errors.Is(err, ErrNotImplemented):
		return CodeNotImplemented
	default:
		return CodeUnknown
	}
}

// IsNotImplemented reports whether err indicates an unimplemented upload strategy.
func IsNotImplemented(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}

// IsObjectNotFound checks if an error indicates that an object was not found.
func IsObjectNotFound(err error) bool {
	return errors.Is(err, ErrObjectNotFound)
}

// IsAccessDenied checks if an error indicates access was denied.
func IsAccessDenied(err error) bool {
	return errors.Is(err, ErrAccessDenied)
}

// IsInvalidInput checks if an error indicates invalid input.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
