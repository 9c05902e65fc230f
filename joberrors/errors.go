package joberrors

import "fmt"

// Kind categorizes the failures this adapter can surface.
type Kind string

const (
	// Unsupported marks an operation that has no meaning for the current
	// execution mode, e.g. queue position on a local simulator.
	Unsupported Kind = "unsupported"
	// Retrieval marks a result-retrieval failure that is not the transient
	// not-ready condition (that one is retried, never surfaced).
	Retrieval Kind = "retrieval"
	// Validation marks malformed construction input.
	Validation Kind = "validation"
	// NotFound marks a lookup for something that does not exist.
	NotFound Kind = "not_found"
	// Persistence marks a job-metadata store failure.
	Persistence Kind = "persistence"
)

// JobError provides structured error information for job-lifecycle callers.
type JobError struct {
	Kind    Kind           `json:"kind"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	Cause   error          `json:"-"`
}

func (e *JobError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause so errors.Is/As see through the
// taxonomy, e.g. to detect context.Canceled after a cancelled retrieval.
func (e *JobError) Unwrap() error {
	return e.Cause
}

// WithCause attaches the underlying error and returns the receiver.
func (e *JobError) WithCause(cause error) *JobError {
	e.Cause = cause
	return e
}

// Constructor functions for common error kinds
func NewUnsupportedError(message string, details ...map[string]any) *JobError {
	return newError(Unsupported, message, details)
}

func NewRetrievalError(message string, details ...map[string]any) *JobError {
	return newError(Retrieval, message, details)
}

func NewValidationError(message string, details ...map[string]any) *JobError {
	return newError(Validation, message, details)
}

func NewNotFoundError(message string, details ...map[string]any) *JobError {
	return newError(NotFound, message, details)
}

func NewPersistenceError(message string, details ...map[string]any) *JobError {
	return newError(Persistence, message, details)
}

func newError(kind Kind, message string, details []map[string]any) *JobError {
	var d map[string]any
	if len(details) > 0 {
		d = details[0]
	}
	return &JobError{
		Kind:    kind,
		Message: message,
		Details: d,
	}
}

// IsJobError checks if an error is a JobError and returns it
func IsJobError(err error) (*JobError, bool) {
	if jobErr, ok := err.(*JobError); ok {
		return jobErr, true
	}
	return nil, false
}

// IsUnsupported reports whether err is a JobError of kind Unsupported.
func IsUnsupported(err error) bool {
	jobErr, ok := IsJobError(err)
	return ok && jobErr.Kind == Unsupported
}
