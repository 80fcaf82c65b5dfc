package domain

import "fmt"

// Error types for consistent error handling across the AR tool pipeline.
// The adapter classifies every upstream failure into one of these; queries
// and aggregation propagate them unchanged.

// ErrConnection indicates Oracle could not be reached at the network level
// (DNS, TLS, timeout, connection refused, circuit open).
type ErrConnection struct {
	Host string
	Err  error
}

func (e *ErrConnection) Error() string {
	return fmt.Sprintf("cannot reach Oracle at %s: %v", e.Host, e.Err)
}

func (e *ErrConnection) Unwrap() error {
	return e.Err
}

// ErrAuthentication indicates the supplied credentials were rejected
// (401) or lack permission for the resource (403).
type ErrAuthentication struct {
	Status int
}

func (e *ErrAuthentication) Error() string {
	if e.Status == 403 {
		return "Permission denied"
	}
	return "Authentication failed"
}

// ErrNotFound indicates an unknown resource collection or record.
type ErrNotFound struct {
	Resource string
}

func (e *ErrNotFound) Error() string {
	return "Resource not found"
}

// ErrService indicates an upstream 5xx or an undecodable payload.
type ErrService struct {
	Status int
	Err    error
}

func (e *ErrService) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("API error %d", e.Status)
	}
	return fmt.Sprintf("API error: %v", e.Err)
}

func (e *ErrService) Unwrap() error {
	return e.Err
}

// ErrValidation indicates a bad tool argument (missing or malformed).
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error on '%s': %s", e.Field, e.Message)
}
