package models

import "fmt"

// ValidationError indicates malformed or out-of-range input. Surfaced to the
// caller as a 400, never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError indicates a referenced entity key is absent.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// RejectedError indicates a business-rule guard fired, e.g. a positive award
// for a student marked absent today. Surfaced with an explanation.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return e.Reason
}

func NewRejectedError(reason string) error {
	return &RejectedError{Reason: reason}
}

// ConsistencyError indicates a counter update failed after its event insert.
// The whole operation is rolled back; the event log and counters never
// diverge.
type ConsistencyError struct {
	Op  string
	Err error
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("consistency failure in %s: %v", e.Op, e.Err)
}

func (e *ConsistencyError) Unwrap() error {
	return e.Err
}
