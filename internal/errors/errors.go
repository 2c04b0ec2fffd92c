package errors

import "fmt"

// ValidationErr signals a required field is missing or malformed. It is
// raised before any state mutation, so a rejected event leaves no trace.
type ValidationErr struct {
	field   string
	message string
}

func (e *ValidationErr) Error() string {
	return fmt.Sprintf("%s: %s", e.field, e.message)
}

// Field names the offending payload field.
func (e *ValidationErr) Field() string {
	return e.field
}

func NewValidationErr(field string, msg string) *ValidationErr {
	return &ValidationErr{field: field, message: msg}
}

// StoreErr signals a customer state store read or write failure. Processing
// of the current event stops, nothing is assumed to have been persisted.
type StoreErr struct {
	cause error
}

func (e *StoreErr) Error() string {
	return fmt.Sprintf("customer state store failure - %s", e.cause)
}

func (e *StoreErr) Unwrap() error {
	return e.cause
}

func NewStoreErr(cause error) *StoreErr {
	return &StoreErr{cause: cause}
}

// DispatchErr signals a notification delivery failure. State mutations
// committed before dispatch are deliberately not rolled back.
type DispatchErr struct {
	cause error
}

func (e *DispatchErr) Error() string {
	return fmt.Sprintf("notification dispatch failure - %s", e.cause)
}

func (e *DispatchErr) Unwrap() error {
	return e.cause
}

func NewDispatchErr(cause error) *DispatchErr {
	return &DispatchErr{cause: cause}
}
