package workflow

import "fmt"

// NotFoundError reports which entity kind and id a load step failed on, so
// the caller can render a precise message instead of a generic 404.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// DuplicatePatientError is returned when promotion would create a second ward
// patient with the same DNI in the same hospital. ExistingName is the name of
// the patient already on the list, included for the user-facing message.
type DuplicatePatientError struct {
	DNI          string
	ExistingName string
}

func (e *DuplicatePatientError) Error() string {
	return fmt.Sprintf("ya existe un paciente con DNI %s: %s", e.DNI, e.ExistingName)
}

// PersistenceError wraps a store failure with the step it occurred in.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// ValidationError lists the identity fields still empty after every fallback
// source was consulted.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required fields missing: %v", e.Fields)
}
