package catalog

import "fmt"

// LoadError is returned when a dataset file cannot be read, validated or decoded.
type LoadError struct {
	Path  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load catalog file %s: %v", e.Path, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// IntegrityError is returned when decoded datasets are inconsistent with each other.
type IntegrityError struct {
	Dataset string
	Message string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("catalog integrity error in %s: %s", e.Dataset, e.Message)
}
