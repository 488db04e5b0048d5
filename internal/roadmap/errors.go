package roadmap

import "fmt"

// NotFoundError is returned when the requested career is not in the catalog.
type NotFoundError struct {
	CareerID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("career not found: %s", e.CareerID)
}

// InvalidInputError is returned when a career cannot produce a roadmap.
type InvalidInputError struct {
	CareerID string
	Message  string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("cannot build roadmap for %s: %s", e.CareerID, e.Message)
}
