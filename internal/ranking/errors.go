package ranking

import "fmt"

// InvalidInputError is returned when a recommendation request is missing required data.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
