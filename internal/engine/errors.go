package engine

import "fmt"

// NotFoundError reports a missing task or habit by id. Callers show it to
// the user directly.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}
