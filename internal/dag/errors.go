package dag

import (
	"errors"
	"fmt"
)

// ShapeError reports bulk graph input that is not mapping-shaped, or a
// successor collection that is not a sequence or set.
type ShapeError struct {
	// Vertex is the offending key, when known.
	Vertex string

	// Message describes the shape violation.
	Message string
}

func (e *ShapeError) Error() string {
	if e.Vertex != "" {
		return fmt.Sprintf("invalid graph shape at %q: %s", e.Vertex, e.Message)
	}
	return fmt.Sprintf("invalid graph shape: %s", e.Message)
}

// CycleError reports that a topological sort found a cycle. Only detection
// is reported, not the cycle's membership.
type CycleError struct{}

func (e *CycleError) Error() string {
	return "cycle detected"
}

// IsCycle returns true if the error is a cycle detection error.
// Uses errors.As to handle wrapped errors.
func IsCycle(err error) bool {
	var ce *CycleError
	return errors.As(err, &ce)
}
