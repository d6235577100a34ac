package scene

import (
	"errors"
	"fmt"
)

// ErrInvalidScene is wrapped by every scene validation failure
var ErrInvalidScene = errors.New("invalid scene")

// ValidationError describes which part of a scene violates a rendering precondition
type ValidationError struct {
	Field  string // e.g. "width", "objects[2].mesh"
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid scene: %s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalidScene) match
func (e *ValidationError) Unwrap() error {
	return ErrInvalidScene
}

func invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
