package ecosystem

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when the grid width or height is not positive.
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrInvalidTickUnit is returned when the tick unit is not a positive number of years.
	ErrInvalidTickUnit = errors.New("tick unit must be positive")
	// ErrUnknownKey is returned for configuration keys the simulation does not know.
	ErrUnknownKey = errors.New("unknown config key")
)

// ConfigError describes a rejected configuration field.
type ConfigError struct {
	Field string
	Value any
	// Suggestion holds the closest known key for ErrUnknownKey, if any.
	Suggestion string
	Err        error
}

func (e *ConfigError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("ecosystem config %s=%v: %v (did you mean %q?)", e.Field, e.Value, e.Err, e.Suggestion)
	}
	return fmt.Sprintf("ecosystem config %s=%v: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// InvariantError reports the first broken state invariant found in a world.
type InvariantError struct {
	X, Y   int
	Layer  string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("ecosystem invariant violated at (%d,%d) %s: %s", e.X, e.Y, e.Layer, e.Detail)
}
