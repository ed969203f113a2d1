// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrEphemerisUnavailable = errors.New("ephemeris unavailable")
	ErrLocationNotFound     = errors.New("location not found")
	ErrGeocodeTimeout       = errors.New("geocoding timeout")
	ErrInvalidBirthData     = errors.New("invalid birth data")
	ErrInvalidCoordinates   = errors.New("invalid coordinates")
	ErrDatasetNotFound      = errors.New("interpretation dataset not found")
	ErrDatabaseError        = errors.New("database error")
	ErrLLMUnavailable       = errors.New("language model unavailable")
	ErrConfigInvalid        = errors.New("invalid configuration")
)

// ChartError represents a failure during chart computation. Stage names the
// pipeline step that failed (positions, houses, assembly).
type ChartError struct {
	Stage   string
	Message string
	Err     error
}

func (e *ChartError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("chart error [%s]: %s: %v", e.Stage, e.Message, e.Err)
	}
	return fmt.Sprintf("chart error [%s]: %s", e.Stage, e.Message)
}

func (e *ChartError) Unwrap() error {
	return e.Err
}

// NewChartError creates a new ChartError.
func NewChartError(stage, message string, err error) *ChartError {
	return &ChartError{
		Stage:   stage,
		Message: message,
		Err:     err,
	}
}

// GeocodeError represents a failure from a geocoding provider.
type GeocodeError struct {
	Provider string
	Location string
	Err      error
}

func (e *GeocodeError) Error() string {
	return fmt.Sprintf("geocode error [%s] %q: %v", e.Provider, e.Location, e.Err)
}

func (e *GeocodeError) Unwrap() error {
	return e.Err
}

// NewGeocodeError creates a new GeocodeError.
func NewGeocodeError(provider, location string, err error) *GeocodeError {
	return &GeocodeError{
		Provider: provider,
		Location: location,
		Err:      err,
	}
}

// ValidationError represents a request validation error.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
