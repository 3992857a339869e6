package onboarding

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownStep        = errors.New("unknown onboarding step")
	ErrNoSelection        = errors.New("no option selected")
	ErrUnknownOption      = errors.New("unknown option")
	ErrTooMany            = errors.New("too many options selected")
	ErrExclusiveOption    = errors.New("option cannot be combined with others")
	ErrTooManyRestDays    = errors.New("you can only select up to 4 rest days")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidMeasurement = errors.New("invalid height or weight")
	ErrInvalidPainLevel   = errors.New("pain level must be between 0 and 10")
)

// ValidationError ties a validation failure to the profile field it concerns.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %v: %q", e.Field, e.Err, e.Value)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(field string, err error, value string) error {
	return &ValidationError{Field: field, Value: value, Err: err}
}
