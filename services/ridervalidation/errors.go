package ridervalidation

import (
	"errors"
	"fmt"

	"github.com/piresc/riderstate/internal/pkg/converter"
)

var (
	ErrInvalidLocation = errors.New("invalid rider location")
	ErrMissingRider    = errors.New("rider is required")
	ErrMissingRiderID  = errors.New("rider_id is required")
)

// InvalidLocationError is returned when a coordinate is negative. The Lambda
// runtime reports its type name to the state machine.
type InvalidLocationError struct {
	RiderID string
	Lat     float64
	Long    float64
}

func (e *InvalidLocationError) Error() string {
	return fmt.Sprintf("Invalid location for %s with latitue %s and longitude %s",
		e.RiderID, converter.FormatFloat(e.Lat), converter.FormatFloat(e.Long))
}

func (e *InvalidLocationError) Is(target error) bool {
	return target == ErrInvalidLocation
}

// CoercionError is returned when a coordinate cannot be read as a number
type CoercionError struct {
	Field string
	Value any
	Err   error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("could not convert %s %#v to float: %v", e.Field, e.Value, e.Err)
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}
