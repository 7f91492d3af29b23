package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned when inputs are rejected before a run starts
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrSimulationFailure is returned when a run aborts on a numeric fault
	ErrSimulationFailure = errors.New("simulation failure")
)

// InvalidParameterError identifies the offending input field
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}

func (e *InvalidParameterError) Unwrap() error { return ErrInvalidParameter }

// SimulationFailureError identifies where a run aborted. Year 0 is the partial-period seed pass.
type SimulationFailureError struct {
	Year    int
	Account string
	Reason  string
}

func (e *SimulationFailureError) Error() string {
	if e.Account == "" {
		return fmt.Sprintf("simulation failed in year %d: %s", e.Year, e.Reason)
	}
	return fmt.Sprintf("simulation failed in year %d (%s): %s", e.Year, e.Account, e.Reason)
}

func (e *SimulationFailureError) Unwrap() error { return ErrSimulationFailure }
