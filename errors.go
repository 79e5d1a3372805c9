package evolve

import (
	"errors"
	"fmt"
)

// ConfigurationError is returned by NewEngine when the size parameters can
// not describe a well-formed population. No work has been done when it is
// returned.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid engine configuration: %s: %s", e.Field, e.Reason)
}

// OperatorError wraps a failure (or recovered panic) from one of the caller
// supplied operators. Generation 0 is the initial population.
type OperatorError struct {
	Operator   string
	Generation uint
	Err        error
}

func (e *OperatorError) Error() string {
	return fmt.Sprintf("operator %s failed in generation %d: %v", e.Operator, e.Generation, e.Err)
}

func (e *OperatorError) Unwrap() error {
	return e.Err
}

// PersistenceError wraps a failed Sink write. The population of the failing
// generation was fully assembled and ranked before the write was attempted.
type PersistenceError struct {
	Generation uint
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist generation %d: %v", e.Generation, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

var (
	ErrEngineSpent = errors.New("engine has already run; construct a new one")
	errSinkClosed  = errors.New("sink is closed")
)

// firstError returns the first non-nil error in errs.
func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
