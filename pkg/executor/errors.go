// SPDX-License-Identifier: MPL-2.0

package executor

import (
	"errors"
	"fmt"
)

var (
	// ErrRoutineFailed is the sentinel error wrapped by RoutineFailedError.
	ErrRoutineFailed = errors.New("routine failed")
	// ErrRoutinePanicked is the sentinel error wrapped by PanicError.
	ErrRoutinePanicked = errors.New("routine panicked")
	// ErrNoRoutine is returned when a verified command carries no routine.
	ErrNoRoutine = errors.New("command has no routine")
)

type (
	// RoutineFailedError is returned when the routine of the command at Index fails.
	RoutineFailedError struct {
		// Index is the zero-based position of the command in the program.
		Index  int
		Phrase string
		// Err is the error returned by the routine, or a *PanicError.
		Err error
	}

	// PanicError carries the value recovered from a panicking routine.
	PanicError struct {
		Value any
		Stack []byte
	}
)

// Error implements the error interface.
func (e *RoutineFailedError) Error() string {
	return fmt.Sprintf("command #%d %s failed: %v", e.Index, e.Phrase, e.Err)
}

// Unwrap returns ErrRoutineFailed and the routine error, so both errors.Is(err,
// ErrRoutineFailed) and matching the routine's own error work.
func (e *RoutineFailedError) Unwrap() []error {
	return []error{ErrRoutineFailed, e.Err}
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("routine panicked: %v", e.Value)
}

// Unwrap returns ErrRoutinePanicked, or the panic value itself when it is an error.
func (e *PanicError) Unwrap() []error {
	if err, ok := e.Value.(error); ok {
		return []error{ErrRoutinePanicked, err}
	}
	return []error{ErrRoutinePanicked}
}
