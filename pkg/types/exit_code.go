// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// ExitSuccess reports a program that ran to completion.
	ExitSuccess ExitCode = 0
	// ExitExecute reports a routine failure.
	ExitExecute ExitCode = 1
	// ExitParse reports a tokenize or parse failure.
	ExitParse ExitCode = 2
	// ExitVerify reports input that does not match the grammar.
	ExitVerify ExitCode = 3
	// ExitInternal reports a failure outside the pipeline (build, config, I/O).
	ExitInternal ExitCode = 70
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode represents a process exit status code.
	// Exit codes are in the range 0-255 on POSIX systems.
	// The zero value (0) means success.
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode is outside the
	// valid range (0-255).
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

// Error implements the error interface.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must be in range 0-255)", e.Value)
}

// Unwrap returns ErrInvalidExitCode so callers can use errors.Is for programmatic detection.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// Validate returns an error if the ExitCode is outside the valid range (0-255).
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

// Label names the pipeline outcome the code stands for, or "" for codes
// wca never produces on its own (e.g. a script's exit status).
func (c ExitCode) Label() string {
	switch c {
	case ExitSuccess:
		return "success"
	case ExitExecute:
		return "execution failed"
	case ExitParse:
		return "invalid input"
	case ExitVerify:
		return "verification failed"
	case ExitInternal:
		return "internal error"
	}
	return ""
}

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
