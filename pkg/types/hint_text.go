// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidHintText is the sentinel error wrapped by InvalidHintTextError.
var ErrInvalidHintText = errors.New("invalid hint text")

type (
	// HintText is a human-readable description of a command or slot.
	// The zero value ("") is valid and means no hint. Non-zero values must not
	// be whitespace-only or span several lines when used as a short hint.
	HintText string

	// InvalidHintTextError is returned when a HintText is whitespace-only, or
	// multi-line where a single line is required.
	InvalidHintTextError struct {
		Value  HintText
		Reason string
	}
)

// String returns the string representation of the HintText.
func (h HintText) String() string { return string(h) }

// IsValid returns whether the HintText is valid as a long hint.
// The zero value ("") is valid. Non-zero values must not be whitespace-only.
func (h HintText) IsValid() (bool, []error) {
	if h == "" {
		return true, nil
	}
	if strings.TrimSpace(string(h)) == "" {
		return false, []error{&InvalidHintTextError{Value: h, Reason: "must not be whitespace-only"}}
	}
	return true, nil
}

// IsValidShort is IsValid plus a single-line check, for hints that appear in
// the one-line-per-command help index.
func (h HintText) IsValidShort() (bool, []error) {
	if ok, errs := h.IsValid(); !ok {
		return ok, errs
	}
	if strings.ContainsAny(string(h), "\r\n") {
		return false, []error{&InvalidHintTextError{Value: h, Reason: "must be a single line"}}
	}
	return true, nil
}

// Error implements the error interface for InvalidHintTextError.
func (e *InvalidHintTextError) Error() string {
	return fmt.Sprintf("invalid hint text %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidHintText for errors.Is() compatibility.
func (e *InvalidHintTextError) Unwrap() error { return ErrInvalidHintText }
