// SPDX-License-Identifier: MPL-2.0

package verifier

import (
	"errors"
	"fmt"

	"github.com/invowk/wca/pkg/value"
)

var (
	// ErrUnknownPhrase is the sentinel error wrapped by UnknownPhraseError.
	ErrUnknownPhrase = errors.New("unknown command")
	// ErrTooManySubjects is the sentinel error wrapped by TooManySubjectsError.
	ErrTooManySubjects = errors.New("too many subjects")
	// ErrMissingSubject is the sentinel error wrapped by MissingSubjectError.
	ErrMissingSubject = errors.New("missing subject")
	// ErrSubjectKindMismatch is the sentinel error wrapped by SubjectKindMismatchError.
	ErrSubjectKindMismatch = errors.New("subject kind mismatch")
	// ErrUnknownProperty is the sentinel error wrapped by UnknownPropertyError.
	ErrUnknownProperty = errors.New("unknown property")
	// ErrPropertyKindMismatch is the sentinel error wrapped by PropertyKindMismatchError.
	ErrPropertyKindMismatch = errors.New("property kind mismatch")
	// ErrMissingProperty is the sentinel error wrapped by MissingPropertyError.
	ErrMissingProperty = errors.New("missing property")
)

type (
	// UnknownPhraseError is returned when no command is registered under Phrase.
	UnknownPhraseError struct {
		Phrase string
		// Suggestion is the closest registered phrase, or empty when none is
		// close enough or suggestions are disabled.
		Suggestion string
	}

	// TooManySubjectsError is returned when a command receives more positional
	// tokens than it has subject slots.
	TooManySubjectsError struct {
		Phrase   string
		Expected int
		Got      int
	}

	// MissingSubjectError is returned when a mandatory subject slot has no token.
	MissingSubjectError struct {
		Phrase    string
		SlotIndex int
	}

	// SubjectKindMismatchError is returned when a positional token does not
	// parse as its slot's kind.
	SubjectKindMismatchError struct {
		Phrase    string
		SlotIndex int
		Expected  value.Kind
		Observed  string
		Reason    string
	}

	// UnknownPropertyError is returned when a named token matches no property
	// name or alias.
	UnknownPropertyError struct {
		Phrase string
		Name   string
		// Suggestion is the closest property name or alias, or empty.
		Suggestion string
	}

	// PropertyKindMismatchError is returned when a named token's value does not
	// parse as the property's kind. Name is the canonical property name.
	PropertyKindMismatchError struct {
		Phrase   string
		Name     string
		Expected value.Kind
		Observed string
		Reason   string
	}

	// MissingPropertyError is returned when a mandatory property is absent.
	MissingPropertyError struct {
		Phrase string
		Name   string
	}
)

// Error implements the error interface.
func (e *UnknownPhraseError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown command %q (did you mean %q?)", e.Phrase, e.Suggestion)
	}
	return fmt.Sprintf("unknown command %q", e.Phrase)
}

// Unwrap returns ErrUnknownPhrase for errors.Is() compatibility.
func (e *UnknownPhraseError) Unwrap() error { return ErrUnknownPhrase }

// Error implements the error interface.
func (e *TooManySubjectsError) Error() string {
	return fmt.Sprintf("%s: expected at most %d subject(s), got %d", e.Phrase, e.Expected, e.Got)
}

// Unwrap returns ErrTooManySubjects for errors.Is() compatibility.
func (e *TooManySubjectsError) Unwrap() error { return ErrTooManySubjects }

// Error implements the error interface.
func (e *MissingSubjectError) Error() string {
	return fmt.Sprintf("%s: missing mandatory subject #%d", e.Phrase, e.SlotIndex)
}

// Unwrap returns ErrMissingSubject for errors.Is() compatibility.
func (e *MissingSubjectError) Unwrap() error { return ErrMissingSubject }

// Error implements the error interface.
func (e *SubjectKindMismatchError) Error() string {
	msg := fmt.Sprintf("%s: subject #%d: expected %s, got %q", e.Phrase, e.SlotIndex, e.Expected, e.Observed)
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

// Unwrap returns ErrSubjectKindMismatch for errors.Is() compatibility.
func (e *SubjectKindMismatchError) Unwrap() error { return ErrSubjectKindMismatch }

// Error implements the error interface.
func (e *UnknownPropertyError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s: unknown property %q (did you mean %q?)", e.Phrase, e.Name, e.Suggestion)
	}
	return fmt.Sprintf("%s: unknown property %q", e.Phrase, e.Name)
}

// Unwrap returns ErrUnknownProperty for errors.Is() compatibility.
func (e *UnknownPropertyError) Unwrap() error { return ErrUnknownProperty }

// Error implements the error interface.
func (e *PropertyKindMismatchError) Error() string {
	msg := fmt.Sprintf("%s: property %q: expected %s, got %q", e.Phrase, e.Name, e.Expected, e.Observed)
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

// Unwrap returns ErrPropertyKindMismatch for errors.Is() compatibility.
func (e *PropertyKindMismatchError) Unwrap() error { return ErrPropertyKindMismatch }

// Error implements the error interface.
func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("%s: missing mandatory property %q", e.Phrase, e.Name)
}

// Unwrap returns ErrMissingProperty for errors.Is() compatibility.
func (e *MissingPropertyError) Unwrap() error { return ErrMissingProperty }
