// SPDX-License-Identifier: MPL-2.0

package grammar

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/invowk/wca/pkg/types"
	"github.com/invowk/wca/pkg/value"
)

var (
	// ErrInvalidCommand is the sentinel error wrapped by InvalidCommandError.
	ErrInvalidCommand = errors.New("invalid command")
	// ErrInvalidPhrase is returned when a phrase is not a dot-prefixed identifier path.
	ErrInvalidPhrase = errors.New("invalid phrase")
	// ErrSubjectOrder is returned when a mandatory subject follows an optional one.
	ErrSubjectOrder = errors.New("mandatory subject after optional subject")
	// ErrInvalidPropertyName is returned when a property name or alias is not a valid NAME.
	ErrInvalidPropertyName = errors.New("invalid property name")
	// ErrDuplicatePropertyName is returned when a property name or alias is used twice.
	ErrDuplicatePropertyName = errors.New("duplicate property name")
	// ErrInvalidDefault is returned when a slot's default literal does not parse as its kind.
	ErrInvalidDefault = errors.New("invalid default value")
	// ErrMissingRoutine is returned when a command has no routine.
	ErrMissingRoutine = errors.New("missing routine")

	namePattern   = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)
	phrasePattern = regexp.MustCompile(`^\.[A-Za-z_][A-Za-z0-9_-]*(?:\.[A-Za-z_][A-Za-z0-9_-]*)*$`)
)

type (
	// SubjectSlot describes one positional argument.
	SubjectSlot struct {
		// Hint is a short human-readable description.
		Hint string
		// Kind is the expected value kind.
		Kind value.Kind
		// Optional subjects may be omitted; they must come after all mandatory ones.
		Optional bool
		// Default is a raw literal used when an optional subject is omitted (optional).
		// When empty, the kind's zero value is used.
		Default string
	}

	// PropertySlot describes one named argument.
	PropertySlot struct {
		// Name is the canonical property name (NAME syntax).
		Name string
		// Hint is a short human-readable description.
		Hint string
		// Kind is the expected value kind.
		Kind value.Kind
		// Optional properties may be omitted.
		Optional bool
		// Aliases are alternative names resolved to Name.
		Aliases []string
		// Default is a raw literal inserted when an optional property is omitted (optional).
		// When empty, an omitted property stays absent.
		Default string
	}

	// Command is a grammar entry: a phrase, its slots and its routine.
	Command struct {
		// Phrase is the dot-prefixed command name, e.g. ".echo" or ".module.list".
		Phrase string
		// Hint is the one-line description shown in the help index.
		Hint string
		// LongHint is the detailed description shown by per-command help.
		LongHint string
		// Subjects are the positional slots, bound left to right.
		Subjects []SubjectSlot
		// Properties are the named slots.
		Properties []PropertySlot
		// Routine runs when the command executes.
		Routine Routine
		// Internal marks commands registered by the aggregator itself (e.g. ".help").
		Internal bool
	}

	// InvalidCommandError is returned when a Command violates grammar rules.
	// It collects every field-level problem found.
	InvalidCommandError struct {
		Phrase      string
		FieldErrors []error
	}
)

// IsName reports whether s is a valid property name: [A-Za-z_][A-Za-z0-9_-]*.
func IsName(s string) bool { return namePattern.MatchString(s) }

// IsPhrase reports whether s is a valid phrase: '.' NAME ('.' NAME)*.
func IsPhrase(s string) bool { return phrasePattern.MatchString(s) }

// Error implements the error interface.
func (e *InvalidCommandError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid command %q: %s", e.Phrase, strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidCommand and the field errors for errors.Is() compatibility.
func (e *InvalidCommandError) Unwrap() []error {
	return append([]error{ErrInvalidCommand}, e.FieldErrors...)
}

// Describe returns a short description of the slot, e.g. "subject #0 (path)".
func (s SubjectSlot) Describe(index int) string {
	return fmt.Sprintf("subject #%d (%s)", index, s.Kind)
}

// DefaultValue returns the value used when the slot is omitted.
func (s SubjectSlot) DefaultValue() (value.Value, error) {
	if s.Default == "" {
		return value.Default(s.Kind), nil
	}
	return value.Parse(s.Kind, s.Default)
}

// Names returns the canonical name followed by the aliases.
func (p PropertySlot) Names() []string {
	return append([]string{p.Name}, p.Aliases...)
}

// DefaultValue returns the declared default, and false when none is declared.
func (p PropertySlot) DefaultValue() (value.Value, bool, error) {
	if p.Default == "" {
		return value.Value{}, false, nil
	}
	v, err := value.Parse(p.Kind, p.Default)
	if err != nil {
		return value.Value{}, false, err
	}
	return v, true, nil
}

// Property resolves a name or alias to its property slot.
func (c *Command) Property(name string) (*PropertySlot, bool) {
	for i := range c.Properties {
		if c.Properties[i].Name == name {
			return &c.Properties[i], true
		}
	}
	for i := range c.Properties {
		for _, alias := range c.Properties[i].Aliases {
			if alias == name {
				return &c.Properties[i], true
			}
		}
	}
	return nil, false
}

// PropertyNames returns every canonical name and alias in declaration order.
func (c *Command) PropertyNames() []string {
	var names []string
	for i := range c.Properties {
		names = append(names, c.Properties[i].Names()...)
	}
	return names
}

// MandatorySubjects returns how many subjects must be supplied.
func (c *Command) MandatorySubjects() int {
	n := 0
	for _, s := range c.Subjects {
		if !s.Optional {
			n++
		}
	}
	return n
}

// IsValid returns whether the command satisfies the grammar rules, and a list
// of validation errors if it does not.
func (c *Command) IsValid() (bool, []error) {
	var errs []error

	if !IsPhrase(c.Phrase) {
		errs = append(errs, fmt.Errorf("%w: %q must be '.' followed by dot-separated names", ErrInvalidPhrase, c.Phrase))
	}
	if c.Routine == nil {
		errs = append(errs, ErrMissingRoutine)
	}
	if ok, hintErrs := types.HintText(c.Hint).IsValidShort(); !ok {
		errs = append(errs, fmt.Errorf("hint: %w", hintErrs[0]))
	}
	if ok, hintErrs := types.HintText(c.LongHint).IsValid(); !ok {
		errs = append(errs, fmt.Errorf("long hint: %w", hintErrs[0]))
	}

	seenOptional := false
	for i, s := range c.Subjects {
		if ok, kindErrs := s.Kind.IsValid(); !ok {
			errs = append(errs, fmt.Errorf("subject #%d: %w", i, kindErrs[0]))
			continue
		}
		if ok, hintErrs := types.HintText(s.Hint).IsValidShort(); !ok {
			errs = append(errs, fmt.Errorf("subject #%d hint: %w", i, hintErrs[0]))
		}
		if s.Optional {
			seenOptional = true
		} else if seenOptional {
			errs = append(errs, fmt.Errorf("%w: subject #%d", ErrSubjectOrder, i))
		}
		if s.Default != "" {
			if _, err := value.Parse(s.Kind, s.Default); err != nil {
				errs = append(errs, fmt.Errorf("%w: subject #%d: %w", ErrInvalidDefault, i, err))
			}
		}
	}

	seen := make(map[string]string)
	for _, p := range c.Properties {
		if ok, kindErrs := p.Kind.IsValid(); !ok {
			errs = append(errs, fmt.Errorf("property %q: %w", p.Name, kindErrs[0]))
		}
		if ok, hintErrs := types.HintText(p.Hint).IsValidShort(); !ok {
			errs = append(errs, fmt.Errorf("property %q hint: %w", p.Name, hintErrs[0]))
		}
		for _, name := range p.Names() {
			if !IsName(name) {
				errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidPropertyName, name))
				continue
			}
			if owner, exists := seen[name]; exists {
				errs = append(errs, fmt.Errorf("%w: %q (already used by property %q)", ErrDuplicatePropertyName, name, owner))
				continue
			}
			seen[name] = p.Name
		}
		if p.Default != "" {
			if _, err := value.Parse(p.Kind, p.Default); err != nil {
				errs = append(errs, fmt.Errorf("%w: property %q: %w", ErrInvalidDefault, p.Name, err))
			}
		}
	}

	if len(errs) > 0 {
		return false, []error{&InvalidCommandError{Phrase: c.Phrase, FieldErrors: errs}}
	}
	return true, nil
}
