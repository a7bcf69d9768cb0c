// SPDX-License-Identifier: MPL-2.0

package grammar

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrDuplicatePhrase is the sentinel error wrapped by DuplicatePhraseError.
var ErrDuplicatePhrase = errors.New("duplicate phrase")

type (
	// Dictionary is an insertion-ordered collection of commands keyed by phrase.
	// It is not safe for concurrent mutation; once built it is read-only.
	Dictionary struct {
		order    []string
		commands map[string]*Command
	}

	// DuplicatePhraseError is returned when a phrase is inserted twice.
	DuplicatePhraseError struct {
		Phrase string
	}
)

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{commands: make(map[string]*Command)}
}

// Error implements the error interface.
func (e *DuplicatePhraseError) Error() string {
	return fmt.Sprintf("duplicate phrase %q", e.Phrase)
}

// Unwrap returns ErrDuplicatePhrase for errors.Is() compatibility.
func (e *DuplicatePhraseError) Unwrap() error { return ErrDuplicatePhrase }

// Insert validates cmd and adds it. It fails with *DuplicatePhraseError if the
// phrase is taken and *InvalidCommandError if the command breaks grammar rules.
func (d *Dictionary) Insert(cmd Command) error {
	if ok, errs := cmd.IsValid(); !ok {
		return errs[0]
	}
	if _, exists := d.commands[cmd.Phrase]; exists {
		return &DuplicatePhraseError{Phrase: cmd.Phrase}
	}
	c := cmd
	c.Subjects = slices.Clone(cmd.Subjects)
	c.Properties = slices.Clone(cmd.Properties)
	d.order = append(d.order, c.Phrase)
	d.commands[c.Phrase] = &c
	return nil
}

// Get returns the command registered under phrase. The command must not be modified.
func (d *Dictionary) Get(phrase string) (*Command, bool) {
	c, ok := d.commands[phrase]
	return c, ok
}

// Len returns the number of commands.
func (d *Dictionary) Len() int { return len(d.order) }

// Phrases returns the phrases in insertion order.
func (d *Dictionary) Phrases() []string { return slices.Clone(d.order) }

// All iterates commands in insertion order.
func (d *Dictionary) All() iter.Seq2[string, *Command] {
	return func(yield func(string, *Command) bool) {
		for _, phrase := range d.order {
			if !yield(phrase, d.commands[phrase]) {
				return
			}
		}
	}
}

// Suggest returns the registered phrase closest to phrase, if one lies within
// SuggestionBound. Ties go to the earlier-inserted phrase.
func (d *Dictionary) Suggest(phrase string) (string, bool) {
	return Closest(phrase, d.order)
}
