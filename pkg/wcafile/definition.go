// SPDX-License-Identifier: MPL-2.0

package wcafile

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/invowk/wca/pkg/grammar"
	"github.com/invowk/wca/pkg/value"
)

var (
	// ErrInvalidDefinition is the sentinel error wrapped by DefinitionError.
	ErrInvalidDefinition = errors.New("invalid command definition")
	// ErrMissingScript is returned when an entry has no script.
	ErrMissingScript = errors.New("missing script")
	// ErrInvalidSeparator is returned when a list separator is not a single character.
	ErrInvalidSeparator = errors.New("list separator must be a single character")
)

type (
	// Definition is a decoded dictionary file.
	Definition struct {
		// FilePath is where the definition was loaded from; empty for in-memory input.
		FilePath string `json:"-" toml:"-" yaml:"-"`
		// Entries are the declared commands, in file order.
		Entries []CommandDef `json:"commands" toml:"commands" yaml:"commands"`
	}

	// CommandDef declares one command.
	CommandDef struct {
		Phrase     string        `json:"phrase" toml:"phrase" yaml:"phrase"`
		Hint       string        `json:"hint,omitempty" toml:"hint" yaml:"hint"`
		LongHint   string        `json:"long_hint,omitempty" toml:"long_hint" yaml:"long_hint"`
		Subjects   []SubjectDef  `json:"subjects,omitempty" toml:"subjects" yaml:"subjects"`
		Properties []PropertyDef `json:"properties,omitempty" toml:"properties" yaml:"properties"`
		// Script is the shell source run by the routine.
		Script string `json:"script" toml:"script" yaml:"script"`
	}

	// SubjectDef declares one positional slot.
	SubjectDef struct {
		Hint string `json:"hint,omitempty" toml:"hint" yaml:"hint"`
		// Kind is a kind name accepted by value.ParseKind; empty means "string".
		Kind      string `json:"kind,omitempty" toml:"kind" yaml:"kind"`
		Optional  bool   `json:"optional,omitempty" toml:"optional" yaml:"optional"`
		Default   string `json:"default,omitempty" toml:"default" yaml:"default"`
		Separator string `json:"separator,omitempty" toml:"separator" yaml:"separator"`
	}

	// PropertyDef declares one named slot.
	PropertyDef struct {
		Name      string   `json:"name" toml:"name" yaml:"name"`
		Aliases   []string `json:"aliases,omitempty" toml:"aliases" yaml:"aliases"`
		Hint      string   `json:"hint,omitempty" toml:"hint" yaml:"hint"`
		Kind      string   `json:"kind,omitempty" toml:"kind" yaml:"kind"`
		Optional  bool     `json:"optional,omitempty" toml:"optional" yaml:"optional"`
		Default   string   `json:"default,omitempty" toml:"default" yaml:"default"`
		Separator string   `json:"separator,omitempty" toml:"separator" yaml:"separator"`
	}

	// RoutineFactory builds the routine for a command from its script.
	RoutineFactory func(phrase, script string) (grammar.Routine, error)

	// DefinitionError reports a problem with one entry of a dictionary file.
	DefinitionError struct {
		// Index is the zero-based position of the entry in the file.
		Index  int
		Phrase string
		Err    error
	}
)

// Error implements the error interface.
func (e *DefinitionError) Error() string {
	if e.Phrase == "" {
		return fmt.Sprintf("command #%d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("command #%d (%s): %v", e.Index, e.Phrase, e.Err)
}

// Unwrap returns ErrInvalidDefinition and the underlying cause.
func (e *DefinitionError) Unwrap() []error { return []error{ErrInvalidDefinition, e.Err} }

// Commands converts every entry into a grammar.Command. The first invalid
// entry stops the conversion with a *DefinitionError.
func (d *Definition) Commands(factory RoutineFactory) ([]grammar.Command, error) {
	cmds := make([]grammar.Command, 0, len(d.Entries))
	for i, entry := range d.Entries {
		cmd, err := entry.command(factory)
		if err != nil {
			return nil, &DefinitionError{Index: i, Phrase: entry.Phrase, Err: err}
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

func (c CommandDef) command(factory RoutineFactory) (grammar.Command, error) {
	if strings.TrimSpace(c.Script) == "" {
		return grammar.Command{}, ErrMissingScript
	}

	cmd := grammar.Command{
		Phrase:   c.Phrase,
		Hint:     c.Hint,
		LongHint: c.LongHint,
	}
	for i, s := range c.Subjects {
		k, err := resolveKind(s.Kind, s.Separator)
		if err != nil {
			return grammar.Command{}, fmt.Errorf("subject %d: %w", i, err)
		}
		cmd.Subjects = append(cmd.Subjects, grammar.SubjectSlot{
			Hint:     s.Hint,
			Kind:     k,
			Optional: s.Optional,
			Default:  s.Default,
		})
	}
	for _, p := range c.Properties {
		k, err := resolveKind(p.Kind, p.Separator)
		if err != nil {
			return grammar.Command{}, fmt.Errorf("property %q: %w", p.Name, err)
		}
		cmd.Properties = append(cmd.Properties, grammar.PropertySlot{
			Name:     p.Name,
			Hint:     p.Hint,
			Kind:     k,
			Optional: p.Optional,
			Aliases:  p.Aliases,
			Default:  p.Default,
		})
	}

	routine, err := factory(c.Phrase, c.Script)
	if err != nil {
		return grammar.Command{}, err
	}
	cmd.Routine = routine

	if ok, errs := cmd.IsValid(); !ok {
		return grammar.Command{}, errs[0]
	}
	return cmd, nil
}

func resolveKind(name, separator string) (value.Kind, error) {
	if name == "" {
		name = "string"
	}
	var sep rune
	if separator != "" {
		if utf8.RuneCountInString(separator) != 1 {
			return value.Kind{}, fmt.Errorf("%w: %q", ErrInvalidSeparator, separator)
		}
		sep, _ = utf8.DecodeRuneInString(separator)
	}
	return value.ParseKind(name, sep)
}
