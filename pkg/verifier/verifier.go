// SPDX-License-Identifier: MPL-2.0

package verifier

import (
	"errors"

	"github.com/invowk/wca/pkg/grammar"
	"github.com/invowk/wca/pkg/parser"
	"github.com/invowk/wca/pkg/value"
)

type (
	// Verifier checks raw programs against a dictionary.
	// It holds no mutable state and may be shared.
	Verifier struct {
		dict        *grammar.Dictionary
		suggestions bool
	}

	// Option configures a Verifier.
	Option func(*Verifier)
)

// WithSuggestions toggles "did you mean" suggestions on unknown phrases and
// properties. Suggestions are on by default.
func WithSuggestions(enabled bool) Option {
	return func(v *Verifier) { v.suggestions = enabled }
}

// New creates a verifier bound to dict.
func New(dict *grammar.Dictionary, opts ...Option) *Verifier {
	v := &Verifier{dict: dict, suggestions: true}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify binds every command of raw in order. It returns the first failure
// and discards the commands verified before it.
func (v *Verifier) Verify(raw parser.RawProgram) (Program, error) {
	prog := Program{Commands: make([]VerifiedCommand, 0, len(raw.Commands))}
	for _, rc := range raw.Commands {
		vc, err := v.VerifyCommand(rc)
		if err != nil {
			return Program{}, err
		}
		prog.Commands = append(prog.Commands, vc)
	}
	return prog, nil
}

// VerifyCommand binds a single raw command.
func (v *Verifier) VerifyCommand(rc parser.RawCommand) (VerifiedCommand, error) {
	cmd, ok := v.dict.Get(rc.Phrase)
	if !ok {
		err := &UnknownPhraseError{Phrase: rc.Phrase}
		if v.suggestions {
			err.Suggestion, _ = v.dict.Suggest(rc.Phrase)
		}
		return VerifiedCommand{}, err
	}

	args, err := bindSubjects(cmd, rc.Positional)
	if err != nil {
		return VerifiedCommand{}, err
	}
	props, err := v.bindProperties(cmd, rc.Named)
	if err != nil {
		return VerifiedCommand{}, err
	}

	return VerifiedCommand{
		Phrase:   cmd.Phrase,
		Internal: cmd.Internal,
		Args:     args,
		Props:    props,
		Command:  cmd,
	}, nil
}

func bindSubjects(cmd *grammar.Command, tokens []string) (value.Args, error) {
	if len(tokens) > len(cmd.Subjects) {
		return nil, &TooManySubjectsError{Phrase: cmd.Phrase, Expected: len(cmd.Subjects), Got: len(tokens)}
	}

	args := make(value.Args, len(cmd.Subjects))
	for i, slot := range cmd.Subjects {
		if i >= len(tokens) {
			if !slot.Optional {
				return nil, &MissingSubjectError{Phrase: cmd.Phrase, SlotIndex: i}
			}
			def, err := slot.DefaultValue()
			if err != nil {
				return nil, subjectMismatch(cmd.Phrase, i, slot, slot.Default, err)
			}
			args[i] = def
			continue
		}
		val, err := value.ParseFor(slot.Describe(i), slot.Kind, tokens[i])
		if err != nil {
			return nil, subjectMismatch(cmd.Phrase, i, slot, tokens[i], err)
		}
		args[i] = val
	}
	return args, nil
}

func (v *Verifier) bindProperties(cmd *grammar.Command, named []parser.NamedToken) (value.Props, error) {
	var props value.Props
	for _, nt := range named {
		slot, ok := cmd.Property(nt.Name)
		if !ok {
			err := &UnknownPropertyError{Phrase: cmd.Phrase, Name: nt.Name}
			if v.suggestions {
				err.Suggestion, _ = grammar.Closest(nt.Name, cmd.PropertyNames())
			}
			return value.Props{}, err
		}
		val, err := value.ParseFor("property "+slot.Name, slot.Kind, nt.Value)
		if err != nil {
			return value.Props{}, propertyMismatch(cmd.Phrase, slot, nt.Value, err)
		}
		props.Set(slot.Name, val)
	}

	for i := range cmd.Properties {
		slot := &cmd.Properties[i]
		if props.Has(slot.Name) {
			continue
		}
		if !slot.Optional {
			return value.Props{}, &MissingPropertyError{Phrase: cmd.Phrase, Name: slot.Name}
		}
		def, ok, err := slot.DefaultValue()
		if err != nil {
			return value.Props{}, propertyMismatch(cmd.Phrase, slot, slot.Default, err)
		}
		if ok {
			props.Set(slot.Name, def)
		}
	}
	return props, nil
}

func subjectMismatch(phrase string, index int, slot grammar.SubjectSlot, observed string, err error) error {
	return &SubjectKindMismatchError{
		Phrase:    phrase,
		SlotIndex: index,
		Expected:  slot.Kind,
		Observed:  observed,
		Reason:    mismatchReason(err),
	}
}

func propertyMismatch(phrase string, slot *grammar.PropertySlot, observed string, err error) error {
	return &PropertyKindMismatchError{
		Phrase:   phrase,
		Name:     slot.Name,
		Expected: slot.Kind,
		Observed: observed,
		Reason:   mismatchReason(err),
	}
}

func mismatchReason(err error) string {
	var km *value.KindMismatchError
	if errors.As(err, &km) {
		return km.Reason
	}
	return err.Error()
}
