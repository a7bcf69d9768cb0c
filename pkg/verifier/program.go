// SPDX-License-Identifier: MPL-2.0

package verifier

import (
	"slices"

	"github.com/invowk/wca/pkg/grammar"
	"github.com/invowk/wca/pkg/value"
)

type (
	// VerifiedCommand is a raw command bound to its grammar entry, with every
	// subject and property parsed to its declared kind.
	VerifiedCommand struct {
		Phrase   string
		Internal bool
		// Args has one value per subject slot of Command.
		Args value.Args
		// Props is keyed by canonical property name.
		Props value.Props
		// Command is the dictionary entry the phrase resolved to. It is owned
		// by the dictionary and must not be modified.
		Command *grammar.Command
	}

	// Program is an ordered sequence of verified commands.
	Program struct {
		Commands []VerifiedCommand
	}
)

// Routine returns the routine registered for the command.
func (c VerifiedCommand) Routine() grammar.Routine {
	if c.Command == nil {
		return nil
	}
	return c.Command.Routine
}

// Equal reports whether two verified commands carry the same phrase, values
// and dictionary entry.
func (c VerifiedCommand) Equal(o VerifiedCommand) bool {
	return c.Phrase == o.Phrase &&
		c.Internal == o.Internal &&
		c.Command == o.Command &&
		slices.EqualFunc(c.Args, o.Args, value.Value.Equal) &&
		c.Props.Equal(o.Props)
}

// Len returns the number of commands.
func (p Program) Len() int { return len(p.Commands) }

// IsEmpty reports whether the program has no commands.
func (p Program) IsEmpty() bool { return len(p.Commands) == 0 }

// Phrases returns the phrase of every command in order.
func (p Program) Phrases() []string {
	out := make([]string, len(p.Commands))
	for i, c := range p.Commands {
		out[i] = c.Phrase
	}
	return out
}

// Equal reports whether two programs hold equal commands in the same order.
func (p Program) Equal(o Program) bool {
	return slices.EqualFunc(p.Commands, o.Commands, VerifiedCommand.Equal)
}
