// SPDX-License-Identifier: MPL-2.0

package parser

import "slices"

type (
	// NamedToken is one name/value pair taken from a "name:value" or
	// "name=value" token.
	NamedToken struct {
		Name  string
		Value string
	}

	// RawCommand is one command as written: its phrase, positional tokens in
	// input order, and named tokens in first-occurrence order.
	RawCommand struct {
		Phrase     string
		Positional []string
		Named      []NamedToken
	}

	// RawProgram is the ordered sequence of commands in one input.
	RawProgram struct {
		Commands []RawCommand
	}
)

// Lookup returns the value of the named token name.
func (c RawCommand) Lookup(name string) (string, bool) {
	for _, n := range c.Named {
		if n.Name == name {
			return n.Value, true
		}
	}
	return "", false
}

// setNamed records name=val. A repeated name keeps its first position and
// takes the new value.
func (c *RawCommand) setNamed(name, val string) {
	for i := range c.Named {
		if c.Named[i].Name == name {
			c.Named[i].Value = val
			return
		}
	}
	c.Named = append(c.Named, NamedToken{Name: name, Value: val})
}

// Equal reports whether two raw commands are identical.
func (c RawCommand) Equal(o RawCommand) bool {
	return c.Phrase == o.Phrase &&
		slices.Equal(c.Positional, o.Positional) &&
		slices.Equal(c.Named, o.Named)
}

// Len returns the number of commands.
func (p RawProgram) Len() int { return len(p.Commands) }

// IsEmpty reports whether the program has no commands.
func (p RawProgram) IsEmpty() bool { return len(p.Commands) == 0 }

// Equal reports whether two programs hold identical commands in the same order.
func (p RawProgram) Equal(o RawProgram) bool {
	return slices.EqualFunc(p.Commands, o.Commands, RawCommand.Equal)
}
