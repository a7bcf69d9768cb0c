// SPDX-License-Identifier: MPL-2.0

package help

import (
	"context"
	"io"

	"github.com/invowk/wca/pkg/grammar"
	"github.com/invowk/wca/pkg/value"
)

// Register inserts the help commands selected by variants into dict, writing
// their output to w. Dot entries are created for the commands already in dict,
// so Register runs after every user command is inserted.
func Register(dict *grammar.Dictionary, variants Variant, w io.Writer) error {
	gen := NewGenerator(dict)
	phrases := dict.Phrases()

	if variants.Enabled() {
		cmd := grammar.Command{
			Phrase:   Phrase,
			Hint:     "Print the command index",
			Internal: true,
			Routine: grammar.RoutineFunc(func(context.Context, value.Args, value.Props) error {
				return gen.WriteIndex(w)
			}),
		}
		if variants.Has(Subject) {
			cmd.Hint = "Print the command index, or detailed help for one command"
			cmd.Subjects = []grammar.SubjectSlot{{Hint: "command", Kind: value.String, Optional: true}}
			cmd.Routine = grammar.RoutineFunc(func(_ context.Context, args value.Args, _ value.Props) error {
				if topic, ok := args.Get(0); ok && topic.Str() != "" {
					return gen.WriteCommand(w, topic.Str())
				}
				return gen.WriteIndex(w)
			})
		}
		if err := dict.Insert(cmd); err != nil {
			return err
		}
	}

	if variants.Has(Dot) {
		for _, phrase := range phrases {
			target := phrase
			err := dict.Insert(grammar.Command{
				Phrase:   DotPrefix + phrase[1:],
				Hint:     "Detailed help for " + target,
				Internal: true,
				Routine: grammar.RoutineFunc(func(context.Context, value.Args, value.Props) error {
					return gen.WriteCommand(w, target)
				}),
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}
