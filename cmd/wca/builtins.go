// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/invowk/wca/pkg/grammar"
	"github.com/invowk/wca/pkg/value"
)

// builtinCommands returns the commands every wca invocation knows about.
func builtinCommands(stdout io.Writer) []grammar.Command {
	return []grammar.Command{
		{
			Phrase:   ".echo",
			Hint:     "Print text",
			LongHint: "Prints the text followed by a newline, optionally after a prefix.",
			Subjects: []grammar.SubjectSlot{
				{Hint: "text to print", Kind: value.String, Optional: true},
			},
			Properties: []grammar.PropertySlot{
				{Name: "prefix", Aliases: []string{"p"}, Hint: "printed before the text", Kind: value.String, Optional: true},
			},
			Routine: grammar.RoutineFunc(func(_ context.Context, args value.Args, props value.Props) error {
				text, _ := args.Get(0)
				prefix := props.GetOr("prefix", value.NewString(""))
				_, err := fmt.Fprintln(stdout, prefix.Str()+text.Str())
				return err
			}),
		},
		{
			Phrase: ".version",
			Hint:   "Print the wca version",
			Routine: grammar.RoutineFunc(func(context.Context, value.Args, value.Props) error {
				_, err := fmt.Fprintln(stdout, "wca "+getVersionString())
				return err
			}),
		},
	}
}
