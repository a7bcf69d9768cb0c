// SPDX-License-Identifier: MPL-2.0

package help

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/invowk/wca/pkg/grammar"
)

const (
	// Phrase is the phrase of the built-in help command.
	Phrase = ".help"
	// DotPrefix prefixes the per-command help phrases of the dot variant.
	DotPrefix = ".help."
)

// ErrUnknownTopic is the sentinel error wrapped by UnknownTopicError.
var ErrUnknownTopic = errors.New("unknown help topic")

type (
	// Generator renders help text for the commands of a dictionary.
	Generator struct {
		dict *grammar.Dictionary
	}

	// UnknownTopicError is returned when help is requested for a phrase that is
	// not registered.
	UnknownTopicError struct {
		Topic      string
		Suggestion string
	}
)

// Error implements the error interface.
func (e *UnknownTopicError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("no help for %q: unknown command (did you mean %q?)", e.Topic, e.Suggestion)
	}
	return fmt.Sprintf("no help for %q: unknown command", e.Topic)
}

// Unwrap returns ErrUnknownTopic for errors.Is() compatibility.
func (e *UnknownTopicError) Unwrap() error { return ErrUnknownTopic }

// NewGenerator creates a generator reading from dict.
func NewGenerator(dict *grammar.Dictionary) *Generator {
	return &Generator{dict: dict}
}

// Index renders one line per command in dictionary order. Per-command dot
// help entries are folded into a single trailing line.
func (g *Generator) Index() string {
	var sb strings.Builder
	dotEntries := 0
	for phrase, cmd := range g.dict.All() {
		if isDotEntry(cmd) {
			dotEntries++
			continue
		}
		sb.WriteString(indexLine(phrase, cmd.Hint))
	}
	if dotEntries > 0 {
		sb.WriteString(indexLine(DotPrefix+"<name>", "Detailed help for one command"))
	}
	return sb.String()
}

// Command renders the detailed help of the command registered under topic.
// A topic without a leading dot is looked up as if it had one.
func (g *Generator) Command(topic string) (string, error) {
	phrase := topic
	if !strings.HasPrefix(phrase, ".") {
		phrase = "." + phrase
	}
	cmd, ok := g.dict.Get(phrase)
	if !ok {
		suggestion, _ := g.dict.Suggest(phrase)
		return "", &UnknownTopicError{Topic: topic, Suggestion: suggestion}
	}
	return renderCommand(cmd), nil
}

// WriteIndex writes Index to w.
func (g *Generator) WriteIndex(w io.Writer) error {
	_, err := io.WriteString(w, g.Index())
	return err
}

// WriteCommand writes the detailed help for topic to w.
func (g *Generator) WriteCommand(w io.Writer, topic string) error {
	text, err := g.Command(topic)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

func indexLine(phrase, hint string) string {
	if hint == "" {
		return phrase + "\n"
	}
	return phrase + " — " + hint + "\n"
}

func isDotEntry(cmd *grammar.Command) bool {
	return cmd.Internal && strings.HasPrefix(cmd.Phrase, DotPrefix)
}

func renderCommand(cmd *grammar.Command) string {
	var sb strings.Builder
	sb.WriteString(indexLine(cmd.Phrase, cmd.Hint))
	if cmd.LongHint != "" {
		sb.WriteString("\n")
		sb.WriteString(strings.TrimRight(cmd.LongHint, "\n"))
		sb.WriteString("\n")
	}

	sb.WriteString("\nUsage:\n  ")
	sb.WriteString(usage(cmd))
	sb.WriteString("\n")

	if len(cmd.Subjects) > 0 {
		sb.WriteString("\nSubjects:\n")
		tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
		for i, s := range cmd.Subjects {
			fmt.Fprintf(tw, "  #%d\t%s\t%s\t%s\n", i, s.Kind, optionality(s.Optional, s.Default), s.Hint)
		}
		_ = tw.Flush()
	}

	if len(cmd.Properties) > 0 {
		sb.WriteString("\nProperties:\n")
		tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
		for _, p := range cmd.Properties {
			names := p.Name
			if len(p.Aliases) > 0 {
				names += " (" + strings.Join(p.Aliases, ", ") + ")"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", names, p.Kind, optionality(p.Optional, p.Default), p.Hint)
		}
		_ = tw.Flush()
	}
	return sb.String()
}

func usage(cmd *grammar.Command) string {
	parts := []string{cmd.Phrase}
	for i, s := range cmd.Subjects {
		label := s.Hint
		if label == "" {
			label = fmt.Sprintf("subject%d", i)
		}
		if s.Optional {
			parts = append(parts, "["+label+"]")
		} else {
			parts = append(parts, "<"+label+">")
		}
	}
	for _, p := range cmd.Properties {
		tok := p.Name + ":<" + p.Kind.String() + ">"
		if p.Optional {
			tok = "[" + tok + "]"
		}
		parts = append(parts, tok)
	}
	return strings.Join(parts, " ")
}

func optionality(optional bool, def string) string {
	switch {
	case !optional:
		return "required"
	case def != "":
		return fmt.Sprintf("optional, default %q", def)
	default:
		return "optional"
	}
}
