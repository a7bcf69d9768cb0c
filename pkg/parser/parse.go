// SPDX-License-Identifier: MPL-2.0

package parser

import (
	"strings"

	"github.com/invowk/wca/pkg/grammar"
)

// Placeholder is the no-op token used to delimit empty command bodies.
const Placeholder = "."

// Parse groups tokens into commands. It fails with *StrayTokensError when
// tokens precede the first phrase and *EmptyPhraseError when a command-start
// token consists only of dots.
func Parse(tokens []string) (RawProgram, error) {
	var (
		prog  RawProgram
		stray []string
		cur   *RawCommand
	)

	for i, tok := range tokens {
		if tok == Placeholder {
			continue
		}
		if IsCommandStart(tok) {
			if strings.Trim(tok, ".") == "" {
				return RawProgram{}, &EmptyPhraseError{Index: i, Token: tok}
			}
			prog.Commands = append(prog.Commands, RawCommand{Phrase: tok})
			cur = &prog.Commands[len(prog.Commands)-1]
			continue
		}
		if cur == nil {
			stray = append(stray, tok)
			continue
		}
		if name, val, ok := SplitNamed(tok); ok {
			cur.setNamed(name, val)
		} else {
			cur.Positional = append(cur.Positional, tok)
		}
	}

	if len(stray) > 0 {
		return RawProgram{}, &StrayTokensError{Tokens: stray}
	}
	return prog, nil
}

// IsCommandStart reports whether tok opens a new command: it starts with '.',
// is not the lone placeholder, and contains no '='.
func IsCommandStart(tok string) bool {
	return strings.HasPrefix(tok, ".") && tok != Placeholder && !strings.Contains(tok, "=")
}

// SplitNamed splits a "name:value" or "name=value" token at whichever
// separator comes first. It reports false when tok has no separator or the
// part before it is not a valid NAME.
func SplitNamed(tok string) (name, val string, ok bool) {
	idx := strings.IndexAny(tok, ":=")
	if idx <= 0 {
		return "", "", false
	}
	name = tok[:idx]
	if !grammar.IsName(name) {
		return "", "", false
	}
	return name, tok[idx+1:], true
}

// Serialize renders a program back into tokens: each phrase, then its
// positional tokens, then its named tokens as "name:value". Parsing the result
// yields an equal program.
func Serialize(prog RawProgram) []string {
	var tokens []string
	for _, cmd := range prog.Commands {
		tokens = append(tokens, cmd.Phrase)
		tokens = append(tokens, cmd.Positional...)
		for _, n := range cmd.Named {
			tokens = append(tokens, n.Name+":"+n.Value)
		}
	}
	return tokens
}
