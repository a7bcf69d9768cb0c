// SPDX-License-Identifier: MPL-2.0

package verifier

import (
	"errors"
	"testing"

	"github.com/invowk/wca/pkg/grammar"
	"github.com/invowk/wca/pkg/parser"
	"github.com/invowk/wca/pkg/value"
)

func testDictionary(t *testing.T) *grammar.Dictionary {
	t.Helper()

	dict := grammar.NewDictionary()
	cmds := []grammar.Command{
		{
			Phrase:     ".echo",
			Hint:       "Print text",
			Subjects:   []grammar.SubjectSlot{{Hint: "text", Kind: value.String, Optional: true}},
			Properties: []grammar.PropertySlot{{Name: "prefix", Kind: value.String, Optional: true}},
			Routine:    grammar.Noop,
		},
		{
			Phrase: ".add",
			Subjects: []grammar.SubjectSlot{
				{Hint: "a", Kind: value.Integer},
				{Hint: "b", Kind: value.Integer},
			},
			Routine: grammar.Noop,
		},
		{Phrase: ".show", Routine: grammar.Noop},
		{
			Phrase: ".run",
			Properties: []grammar.PropertySlot{
				{Name: "features", Aliases: []string{"f"}, Kind: value.ListOf(value.String, ','), Optional: true},
				{Name: "jobs", Kind: value.Integer, Optional: true, Default: "4"},
			},
			Routine: grammar.Noop,
		},
		{
			Phrase: ".copy",
			Subjects: []grammar.SubjectSlot{
				{Hint: "src", Kind: value.Path},
				{Hint: "dst", Kind: value.Path},
			},
			Routine: grammar.Noop,
		},
		{
			Phrase: ".deploy",
			Subjects: []grammar.SubjectSlot{
				{Hint: "target", Kind: value.String},
				{Hint: "replicas", Kind: value.Integer, Optional: true},
				{Hint: "region", Kind: value.String, Optional: true, Default: "eu"},
			},
			Properties: []grammar.PropertySlot{
				{Name: "token", Kind: value.String},
				{Name: "dry-run", Aliases: []string{"n"}, Kind: value.Bool, Optional: true},
			},
			Routine: grammar.Noop,
		},
	}
	for _, c := range cmds {
		if err := dict.Insert(c); err != nil {
			t.Fatalf("Insert(%s): %v", c.Phrase, err)
		}
	}
	return dict
}

func mustParse(t *testing.T, tokens ...string) parser.RawProgram {
	t.Helper()
	prog, err := parser.Parse(tokens)
	if err != nil {
		t.Fatalf("Parse(%q): %v", tokens, err)
	}
	return prog
}

func TestVerify_SimpleEcho(t *testing.T) {
	t.Parallel()

	v := New(testDictionary(t))
	prog, err := v.Verify(mustParse(t, ".echo", "hello", "prefix:>>"))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if prog.Len() != 1 {
		t.Fatalf("program length = %d, want 1", prog.Len())
	}
	cmd := prog.Commands[0]
	if cmd.Phrase != ".echo" {
		t.Errorf("phrase = %q", cmd.Phrase)
	}
	if len(cmd.Args) != 1 || !cmd.Args[0].Equal(value.NewString("hello")) {
		t.Errorf("args = %#v", cmd.Args)
	}
	var want value.Props
	want.Set("prefix", value.NewString(">>"))
	if !cmd.Props.Equal(want) {
		t.Errorf("props = %v, want %v", cmd.Props.Keys(), want.Keys())
	}
	if cmd.Routine() == nil {
		t.Error("verified command should carry its routine")
	}
}

func TestVerify_TwoTypedCommands(t *testing.T) {
	t.Parallel()

	v := New(testDictionary(t))
	prog, err := v.Verify(mustParse(t, ".add", "2", "3", ".show"))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if prog.Len() != 2 {
		t.Fatalf("program length = %d, want 2", prog.Len())
	}
	add := prog.Commands[0]
	if len(add.Args) != 2 || !add.Args[0].Equal(value.NewInteger(2)) || !add.Args[1].Equal(value.NewInteger(3)) {
		t.Errorf("add args = %#v", add.Args)
	}
	if len(prog.Commands[1].Args) != 0 {
		t.Errorf("show args = %#v, want none", prog.Commands[1].Args)
	}
}

func TestVerify_AliasResolution(t *testing.T) {
	t.Parallel()

	v := New(testDictionary(t))
	prog, err := v.Verify(mustParse(t, ".run", "f:a,b,c"))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	props := prog.Commands[0].Props
	got, ok := props.Get("features")
	if !ok {
		t.Fatal("features should be stored under its canonical name")
	}
	want := value.NewList(value.ListOf(value.String, ','),
		value.NewString("a"), value.NewString("b"), value.NewString("c"))
	if !got.Equal(want) {
		t.Errorf("features = %#v, want %#v", got, want)
	}
	if props.Has("f") {
		t.Error("alias must not appear as a key")
	}
	jobs, ok := props.Get("jobs")
	if !ok || !jobs.Equal(value.NewInteger(4)) {
		t.Errorf("jobs default = %#v, %v", jobs, ok)
	}
	if keys := props.Keys(); len(keys) != 2 || keys[0] != "features" || keys[1] != "jobs" {
		t.Errorf("keys = %q, want supplied properties before defaults", keys)
	}
}

func TestVerify_OptionalSubjectDefaults(t *testing.T) {
	t.Parallel()

	v := New(testDictionary(t))
	prog, err := v.Verify(mustParse(t, ".deploy", "web", "token:abc"))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	args := prog.Commands[0].Args
	if len(args) != 3 {
		t.Fatalf("args length = %d, want 3", len(args))
	}
	if !args[1].Equal(value.NewInteger(0)) {
		t.Errorf("replicas = %#v, want kind default", args[1])
	}
	if !args[2].Equal(value.NewString("eu")) {
		t.Errorf("region = %#v, want declared default", args[2])
	}
	if prog.Commands[0].Props.Has("dry-run") {
		t.Error("optional property without default should stay absent")
	}
}

func TestVerify_EmptyPathSubject(t *testing.T) {
	t.Parallel()

	v := New(testDictionary(t))
	prog, err := v.Verify(mustParse(t, ".copy", "", "  dst//x "))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	args := prog.Commands[0].Args
	if !args[0].Equal(value.NewPath("")) {
		t.Errorf("src = %#v, want empty path", args[0])
	}
	if !args[1].Equal(value.NewPath("dst/x")) {
		t.Errorf("dst = %#v, want normalized path", args[1])
	}
}

func TestVerify_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tokens   []string
		sentinel error
		check    func(t *testing.T, err error)
	}{
		{
			name:     "unknown phrase with suggestion",
			tokens:   []string{".ecoh"},
			sentinel: ErrUnknownPhrase,
			check: func(t *testing.T, err error) {
				var e *UnknownPhraseError
				if !errors.As(err, &e) || e.Phrase != ".ecoh" || e.Suggestion != ".echo" {
					t.Errorf("got %#v", err)
				}
			},
		},
		{
			name:     "unknown phrase without close match",
			tokens:   []string{".zzzzzzzz"},
			sentinel: ErrUnknownPhrase,
			check: func(t *testing.T, err error) {
				var e *UnknownPhraseError
				if !errors.As(err, &e) || e.Suggestion != "" {
					t.Errorf("got %#v", err)
				}
			},
		},
		{
			name:     "too many subjects",
			tokens:   []string{".add", "1", "2", "3"},
			sentinel: ErrTooManySubjects,
			check: func(t *testing.T, err error) {
				var e *TooManySubjectsError
				if !errors.As(err, &e) || e.Expected != 2 || e.Got != 3 {
					t.Errorf("got %#v", err)
				}
			},
		},
		{
			name:     "missing mandatory subject",
			tokens:   []string{".copy", "src"},
			sentinel: ErrMissingSubject,
			check: func(t *testing.T, err error) {
				var e *MissingSubjectError
				if !errors.As(err, &e) || e.Phrase != ".copy" || e.SlotIndex != 1 {
					t.Errorf("got %#v", err)
				}
			},
		},
		{
			name:     "subject kind mismatch",
			tokens:   []string{".add", "2", "three"},
			sentinel: ErrSubjectKindMismatch,
			check: func(t *testing.T, err error) {
				var e *SubjectKindMismatchError
				if !errors.As(err, &e) || e.SlotIndex != 1 || e.Observed != "three" || e.Expected != value.Integer {
					t.Errorf("got %#v", err)
				}
			},
		},
		{
			name:     "unknown property with suggestion",
			tokens:   []string{".echo", "prefx:>"},
			sentinel: ErrUnknownProperty,
			check: func(t *testing.T, err error) {
				var e *UnknownPropertyError
				if !errors.As(err, &e) || e.Name != "prefx" || e.Suggestion != "prefix" {
					t.Errorf("got %#v", err)
				}
			},
		},
		{
			name:     "property kind mismatch reports canonical name",
			tokens:   []string{".deploy", "web", "token:x", "n:maybe"},
			sentinel: ErrPropertyKindMismatch,
			check: func(t *testing.T, err error) {
				var e *PropertyKindMismatchError
				if !errors.As(err, &e) || e.Name != "dry-run" || e.Observed != "maybe" || e.Expected != value.Bool {
					t.Errorf("got %#v", err)
				}
			},
		},
		{
			name:     "missing mandatory property",
			tokens:   []string{".deploy", "web"},
			sentinel: ErrMissingProperty,
			check: func(t *testing.T, err error) {
				var e *MissingPropertyError
				if !errors.As(err, &e) || e.Name != "token" {
					t.Errorf("got %#v", err)
				}
			},
		},
		{
			name:     "stops at first failing command",
			tokens:   []string{".show", ".add", "x", ".ecoh"},
			sentinel: ErrSubjectKindMismatch,
		},
	}

	v := New(testDictionary(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			prog, err := v.Verify(mustParse(t, tt.tokens...))
			if err == nil {
				t.Fatalf("Verify(%q) succeeded, want error", tt.tokens)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("error %v does not wrap %v", err, tt.sentinel)
			}
			if !prog.IsEmpty() {
				t.Errorf("failed verification returned %d commands", prog.Len())
			}
			if tt.check != nil {
				tt.check(t, err)
			}
		})
	}
}

func TestVerify_SuggestionsDisabled(t *testing.T) {
	t.Parallel()

	v := New(testDictionary(t), WithSuggestions(false))

	_, err := v.Verify(mustParse(t, ".ecoh"))
	var phraseErr *UnknownPhraseError
	if !errors.As(err, &phraseErr) {
		t.Fatalf("expected *UnknownPhraseError, got %v", err)
	}
	if phraseErr.Suggestion != "" {
		t.Errorf("suggestion = %q, want none", phraseErr.Suggestion)
	}

	_, err = v.Verify(mustParse(t, ".echo", "prefx:>"))
	var propErr *UnknownPropertyError
	if !errors.As(err, &propErr) {
		t.Fatalf("expected *UnknownPropertyError, got %v", err)
	}
	if propErr.Suggestion != "" {
		t.Errorf("suggestion = %q, want none", propErr.Suggestion)
	}
}

func TestVerify_KindSoundness(t *testing.T) {
	t.Parallel()

	dict := testDictionary(t)
	v := New(dict)
	inputs := [][]string{
		{".echo"},
		{".echo", "x", "prefix:"},
		{".add", "-1", "+7"},
		{".run", "features:\"a,b\",c", "jobs=9"},
		{".copy", " a//b ", "c"},
		{".deploy", "api", "3", "us", "token:t", "dry-run=yes"},
	}
	for _, tokens := range inputs {
		prog, err := v.Verify(mustParse(t, tokens...))
		if err != nil {
			t.Fatalf("Verify(%q): %v", tokens, err)
		}
		for _, vc := range prog.Commands {
			for i, arg := range vc.Args {
				if !arg.Matches(vc.Command.Subjects[i].Kind) {
					t.Errorf("%s subject #%d = %#v does not match %s", vc.Phrase, i, arg, vc.Command.Subjects[i].Kind)
				}
			}
			for _, name := range vc.Props.Keys() {
				slot, _ := vc.Command.Property(name)
				val, _ := vc.Props.Get(name)
				if !val.Matches(slot.Kind) {
					t.Errorf("%s property %q = %#v does not match %s", vc.Phrase, name, val, slot.Kind)
				}
			}
		}
	}
}

func TestVerify_Deterministic(t *testing.T) {
	t.Parallel()

	v := New(testDictionary(t))
	raw := mustParse(t, ".add", "2", "3", ".run", "f:x,y", ".echo", "hi")
	first, err := v.Verify(raw)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	second, err := v.Verify(raw)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !first.Equal(second) {
		t.Error("verifying the same input twice produced different programs")
	}
}
