// SPDX-License-Identifier: MPL-2.0

package wcafile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/invowk/wca/internal/testutil"
	"github.com/invowk/wca/pkg/cueutil"
	"github.com/invowk/wca/pkg/grammar"
	"github.com/invowk/wca/pkg/value"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const greetCUE = `
commands: [{
	phrase:    ".greet"
	hint:      "Greet someone"
	long_hint: "Prints a greeting for the given name."
	subjects: [{hint: "name", kind: "string", optional: true, default: "world"}]
	properties: [{name: "times", aliases: ["t"], hint: "repeat count", kind: "integer", optional: true}]
	script: "echo \"hello $WCA_SUBJECT_0\""
}, {
	phrase: ".sum"
	subjects: [{hint: "numbers", kind: "list<int>", separator: ";"}]
	script: "echo $1"
}]
`

const greetTOML = `
[[commands]]
phrase = ".greet"
hint = "Greet someone"
long_hint = "Prints a greeting for the given name."
script = 'echo "hello $WCA_SUBJECT_0"'

  [[commands.subjects]]
  hint = "name"
  kind = "string"
  optional = true
  default = "world"

  [[commands.properties]]
  name = "times"
  aliases = ["t"]
  hint = "repeat count"
  kind = "integer"
  optional = true

[[commands]]
phrase = ".sum"
script = "echo $1"

  [[commands.subjects]]
  hint = "numbers"
  kind = "list<int>"
  separator = ";"
`

const greetYAML = `
commands:
  - phrase: .greet
    hint: Greet someone
    long_hint: Prints a greeting for the given name.
    script: echo "hello $WCA_SUBJECT_0"
    subjects:
      - hint: name
        kind: string
        optional: true
        default: world
    properties:
      - name: times
        aliases: [t]
        hint: repeat count
        kind: integer
        optional: true
  - phrase: .sum
    script: echo $1
    subjects:
      - hint: numbers
        kind: list<int>
        separator: ";"
`

type recordedScript struct {
	phrase string
	script string
}

func recordingFactory(seen *[]recordedScript) RoutineFactory {
	return func(phrase, script string) (grammar.Routine, error) {
		*seen = append(*seen, recordedScript{phrase, script})
		return grammar.Noop, nil
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	return testutil.WriteFile(t, "", name, content)
}

func TestLoad_AllFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"cue", "wcafile.cue", greetCUE},
		{"toml", "wcafile.toml", greetTOML},
		{"yaml", "wcafile.yaml", greetYAML},
		{"yml", "cmds.YML", greetYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, tt.file, tt.content)
			def, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, path, def.FilePath)
			require.Len(t, def.Entries, 2)

			var seen []recordedScript
			cmds, err := def.Commands(recordingFactory(&seen))
			require.NoError(t, err)
			require.Len(t, cmds, 2)

			greet := cmds[0]
			assert.Equal(t, ".greet", greet.Phrase)
			assert.Equal(t, "Greet someone", greet.Hint)
			assert.Equal(t, "Prints a greeting for the given name.", greet.LongHint)
			require.Len(t, greet.Subjects, 1)
			assert.Equal(t, value.String, greet.Subjects[0].Kind)
			assert.True(t, greet.Subjects[0].Optional)
			assert.Equal(t, "world", greet.Subjects[0].Default)
			require.Len(t, greet.Properties, 1)
			assert.Equal(t, "times", greet.Properties[0].Name)
			assert.Equal(t, []string{"t"}, greet.Properties[0].Aliases)
			assert.Equal(t, value.Integer, greet.Properties[0].Kind)

			sum := cmds[1]
			require.Len(t, sum.Subjects, 1)
			assert.Equal(t, value.ListOf(value.Integer, ';'), sum.Subjects[0].Kind)
			assert.False(t, sum.Subjects[0].Optional)

			assert.Equal(t, []recordedScript{
				{".greet", `echo "hello $WCA_SUBJECT_0"`},
				{".sum", "echo $1"},
			}, seen)
		})
	}
}

func TestLoad_DictionaryFromFile(t *testing.T) {
	t.Parallel()

	def, err := Load(writeFile(t, "wcafile.cue", greetCUE))
	require.NoError(t, err)
	cmds, err := def.Commands(func(string, string) (grammar.Routine, error) { return grammar.Noop, nil })
	require.NoError(t, err)

	dict := grammar.NewDictionary()
	for _, c := range cmds {
		require.NoError(t, dict.Insert(c))
	}
	assert.Equal(t, []string{".greet", ".sum"}, dict.Phrases())
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{"unsupported extension", "cmds.json", `{}`, ErrUnsupportedFormat},
		{"no extension", "wcafile", `commands: []`, ErrUnsupportedFormat},
		{"cue unknown field", "a.cue", `commands: [{phrase: ".a", script: "true", color: "red"}]`, cueutil.ErrValidation},
		{"cue bad phrase", "a.cue", `commands: [{phrase: "a", script: "true"}]`, cueutil.ErrValidation},
		{"cue empty script", "a.cue", `commands: [{phrase: ".a", script: ""}]`, cueutil.ErrValidation},
		{"cue bad kind", "a.cue", `commands: [{phrase: ".a", script: "true", subjects: [{kind: "date"}]}]`, cueutil.ErrValidation},
		{"cue long separator", "a.cue", `commands: [{phrase: ".a", script: "true", subjects: [{kind: "list<int>", separator: ";;"}]}]`, cueutil.ErrValidation},
		{"toml unknown key", "a.toml", "[[commands]]\nphrase = \".a\"\nscript = \"true\"\ncolour = \"red\"\n", ErrDecode},
		{"toml syntax", "a.toml", "[[commands]\n", ErrDecode},
		{"yaml unknown key", "a.yaml", "commands:\n  - phrase: .a\n    script: 'true'\n    colour: red\n", ErrDecode},
		{"yaml syntax", "a.yaml", "commands: [\n", ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.cue"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_EmptyDocuments(t *testing.T) {
	t.Parallel()

	for _, format := range []Format{FormatCUE, FormatTOML, FormatYAML} {
		def, err := Parse(nil, format, "empty")
		require.NoError(t, err, format)
		assert.Empty(t, def.Entries, format)
	}
}

func TestDefinition_CommandsErrors(t *testing.T) {
	t.Parallel()

	factoryErr := errors.New("script does not parse")

	tests := []struct {
		name    string
		entry   CommandDef
		factory RoutineFactory
		wantErr error
	}{
		{
			name:    "missing script",
			entry:   CommandDef{Phrase: ".a", Script: "  "},
			wantErr: ErrMissingScript,
		},
		{
			name:    "unknown kind",
			entry:   CommandDef{Phrase: ".a", Script: "true", Subjects: []SubjectDef{{Kind: "date"}}},
			wantErr: value.ErrUnknownKindName,
		},
		{
			name:    "bad separator",
			entry:   CommandDef{Phrase: ".a", Script: "true", Properties: []PropertyDef{{Name: "p", Kind: "list<int>", Separator: "ab"}}},
			wantErr: ErrInvalidSeparator,
		},
		{
			name:    "factory failure",
			entry:   CommandDef{Phrase: ".a", Script: "if"},
			factory: func(string, string) (grammar.Routine, error) { return nil, factoryErr },
			wantErr: factoryErr,
		},
		{
			name:    "invalid phrase",
			entry:   CommandDef{Phrase: "a", Script: "true"},
			wantErr: grammar.ErrInvalidPhrase,
		},
		{
			name:    "bad default",
			entry:   CommandDef{Phrase: ".a", Script: "true", Subjects: []SubjectDef{{Kind: "int", Optional: true, Default: "many"}}},
			wantErr: grammar.ErrInvalidDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			factory := tt.factory
			if factory == nil {
				factory = func(string, string) (grammar.Routine, error) { return grammar.Noop, nil }
			}
			def := &Definition{Entries: []CommandDef{
				{Phrase: ".ok", Script: "true"},
				tt.entry,
			}}

			_, err := def.Commands(factory)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDefinition)
			assert.ErrorIs(t, err, tt.wantErr)

			var de *DefinitionError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, 1, de.Index)
			assert.Equal(t, tt.entry.Phrase, de.Phrase)
		})
	}
}

func TestFormatFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want Format
	}{
		{"wcafile.cue", FormatCUE},
		{"dir/cmds.TOML", FormatTOML},
		{"x.yaml", FormatYAML},
		{"x.yml", FormatYAML},
	}
	for _, tt := range tests {
		got, err := FormatFor(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}

	_, err := FormatFor("x.json")
	var ufe *UnsupportedFormatError
	require.ErrorAs(t, err, &ufe)
	assert.Equal(t, ".json", ufe.Ext)
}
