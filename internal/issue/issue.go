// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

const (
	InvalidInputId Id = iota + 1
	UnknownCommandId
	ArgumentMismatchId
	RoutineFailedId
	ScriptFailedId
	InvalidGrammarId
	DictionaryFileNotFoundId
	DictionaryFileInvalidId
	ConfigLoadFailedId
)

type (
	// Id identifies a catalog entry.
	Id int

	// MarkdownMsg is the Markdown body of a guide.
	MarkdownMsg string

	// Issue is one catalog guide.
	Issue struct {
		id    Id
		title string
		mdMsg MarkdownMsg
	}
)

var render = glamour.Render

// Id returns the catalog key.
func (i *Issue) Id() Id { return i.id }

// Title returns the one-line summary of the guide.
func (i *Issue) Title() string { return i.title }

// MarkdownMsg returns the raw Markdown.
func (i *Issue) MarkdownMsg() MarkdownMsg { return i.mdMsg }

// Render renders the guide for a terminal. stylePath is a glamour style name
// such as "dark", "light" or "auto"-resolved equivalents.
func (i *Issue) Render(stylePath string) (string, error) {
	return render("# "+i.title+"\n"+strings.TrimLeft(string(i.mdMsg), "\n"), stylePath)
}

var issues = map[Id]*Issue{
	InvalidInputId: {
		id:    InvalidInputId,
		title: "The input could not be parsed",
		mdMsg: `
Every command starts with a dot-prefixed phrase; everything after it belongs
to that command until the next phrase.

~~~
$ wca .echo "hello world" prefix:>> .version
~~~

## Things to check
- Tokens before the first phrase are rejected.
- Every opening double quote needs a closing one.
- A lone ` + "`.`" + ` is a placeholder and is ignored; ` + "`..`" + ` is not a phrase.`,
	},
	UnknownCommandId: {
		id:    UnknownCommandId,
		title: "Unknown command",
		mdMsg: `
The phrase does not match any registered command.

## Things you can try
- List every command:
~~~
$ wca .help
~~~
- Check the "did you mean" hint in the error above.
- Make sure the dictionary file declaring the command was loaded (` + "`--file`" + `).`,
	},
	ArgumentMismatchId: {
		id:    ArgumentMismatchId,
		title: "Arguments do not match the command",
		mdMsg: `
Subjects bind by position, properties by ` + "`name:value`" + ` or ` + "`name=value`" + `.
Each value must parse as the kind its slot declares.

| kind | accepted |
|------|----------|
| integer | ` + "`-3`, `+7`, `42`" + ` |
| float | ` + "`1.5`, `2e10`" + ` |
| bool | ` + "`true/false`, `yes/no`, `1/0`" + ` |
| list | elements joined by the separator, quotes keep separators |

## Things you can try
~~~
$ wca .help <phrase>
~~~`,
	},
	RoutineFailedId: {
		id:    RoutineFailedId,
		title: "A command failed while running",
		mdMsg: `
Commands run in order and the first failure stops the program. Commands
before the failing one have already run.

## Things you can try
- Run the failing command on its own.
- Re-run with ` + "`--verbose`" + ` to see debug logs for every command.`,
	},
	ScriptFailedId: {
		id:    ScriptFailedId,
		title: "A script command exited with a non-zero status",
		mdMsg: `
Script commands run in the built-in POSIX shell. Subjects are available as
` + "`$1..$n`" + ` and ` + "`$WCA_SUBJECT_<i>`" + `, properties as ` + "`$WCA_PROP_<NAME>`" + `.

## Things you can try
- Add ` + "`set -x`" + ` at the top of the script to trace it.
- Check that the tools the script calls exist in your PATH.`,
	},
	InvalidGrammarId: {
		id:    InvalidGrammarId,
		title: "A command definition is invalid",
		mdMsg: `
## Rules every command must follow
- The phrase is ` + "`.`" + ` followed by dot-separated names, e.g. ` + "`.module.list`" + `.
- Mandatory subjects come before optional ones.
- Property names and aliases are unique within the command.
- Defaults parse as the declared kind.
- Phrases are unique, and ` + "`.help`" + ` is reserved while help is enabled.`,
	},
	DictionaryFileNotFoundId: {
		id:    DictionaryFileNotFoundId,
		title: "Dictionary file not found",
		mdMsg: `
wca looks for a dictionary file in this order:
1. ` + "`--file`" + `
2. ` + "`dictionary.path`" + ` in the config file
3. ` + "`./wcafile.cue`" + `

Supported formats are CUE, TOML and YAML, chosen by extension.`,
	},
	DictionaryFileInvalidId: {
		id:    DictionaryFileInvalidId,
		title: "Dictionary file is invalid",
		mdMsg: `
## Example
~~~cue
commands: [{
	phrase: ".greet"
	hint:   "Greet someone"
	subjects: [{hint: "name", kind: "string", optional: true, default: "world"}]
	script: "echo hello $1"
}]
~~~

## Things you can try
~~~
$ wca check ./wcafile.cue
~~~`,
	},
	ConfigLoadFailedId: {
		id:    ConfigLoadFailedId,
		title: "Configuration could not be loaded",
		mdMsg: `
The config file is CUE, looked up at ` + "`--config`" + `, then
` + "`$XDG_CONFIG_HOME/wca/config.cue`" + `, then ` + "`./config.cue`" + `.

~~~cue
ui: {verbose: false, color_scheme: "auto"}
log: level: "warn"
help: variants: ["general", "subject", "dot"]
verify: suggestions: true
~~~

## Things you can try
~~~
$ wca config show
~~~`,
	},
}

// Get returns the guide for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}

// Values returns every guide ordered by id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, is := range issues {
		out = append(out, is)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}
