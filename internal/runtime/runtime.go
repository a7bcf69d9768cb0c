// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

const (
	// EnvPhrase holds the phrase of the running command.
	EnvPhrase = "WCA_PHRASE"
	// EnvSubjectCount holds the number of subjects.
	EnvSubjectCount = "WCA_SUBJECT_COUNT"
	// EnvSubjectPrefix prefixes one variable per subject.
	EnvSubjectPrefix = "WCA_SUBJECT_"
	// EnvPropPrefix prefixes one variable per bound property.
	EnvPropPrefix = "WCA_PROP_"
)

var (
	// ErrScriptExit is the sentinel error wrapped by ScriptExitError.
	ErrScriptExit = errors.New("script exited with non-zero status")
	// ErrScriptSyntax is the sentinel error wrapped by ScriptSyntaxError.
	ErrScriptSyntax = errors.New("script syntax error")
)

type (
	// IO holds the standard streams given to scripts. Nil readers and writers
	// behave as empty input and discarded output.
	IO struct {
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// ScriptExitError is returned when a script finishes with a non-zero status.
	ScriptExitError struct {
		Phrase string
		Code   uint8
	}

	// ScriptSyntaxError is returned when a script cannot be parsed.
	ScriptSyntaxError struct {
		Phrase string
		Err    error
	}
)

// Error implements the error interface.
func (e *ScriptExitError) Error() string {
	return fmt.Sprintf("script for %s exited with status %d", e.Phrase, e.Code)
}

// Unwrap returns ErrScriptExit for errors.Is() compatibility.
func (e *ScriptExitError) Unwrap() error { return ErrScriptExit }

// Error implements the error interface.
func (e *ScriptSyntaxError) Error() string {
	return fmt.Sprintf("script for %s: %v", e.Phrase, e.Err)
}

// Unwrap returns ErrScriptSyntax and the parser error.
func (e *ScriptSyntaxError) Unwrap() []error { return []error{ErrScriptSyntax, e.Err} }

// EnvToSlice converts an environment map to KEY=VALUE entries, sorted by key
// so scripts see a stable order.
func EnvToSlice(env map[string]string) []string {
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

// FilterWCAEnvVars drops per-call WCA_* variables from environ, so a script
// that runs wca again does not leak its own subjects and properties into the
// nested call.
func FilterWCAEnvVars(environ []string) []string {
	result := make([]string, 0, len(environ))
	for _, e := range environ {
		name, _, ok := strings.Cut(e, "=")
		if ok && shouldFilterEnvVar(name) {
			continue
		}
		result = append(result, e)
	}
	return result
}

func shouldFilterEnvVar(name string) bool {
	return name == EnvPhrase ||
		name == EnvSubjectCount ||
		strings.HasPrefix(name, EnvSubjectPrefix) ||
		strings.HasPrefix(name, EnvPropPrefix)
}
