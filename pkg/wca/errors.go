// SPDX-License-Identifier: MPL-2.0

package wca

import (
	"errors"
	"fmt"

	"github.com/invowk/wca/pkg/types"
)

const (
	// StageTokenize is splitting a single input string into tokens.
	StageTokenize Stage = iota + 1
	// StageParse is grouping tokens into raw commands.
	StageParse
	// StageVerify is binding raw commands to the dictionary.
	StageVerify
	// StageExecute is running routines.
	StageExecute
)

type (
	// Stage identifies the pipeline step an error came from.
	Stage int

	// Error wraps a failure from one pipeline stage. Err is the stage-specific
	// error (e.g. *verifier.UnknownPhraseError) and stays reachable through
	// errors.As.
	Error struct {
		Stage Stage
		Err   error
	}
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageTokenize:
		return "tokenize"
	case StageParse:
		return "parse"
	case StageVerify:
		return "verify"
	case StageExecute:
		return "execute"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// ExitCode returns the process exit code for failures in this stage.
func (s Stage) ExitCode() types.ExitCode {
	switch s {
	case StageTokenize, StageParse:
		return types.ExitParse
	case StageVerify:
		return types.ExitVerify
	case StageExecute:
		return types.ExitExecute
	default:
		return types.ExitInternal
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

// Unwrap returns the stage error.
func (e *Error) Unwrap() error { return e.Err }

// StageOf returns the stage err came from, or false when err is not a
// pipeline error.
func StageOf(err error) (Stage, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Stage, true
	}
	return 0, false
}

// ExitCodeFor maps err to a process exit code: 0 for nil, the stage code for
// pipeline errors and ExitInternal for anything else.
func ExitCodeFor(err error) types.ExitCode {
	if err == nil {
		return types.ExitSuccess
	}
	if stage, ok := StageOf(err); ok {
		return stage.ExitCode()
	}
	return types.ExitInternal
}
