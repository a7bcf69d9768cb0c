// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// ActionableError is an error with context for user-facing messages.
	//
	//	err := issue.NewErrorContext().
	//		WithOperation("load dictionary file").
	//		WithResource("./wcafile.cue").
	//		WithSuggestion("Run 'wca check' to validate the file").
	//		WithIssue(issue.DictionaryFileInvalidId).
	//		Wrap(cause).
	//		BuildError()
	ActionableError struct {
		// Operation is what was being attempted, e.g. "load configuration".
		Operation string
		// Resource is the file or entity involved (optional).
		Resource string
		// Suggestions are hints on how to fix the problem (optional).
		Suggestions []string
		// IssueId points at the catalog guide for this failure; zero means none.
		IssueId Id
		// Cause is the underlying error (optional).
		Cause error
	}

	// ErrorContext builds ActionableError values incrementally.
	ErrorContext struct {
		err ActionableError
	}
)

// NewErrorContext creates an empty builder.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// Error returns "failed to <operation>[: <resource>][: <cause>]".
func (e *ActionableError) Error() string {
	var sb strings.Builder
	sb.WriteString("failed to ")
	sb.WriteString(e.Operation)
	if e.Resource != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Resource)
	}
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

// Unwrap returns the cause for errors.Is/As.
func (e *ActionableError) Unwrap() error { return e.Cause }

// HasSuggestions reports whether any suggestion is attached.
func (e *ActionableError) HasSuggestions() bool { return len(e.Suggestions) > 0 }

// Format renders the message followed by bulleted suggestions. Verbose output
// also lists the error chain, one cause per line.
func (e *ActionableError) Format(verbose bool) string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		sb.WriteString("\n")
		for _, s := range e.Suggestions {
			sb.WriteString("\n  • ")
			sb.WriteString(s)
		}
	}

	if verbose && e.Cause != nil {
		sb.WriteString("\n\nError chain:")
		depth := 1
		for err := e.Cause; err != nil; err = errors.Unwrap(err) {
			fmt.Fprintf(&sb, "\n  %d. %s", depth, err.Error())
			depth++
		}
	}
	return sb.String()
}

// WithOperation sets the operation, a verb phrase such as "load configuration".
func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.err.Operation = op
	return c
}

// WithResource sets the resource involved.
func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.err.Resource = res
	return c
}

// WithSuggestion appends one suggestion.
func (c *ErrorContext) WithSuggestion(s string) *ErrorContext {
	c.err.Suggestions = append(c.err.Suggestions, s)
	return c
}

// WithSuggestions appends several suggestions.
func (c *ErrorContext) WithSuggestions(s ...string) *ErrorContext {
	c.err.Suggestions = append(c.err.Suggestions, s...)
	return c
}

// WithIssue links the error to a catalog guide.
func (c *ErrorContext) WithIssue(id Id) *ErrorContext {
	c.err.IssueId = id
	return c
}

// Wrap sets the underlying cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.err.Cause = err
	return c
}

// Build returns the ActionableError, or nil when no operation was set.
func (c *ErrorContext) Build() *ActionableError {
	if c.err.Operation == "" {
		return nil
	}
	ae := c.err
	ae.Suggestions = append([]string(nil), c.err.Suggestions...)
	return &ae
}

// BuildError is Build returning an error interface, nil when Build is nil.
func (c *ErrorContext) BuildError() error {
	if ae := c.Build(); ae != nil {
		return ae
	}
	return nil
}
