// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable, user-facing errors for the wca CLI.
//
// ActionableError records what was attempted, on which resource, and how to
// fix it. A catalog of Markdown guides, keyed by Id, is rendered with glamour
// when the CLI runs in verbose mode.
package issue
