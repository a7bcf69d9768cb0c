// SPDX-License-Identifier: MPL-2.0

// Package help renders command help from a dictionary and registers the
// built-in help commands.
//
// Three variants can be registered:
//
//	general   .help              one line per command: "<phrase> — <hint>"
//	subject   .help <phrase>     detailed help for one command
//	dot       .help.<name>       detailed help, one command per entry
//
// Output goes to an injected io.Writer. Rendering is pure: the same
// dictionary always yields the same text.
package help
