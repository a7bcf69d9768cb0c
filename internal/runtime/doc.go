// SPDX-License-Identifier: MPL-2.0

// Package runtime runs script routines declared in dictionary files.
//
// VirtualRuntime executes scripts in-process with the mvdan/sh interpreter, so
// scripts behave the same on every platform and need no host shell. Each
// script is parsed once when its routine is built; syntax errors surface then
// rather than on first use.
//
// A running script sees its call through the environment:
//
//	WCA_PHRASE         the command phrase, e.g. ".greet"
//	WCA_SUBJECT_COUNT  number of subjects
//	WCA_SUBJECT_<i>    subject i (zero-based) rendered as text
//	WCA_PROP_<NAME>    property NAME (upper-cased, '-' replaced by '_')
//
// and the subjects are also its positional parameters $1..$n.
package runtime
