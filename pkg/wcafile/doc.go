// SPDX-License-Identifier: MPL-2.0

// Package wcafile loads declarative dictionary files.
//
// A dictionary file lists commands whose routines are scripts. The format is
// chosen by extension: .cue files are validated against the embedded
// wcafile_schema.cue, .toml and .yaml/.yml files are decoded strictly (unknown
// keys are rejected). Definition.Commands turns the entries into
// grammar.Command values, building each routine with a caller-supplied factory.
package wcafile
