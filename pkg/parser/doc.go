// SPDX-License-Identifier: MPL-2.0

// Package parser turns an argv-style token vector into a RawProgram.
//
//	program      := command+
//	command      := PHRASE token*
//	token        := named | positional
//	named        := NAME (':' | '=') VALUE
//	positional   := VALUE
//	PHRASE       := '.' IDENT ('.' IDENT)*
//	NAME         := [A-Za-z_][A-Za-z0-9_-]*
//
// A token starting with '.' that is not a lone '.' and has no '=' opens a new
// command. A lone '.' is a placeholder and is dropped. Parsing is purely
// syntactic: phrases are not looked up and values are not typed.
//
// Tokenize splits a single input string into tokens for callers that do not
// already have an argv vector.
package parser
