// SPDX-License-Identifier: MPL-2.0

// Package verifier binds a parsed program to a dictionary.
//
// Each raw command is looked up by phrase, its positional tokens are bound to
// subject slots left to right, and its named tokens are resolved against
// property names and aliases. Every value is parsed with its slot's kind, so a
// verified program only ever holds values that match the grammar.
//
// Verification stops at the first command that fails; nothing verified before
// it is returned.
package verifier
