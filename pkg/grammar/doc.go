// SPDX-License-Identifier: MPL-2.0

// Package grammar describes the commands an aggregator understands.
//
// A Command pairs a dot-prefixed phrase (".echo") with ordered subject slots,
// named property slots and the Routine to run. A Dictionary owns the commands,
// keeps them in insertion order for help output, and offers "did you mean"
// suggestions ranked by Damerau-Levenshtein distance.
package grammar
