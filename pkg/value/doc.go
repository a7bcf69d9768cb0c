// SPDX-License-Identifier: MPL-2.0

// Package value defines the typed values bound to command slots and the kinds
// that describe them.
//
// A Kind describes what a slot expects (string, integer, float, bool, path, or a
// homogeneous list of one scalar kind). Parse turns a raw token into a Value of
// the requested kind; Default produces the zero value used to fill optional
// slots that were not supplied.
//
// This package is a leaf dependency: it imports only the standard library.
package value
