// SPDX-License-Identifier: MPL-2.0

package help

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// General registers ".help", printing the command index.
	General Variant = 1 << iota
	// Subject lets ".help" take an optional phrase and print that command's details.
	Subject
	// Dot registers ".help.<name>" for every command.
	Dot

	// None registers no help commands.
	None Variant = 0
	// All registers every variant.
	All = General | Subject | Dot
)

// ErrInvalidVariant is the sentinel error wrapped by InvalidVariantError.
var ErrInvalidVariant = errors.New("invalid help variant")

type (
	// Variant is a set of help flavors.
	Variant uint8

	// InvalidVariantError is returned when a variant name is not recognized.
	InvalidVariantError struct {
		Name string
	}
)

var variantNames = []struct {
	name    string
	variant Variant
}{
	{"general", General},
	{"subject", Subject},
	{"dot", Dot},
}

// Error implements the error interface.
func (e *InvalidVariantError) Error() string {
	return fmt.Sprintf("invalid help variant %q (valid: %s)", e.Name, strings.Join(VariantNames(), ", "))
}

// Unwrap returns ErrInvalidVariant for errors.Is() compatibility.
func (e *InvalidVariantError) Unwrap() error { return ErrInvalidVariant }

// VariantNames returns the recognized variant names.
func VariantNames() []string {
	names := make([]string, len(variantNames))
	for i, v := range variantNames {
		names[i] = v.name
	}
	return names
}

// ParseVariants combines the named variants into a set. "all" and "none" are
// also accepted.
func ParseVariants(names []string) (Variant, error) {
	var set Variant
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		switch name {
		case "all":
			set |= All
			continue
		case "none":
			continue
		}
		found := false
		for _, v := range variantNames {
			if v.name == name {
				set |= v.variant
				found = true
				break
			}
		}
		if !found {
			return None, &InvalidVariantError{Name: raw}
		}
	}
	return set, nil
}

// Has reports whether every variant in o is in v.
func (v Variant) Has(o Variant) bool { return v&o == o && o != 0 }

// Enabled reports whether ".help" is registered, i.e. General or Subject is set.
func (v Variant) Enabled() bool { return v&(General|Subject) != 0 }

// String renders the set as a comma-separated list of names.
func (v Variant) String() string {
	if v == None {
		return "none"
	}
	var parts []string
	for _, n := range variantNames {
		if v.Has(n.variant) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, ",")
}
