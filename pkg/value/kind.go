// SPDX-License-Identifier: MPL-2.0

package value

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// TagString holds arbitrary text.
	TagString Tag = iota + 1
	// TagInteger holds a signed 64-bit decimal integer.
	TagInteger
	// TagFloat holds a 64-bit decimal floating-point number.
	TagFloat
	// TagBool holds a boolean.
	TagBool
	// TagPath holds a normalized filesystem path. No filesystem access is performed.
	TagPath
	// TagList holds a homogeneous list of scalar values.
	TagList

	// DefaultSeparator splits list elements when a list kind does not set one.
	DefaultSeparator = ','
)

var (
	// ErrInvalidKind is the sentinel error wrapped by InvalidKindError.
	ErrInvalidKind = errors.New("invalid kind")

	// ErrUnknownKindName is returned by ParseKind for names that do not denote a kind.
	ErrUnknownKindName = errors.New("unknown kind name")

	// String is the kind of plain text values.
	String = Kind{tag: TagString}
	// Integer is the kind of signed decimal integers.
	Integer = Kind{tag: TagInteger}
	// Float is the kind of decimal floating-point numbers.
	Float = Kind{tag: TagFloat}
	// Bool is the kind of boolean values.
	Bool = Kind{tag: TagBool}
	// Path is the kind of filesystem paths.
	Path = Kind{tag: TagPath}
)

type (
	// Tag identifies the variant held by a Value or expected by a Kind.
	Tag int

	// Kind describes the expected Value variant of a slot. For lists it also
	// carries the element kind and the separator character.
	//
	// The zero Kind is invalid; use the package-level kinds or ListOf.
	Kind struct {
		tag  Tag
		elem Tag
		sep  rune
	}

	// InvalidKindError is returned when a Kind is the zero value, nests lists,
	// or uses an unusable separator.
	InvalidKindError struct {
		Kind   Kind
		Reason string
	}
)

// String returns the lower-case name of the tag.
func (t Tag) String() string {
	switch t {
	case TagString:
		return "string"
	case TagInteger:
		return "integer"
	case TagFloat:
		return "float"
	case TagBool:
		return "bool"
	case TagPath:
		return "path"
	case TagList:
		return "list"
	default:
		return fmt.Sprintf("tag(%d)", int(t))
	}
}

func (t Tag) isScalar() bool {
	return t >= TagString && t <= TagPath
}

// ListOf returns a list kind whose elements have the given scalar kind.
// A zero sep selects DefaultSeparator. The result is not validated here;
// Kind.IsValid reports nested lists and bad separators.
func ListOf(elem Kind, sep rune) Kind {
	if sep == 0 {
		sep = DefaultSeparator
	}
	return Kind{tag: TagList, elem: elem.tag, sep: sep}
}

// Tag returns the variant this kind expects.
func (k Kind) Tag() Tag { return k.tag }

// IsList reports whether the kind describes a list.
func (k Kind) IsList() bool { return k.tag == TagList }

// Elem returns the element kind of a list kind. For scalar kinds it returns k.
func (k Kind) Elem() Kind {
	if k.tag != TagList {
		return k
	}
	return Kind{tag: k.elem}
}

// Separator returns the list separator, or 0 for scalar kinds.
func (k Kind) Separator() rune {
	if k.tag != TagList {
		return 0
	}
	return k.sep
}

// String renders the kind the way help output and ParseKind spell it,
// e.g. "integer" or "list<string>".
func (k Kind) String() string {
	if k.tag == TagList {
		return "list<" + k.elem.String() + ">"
	}
	return k.tag.String()
}

// IsValid returns whether the kind is usable in a grammar, and a list of
// validation errors if it is not.
func (k Kind) IsValid() (bool, []error) {
	switch {
	case k.tag.isScalar():
		return true, nil
	case k.tag != TagList:
		return false, []error{&InvalidKindError{Kind: k, Reason: "unknown kind"}}
	case k.elem == TagList:
		return false, []error{&InvalidKindError{Kind: k, Reason: "list elements cannot be lists"}}
	case !k.elem.isScalar():
		return false, []error{&InvalidKindError{Kind: k, Reason: "list element kind is unknown"}}
	case k.sep == '"' || !utf8.ValidRune(k.sep) || k.sep == utf8.RuneError:
		return false, []error{&InvalidKindError{Kind: k, Reason: fmt.Sprintf("unusable separator %q", k.sep)}}
	}
	return true, nil
}

// Error implements the error interface.
func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid kind %s: %s", e.Kind, e.Reason)
}

// Unwrap returns ErrInvalidKind for errors.Is() compatibility.
func (e *InvalidKindError) Unwrap() error { return ErrInvalidKind }

// ParseKind resolves a kind name as written in dictionary files:
// "string", "integer" (or "int"), "float", "bool", "path", or "list<elem>".
// A zero sep selects DefaultSeparator for list kinds and is ignored otherwise.
func ParseKind(name string, sep rune) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if inner, ok := strings.CutPrefix(n, "list<"); ok {
		inner, ok = strings.CutSuffix(inner, ">")
		if !ok {
			return Kind{}, fmt.Errorf("%w: %q", ErrUnknownKindName, name)
		}
		elem, err := ParseKind(inner, 0)
		if err != nil {
			return Kind{}, err
		}
		k := ListOf(elem, sep)
		if ok, errs := k.IsValid(); !ok {
			return Kind{}, errs[0]
		}
		return k, nil
	}

	switch n {
	case "string", "str":
		return String, nil
	case "integer", "int":
		return Integer, nil
	case "float", "number":
		return Float, nil
	case "bool", "boolean":
		return Bool, nil
	case "path":
		return Path, nil
	}
	return Kind{}, fmt.Errorf("%w: %q", ErrUnknownKindName, name)
}
