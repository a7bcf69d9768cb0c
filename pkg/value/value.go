// SPDX-License-Identifier: MPL-2.0

package value

import (
	"slices"
	"strconv"
	"strings"
)

// Value is an immutable typed value produced by Parse or one of the
// constructors. The zero Value holds no variant and matches no kind.
type Value struct {
	kind  Kind
	text  string
	num   int64
	dec   float64
	flag  bool
	items []Value
}

// NewString returns a String value.
func NewString(s string) Value { return Value{kind: String, text: s} }

// NewInteger returns an Integer value.
func NewInteger(i int64) Value { return Value{kind: Integer, num: i} }

// NewFloat returns a Float value.
func NewFloat(f float64) Value { return Value{kind: Float, dec: f} }

// NewBool returns a Bool value.
func NewBool(b bool) Value { return Value{kind: Bool, flag: b} }

// NewPath returns a Path value. The path is stored as given; Parse is what
// normalizes raw input.
func NewPath(p string) Value { return Value{kind: Path, text: p} }

// NewList returns a List value of the given list kind. Items whose kind does
// not match the element kind make the list fail Matches.
func NewList(kind Kind, items ...Value) Value {
	return Value{kind: kind, items: slices.Clone(items)}
}

// Kind returns the kind this value was created with.
func (v Value) Kind() Kind { return v.kind }

// Tag returns the variant held by the value.
func (v Value) Tag() Tag { return v.kind.tag }

// Str returns the text of a String or Path value, and "" otherwise.
func (v Value) Str() string { return v.text }

// Int returns the integer of an Integer value, and 0 otherwise.
func (v Value) Int() int64 { return v.num }

// Float returns the number of a Float value, and 0 otherwise.
func (v Value) Float() float64 { return v.dec }

// Bool returns the boolean of a Bool value, and false otherwise.
func (v Value) Bool() bool { return v.flag }

// List returns a copy of the items of a List value, and nil otherwise.
func (v Value) List() []Value { return slices.Clone(v.items) }

// Len returns the number of items of a List value, and 0 otherwise.
func (v Value) Len() int { return len(v.items) }

// Matches reports whether the value is of kind k. For lists every item must
// match the element kind.
func (v Value) Matches(k Kind) bool {
	if v.kind.tag != k.tag {
		return false
	}
	if k.tag != TagList {
		return true
	}
	if v.kind.elem != k.elem {
		return false
	}
	elem := k.Elem()
	for _, item := range v.items {
		if !item.Matches(elem) {
			return false
		}
	}
	return true
}

// Equal reports whether two values hold the same variant and contents.
// List separators are not compared.
func (v Value) Equal(o Value) bool {
	if v.kind.tag != o.kind.tag {
		return false
	}
	switch v.kind.tag {
	case TagString, TagPath:
		return v.text == o.text
	case TagInteger:
		return v.num == o.num
	case TagFloat:
		return v.dec == o.dec
	case TagBool:
		return v.flag == o.flag
	case TagList:
		return v.kind.elem == o.kind.elem && slices.EqualFunc(v.items, o.items, Value.Equal)
	}
	return true
}

// String renders the value as text. Lists are joined with their separator,
// so rendering a parsed list and parsing it back yields an equal value as long
// as no element contains the separator.
func (v Value) String() string {
	switch v.kind.tag {
	case TagString, TagPath:
		return v.text
	case TagInteger:
		return strconv.FormatInt(v.num, 10)
	case TagFloat:
		return strconv.FormatFloat(v.dec, 'g', -1, 64)
	case TagBool:
		return strconv.FormatBool(v.flag)
	case TagList:
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = item.String()
		}
		return strings.Join(parts, string(v.kind.sep))
	}
	return ""
}

// GoString renders the value with its variant, e.g. Integer(2) or
// List([String("a")]). Used by %#v and by test failure messages.
func (v Value) GoString() string {
	switch v.kind.tag {
	case TagString:
		return "String(" + strconv.Quote(v.text) + ")"
	case TagPath:
		return "Path(" + strconv.Quote(v.text) + ")"
	case TagInteger:
		return "Integer(" + v.String() + ")"
	case TagFloat:
		return "Float(" + v.String() + ")"
	case TagBool:
		return "Bool(" + v.String() + ")"
	case TagList:
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = item.GoString()
		}
		return "List([" + strings.Join(parts, ", ") + "])"
	}
	return "Value(<none>)"
}

// Default returns the zero value of a kind: "", 0, 0.0, false, an empty path,
// or an empty list.
func Default(k Kind) Value {
	switch k.tag {
	case TagString:
		return NewString("")
	case TagInteger:
		return NewInteger(0)
	case TagFloat:
		return NewFloat(0)
	case TagBool:
		return NewBool(false)
	case TagPath:
		return NewPath("")
	case TagList:
		return Value{kind: k}
	}
	return Value{}
}
