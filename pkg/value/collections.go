// SPDX-License-Identifier: MPL-2.0

package value

import "slices"

type (
	// Args holds the subject values of a verified command, one per subject slot
	// in declaration order.
	Args []Value

	// Props is an insertion-ordered mapping from canonical property name to
	// value. The zero Props is empty and ready to use.
	Props struct {
		keys []string
		vals map[string]Value
	}
)

// Get returns the i-th subject value, or false when i is out of range.
func (a Args) Get(i int) (Value, bool) {
	if i < 0 || i >= len(a) {
		return Value{}, false
	}
	return a[i], true
}

// Strings renders every subject as text.
func (a Args) Strings() []string {
	out := make([]string, len(a))
	for i, v := range a {
		out[i] = v.String()
	}
	return out
}

// Set stores v under name. A new name is appended to the iteration order;
// an existing name keeps its position.
func (p *Props) Set(name string, v Value) {
	if p.vals == nil {
		p.vals = make(map[string]Value)
	}
	if _, exists := p.vals[name]; !exists {
		p.keys = append(p.keys, name)
	}
	p.vals[name] = v
}

// Get returns the value stored under name.
func (p Props) Get(name string) (Value, bool) {
	v, ok := p.vals[name]
	return v, ok
}

// GetOr returns the value stored under name, or fallback when absent.
func (p Props) GetOr(name string, fallback Value) Value {
	if v, ok := p.vals[name]; ok {
		return v
	}
	return fallback
}

// Has reports whether name is present.
func (p Props) Has(name string) bool {
	_, ok := p.vals[name]
	return ok
}

// Len returns the number of properties.
func (p Props) Len() int { return len(p.keys) }

// Keys returns the property names in insertion order.
func (p Props) Keys() []string { return slices.Clone(p.keys) }

// Equal reports whether both mappings hold the same names, in the same order,
// with equal values.
func (p Props) Equal(o Props) bool {
	if !slices.Equal(p.keys, o.keys) {
		return false
	}
	for _, k := range p.keys {
		if !p.vals[k].Equal(o.vals[k]) {
			return false
		}
	}
	return true
}
