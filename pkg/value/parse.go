// SPDX-License-Identifier: MPL-2.0

package value

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// ErrKindMismatch is the sentinel error wrapped by KindMismatchError.
var ErrKindMismatch = errors.New("kind mismatch")

// decimalFloat accepts plain decimal notation with an optional exponent.
// strconv.ParseFloat alone would also take "NaN", "Inf", hex floats and underscores.
var decimalFloat = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?$`)

// KindMismatchError is returned when a raw token cannot be read as the
// expected kind.
type KindMismatchError struct {
	// Slot describes where the token was bound (e.g. "subject #1"); empty when
	// Parse was called without slot context.
	Slot string
	// Observed is the raw text that failed to parse.
	Observed string
	// Expected is the kind the slot declares.
	Expected Kind
	// Reason is a short explanation of why the text was rejected.
	Reason string
}

// Error implements the error interface.
func (e *KindMismatchError) Error() string {
	var sb strings.Builder
	if e.Slot != "" {
		sb.WriteString(e.Slot)
		sb.WriteString(": ")
	}
	fmt.Fprintf(&sb, "expected %s, got %q", e.Expected, e.Observed)
	if e.Reason != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Reason)
		sb.WriteString(")")
	}
	return sb.String()
}

// Unwrap returns ErrKindMismatch for errors.Is() compatibility.
func (e *KindMismatchError) Unwrap() error { return ErrKindMismatch }

// Parse reads raw as a value of kind k. It is deterministic and never touches
// the filesystem.
func Parse(k Kind, raw string) (Value, error) {
	return ParseFor("", k, raw)
}

// ParseFor is Parse with a slot description recorded in any KindMismatchError.
func ParseFor(slot string, k Kind, raw string) (Value, error) {
	if ok, errs := k.IsValid(); !ok {
		return Value{}, errs[0]
	}
	v, reason, ok := parse(k, raw)
	if !ok {
		return Value{}, &KindMismatchError{Slot: slot, Observed: raw, Expected: k, Reason: reason}
	}
	return v, nil
}

func parse(k Kind, raw string) (Value, string, bool) {
	switch k.tag {
	case TagString:
		return NewString(raw), "", true

	case TagInteger:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return Value{}, "out of range", false
			}
			return Value{}, "must be a decimal integer", false
		}
		return NewInteger(i), "", true

	case TagFloat:
		if !decimalFloat.MatchString(raw) {
			return Value{}, "must be a decimal number", false
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsInf(f, 0) {
			return Value{}, "out of range", false
		}
		return NewFloat(f), "", true

	case TagBool:
		switch strings.ToLower(raw) {
		case "true", "1", "yes":
			return NewBool(true), "", true
		case "false", "0", "no":
			return NewBool(false), "", true
		}
		return Value{}, "must be one of true, false, 1, 0, yes, no", false

	case TagPath:
		return NewPath(normalizePath(raw)), "", true

	case TagList:
		elem := k.Elem()
		parts := splitList(raw, k.sep)
		items := make([]Value, 0, len(parts))
		for i, part := range parts {
			item, reason, ok := parse(elem, part)
			if !ok {
				return Value{}, fmt.Sprintf("element %d %q: %s", i, part, reason), false
			}
			items = append(items, item)
		}
		return Value{kind: k, items: items}, "", true
	}
	return Value{}, "unknown kind", false
}

// normalizePath trims surrounding whitespace and collapses runs of separators.
func normalizePath(raw string) string {
	p := strings.TrimSpace(raw)
	var sb strings.Builder
	sb.Grow(len(p))
	var prevSep bool
	for _, r := range p {
		isSep := r == '/' || r == filepath.Separator
		if isSep && prevSep {
			continue
		}
		prevSep = isSep
		sb.WriteRune(r)
	}
	return sb.String()
}

// splitList splits raw on sep. Separators inside a balanced pair of double
// quotes are kept; the quotes themselves are dropped. Empty elements are
// discarded unless they were quoted. With an odd number of quotes, quotes are
// taken literally.
func splitList(raw string, sep rune) []string {
	if raw == "" {
		return nil
	}
	honorQuotes := strings.Count(raw, `"`)%2 == 0

	var (
		parts   []string
		cur     strings.Builder
		inQuote bool
		quoted  bool
	)
	flush := func() {
		if cur.Len() > 0 || quoted {
			parts = append(parts, cur.String())
		}
		cur.Reset()
		quoted = false
	}
	for _, r := range raw {
		switch {
		case honorQuotes && r == '"':
			inQuote = !inQuote
			quoted = true
		case r == sep && !inQuote:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return parts
}
