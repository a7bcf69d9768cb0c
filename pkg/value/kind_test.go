// SPDX-License-Identifier: MPL-2.0

package value

import (
	"errors"
	"testing"
)

func TestKind_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind Kind
		want bool
	}{
		{"string", String, true},
		{"integer", Integer, true},
		{"path", Path, true},
		{"list of integers", ListOf(Integer, 0), true},
		{"list with semicolon", ListOf(String, ';'), true},
		{"zero kind", Kind{}, false},
		{"nested list", ListOf(ListOf(String, 0), 0), false},
		{"quote separator", ListOf(String, '"'), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ok, errs := tt.kind.IsValid()
			if ok != tt.want {
				t.Fatalf("Kind(%s).IsValid() = %v, want %v", tt.kind, ok, tt.want)
			}
			if !tt.want {
				if len(errs) == 0 {
					t.Fatal("IsValid() returned no errors for invalid kind")
				}
				if !errors.Is(errs[0], ErrInvalidKind) {
					t.Errorf("error should wrap ErrInvalidKind, got: %v", errs[0])
				}
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{String, "string"},
		{Integer, "integer"},
		{Float, "float"},
		{Bool, "bool"},
		{Path, "path"},
		{ListOf(Path, 0), "list<path>"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestListOf_DefaultSeparator(t *testing.T) {
	t.Parallel()

	k := ListOf(String, 0)
	if k.Separator() != ',' {
		t.Errorf("Separator() = %q, want ','", k.Separator())
	}
	if k.Elem() != String {
		t.Errorf("Elem() = %s, want string", k.Elem())
	}
	if String.Separator() != 0 {
		t.Errorf("scalar Separator() = %q, want 0", String.Separator())
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		sep     rune
		want    Kind
		wantErr bool
	}{
		{name: "string", in: "string", want: String},
		{name: "int alias", in: "int", want: Integer},
		{name: "mixed case", in: "Bool", want: Bool},
		{name: "list", in: "list<integer>", want: ListOf(Integer, ',')},
		{name: "list custom sep", in: "list<path>", sep: ':', want: ListOf(Path, ':')},
		{name: "nested list", in: "list<list<string>>", wantErr: true},
		{name: "unterminated list", in: "list<string", wantErr: true},
		{name: "unknown", in: "duration", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseKind(tt.in, tt.sep)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseKind(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}
