// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testSchema = `
#Sample: {
	name:     string & =~"^[a-z]+$"
	count:    int & >=0
	enabled?: bool
	tags?: [...string]
}
`

type sample struct {
	Name    string   `json:"name"`
	Count   int      `json:"count"`
	Enabled bool     `json:"enabled,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	t.Run("valid data decodes", func(t *testing.T) {
		t.Parallel()

		data := []byte(`
name:    "echo"
count:   3
enabled: true
tags: ["a", "b"]
`)
		res, err := ParseAndDecode[sample]([]byte(testSchema), data, "#Sample")
		if err != nil {
			t.Fatalf("ParseAndDecode: %v", err)
		}
		got := res.Value
		if got.Name != "echo" || got.Count != 3 || !got.Enabled || len(got.Tags) != 2 {
			t.Errorf("decoded %+v", got)
		}
		if !res.Unified.Exists() {
			t.Error("unified value should be set")
		}
	})

	t.Run("schema violation carries path", func(t *testing.T) {
		t.Parallel()

		data := []byte(`
name:  "echo"
count: -1
`)
		_, err := ParseAndDecode[sample]([]byte(testSchema), data, "#Sample", WithFilename("sample.cue"))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *ValidationError, got %v", err)
		}
		if verr.FilePath != "sample.cue" {
			t.Errorf("FilePath = %q", verr.FilePath)
		}
		found := false
		for _, is := range verr.Issues {
			if is.Path == "count" {
				found = true
			}
		}
		if !found {
			t.Errorf("no issue for path count: %+v", verr.Issues)
		}
	})

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[sample]([]byte(testSchema), []byte(`name: "x`), "#Sample")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "<input>") {
			t.Errorf("error should name the default filename, got: %v", err)
		}
	})

	t.Run("closed definition rejects unknown fields", func(t *testing.T) {
		t.Parallel()

		data := []byte(`
name:  "echo"
count: 1
bogus: true
`)
		if _, err := ParseAndDecode[sample]([]byte(testSchema), data, "#Sample"); err == nil {
			t.Error("expected error for unknown field")
		}
	})

	t.Run("missing required field fails concrete validation", func(t *testing.T) {
		t.Parallel()

		data := []byte(`name: "echo"`)
		if _, err := ParseAndDecode[sample]([]byte(testSchema), data, "#Sample"); err == nil {
			t.Error("missing count should fail concrete validation")
		}
	})

	t.Run("size limit", func(t *testing.T) {
		t.Parallel()

		data := []byte(`name: "echo", count: 1`)
		_, err := ParseAndDecode[sample]([]byte(testSchema), data, "#Sample", WithMaxFileSize(4))
		if !errors.Is(err, ErrFileTooLarge) {
			t.Errorf("expected ErrFileTooLarge, got %v", err)
		}
	})

	t.Run("missing definition", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[sample]([]byte(testSchema), []byte(`name: "a", count: 1`), "#Nope")
		if err == nil || !strings.Contains(err.Error(), "#Nope") {
			t.Errorf("expected missing definition error, got %v", err)
		}
	})
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "sample.cue")
	if err := os.WriteFile(path, []byte("name: \"file\"\ncount: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := ParseFile[sample]([]byte(testSchema), path, "#Sample")
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if res.Value.Name != "file" || res.Value.Count != 7 {
		t.Errorf("decoded %+v", res.Value)
	}

	_, err = ParseFile[sample]([]byte(testSchema), path, "#Sample", WithMaxFileSize(3))
	var tooLarge *FileTooLargeError
	if !errors.As(err, &tooLarge) || tooLarge.FilePath != path {
		t.Errorf("expected *FileTooLargeError for %s, got %v", path, err)
	}

	_, err = ParseFile[sample]([]byte(testSchema), filepath.Join(dir, "missing.cue"), "#Sample")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "data.toml")
	if err := os.WriteFile(path, []byte("0123456789"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		maxSize int64
		want    string
		wantErr error
	}{
		{name: "within limit", path: path, maxSize: 10, want: "0123456789"},
		{name: "over limit", path: path, maxSize: 9, wantErr: ErrFileTooLarge},
		{name: "missing", path: filepath.Join(dir, "missing.toml"), maxSize: 10, wantErr: os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := ReadFile(tt.path, tt.maxSize)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ReadFile() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("ReadFile() = %q, want %q", data, tt.want)
			}
		})
	}
}
