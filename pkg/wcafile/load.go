// SPDX-License-Identifier: MPL-2.0

package wcafile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/invowk/wca/pkg/cueutil"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	// FormatCUE is the CUE dictionary format (.cue).
	FormatCUE Format = "cue"
	// FormatTOML is the TOML dictionary format (.toml).
	FormatTOML Format = "toml"
	// FormatYAML is the YAML dictionary format (.yaml, .yml).
	FormatYAML Format = "yaml"

	// DefaultFileName is looked up in the working directory when no file is given.
	DefaultFileName = "wcafile.cue"
)

var (
	//go:embed wcafile_schema.cue
	wcafileSchema []byte

	// ErrUnsupportedFormat is returned for file extensions with no known format.
	ErrUnsupportedFormat = errors.New("unsupported dictionary file format")
	// ErrDecode is the sentinel error wrapped by DecodeError.
	ErrDecode = errors.New("failed to decode dictionary file")
)

type (
	// Format identifies a dictionary file encoding.
	Format string

	// UnsupportedFormatError is returned when a file extension is not recognized.
	UnsupportedFormatError struct {
		Path string
		Ext  string
	}

	// DecodeError is returned when TOML or YAML content cannot be decoded.
	// CUE problems are reported as *cueutil.ValidationError instead.
	DecodeError struct {
		FilePath string
		Format   Format
		Err      error
	}
)

// Error implements the error interface.
func (e *UnsupportedFormatError) Error() string {
	if e.Ext == "" {
		return fmt.Sprintf("%s: cannot infer format without an extension (use .cue, .toml, .yaml or .yml)", e.Path)
	}
	return fmt.Sprintf("%s: unsupported extension %q (use .cue, .toml, .yaml or .yml)", e.Path, e.Ext)
}

// Unwrap returns ErrUnsupportedFormat for errors.Is() compatibility.
func (e *UnsupportedFormatError) Unwrap() error { return ErrUnsupportedFormat }

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %v", e.FilePath, e.Format, e.Err)
}

// Unwrap returns ErrDecode and the decoder error.
func (e *DecodeError) Unwrap() []error { return []error{ErrDecode, e.Err} }

// FormatFor infers the format from the file extension.
func FormatFor(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".cue":
		return FormatCUE, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", &UnsupportedFormatError{Path: path, Ext: ext}
	}
}

// Load reads and decodes the dictionary file at path.
func Load(path string) (*Definition, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := cueutil.ReadFile(path, cueutil.DefaultMaxFileSize)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary file: %w", err)
	}
	return Parse(data, format, path)
}

// Parse decodes data in the given format. filename is used in error messages
// and recorded in Definition.FilePath.
func Parse(data []byte, format Format, filename string) (*Definition, error) {
	var (
		def *Definition
		err error
	)
	switch format {
	case FormatCUE:
		def, err = parseCUE(data, filename)
	case FormatTOML:
		def, err = parseTOML(data, filename)
	case FormatYAML:
		def, err = parseYAML(data, filename)
	default:
		return nil, &UnsupportedFormatError{Path: filename, Ext: string(format)}
	}
	if err != nil {
		return nil, err
	}
	def.FilePath = filename
	return def, nil
}

func parseCUE(data []byte, filename string) (*Definition, error) {
	res, err := cueutil.ParseAndDecode[Definition](wcafileSchema, data, "#Wcafile", cueutil.WithFilename(filename))
	if err != nil {
		return nil, err
	}
	return res.Value, nil
}

func parseTOML(data []byte, filename string) (*Definition, error) {
	var def Definition
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&def); err != nil {
		return nil, &DecodeError{FilePath: filename, Format: FormatTOML, Err: err}
	}
	return &def, nil
}

func parseYAML(data []byte, filename string) (*Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty document decodes to io.EOF; treat it as an empty dictionary.
	if err := dec.Decode(&def); err != nil && len(bytes.TrimSpace(data)) > 0 {
		return nil, &DecodeError{FilePath: filename, Format: FormatYAML, Err: err}
	}
	return &def, nil
}
