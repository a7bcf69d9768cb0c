// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// ParseResult holds a decoded value and the unified CUE value it came from.
type ParseResult[T any] struct {
	Value *T
	// Unified is the schema-unified value, for callers that need fields the
	// Go struct does not model.
	Unified cue.Value
}

// ParseAndDecode compiles data, unifies it with the schema definition at
// schemaPath (e.g. "#Wcafile"), validates and decodes it into T.
func ParseAndDecode[T any](schema, data []byte, schemaPath string, opts ...Option) (*ParseResult[T], error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	filename := options.filename
	if filename == "" {
		filename = "<input>"
	}

	if err := CheckFileSize(int64(len(data)), options.maxFileSize, filename); err != nil {
		return nil, err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: compiling schema: %w", schemaValue.Err())
	}
	root := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if root.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, root.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(filename))
	if userValue.Err() != nil {
		return nil, FormatError(userValue.Err(), filename)
	}

	unified := root.Unify(userValue)
	var validateOpts []cue.Option
	if options.concrete {
		validateOpts = append(validateOpts, cue.Concrete(true))
	}
	if err := unified.Validate(validateOpts...); err != nil {
		return nil, FormatError(err, filename)
	}

	var result T
	if err := unified.Decode(&result); err != nil {
		return nil, FormatError(err, filename)
	}
	return &ParseResult[T]{Value: &result, Unified: unified}, nil
}

// ParseFile reads path and decodes it with ParseAndDecode. The size limit is
// checked before the file is read.
func ParseFile[T any](schema []byte, path, schemaPath string, opts ...Option) (*ParseResult[T], error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	data, err := ReadFile(path, options.maxFileSize)
	if err != nil {
		return nil, err
	}
	return ParseAndDecode[T](schema, data, schemaPath, append(opts, WithFilename(path))...)
}

// ReadFile returns the content of path after checking its size against
// maxSize, so oversized files are rejected before they are read.
func ReadFile(path string, maxSize int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if err := CheckFileSize(info.Size(), maxSize, path); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}
