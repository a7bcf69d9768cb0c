// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

var (
	// ErrValidation is the sentinel error wrapped by ValidationError.
	ErrValidation = errors.New("CUE validation failed")
	// ErrFileTooLarge is the sentinel error wrapped by FileTooLargeError.
	ErrFileTooLarge = errors.New("file too large")
)

type (
	// Issue is one problem reported by CUE.
	Issue struct {
		// Path is the JSON-style path of the offending value, e.g.
		// "commands[0].kind"; empty for file-level problems.
		Path    string
		Message string
	}

	// ValidationError reports every issue CUE found in one file.
	ValidationError struct {
		FilePath string
		Issues   []Issue
	}

	// FileTooLargeError is returned when input exceeds the configured size limit.
	FileTooLargeError struct {
		FilePath string
		Size     int64
		Max      int64
	}
)

// Error implements the error interface.
func (e *ValidationError) Error() string {
	lines := make([]string, len(e.Issues))
	for i, is := range e.Issues {
		if is.Path != "" {
			lines[i] = is.Path + ": " + is.Message
		} else {
			lines[i] = is.Message
		}
	}
	if len(lines) == 1 {
		return fmt.Sprintf("%s: %s", e.FilePath, lines[0])
	}
	return fmt.Sprintf("%s: validation failed:\n  %s", e.FilePath, strings.Join(lines, "\n  "))
}

// Unwrap returns ErrValidation for errors.Is() compatibility.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// Error implements the error interface.
func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("%s: file size %d bytes exceeds maximum %d bytes", e.FilePath, e.Size, e.Max)
}

// Unwrap returns ErrFileTooLarge for errors.Is() compatibility.
func (e *FileTooLargeError) Unwrap() error { return ErrFileTooLarge }

// FormatError converts a CUE error into a *ValidationError for filePath.
// Errors that carry no CUE detail are wrapped with the file path only.
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	cueErrs := cueerrors.Errors(err)
	if len(cueErrs) == 0 {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	verr := &ValidationError{FilePath: filePath}
	for _, ce := range cueErrs {
		path := formatPath(cueerrors.Path(ce))
		format, args := ce.Msg()
		msg := fmt.Sprintf(format, args...)
		verr.Issues = append(verr.Issues, Issue{Path: path, Message: msg})
	}
	return verr
}

// formatPath renders a CUE path such as ["commands", "0", "kind"] as
// "commands[0].kind".
func formatPath(path []string) string {
	var sb strings.Builder
	for i, part := range path {
		switch {
		case i > 0 && isIndex(part):
			sb.WriteString("[" + part + "]")
		case i > 0:
			sb.WriteString("." + part)
		default:
			sb.WriteString(part)
		}
	}
	return sb.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CheckFileSize fails with *FileTooLargeError when size exceeds maxSize.
func CheckFileSize(size, maxSize int64, filePath string) error {
	if size > maxSize {
		return &FileTooLargeError{FilePath: filePath, Size: size, Max: maxSize}
	}
	return nil
}
