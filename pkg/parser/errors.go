// SPDX-License-Identifier: MPL-2.0

package parser

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnterminatedQuote is the sentinel error wrapped by UnterminatedQuoteError.
	ErrUnterminatedQuote = errors.New("unterminated quote")
	// ErrStrayTokens is the sentinel error wrapped by StrayTokensError.
	ErrStrayTokens = errors.New("stray tokens before first command")
	// ErrEmptyPhrase is the sentinel error wrapped by EmptyPhraseError.
	ErrEmptyPhrase = errors.New("empty phrase")
)

type (
	// UnterminatedQuoteError is returned by Tokenize when a double quote is never closed.
	UnterminatedQuoteError struct {
		// Offset is the byte offset of the opening quote in the input.
		Offset int
		Input  string
	}

	// StrayTokensError is returned when tokens appear before any command phrase.
	StrayTokensError struct {
		Tokens []string
	}

	// EmptyPhraseError is returned when a command-start token names no command,
	// e.g. "..".
	EmptyPhraseError struct {
		// Index is the position of the token in the token vector.
		Index int
		Token string
	}
)

// Error implements the error interface.
func (e *UnterminatedQuoteError) Error() string {
	return fmt.Sprintf("unterminated quote starting at offset %d", e.Offset)
}

// Unwrap returns ErrUnterminatedQuote for errors.Is() compatibility.
func (e *UnterminatedQuoteError) Unwrap() error { return ErrUnterminatedQuote }

// Error implements the error interface.
func (e *StrayTokensError) Error() string {
	return fmt.Sprintf("tokens before the first command: %s (commands start with '.')", strings.Join(e.Tokens, " "))
}

// Unwrap returns ErrStrayTokens for errors.Is() compatibility.
func (e *StrayTokensError) Unwrap() error { return ErrStrayTokens }

// Error implements the error interface.
func (e *EmptyPhraseError) Error() string {
	return fmt.Sprintf("token #%d %q does not name a command", e.Index, e.Token)
}

// Unwrap returns ErrEmptyPhrase for errors.Is() compatibility.
func (e *EmptyPhraseError) Unwrap() error { return ErrEmptyPhrase }
