// SPDX-License-Identifier: MPL-2.0

package parser

import "strings"

// Tokenize splits input on ASCII whitespace outside double-quoted spans.
// Quotes are consumed and never appear in tokens; a quoted empty span ("")
// yields an empty token. A quote left open fails with *UnterminatedQuoteError.
func Tokenize(input string) ([]string, error) {
	var (
		tokens    []string
		cur       strings.Builder
		inToken   bool
		inQuote   bool
		quoteFrom int
	)

	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case c == '"':
			if !inQuote {
				quoteFrom = i
			}
			inQuote = !inQuote
			inToken = true
		case !inQuote && isASCIISpace(c):
			if inToken {
				tokens = append(tokens, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteByte(c)
			inToken = true
		}
	}

	if inQuote {
		return nil, &UnterminatedQuoteError{Offset: quoteFrom, Input: input}
	}
	if inToken {
		tokens = append(tokens, cur.String())
	}
	return tokens, nil
}

func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
