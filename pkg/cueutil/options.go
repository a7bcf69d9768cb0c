// SPDX-License-Identifier: MPL-2.0

package cueutil

// DefaultMaxFileSize is the largest input accepted unless WithMaxFileSize says
// otherwise (5MB).
const DefaultMaxFileSize int64 = 5 * 1024 * 1024

type (
	parseOptions struct {
		maxFileSize int64
		concrete    bool
		filename    string
	}

	// Option configures parsing.
	Option func(*parseOptions)
)

func defaultOptions() parseOptions {
	return parseOptions{
		maxFileSize: DefaultMaxFileSize,
		concrete:    true,
	}
}

// WithMaxFileSize sets the maximum accepted input size in bytes.
func WithMaxFileSize(size int64) Option {
	return func(o *parseOptions) { o.maxFileSize = size }
}

// WithConcrete sets whether every value must be concrete after unification.
// Defaults to true; config files whose fields are all optional turn it off.
func WithConcrete(concrete bool) Option {
	return func(o *parseOptions) { o.concrete = concrete }
}

// WithFilename sets the name used in error messages. ParseFile sets it to the
// file path.
func WithFilename(name string) Option {
	return func(o *parseOptions) { o.filename = name }
}
