// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/invowk/wca/pkg/help"
)

const (
	// ColorSchemeAuto detects the terminal background.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces the dark palette.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces the light palette.
	ColorSchemeLight ColorScheme = "light"

	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidDictionaryPath is returned when a dictionary path is whitespace-only.
	ErrInvalidDictionaryPath = errors.New("invalid dictionary path")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme selects the terminal palette.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// LogLevel is the minimum level of log records written to stderr.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// InvalidConfigError collects every field-level problem of a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the CLI configuration.
	Config struct {
		UI         UIConfig         `json:"ui" mapstructure:"ui"`
		Log        LogConfig        `json:"log" mapstructure:"log"`
		Help       HelpConfig       `json:"help" mapstructure:"help"`
		Verify     VerifyConfig     `json:"verify" mapstructure:"verify"`
		Dictionary DictionaryConfig `json:"dictionary" mapstructure:"dictionary"`
	}

	// UIConfig configures terminal output.
	UIConfig struct {
		Verbose     bool        `json:"verbose" mapstructure:"verbose"`
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
	}

	// LogConfig configures the stderr logger.
	LogConfig struct {
		Level LogLevel `json:"level" mapstructure:"level"`
	}

	// HelpConfig selects the help commands registered by the aggregator.
	HelpConfig struct {
		// Variants holds help variant names: general, subject, dot, all, none.
		Variants []string `json:"variants" mapstructure:"variants"`
	}

	// VerifyConfig tunes verification.
	VerifyConfig struct {
		Suggestions bool `json:"suggestions" mapstructure:"suggestions"`
	}

	// DictionaryConfig points at the default dictionary file.
	DictionaryConfig struct {
		// Path is used when --file is not given. Empty means ./wcafile.cue if present.
		Path string `json:"path" mapstructure:"path"`
	}
)

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		UI:     UIConfig{ColorScheme: ColorSchemeAuto},
		Log:    LogConfig{Level: LogLevelWarn},
		Help:   HelpConfig{Variants: []string{"general", "subject", "dot"}},
		Verify: VerifyConfig{Suggestions: true},
	}
}

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

// IsValid returns whether the ColorScheme is one of the defined schemes.
func (c ColorScheme) IsValid() (bool, []error) {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: c}}
	}
}

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// IsValid returns whether the LogLevel is one of the defined levels.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true, nil
	default:
		return false, []error{&InvalidLogLevelError{Value: l}}
	}
}

// Slog maps the level to its log/slog equivalent. Unknown levels map to warn.
func (l LogLevel) Slog() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Error implements the error interface.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns ErrInvalidLogLevel for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// VariantSet combines the configured names into a help.Variant.
func (h HelpConfig) VariantSet() (help.Variant, error) {
	return help.ParseVariants(h.Variants)
}

// IsValid returns whether every field of the Config is valid, collecting all
// field errors.
func (c *Config) IsValid() (bool, []error) {
	var errs []error
	if ok, fieldErrs := c.UI.ColorScheme.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if ok, fieldErrs := c.Log.Level.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if _, err := c.Help.VariantSet(); err != nil {
		errs = append(errs, err)
	}
	if c.Dictionary.Path != "" && strings.TrimSpace(c.Dictionary.Path) == "" {
		errs = append(errs, fmt.Errorf("%w: must not be whitespace-only", ErrInvalidDictionaryPath))
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return "invalid config: " + strings.Join(msgs, "; ")
}

// Unwrap returns ErrInvalidConfig and every field error.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}
