// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/invowk/wca/internal/issue"
	"github.com/invowk/wca/pkg/cueutil"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "wca"
	// ConfigFileName is the config file name.
	ConfigFileName = "config.cue"
	// EnvPrefix prefixes environment overrides, e.g. WCA_LOG_LEVEL.
	EnvPrefix = "WCA"
)

//go:embed config_schema.cue
var configSchema []byte

// ConfigDir returns <user config dir>/wca: $XDG_CONFIG_HOME or ~/.config on
// Linux, ~/Library/Application Support on macOS and %AppData% on Windows.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

func newViper() *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("help.variants", defaults.Help.Variants)
	v.SetDefault("verify.suggestions", defaults.Verify.Suggestions)
	v.SetDefault("dictionary.path", defaults.Dictionary.Path)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := newViper()

	path, err := resolvePath(opts)
	if err != nil {
		return nil, "", err
	}
	if path != "" {
		if err := loadCUEIntoViper(v, path); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the values match the configuration schema").
				WithSuggestion("Run 'wca config show' to see the effective configuration").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to decode config: %w", err)
	}
	if ok, errs := cfg.IsValid(); !ok {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			WithSuggestion("Check WCA_* environment variables as well as the config file").
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(errs[0]).
			BuildError()
	}
	return &cfg, path, nil
}

// resolvePath returns the config file to load, or "" to use defaults. An
// explicit path that does not exist is an error.
func resolvePath(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Omit --config to use the default lookup").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		return opts.ConfigFilePath, nil
	}

	dir := opts.ConfigDirPath
	if dir == "" {
		var err error
		if dir, err = ConfigDir(); err != nil {
			return "", err
		}
	}
	if p := filepath.Join(dir, ConfigFileName); fileExists(p) {
		return p, nil
	}
	if p := filepath.Join(opts.WorkDir, ConfigFileName); fileExists(p) {
		return p, nil
	}
	return "", nil
}

// loadCUEIntoViper validates path against #Config and merges it into v.
// Fields are optional, so values need not be concrete.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	res, err := cueutil.ParseFile[map[string]any](configSchema, path, "#Config", cueutil.WithConcrete(false))
	if err != nil {
		return err
	}
	if err := v.MergeConfigMap(*res.Value); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// GenerateCUE renders cfg as a CUE config file.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder
	sb.WriteString("// wca configuration\n\n")

	sb.WriteString("ui: {\n")
	fmt.Fprintf(&sb, "\tverbose:      %v\n", cfg.UI.Verbose)
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	sb.WriteString("}\n")

	fmt.Fprintf(&sb, "log: level: %q\n", cfg.Log.Level)

	quoted := make([]string, len(cfg.Help.Variants))
	for i, name := range cfg.Help.Variants {
		quoted[i] = fmt.Sprintf("%q", name)
	}
	fmt.Fprintf(&sb, "help: variants: [%s]\n", strings.Join(quoted, ", "))

	fmt.Fprintf(&sb, "verify: suggestions: %v\n", cfg.Verify.Suggestions)

	if cfg.Dictionary.Path != "" {
		fmt.Fprintf(&sb, "dictionary: path: %q\n", cfg.Dictionary.Path)
	}
	return sb.String()
}
