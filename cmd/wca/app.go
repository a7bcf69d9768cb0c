// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/invowk/wca/internal/config"
	"github.com/invowk/wca/internal/issue"
	"github.com/invowk/wca/internal/runtime"
	"github.com/invowk/wca/pkg/grammar"
	"github.com/invowk/wca/pkg/wca"
	"github.com/invowk/wca/pkg/wcafile"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. Cobra handlers receive
	// an App and delegate to it.
	App struct {
		Config    config.Provider
		stdin     io.Reader
		stdout    io.Writer
		stderr    io.Writer
		workDir   string
		configDir string
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
		// WorkDir is where ./config.cue and ./wcafile.cue are looked up and
		// where scripts run. Empty means the process working directory.
		WorkDir string
		// ConfigDir overrides the user config directory.
		ConfigDir string
	}

	// rootOptions holds the global flag values.
	rootOptions struct {
		file       string
		configPath string
		verbose    bool
		noSuggest  bool
	}

	// session is everything one invocation needs once configuration and the
	// dictionary are loaded.
	session struct {
		cfg      *config.Config
		cfgPath  string
		dictPath string
		verbose  bool
		logger   *slog.Logger
		agg      *wca.Aggregator
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	return &App{
		Config:    deps.Config,
		stdin:     deps.Stdin,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
		workDir:   deps.WorkDir,
		configDir: deps.ConfigDir,
	}
}

func (a *App) loadConfig(ctx context.Context, opts rootOptions) (*config.Config, string, error) {
	return a.Config.Load(ctx, config.LoadOptions{
		ConfigFilePath: opts.configPath,
		ConfigDirPath:  a.configDir,
		WorkDir:        a.workDir,
	})
}

// newSession loads configuration and the dictionary file, then builds the
// aggregator with the built-in commands.
func (a *App) newSession(ctx context.Context, opts rootOptions) (*session, error) {
	cfg, cfgPath, err := a.loadConfig(ctx, opts)
	if err != nil {
		return nil, err
	}
	applyColorScheme(cfg.UI.ColorScheme)

	s := &session{
		cfg:     cfg,
		cfgPath: cfgPath,
		verbose: opts.verbose || cfg.UI.Verbose,
	}
	s.logger = newLogger(a.stderr, cfg.Log.Level, s.verbose)

	cmds := builtinCommands(a.stdout)

	s.dictPath, err = a.resolveDictionaryPath(opts.file, cfg.Dictionary.Path)
	if err != nil {
		return nil, err
	}
	if s.dictPath != "" {
		fileCmds, err := a.loadDictionary(s.dictPath, s.logger)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, fileCmds...)
	}

	variants, err := cfg.Help.VariantSet()
	if err != nil {
		return nil, err
	}

	s.agg, err = wca.NewBuilder().
		Commands(cmds...).
		HelpVariants(variants).
		Suggestions(cfg.Verify.Suggestions && !opts.noSuggest).
		Logger(s.logger).
		Output(a.stdout).
		Build()
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("build command dictionary").
			WithResource(s.dictPath).
			WithSuggestion("Phrases must be unique; built-in commands are .echo, .version and .help").
			WithSuggestion("Run 'wca check' to validate the dictionary file").
			WithIssue(issue.InvalidGrammarId).
			Wrap(err).
			BuildError()
	}

	s.logger.Debug("session ready", "config", cfgPath, "dictionary", s.dictPath, "commands", s.agg.Dictionary().Len())
	return s, nil
}

// resolveDictionaryPath picks the dictionary file: the --file flag, then
// dictionary.path from the configuration, then ./wcafile.cue if present.
// An explicitly named file must exist.
func (a *App) resolveDictionaryPath(flagPath, cfgPath string) (string, error) {
	explicit := flagPath
	if explicit == "" {
		explicit = cfgPath
	}
	if explicit != "" {
		if !fileExists(explicit) {
			return "", issue.NewErrorContext().
				WithOperation("load dictionary file").
				WithResource(explicit).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check dictionary.path in 'wca config show'").
				WithIssue(issue.DictionaryFileNotFoundId).
				Wrap(os.ErrNotExist).
				BuildError()
		}
		return explicit, nil
	}

	if p := filepath.Join(a.workDir, wcafile.DefaultFileName); fileExists(p) {
		return p, nil
	}
	return "", nil
}

func (a *App) loadDictionary(path string, logger *slog.Logger) ([]grammar.Command, error) {
	def, err := wcafile.Load(path)
	if err == nil {
		rt := runtime.NewVirtualRuntime(
			runtime.WithIO(runtime.IO{Stdin: a.stdin, Stdout: a.stdout, Stderr: a.stderr}),
			runtime.WithWorkDir(a.workDir),
			runtime.WithLogger(logger),
		)
		var cmds []grammar.Command
		if cmds, err = def.Commands(rt.Routine); err == nil {
			return cmds, nil
		}
	}
	return nil, issue.NewErrorContext().
		WithOperation("load dictionary file").
		WithResource(path).
		WithSuggestion("Run 'wca check " + path + "' to see every problem").
		WithSuggestion("Supported formats are .cue, .toml, .yaml and .yml").
		WithIssue(issue.DictionaryFileInvalidId).
		Wrap(err).
		BuildError()
}

// newLogger returns a slog logger backed by a charm log handler. Verbose mode
// lowers the level to debug.
func newLogger(w io.Writer, level config.LogLevel, verbose bool) *slog.Logger {
	lvl, err := log.ParseLevel(level.String())
	if err != nil {
		lvl = log.WarnLevel
	}
	if verbose {
		lvl = log.DebugLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Prefix:          "wca",
		Level:           lvl,
		ReportTimestamp: verbose,
	})
	return slog.New(handler)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
