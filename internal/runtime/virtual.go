// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/invowk/wca/pkg/grammar"
	"github.com/invowk/wca/pkg/value"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

type (
	// VirtualRuntime builds routines that run scripts with the embedded
	// mvdan/sh interpreter.
	VirtualRuntime struct {
		io      IO
		workDir string
		environ func() []string
		logger  *slog.Logger
	}

	// Option configures a VirtualRuntime.
	Option func(*VirtualRuntime)

	scriptRoutine struct {
		rt     *VirtualRuntime
		phrase string
		prog   *syntax.File
	}
)

// WithIO sets the streams given to scripts.
func WithIO(streams IO) Option {
	return func(r *VirtualRuntime) { r.io = streams }
}

// WithWorkDir sets the scripts' working directory. Empty means the process
// working directory.
func WithWorkDir(dir string) Option {
	return func(r *VirtualRuntime) { r.workDir = dir }
}

// WithEnviron replaces the host environment source (os.Environ by default).
func WithEnviron(environ func() []string) Option {
	return func(r *VirtualRuntime) { r.environ = environ }
}

// WithLogger sets the logger for debug records. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *VirtualRuntime) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewVirtualRuntime creates a virtual runtime writing to the process streams.
func NewVirtualRuntime(opts ...Option) *VirtualRuntime {
	r := &VirtualRuntime{
		io:      IO{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr},
		environ: os.Environ,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name returns the runtime name.
func (r *VirtualRuntime) Name() string { return "virtual" }

// Routine parses script and returns a routine that runs it. The signature
// matches wcafile.RoutineFactory.
func (r *VirtualRuntime) Routine(phrase, script string) (grammar.Routine, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(script), phrase)
	if err != nil {
		return nil, &ScriptSyntaxError{Phrase: phrase, Err: err}
	}
	return &scriptRoutine{rt: r, phrase: phrase, prog: prog}, nil
}

// Invoke runs the script.
func (s *scriptRoutine) Invoke(ctx context.Context, args value.Args, props value.Props) error {
	return s.rt.run(ctx, s.phrase, s.prog, args, props)
}

// InvokeWithContext runs the script; scripts have no use for the user context.
func (s *scriptRoutine) InvokeWithContext(ctx context.Context, args value.Args, props value.Props, _ any) error {
	return s.rt.run(ctx, s.phrase, s.prog, args, props)
}

func (r *VirtualRuntime) run(ctx context.Context, phrase string, prog *syntax.File, args value.Args, props value.Props) error {
	env := buildRoutineEnv(r.environ(), phrase, args, props)

	opts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(EnvToSlice(env)...)),
		interp.StdIO(r.io.Stdin, r.io.Stdout, r.io.Stderr),
	}
	if r.workDir != "" {
		opts = append(opts, interp.Dir(r.workDir))
	}
	// Prepend "--" so subjects such as "-v" are not read as shell options.
	params := append([]string{"--"}, args.Strings()...)
	opts = append(opts, interp.Params(params...))

	runner, err := interp.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create interpreter: %w", err)
	}

	r.logger.DebugContext(ctx, "running script", "phrase", phrase, "subjects", len(args), "properties", props.Len())
	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return &ScriptExitError{Phrase: phrase, Code: uint8(exitStatus)}
		}
		return fmt.Errorf("script execution failed: %w", err)
	}
	return nil
}
