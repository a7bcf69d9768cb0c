// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/invowk/wca/pkg/value"
)

func newTestRuntime(stdout *bytes.Buffer, environ ...string) *VirtualRuntime {
	return NewVirtualRuntime(
		WithIO(IO{Stdout: stdout, Stderr: stdout}),
		WithEnviron(func() []string { return environ }),
	)
}

func TestVirtualRuntime_PositionalAndEnv(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	rt := newTestRuntime(&out, "HOME=/home/test")

	routine, err := rt.Routine(".greet", `echo "$WCA_PHRASE $WCA_SUBJECT_COUNT $1 $WCA_SUBJECT_1 $WCA_PROP_DRY_RUN $HOME"`)
	if err != nil {
		t.Fatalf("Routine() error = %v", err)
	}

	var props value.Props
	props.Set("dry-run", value.NewBool(true))
	args := value.Args{value.NewString("world"), value.NewInteger(3)}

	if err := routine.Invoke(context.Background(), args, props); err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	want := ".greet 2 world 3 true /home/test\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestVirtualRuntime_DashSubjectIsNotAnOption(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	routine, err := newTestRuntime(&out).Routine(".a", `printf '%s|' "$@"`)
	if err != nil {
		t.Fatalf("Routine() error = %v", err)
	}
	args := value.Args{value.NewString("-v"), value.NewString("--env=x")}
	if err := routine.InvokeWithContext(context.Background(), args, value.Props{}, "ignored"); err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if out.String() != "-v|--env=x|" {
		t.Errorf("output = %q", out.String())
	}
}

func TestVirtualRuntime_ExitStatus(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	routine, err := newTestRuntime(&out).Routine(".fail", "echo before; exit 3")
	if err != nil {
		t.Fatalf("Routine() error = %v", err)
	}

	err = routine.Invoke(context.Background(), nil, value.Props{})
	if !errors.Is(err, ErrScriptExit) {
		t.Fatalf("Invoke() error = %v, want ErrScriptExit", err)
	}
	var exitErr *ScriptExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error is %T, want *ScriptExitError", err)
	}
	if exitErr.Code != 3 || exitErr.Phrase != ".fail" {
		t.Errorf("ScriptExitError = %+v, want {.fail 3}", exitErr)
	}
	if out.String() != "before\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestVirtualRuntime_SyntaxError(t *testing.T) {
	t.Parallel()

	_, err := NewVirtualRuntime().Routine(".broken", "if then fi (")
	if !errors.Is(err, ErrScriptSyntax) {
		t.Fatalf("Routine() error = %v, want ErrScriptSyntax", err)
	}
	if !strings.Contains(err.Error(), ".broken") {
		t.Errorf("error %q does not name the phrase", err)
	}
}

func TestVirtualRuntime_RoutineIsReusable(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	routine, err := newTestRuntime(&out).Routine(".n", `echo "$1"`)
	if err != nil {
		t.Fatalf("Routine() error = %v", err)
	}
	for _, n := range []int64{1, 2} {
		if err := routine.Invoke(context.Background(), value.Args{value.NewInteger(n)}, value.Props{}); err != nil {
			t.Fatalf("Invoke(%d) error = %v", n, err)
		}
	}
	if out.String() != "1\n2\n" {
		t.Errorf("output = %q, want two runs", out.String())
	}
}

func TestBuildRoutineEnv(t *testing.T) {
	t.Parallel()

	host := []string{
		"PATH=/bin",
		"WCA_PHRASE=.outer",
		"WCA_SUBJECT_5=stale",
		"WCA_PROP_OLD=stale",
		"WCA_LOG_LEVEL=debug",
		"=ignored",
	}
	var props value.Props
	props.Set("count", value.NewInteger(2))
	props.Set("tags", value.NewList(value.ListOf(value.String, ';'), value.NewString("a"), value.NewString("b")))

	env := buildRoutineEnv(host, ".inner", value.Args{value.NewPath("/tmp")}, props)

	want := map[string]string{
		"PATH":              "/bin",
		"WCA_LOG_LEVEL":     "debug",
		"WCA_PHRASE":        ".inner",
		"WCA_SUBJECT_COUNT": "1",
		"WCA_SUBJECT_0":     "/tmp",
		"WCA_PROP_COUNT":    "2",
		"WCA_PROP_TAGS":     "a;b",
	}
	if len(env) != len(want) {
		t.Errorf("env = %v, want %v", env, want)
	}
	for k, v := range want {
		if env[k] != v {
			t.Errorf("env[%s] = %q, want %q", k, env[k], v)
		}
	}
}

func TestEnvToSlice_Sorted(t *testing.T) {
	t.Parallel()

	got := EnvToSlice(map[string]string{"B": "2", "A": "1"})
	if strings.Join(got, ",") != "A=1,B=2" {
		t.Errorf("EnvToSlice() = %v", got)
	}
}

func TestPropEnvName(t *testing.T) {
	t.Parallel()

	tests := []struct{ name, want string }{
		{"count", "WCA_PROP_COUNT"},
		{"dry-run", "WCA_PROP_DRY_RUN"},
		{"_x", "WCA_PROP__X"},
	}
	for _, tt := range tests {
		if got := PropEnvName(tt.name); got != tt.want {
			t.Errorf("PropEnvName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
