package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/cmd/kiln/commands"
	"go.trai.ch/kiln/internal/app"
)

type call struct {
	action app.Action
	opts   app.RunOptions
}

type fakeApp struct {
	calls []call
	err   error
}

func (f *fakeApp) Run(_ context.Context, action app.Action, opts app.RunOptions) error {
	f.calls = append(f.calls, call{action: action, opts: opts})
	return f.err
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	cli := commands.New(a)
	cli.SetArgs(args)
	cli.SetOutput(out, out)
	err := cli.Execute(t.Context())
	return out.String(), err
}

func TestCLI_Actions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want call
	}{
		{
			name: "build long flag",
			args: []string{"--build"},
			want: call{action: app.ActionBuild, opts: app.RunOptions{ConfigPath: "kiln.yaml"}},
		},
		{
			name: "build short flag with dry run",
			args: []string{"-b", "--dry-run"},
			want: call{action: app.ActionBuild, opts: app.RunOptions{ConfigPath: "kiln.yaml", DryRun: true}},
		},
		{
			name: "clean with config",
			args: []string{"--clean", "-c", "other.yaml"},
			want: call{action: app.ActionClean, opts: app.RunOptions{ConfigPath: "other.yaml"}},
		},
		{
			name: "list",
			args: []string{"-l", "--json"},
			want: call{action: app.ActionList, opts: app.RunOptions{ConfigPath: "kiln.yaml", JSON: true}},
		},
		{
			name: "task by name",
			args: []string{"test"},
			want: call{action: app.ActionTask, opts: app.RunOptions{ConfigPath: "kiln.yaml", Task: "test"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &fakeApp{}

			_, err := execute(t, a, tt.args...)

			require.NoError(t, err)
			require.Len(t, a.calls, 1)
			assert.Equal(t, tt.want, a.calls[0])
		})
	}
}

func TestCLI_NoAction_PrintsUsage(t *testing.T) {
	a := &fakeApp{}

	out, err := execute(t, a)

	require.NoError(t, err)
	assert.Empty(t, a.calls)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "--build")
}

func TestCLI_ConflictingActions(t *testing.T) {
	a := &fakeApp{}

	_, err := execute(t, a, "--build", "--clean")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "only one of")
	assert.Empty(t, a.calls)
}

func TestCLI_TaskAndFlagConflict(t *testing.T) {
	a := &fakeApp{}

	_, err := execute(t, a, "--build", "test")

	require.Error(t, err)
	assert.Empty(t, a.calls)
}

func TestCLI_TooManyTasks(t *testing.T) {
	out, err := execute(t, &fakeApp{}, "one", "two")

	require.Error(t, err)
	assert.Contains(t, out, "Usage:")
}

func TestCLI_UnknownFlag_PrintsUsage(t *testing.T) {
	a := &fakeApp{}

	out, err := execute(t, a, "--foo")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag: --foo")
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "--build")
	assert.Empty(t, a.calls)
}

func TestCLI_Version(t *testing.T) {
	a := &fakeApp{}

	out, err := execute(t, a, "--version")

	require.NoError(t, err)
	assert.Contains(t, out, "kiln version dev (commit: none, date: unknown)")
	assert.Empty(t, a.calls)
}

func TestCLI_PropagatesAppError(t *testing.T) {
	appErr := errors.New("failed")

	_, err := execute(t, &fakeApp{err: appErr}, "--build")

	require.ErrorIs(t, err, appErr)
}
