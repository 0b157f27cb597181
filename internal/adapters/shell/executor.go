// Package shell provides the process executor adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/creack/pty"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/ui/output"
	"go.trai.ch/zerr"
)

// DefaultShell interprets command lines passed to Run.
const DefaultShell = "/bin/sh"

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec and pty.
type Executor struct {
	shell string
}

// NewExecutor creates a new Executor using DefaultShell.
func NewExecutor() *Executor {
	return &Executor{shell: DefaultShell}
}

// Run executes command with "sh -c", capturing stdout and stderr together.
func (e *Executor) Run(ctx context.Context, command string) domain.CommandResult {
	cmd := exec.CommandContext(ctx, e.shell, "-c", command) //nolint:gosec // user provided command

	out, err := cmd.CombinedOutput()

	result := domain.CommandResult{
		Command:        command,
		CapturedOutput: string(out),
	}
	result.Status, result.ExitCode = exitStatus(cmd, err)
	result.Succeeded = result.Status == domain.StatusExit && result.ExitCode == 0

	return result
}

// exitStatus classifies how the process ended. A process that never started
// has no state and is reported as unknown.
func exitStatus(cmd *exec.Cmd, err error) (domain.ExitStatusKind, int) {
	state := cmd.ProcessState
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		state = exitErr.ProcessState
	}
	if state == nil {
		return domain.StatusUnknown, domain.UnknownExitCode
	}

	if ws, ok := state.Sys().(syscall.WaitStatus); ok {
		switch {
		case ws.Signaled():
			return domain.StatusSignal, int(ws.Signal())
		case ws.Exited():
			return domain.StatusExit, ws.ExitStatus()
		}
	}

	if state.Exited() {
		return domain.StatusExit, state.ExitCode()
	}
	return domain.StatusUnknown, domain.UnknownExitCode
}

// Exec runs argv without a shell. When stdout is a terminal the process gets a
// PTY so that compilers keep their colored diagnostics; otherwise plain pipes are used.
func (e *Executor) Exec(ctx context.Context, argv []string, stdout, stderr io.Writer) error {
	if len(argv) == 0 {
		return zerr.New("empty command")
	}

	var err error
	if output.IsTerminal(stdout) {
		err = runPTY(ctx, argv, stdout)
	} else {
		err = runPipes(ctx, argv, stdout, stderr)
	}
	if err == nil {
		return nil
	}

	exitCode := domain.UnknownExitCode
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	err = zerr.With(zerr.Wrap(err, "command failed"), "command", strings.Join(argv, " "))
	return zerr.With(err, "exit_code", exitCode)
}

func command(ctx context.Context, argv []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // user provided command
	cmd.Env = os.Environ()
	return cmd
}

func runPipes(ctx context.Context, argv []string, stdout, stderr io.Writer) error {
	cmd := command(ctx, argv)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

func runPTY(ctx context.Context, argv []string, stdout io.Writer) error {
	cmd := command(ctx, argv)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		if cmd.Process != nil {
			return zerr.Wrap(err, "failed to start pty")
		}
		// No PTY available; the process was never started.
		return runPipes(ctx, argv, stdout, stdout)
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		// The PTY merges stdout and stderr.
		_, _ = io.Copy(stdout, ptmx)
	}()

	err = cmd.Wait()
	<-ioDone

	return err
}
