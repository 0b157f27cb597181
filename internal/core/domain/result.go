package domain

import "strconv"

// ExitStatusKind describes how a subprocess terminated.
type ExitStatusKind string

const (
	// StatusExit means the process exited on its own; the exit code is its status.
	StatusExit ExitStatusKind = "exit"
	// StatusSignal means the process was terminated by a signal; the exit code is the signal number.
	StatusSignal ExitStatusKind = "signal"
	// StatusUnknown means the termination mechanism could not be determined.
	StatusUnknown ExitStatusKind = "unknown"
)

// UnknownExitCode marks a CommandResult without an exit code.
const UnknownExitCode = -1

// CommandResult is the outcome of running one shell command.
type CommandResult struct {
	Command        string
	Succeeded      bool
	Status         ExitStatusKind
	ExitCode       int
	CapturedOutput string
}

// ExitCodeString renders the exit code, or "unknown" when none is available.
func (r CommandResult) ExitCodeString() string {
	if r.ExitCode == UnknownExitCode {
		return string(StatusUnknown)
	}
	return strconv.Itoa(r.ExitCode)
}
