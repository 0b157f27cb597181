package domain

import "go.trai.ch/zerr"

var (
	// ErrActionFailed marks an error that has already been reported on the console.
	// The entry point only maps it to a failing exit status.
	ErrActionFailed = zerr.New("action failed")

	// ErrInsufficientBuildInfo is returned when a build has neither a complete
	// compiler invocation nor follow-up commands.
	ErrInsufficientBuildInfo = zerr.New(
		"insufficient information to build: need source files, an output executable and a compiler, or commands",
	)

	// ErrCompileFailed is returned when the compiler invocation does not exit successfully.
	ErrCompileFailed = zerr.New("build failed")

	// ErrCommandFailed is returned when a shell command does not exit successfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrCommandsFailed is returned when at least one command of a list failed.
	ErrCommandsFailed = zerr.New("one or more commands failed")

	// ErrOutputFolderCreateFailed is returned when the output folder cannot be created.
	ErrOutputFolderCreateFailed = zerr.New("failed to create output folder")

	// ErrInvalidFlags is returned when a flag string cannot be split into arguments.
	ErrInvalidFlags = zerr.New("failed to parse flags")

	// ErrPkgConfigFailed is returned when the package-configuration tool cannot be run or read.
	ErrPkgConfigFailed = zerr.New("failed to query pkg-config")

	// ErrNothingToClean is returned when neither the executable nor the output folder exists.
	ErrNothingToClean = zerr.New("nothing to clean")

	// ErrRemoveFailed is returned when the built executable cannot be removed.
	ErrRemoveFailed = zerr.New("failed to remove executable")

	// ErrNoTaskSpecified is returned when a task run is requested without a task name.
	ErrNoTaskSpecified = zerr.New("no task specified")

	// ErrTaskNotFound is returned when a requested task is not configured.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrTaskMissingCommands is returned when a task has no commands field.
	ErrTaskMissingCommands = zerr.New("task is missing a required field")

	// ErrTaskFailed is returned when one or more commands of a task failed.
	ErrTaskFailed = zerr.New("task failed")

	// ErrConflictingActions is returned when more than one action is selected.
	ErrConflictingActions = zerr.New("only one of --build, --clean, --list or a task name may be given")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)
