// Package runner executes shell command lists and named tasks.
package runner

import (
	"context"
	"errors"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner runs command lists sequentially and reports each outcome.
type Runner struct {
	executor ports.Executor
	logger   ports.Logger
}

// New creates a new Runner.
func New(executor ports.Executor, logger ports.Logger) *Runner {
	return &Runner{
		executor: executor,
		logger:   logger,
	}
}

// RunAll runs every command in order, even after a failure.
// It returns the per-command results and whether all of them succeeded.
func (r *Runner) RunAll(ctx context.Context, commands []string) ([]domain.CommandResult, bool) {
	results := make([]domain.CommandResult, 0, len(commands))
	allSuccessful := true

	for _, command := range commands {
		res := r.executor.Run(ctx, command)
		results = append(results, res)

		if res.CapturedOutput != "" {
			r.logger.Info(strings.TrimRight(res.CapturedOutput, "\n"))
		}

		if res.Succeeded {
			r.logger.Info("Command succeeded: " + command)
			continue
		}

		allSuccessful = false
		err := zerr.With(domain.ErrCommandFailed, "command", command)
		err = zerr.With(err, "status", string(res.Status))
		err = zerr.With(err, "exit_code", res.ExitCodeString())
		r.logger.Error(err)
	}

	return results, allSuccessful
}

// RunTask looks up name in tasks and runs its commands.
// Every failure is logged before it is returned, marked with domain.ErrActionFailed.
func (r *Runner) RunTask(ctx context.Context, tasks map[string]domain.Task, name string) error {
	if name == "" {
		return r.report(domain.ErrNoTaskSpecified)
	}

	task, ok := tasks[name]
	if !ok {
		return r.report(zerr.With(domain.ErrTaskNotFound, "task", name))
	}

	if !task.HasCommands() {
		err := zerr.With(domain.ErrTaskMissingCommands, "task", name)
		return r.report(zerr.With(err, "field", "commands"))
	}

	if _, ok := r.RunAll(ctx, task.Commands); !ok {
		return r.report(zerr.With(domain.ErrTaskFailed, "task", name))
	}

	r.logger.Success("Task " + name + " finished")
	return nil
}

func (r *Runner) report(err error) error {
	r.logger.Error(err)
	return errors.Join(domain.ErrActionFailed, err)
}
