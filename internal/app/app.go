// Package app implements the application layer for kiln.
package app

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/engine/cleaner"
	"go.trai.ch/kiln/internal/engine/planner"
	"go.trai.ch/kiln/internal/engine/runner"
	"go.trai.ch/zerr"
)

// Action selects what a single invocation does.
type Action int

const (
	// ActionBuild compiles the configured executable and runs its follow-up commands.
	ActionBuild Action = iota + 1
	// ActionClean removes the built executable and its output folder.
	ActionClean
	// ActionTask runs one named task.
	ActionTask
	// ActionList prints the configured task names.
	ActionList
)

// String returns the flag-style name of the action.
func (a Action) String() string {
	switch a {
	case ActionBuild:
		return "build"
	case ActionClean:
		return "clean"
	case ActionTask:
		return "task"
	case ActionList:
		return "list"
	default:
		return "unknown"
	}
}

// RunOptions configures a single run.
type RunOptions struct {
	ConfigPath string
	Task       string
	DryRun     bool
	JSON       bool
}

// jsonLogger is implemented by loggers that can switch to JSON output.
type jsonLogger interface {
	SetJSON(enable bool)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	planner      *planner.Planner
	cleaner      *cleaner.Cleaner
	runner       *runner.Runner
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	p *planner.Planner,
	c *cleaner.Cleaner,
	r *runner.Runner,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		planner:      p,
		cleaner:      c,
		runner:       r,
		logger:       logger,
	}
}

// Run loads the configuration once and dispatches action.
func (a *App) Run(ctx context.Context, action Action, opts RunOptions) error {
	if opts.JSON {
		if l, ok := a.logger.(jsonLogger); ok {
			l.SetJSON(true)
		}
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = domain.ConfigFileName
	}

	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	switch action {
	case ActionBuild:
		return a.planner.Build(ctx, cfg.Build, planner.Options{DryRun: opts.DryRun})
	case ActionClean:
		return a.cleaner.Clean(cfg.Build)
	case ActionTask:
		return a.runner.RunTask(ctx, cfg.Tasks, opts.Task)
	case ActionList:
		a.list(cfg.Tasks)
		return nil
	default:
		return zerr.With(zerr.New("unknown action"), "action", int(action))
	}
}

func (a *App) list(tasks map[string]domain.Task) {
	if len(tasks) == 0 {
		a.logger.Warn("No tasks configured")
		return
	}

	names := make([]string, 0, len(tasks))
	for name := range tasks {
		names = append(names, name)
	}
	slices.Sort(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s (%d commands)", name, len(tasks[name].Commands))
	}
	a.logger.Info(b.String())
}
