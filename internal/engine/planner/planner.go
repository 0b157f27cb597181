// Package planner resolves a build configuration into a compiler invocation and runs it.
package planner

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/engine/runner"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/shell"
)

// Options controls a single build.
type Options struct {
	// DryRun prints the plan without touching the filesystem or spawning processes.
	// Libraries are listed by name instead of being resolved.
	DryRun bool
}

// Planner builds executables from a domain.BuildConfig.
type Planner struct {
	resolver ports.LibraryResolver
	executor ports.Executor
	fs       ports.FileSystem
	runner   *runner.Runner
	logger   ports.Logger

	stdout io.Writer
	stderr io.Writer
	getenv func(string) string
}

// New creates a new Planner. Compiler output goes to the process stdout and stderr.
func New(
	resolver ports.LibraryResolver,
	executor ports.Executor,
	fs ports.FileSystem,
	r *runner.Runner,
	logger ports.Logger,
) *Planner {
	return &Planner{
		resolver: resolver,
		executor: executor,
		fs:       fs,
		runner:   r,
		logger:   logger,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		getenv:   os.Getenv,
	}
}

// Plan derives the compiler invocation for cfg. It never mutates cfg and has
// no side effects apart from querying the library resolver. A resolver failure
// is logged and leaves the library flags empty. Flags are only split when cfg
// describes a compiler invocation.
func (p *Planner) Plan(ctx context.Context, cfg domain.BuildConfig) (domain.Plan, error) {
	return p.plan(ctx, cfg, true)
}

func (p *Planner) plan(ctx context.Context, cfg domain.BuildConfig, resolveLibs bool) (domain.Plan, error) {
	compiler := cfg.Compiler
	if compiler == "" {
		compiler = ResolveCompiler(p.getenv, cfg.SourceFiles)
	}

	var libFlags string
	if resolveLibs {
		var err error
		if libFlags, err = p.resolver.Flags(ctx, cfg.Libs); err != nil {
			p.logger.Error(err)
			libFlags = ""
		}
	}

	plan := domain.Plan{
		Compiler:     compiler,
		SourceFiles:  cfg.SourceFiles,
		Libs:         cfg.Libs,
		OutputFolder: cfg.OutputFolder,
		OutputPath:   cfg.OutputPath(),
		Commands:     cfg.Commands,
	}
	if !plan.Buildable() {
		return plan, nil
	}

	var err error
	if plan.CompilerFlags, err = p.split("compilerFlags", cfg.CompilerFlags); err != nil {
		return domain.Plan{}, err
	}
	if plan.LibraryFlags, err = p.split("libs", libFlags); err != nil {
		return domain.Plan{}, err
	}
	if plan.AdditionalFlags, err = p.split("additionalFlags", cfg.AdditionalFlags); err != nil {
		return domain.Plan{}, err
	}

	return plan, nil
}

// split breaks a flag string into words using POSIX shell rules.
func (p *Planner) split(field, flags string) ([]string, error) {
	words, err := shell.Fields(flags, p.getenv)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrInvalidFlags.Error()), "field", field)
		return nil, zerr.With(err, "value", flags)
	}
	return words, nil
}

// Build resolves cfg and either compiles it, runs its commands, or reports
// that there is nothing to do. Errors are logged before they are returned.
func (p *Planner) Build(ctx context.Context, cfg domain.BuildConfig, opts Options) error {
	plan, err := p.plan(ctx, cfg, !opts.DryRun)
	if err != nil {
		return p.report(err)
	}

	if opts.DryRun {
		return p.dryRun(plan)
	}

	switch {
	case plan.Buildable():
		return p.compile(ctx, plan)
	case plan.Commands != nil:
		p.logger.Info("Nothing to compile, running commands")
		return p.runCommands(ctx, plan.Commands)
	default:
		return p.report(domain.ErrInsufficientBuildInfo)
	}
}

func (p *Planner) compile(ctx context.Context, plan domain.Plan) error {
	if plan.OutputFolder != "" && !p.fs.Exists(plan.OutputFolder) {
		if err := p.fs.Mkdir(plan.OutputFolder); err != nil {
			err = zerr.Wrap(err, domain.ErrOutputFolderCreateFailed.Error())
			return p.report(zerr.With(err, "folder", plan.OutputFolder))
		}
	}

	p.logger.Info(plan.String())

	if err := p.executor.Exec(ctx, plan.Args(), p.stdout, p.stderr); err != nil {
		err = zerr.Wrap(err, domain.ErrCompileFailed.Error())
		return p.report(zerr.With(err, "output", plan.OutputPath))
	}

	p.logger.Success("Built " + plan.OutputPath)

	if plan.Commands == nil {
		return nil
	}
	return p.runCommands(ctx, plan.Commands)
}

// runCommands hands commands to the runner, which reports each failure itself.
func (p *Planner) runCommands(ctx context.Context, commands []string) error {
	if _, ok := p.runner.RunAll(ctx, commands); !ok {
		return errors.Join(domain.ErrActionFailed, domain.ErrCommandsFailed)
	}
	return nil
}

func (p *Planner) dryRun(plan domain.Plan) error {
	if plan.Buildable() {
		p.logger.Info(plan.String())
		if len(plan.Libs) > 0 {
			p.logger.Info("Libraries resolved at build time: " + strings.Join(plan.Libs, " "))
		}
		p.logger.Info("Plan fingerprint: " + plan.Fingerprint())
	} else if plan.Commands == nil {
		return p.report(domain.ErrInsufficientBuildInfo)
	}

	for _, command := range plan.Commands {
		p.logger.Info("Would run: " + command)
	}
	return nil
}

func (p *Planner) report(err error) error {
	p.logger.Error(err)
	return errors.Join(domain.ErrActionFailed, err)
}
