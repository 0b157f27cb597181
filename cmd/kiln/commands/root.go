// Package commands implements the CLI for the kiln build tool.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/build"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for kiln.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, action app.Action, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "kiln [task]",
		Short: "A declarative build and task runner for C and C++ projects",
		Long: "kiln reads " + domain.ConfigFileName + " and either compiles the configured executable\n" +
			"(--build), removes it again (--clean), or runs one named task.",
		Args:          withUsage(cobra.MaximumNArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.run,
	}

	rootCmd.SetFlagErrorFunc(printUsage)

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().BoolP("build", "b", false, "Compile the executable and run its commands")
	rootCmd.Flags().Bool("clean", false, "Remove the executable and its output folder")
	rootCmd.Flags().BoolP("list", "l", false, "List the configured tasks")
	rootCmd.Flags().Bool("dry-run", false, "Print the resolved build without running it")
	rootCmd.Flags().StringP("config", "c", domain.ConfigFileName, "Path to configuration file")
	rootCmd.Flags().Bool("json", false, "Emit logs as JSON")

	c.rootCmd = rootCmd
	return c
}

// printUsage shows the usage of cmd on its error stream and passes err through.
func printUsage(cmd *cobra.Command, err error) error {
	cmd.PrintErrln(cmd.UsageString())
	return err
}

func withUsage(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return printUsage(cmd, err)
		}
		return nil
	}
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	var selected []app.Action
	for _, f := range []struct {
		flag   string
		action app.Action
	}{
		{"build", app.ActionBuild},
		{"clean", app.ActionClean},
		{"list", app.ActionList},
	} {
		if on, _ := cmd.Flags().GetBool(f.flag); on {
			selected = append(selected, f.action)
		}
	}

	opts := app.RunOptions{}
	if len(args) == 1 {
		selected = append(selected, app.ActionTask)
		opts.Task = args[0]
	}

	switch len(selected) {
	case 0:
		// Display command usage help without returning an error
		_ = cmd.Help()
		return nil
	case 1:
	default:
		names := make([]string, len(selected))
		for i, a := range selected {
			names[i] = a.String()
		}
		return zerr.With(domain.ErrConflictingActions, "selected", strings.Join(names, ", "))
	}

	opts.ConfigPath, _ = cmd.Flags().GetString("config")
	opts.DryRun, _ = cmd.Flags().GetBool("dry-run")
	opts.JSON, _ = cmd.Flags().GetBool("json")

	return c.app.Run(cmd.Context(), selected[0], opts)
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
