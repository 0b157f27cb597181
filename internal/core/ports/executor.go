// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/kiln/internal/core/domain"
)

// Executor defines the interface for running external processes.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes a command line through the shell, waits for it and captures
	// its combined output. Failures are described by the result, never by a panic.
	Run(ctx context.Context, command string) domain.CommandResult

	// Exec runs the argument vector directly, without a shell, streaming its
	// output to stdout and stderr. It returns an error unless the process exits with status 0.
	Exec(ctx context.Context, argv []string, stdout, stderr io.Writer) error
}
