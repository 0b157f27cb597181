// Package pkgconfig resolves library names into compiler and linker flags
// by querying the pkg-config tool.
package pkgconfig

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// EnvTool names the environment variable that overrides the pkg-config binary.
	EnvTool = "PKG_CONFIG"
	// DefaultTool is used when EnvTool is unset.
	DefaultTool = "pkg-config"
)

var _ ports.LibraryResolver = (*Resolver)(nil)

// Resolver implements ports.LibraryResolver.
type Resolver struct {
	tool   string
	stderr io.Writer
}

// NewResolver creates a Resolver for the tool named by $PKG_CONFIG.
// The tool's stderr is forwarded to os.Stderr.
func NewResolver() *Resolver {
	tool := os.Getenv(EnvTool)
	if tool == "" {
		tool = DefaultTool
	}
	return &Resolver{tool: tool, stderr: os.Stderr}
}

// Flags queries "--cflags --libs" for all libs in one invocation.
// A non-zero exit status is not treated as an error: whatever the tool printed is returned.
func (r *Resolver) Flags(ctx context.Context, libs []string) (string, error) {
	if len(libs) == 0 {
		return "", nil
	}

	args := append([]string{"--cflags", "--libs"}, libs...)
	cmd := exec.CommandContext(ctx, r.tool, args...) //nolint:gosec // user provided library names

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", zerr.With(zerr.Wrap(err, domain.ErrPkgConfigFailed.Error()), "tool", r.tool)
		}
	}

	return strings.TrimSuffix(stdout.String(), "\n"), nil
}
