package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports/mocks"
	"go.trai.ch/kiln/internal/engine/cleaner"
	"go.trai.ch/kiln/internal/engine/planner"
	"go.trai.ch/kiln/internal/engine/runner"
	"go.uber.org/mock/gomock"
)

type harness struct {
	loader   *mocks.MockConfigLoader
	executor *mocks.MockExecutor
	fs       *mocks.MockFileSystem
	logger   *mocks.MockLogger
	provider ComponentProvider
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	ctrl := gomock.NewController(t)
	h := &harness{
		loader:   mocks.NewMockConfigLoader(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		fs:       mocks.NewMockFileSystem(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}

	r := runner.New(h.executor, h.logger)
	application := app.New(
		h.loader,
		planner.New(mocks.NewMockLibraryResolver(ctrl), h.executor, h.fs, r, h.logger),
		cleaner.New(h.fs, h.logger),
		r,
		h.logger,
	)

	h.provider = func(_ context.Context) (*app.Components, error) {
		return &app.Components{App: application, Logger: h.logger}, nil
	}
	return h
}

// TestRun_Version verifies that the run function returns 0 when the command succeeds.
func TestRun_Version(t *testing.T) {
	h := newHarness(t)
	stdout := new(bytes.Buffer)

	exitCode := run(t.Context(), []string{"--version"}, stdout, new(bytes.Buffer), h.provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "kiln version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(t.Context(), []string{"--build"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ReportedFailureIsNotLoggedTwice verifies that engine failures only set the exit code.
func TestRun_ReportedFailureIsNotLoggedTwice(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load("kiln.yaml").Return(&domain.Config{}, nil)
	h.fs.EXPECT().Exists("a.out").Return(false)
	h.logger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(t.Context(), []string{"--clean"}, new(bytes.Buffer), new(bytes.Buffer), h.provider)

	assert.Equal(t, 1, exitCode)
}

// TestRun_UnreportedErrorIsLogged verifies that other errors are logged by the entry point.
func TestRun_UnreportedErrorIsLogged(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load("kiln.yaml").Return(nil, errors.New("load failed"))
	h.logger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(t.Context(), []string{"--list"}, new(bytes.Buffer), new(bytes.Buffer), h.provider)

	assert.Equal(t, 1, exitCode)
}

func TestRun_TaskSucceeds(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load("kiln.yaml").Return(&domain.Config{Tasks: map[string]domain.Task{
		"hello": {Name: "hello", Commands: []string{"echo hi"}},
	}}, nil)
	h.executor.EXPECT().Run(gomock.Any(), "echo hi").Return(domain.CommandResult{
		Command: "echo hi", Succeeded: true, Status: domain.StatusExit,
	})
	h.logger.EXPECT().Info(gomock.Any())
	h.logger.EXPECT().Success(gomock.Any())

	exitCode := run(t.Context(), []string{"hello"}, new(bytes.Buffer), new(bytes.Buffer), h.provider)

	assert.Equal(t, 0, exitCode)
}
