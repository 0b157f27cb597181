package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/kiln/internal/core/domain"
)

func TestBuildConfig_OutputPath(t *testing.T) {
	tests := []struct {
		name string
		cfg  domain.BuildConfig
		want string
	}{
		{
			name: "defaults",
			cfg:  domain.BuildConfig{},
			want: "a.out",
		},
		{
			name: "executable only",
			cfg:  domain.BuildConfig{OutputExecutable: "app"},
			want: "app",
		},
		{
			name: "folder and default executable",
			cfg:  domain.BuildConfig{OutputFolder: "bin"},
			want: "bin/a.out",
		},
		{
			name: "folder and executable",
			cfg:  domain.BuildConfig{OutputFolder: "build", OutputExecutable: "tool"},
			want: "build/tool",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.OutputPath())
		})
	}
}

func TestBuildConfig_HasCommands(t *testing.T) {
	assert.False(t, domain.BuildConfig{}.HasCommands())
	assert.True(t, domain.BuildConfig{Commands: []string{}}.HasCommands())
	assert.True(t, domain.BuildConfig{Commands: []string{"true"}}.HasCommands())
}

func TestTask_HasCommands(t *testing.T) {
	assert.False(t, domain.Task{Name: "x"}.HasCommands())
	assert.True(t, domain.Task{Name: "x", Commands: []string{}}.HasCommands())
}

func TestCommandResult_ExitCodeString(t *testing.T) {
	assert.Equal(t, "0", domain.CommandResult{ExitCode: 0}.ExitCodeString())
	assert.Equal(t, "42", domain.CommandResult{ExitCode: 42}.ExitCodeString())
	assert.Equal(t, "unknown", domain.CommandResult{ExitCode: domain.UnknownExitCode}.ExitCodeString())
}
