package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/logger"
)

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{name: "info level", level: slog.LevelInfo, msg: "information message", goldenName: "handler_info"},
		{name: "success level", level: logger.LevelSuccess, msg: "success message", goldenName: "handler_success"},
		{name: "warn level", level: slog.LevelWarn, msg: "warning message", goldenName: "handler_warn"},
		{name: "error level", level: slog.LevelError, msg: "error message", goldenName: "handler_error"},
		{name: "debug level filtered", level: slog.LevelDebug, msg: "debug message", goldenName: "handler_debug_filtered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			handler := logger.NewPrettyHandler(buf, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			})
			lg := slog.New(handler)

			lg.Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_WithAttrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	handler := logger.NewPrettyHandler(buf, nil)
	lg := slog.New(handler.WithAttrs([]slog.Attr{slog.String("key", "value")}))

	lg.Info("single attr message", "count", 2)

	g := goldie.New(t)
	g.Assert(t, "handler_attrs", buf.Bytes())
}

func TestPrettyHandler_WithGroup(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	handler := logger.NewPrettyHandler(buf, nil)
	lg := slog.New(handler.WithGroup("build").WithGroup("step"))

	lg.Info("grouped", "name", "compile")

	assert.Equal(t, "grouped build.step.name=compile\n", buf.String())
}

func TestPrettyHandler_AttrsKeepTheirGroup(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	handler := logger.NewPrettyHandler(buf, nil).
		WithAttrs([]slog.Attr{slog.String("tool", "kiln")}).
		WithGroup("build").
		WithAttrs([]slog.Attr{slog.Group("out", slog.String("path", "bin/app"))})
	lg := slog.New(handler)

	lg.Log(t.Context(), logger.LevelSuccess, "done", "ok", true)

	assert.Equal(t, "✓ done tool=kiln build.out.path=bin/app build.ok=true\n", buf.String())
}

func TestPrettyHandler_WithGroup_Empty(t *testing.T) {
	handler := logger.NewPrettyHandler(&bytes.Buffer{}, nil)
	require.Same(t, handler, handler.WithGroup(""))
}

func TestPrettyHandler_Colors(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil))

	lg.Error("boom")

	assert.Contains(t, buf.String(), "\x1b[", "non-terminal output keeps ANSI colors")
	assert.Contains(t, buf.String(), "✗ boom")
}
