package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, ".", s.OutputDir)
	assert.Equal(t, PreviewAuto, s.Preview)
	assert.NoError(t, s.Validate())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("BMPEDIT_LOG_LEVEL", "Debug")
	t.Setenv("BMPEDIT_OUTPUT_DIR", "/tmp/out")
	t.Setenv("BMPEDIT_PREVIEW", "NEVER")

	s := FromEnv()
	assert.Equal(t, Settings{LogLevel: "debug", OutputDir: "/tmp/out", Preview: PreviewNever}, s)
	assert.Equal(t, slog.LevelDebug, s.Level())
}

func TestFromEnvEmptyFallsBack(t *testing.T) {
	t.Setenv("BMPEDIT_LOG_LEVEL", "")
	t.Setenv("BMPEDIT_OUTPUT_DIR", "")
	t.Setenv("BMPEDIT_PREVIEW", "")

	assert.Equal(t, DefaultSettings(), FromEnv())
}

func TestLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Settings{LogLevel: tt.in}.Level(), tt.in)
	}
}

func TestValidate(t *testing.T) {
	s := DefaultSettings()
	s.Preview = "sometimes"
	assert.ErrorContains(t, s.Validate(), "invalid preview mode")

	s = DefaultSettings()
	s.OutputDir = ""
	assert.Error(t, s.Validate())
}

func TestNormalize(t *testing.T) {
	s := Settings{LogLevel: " WARN", OutputDir: "Out", Preview: "Always "}
	s.Normalize()
	assert.Equal(t, Settings{LogLevel: "warn", OutputDir: "Out", Preview: PreviewAlways}, s)
	assert.NoError(t, s.Validate())
}
