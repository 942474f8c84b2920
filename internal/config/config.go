package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Preview modes for the terminal color preview.
const (
	PreviewAuto   = "auto" // only when stdout is a terminal
	PreviewAlways = "always"
	PreviewNever  = "never"
)

// Settings holds user-configurable defaults, read from BMPEDIT_* variables.
type Settings struct {
	LogLevel  string // debug, info, warn or error
	OutputDir string // relative output names are resolved against it
	Preview   string // auto, always or never
}

// DefaultSettings returns the settings used when no variable is set.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:  "info",
		OutputDir: ".",
		Preview:   PreviewAuto,
	}
}

// FromEnv overlays BMPEDIT_LOG_LEVEL, BMPEDIT_OUTPUT_DIR and BMPEDIT_PREVIEW
// on the defaults.
func FromEnv() Settings {
	d := DefaultSettings()
	s := Settings{
		LogLevel:  envStr("BMPEDIT_LOG_LEVEL", d.LogLevel),
		OutputDir: envStr("BMPEDIT_OUTPUT_DIR", d.OutputDir),
		Preview:   envStr("BMPEDIT_PREVIEW", d.Preview),
	}
	s.Normalize()
	return s
}

// Normalize lowercases the enumerated values so flags and variables are
// matched case-insensitively.
func (s *Settings) Normalize() {
	s.LogLevel = strings.ToLower(strings.TrimSpace(s.LogLevel))
	s.Preview = strings.ToLower(strings.TrimSpace(s.Preview))
}

// Validate rejects values no component knows how to honor.
func (s Settings) Validate() error {
	switch s.Preview {
	case PreviewAuto, PreviewAlways, PreviewNever:
	default:
		return fmt.Errorf("invalid preview mode %q: want auto, always or never", s.Preview)
	}
	if s.OutputDir == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	return nil
}

// Level maps LogLevel to a slog level, defaulting to info.
func (s Settings) Level() slog.Level {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
