package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	// EnvFormat selects the handler format, json or text.
	EnvFormat = "LOG_FORMAT"
	// EnvLevel selects the minimum severity.
	EnvLevel = "LOG_LEVEL"

	defaultFormat = "text"
)

// Config is the validated logging configuration derived from the environment.
type Config struct {
	Format string
	Level  slog.Level
}

// DefaultConfig returns text output at info level, the right default for an
// interactive provisioning tool.
func DefaultConfig() Config {
	return Config{Format: defaultFormat, Level: slog.LevelInfo}
}

// LoadConfigFromEnv parses and validates LOG_FORMAT and LOG_LEVEL.
func LoadConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	switch format := strings.ToLower(strings.TrimSpace(os.Getenv(EnvFormat))); format {
	case "":
	case "json", "text":
		cfg.Format = format
	default:
		return Config{}, fmt.Errorf("%s must be one of: json, text", EnvFormat)
	}

	switch level := strings.ToLower(strings.TrimSpace(os.Getenv(EnvLevel))); level {
	case "":
	case "debug":
		cfg.Level = slog.LevelDebug
	case "info":
		cfg.Level = slog.LevelInfo
	case "warn":
		cfg.Level = slog.LevelWarn
	case "error":
		cfg.Level = slog.LevelError
	default:
		return Config{}, fmt.Errorf("%s must be one of: debug, info, warn, error", EnvLevel)
	}

	return cfg, nil
}

// NewLogger creates a structured logger carrying static app and command
// attributes on every line.
func NewLogger(cfg Config, writer io.Writer, command string) *slog.Logger {
	if writer == nil {
		writer = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	command = strings.TrimSpace(command)
	if command == "" {
		command = "sevcoctl"
	}
	return slog.New(handler).With("app", "sevcoctl", "command", command)
}

// BootstrapFromEnv loads logging config from env, installs the default
// logger, and returns it.
func BootstrapFromEnv(writer io.Writer, command string) (*slog.Logger, error) {
	cfg, err := LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}
	logger := NewLogger(cfg, writer, command)
	slog.SetDefault(logger)
	return logger, nil
}
