// Package config loads the YAML configuration of the sessionlog tool.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/robfig/cron/v3"
	"github.com/sessionlog/sessionlog-go/pkg/filelog"
	"github.com/sessionlog/sessionlog-go/pkg/session"
	"gopkg.in/yaml.v3"
)

// Diagnostics reporter kinds.
const (
	DiagSlog    = "slog"
	DiagZerolog = "zerolog"
	DiagCBOR    = "cbor"
	DiagNone    = "none"
)

// ErrInvalidConfig matches every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the top-level configuration file.
type Config struct {
	// Log configures the session log writers.
	Log filelog.Settings `yaml:"log"`

	// Sessions lists session IDs as BEGIN:SENDER->TARGET[:QUALIFIER].
	Sessions []string `yaml:"sessions"`

	// Diagnostics configures where write failures are reported.
	Diagnostics Diagnostics `yaml:"diagnostics"`

	// ClearSchedule is an optional cron spec at which logs are cleared.
	ClearSchedule string `yaml:"clear_schedule"`
}

// Diagnostics selects and configures the failure reporter.
type Diagnostics struct {
	Kind string `yaml:"kind"`

	// File is the output path for zerolog and cbor reporters.
	// Empty means stderr for zerolog; required for cbor, whose reports
	// are echoed to stderr as well.
	File string `yaml:"file"`

	// Rotation of the zerolog diagnostics file.
	MaxSizeMB  int `yaml:"max_size_mb"`
	MaxBackups int `yaml:"max_backups"`
	MaxAgeDays int `yaml:"max_age_days"`
}

// LoadError describes a configuration file that could not be loaded.
type LoadError struct {
	File    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.File, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log: filelog.DefaultSettings(),
		Diagnostics: Diagnostics{
			Kind:       DiagSlog,
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Parse decodes YAML on top of the defaults and validates the result.
// Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{File: path, Message: "failed to read file", Cause: err}
	}

	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{File: path, Message: "failed to load config", Cause: err}
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Log.Path == "" {
		return fmt.Errorf("%w: log.path is required", ErrInvalidConfig)
	}

	if _, err := c.SessionIDs(); err != nil {
		return err
	}

	switch c.Diagnostics.Kind {
	case DiagSlog, DiagZerolog, DiagNone:
	case DiagCBOR:
		if c.Diagnostics.File == "" {
			return fmt.Errorf("%w: diagnostics.file is required for kind %q", ErrInvalidConfig, DiagCBOR)
		}
	default:
		return fmt.Errorf("%w: unknown diagnostics.kind %q", ErrInvalidConfig, c.Diagnostics.Kind)
	}

	if c.ClearSchedule != "" {
		if _, err := cron.ParseStandard(c.ClearSchedule); err != nil {
			return fmt.Errorf("%w: clear_schedule: %v", ErrInvalidConfig, err)
		}
	}

	return nil
}

// SessionIDs parses the configured sessions.
func (c *Config) SessionIDs() ([]session.ID, error) {
	ids := make([]session.ID, 0, len(c.Sessions))
	seen := make(map[session.ID]bool, len(c.Sessions))
	for _, s := range c.Sessions {
		id, err := ParseSession(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate session %s", ErrInvalidConfig, id)
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}

// ParseSession parses a session ID and checks its begin string.
func ParseSession(s string) (session.ID, error) {
	id, err := session.ParseID(s)
	if err != nil {
		return session.ID{}, err
	}
	if _, err := session.ParseBeginString(id.BeginString); err != nil {
		return session.ID{}, err
	}
	return id, nil
}
