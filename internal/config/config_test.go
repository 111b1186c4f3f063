package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sessionlog/sessionlog-go/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
log:
  path: /var/log/fix
  include_millis: true
  include_timestamp_for_messages: true
  sync_after_write: false
sessions:
  - FIX.4.2:BUY->SELL
  - FIX.4.4:BANZAI->EXEC:primary
diagnostics:
  kind: cbor
  file: /var/log/fix/diag.cbor
clear_schedule: "0 0 * * *"
`

func TestParse(t *testing.T) {
	cfg, err := Parse(strings.NewReader(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "/var/log/fix", cfg.Log.Path)
	assert.True(t, cfg.Log.IncludeMillis)
	assert.True(t, cfg.Log.IncludeTimestampForMessages)
	assert.False(t, cfg.Log.SyncAfterWrite)
	assert.Equal(t, DiagCBOR, cfg.Diagnostics.Kind)
	assert.Equal(t, "0 0 * * *", cfg.ClearSchedule)

	// Unset fields keep their defaults.
	assert.Equal(t, 10, cfg.Diagnostics.MaxSizeMB)

	ids, err := cfg.SessionIDs()
	require.NoError(t, err)
	assert.Equal(t, []session.ID{
		session.NewID("FIX.4.2", "BUY", "SELL"),
		{BeginString: "FIX.4.4", SenderCompID: "BANZAI", TargetCompID: "EXEC", Qualifier: "primary"},
	}, ids)
}

func TestParseEmptyUsesDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader("log:\n  pathh: /tmp\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty path", func(c *Config) { c.Log.Path = "" }},
		{"bad session", func(c *Config) { c.Sessions = []string{"nonsense"} }},
		{"bad begin string", func(c *Config) { c.Sessions = []string{"XYZ.1:A->B"} }},
		{"duplicate session", func(c *Config) { c.Sessions = []string{"FIX.4.2:A->B", "FIX.4.2:A->B"} }},
		{"unknown diagnostics kind", func(c *Config) { c.Diagnostics.Kind = "syslog" }},
		{"cbor without file", func(c *Config) { c.Diagnostics.Kind = DiagCBOR }},
		{"bad schedule", func(c *Config) { c.ClearSchedule = "every day" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestValidateAcceptsDefault(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessionlog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Sessions, 2)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, "failed to read file", loadErr.Message)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("diagnostics:\n  kind: syslog\n"), 0644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), path)
}
