package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sessionlog/sessionlog-go/internal/config"
	"github.com/sessionlog/sessionlog-go/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and stdin, returning stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sessionlog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRootHasSubcommands(t *testing.T) {
	root := NewRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"paths", "clear", "record", "console"} {
		assert.Contains(t, names, want)
	}
}

func TestResolveFlagsOverrideConfig(t *testing.T) {
	path := writeConfig(t, `
log:
  path: /from/config
  include_millis: true
sessions:
  - FIX.4.2:BUY->SELL
`)
	dir := t.TempDir()

	stdout, _, err := execute(t, "", "paths", "-c", path, "-d", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, filepath.Join(dir, "FIX.4.2-BUY-SELL.messages.log"))
	assert.NotContains(t, stdout, "/from/config")
}

func TestSessionIDSelection(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		sessions []string
		want     session.ID
		wantErr  bool
	}{
		{"flag", "FIX.4.4:A->B", nil, session.NewID("FIX.4.4", "A", "B"), false},
		{"flag wins over config", "FIX.4.4:A->B", []string{"FIX.4.2:X->Y"}, session.NewID("FIX.4.4", "A", "B"), false},
		{"single configured", "", []string{"FIX.4.2:X->Y"}, session.NewID("FIX.4.2", "X", "Y"), false},
		{"none", "", nil, session.ID{}, true},
		{"ambiguous", "", []string{"FIX.4.2:X->Y", "FIX.4.2:Y->X"}, session.ID{}, true},
		{"bad flag", "FIX.4.2", nil, session.ID{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &Options{Session: tt.flag}
			cfg := config.Default()
			cfg.Sessions = tt.sessions

			id, err := opts.sessionID(cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestInvalidConfigFails(t *testing.T) {
	path := writeConfig(t, "diagnostics:\n  kind: syslog\n")

	_, _, err := execute(t, "", "paths", "-c", path, "-s", "FIX.4.2:A->B")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSessionIDsSelection(t *testing.T) {
	cfg := config.Default()
	cfg.Sessions = []string{"FIX.4.2:X->Y", "FIX.4.2:Y->X"}

	ids, err := (&Options{}).sessionIDs(cfg)
	require.NoError(t, err)
	assert.Equal(t, []session.ID{
		session.NewID("FIX.4.2", "X", "Y"),
		session.NewID("FIX.4.2", "Y", "X"),
	}, ids)

	ids, err = (&Options{Session: "FIX.4.4:A->B"}).sessionIDs(cfg)
	require.NoError(t, err)
	assert.Equal(t, []session.ID{session.NewID("FIX.4.4", "A", "B")}, ids)

	_, err = (&Options{}).sessionIDs(config.Default())
	assert.Error(t, err)
}
