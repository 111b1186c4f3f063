package commands

import (
	"os"
	"testing"

	"github.com/sessionlog/sessionlog-go/pkg/diag"
	"github.com/sessionlog/sessionlog-go/pkg/diag/mocks"
	"github.com/sessionlog/sessionlog-go/pkg/filelog"
	"github.com/sessionlog/sessionlog-go/pkg/session"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunClear(t *testing.T) {
	id := session.NewID("FIX.4.2", "BUY", "SELL")
	settings := filelog.Settings{Path: t.TempDir()}

	w, err := filelog.New(settings.Path, id, filelog.WithReporter(diag.NoopReporter{}))
	require.NoError(t, err)
	require.NoError(t, w.RecordIncoming("35=A"))
	require.NoError(t, w.RecordEvent("Logon"))
	require.NoError(t, w.Close())

	reporter := mocks.NewMockReporter(t)
	require.NoError(t, RunClear(settings, []session.ID{id}, reporter))

	for _, p := range []string{w.MessagesPath(), w.EventsPath()} {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Empty(t, data)
	}
}

func TestRunClearInitError(t *testing.T) {
	id := session.NewID("FIX.4.2", "BUY", "SELL")
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	err := RunClear(filelog.Settings{Path: "/logs"}, []session.ID{id}, diag.NoopReporter{}, filelog.WithFs(fs))
	assert.ErrorIs(t, err, filelog.ErrLogInitialization)
}

func TestClearCommand(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, "< 35=A\n! Logon\n", "record", "-d", dir, "-s", "FIX.4.2:BUY->SELL")
	require.NoError(t, err)

	_, stderr, err := execute(t, "", "clear", "-d", dir, "-s", "FIX.4.2:BUY->SELL")
	require.NoError(t, err)
	assert.Contains(t, stderr, "logs cleared")

	messages, events := filelog.Paths(dir, session.NewID("FIX.4.2", "BUY", "SELL"))
	for _, p := range []string{messages, events} {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Empty(t, data)
	}
}

func TestRunClearDuplicateSession(t *testing.T) {
	id := session.NewID("FIX.4.2", "BUY", "SELL")
	settings := filelog.Settings{Path: t.TempDir()}

	err := RunClear(settings, []session.ID{id, id}, diag.NoopReporter{})
	assert.ErrorIs(t, err, filelog.ErrDuplicateSession)

	messages, _ := filelog.Paths(settings.Path, id)
	_, err = os.Stat(messages)
	assert.NoError(t, err, "the first session is still cleared")
}

func TestClearCommandAllConfiguredSessions(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, "log:\n  path: "+dir+"\nsessions:\n  - FIX.4.2:BUY->SELL\n  - FIX.4.4:A->B:east\n")

	ids := []session.ID{
		session.NewID("FIX.4.2", "BUY", "SELL"),
		{BeginString: "FIX.4.4", SenderCompID: "A", TargetCompID: "B", Qualifier: "east"},
	}
	for _, id := range ids {
		_, _, err := execute(t, "< 35=A\n! Logon\n", "record", "-c", path, "-s", id.String())
		require.NoError(t, err)

		messages, _ := filelog.Paths(dir, id)
		data, err := os.ReadFile(messages)
		require.NoError(t, err)
		require.NotEmpty(t, data)
	}

	_, stderr, err := execute(t, "", "clear", "-c", path)
	require.NoError(t, err)

	for _, id := range ids {
		assert.Contains(t, stderr, id.String())
		messages, events := filelog.Paths(dir, id)
		for _, p := range []string{messages, events} {
			data, err := os.ReadFile(p)
			require.NoError(t, err)
			assert.Empty(t, data, p)
		}
	}
}
