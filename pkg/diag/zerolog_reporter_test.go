package diag

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologReporterWritesFields(t *testing.T) {
	var buf bytes.Buffer
	r := NewZerologReporter(zerolog.New(&buf))

	r.Report(testID, "error writing message to log", errors.New("file already closed"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "error writing message to log", entry["message"])
	assert.Equal(t, "FIX.4.2:BUY->SELL", entry["session"])
	assert.Equal(t, "file already closed", entry["error"])
	assert.NotEmpty(t, entry["report_id"])
}

func TestZerologReporterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	r := NewZerologReporter(zerolog.New(&buf).Level(zerolog.Disabled))

	r.Report(testID, "dropped", errors.New("x"))

	assert.Empty(t, buf.String())
}
