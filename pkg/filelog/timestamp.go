package filelog

import "time"

const (
	timestampLayout       = "20060102-15:04:05"
	timestampLayoutMillis = "20060102-15:04:05.000"

	// TimestampDelimiter separates a line's timestamp from its payload.
	TimestampDelimiter = ": "
)

// FormatTimestamp formats t in UTC the way log lines are prefixed,
// without the delimiter.
func FormatTimestamp(t time.Time, millis bool) string {
	return string(appendTimestamp(nil, t, millis))
}

func appendTimestamp(b []byte, t time.Time, millis bool) []byte {
	layout := timestampLayout
	if millis {
		layout = timestampLayoutMillis
	}
	return t.UTC().AppendFormat(b, layout)
}
