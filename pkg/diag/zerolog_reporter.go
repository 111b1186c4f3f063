package diag

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sessionlog/sessionlog-go/pkg/session"
)

// ZerologReporter writes reports to a zerolog.Logger at error level.
// Embedding systems that already log through zerolog can route session log
// failures into the same sink.
type ZerologReporter struct {
	logger zerolog.Logger
}

// NewZerologReporter creates a ZerologReporter that writes to logger.
func NewZerologReporter(logger zerolog.Logger) *ZerologReporter {
	return &ZerologReporter{logger: logger}
}

// Report logs the failure.
func (r *ZerologReporter) Report(id session.ID, message string, cause error) {
	r.logger.Error().
		Err(cause).
		Str("report_id", uuid.NewString()).
		Str("session", id.String()).
		Msg(message)
}

// Compile-time interface satisfaction check.
var _ Reporter = (*ZerologReporter)(nil)
