package diag

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/sessionlog/sessionlog-go/pkg/session"
)

// SlogReporter writes reports to an slog.Logger at Error level.
type SlogReporter struct {
	logger *slog.Logger
}

// NewSlogReporter creates a SlogReporter that writes to the given logger.
// A nil logger falls back to slog.Default().
func NewSlogReporter(logger *slog.Logger) *SlogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogReporter{logger: logger}
}

// NewStderrReporter returns a SlogReporter with a text handler on stderr.
// It is the reporter used when none is configured.
func NewStderrReporter() *SlogReporter {
	return NewSlogReporter(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

// Report logs the failure.
func (r *SlogReporter) Report(id session.ID, message string, cause error) {
	attrs := []slog.Attr{
		slog.String("report_id", uuid.NewString()),
		slog.String("session", id.String()),
	}
	if cause != nil {
		attrs = append(attrs, slog.String("error", cause.Error()))
	}
	r.logger.LogAttrs(context.Background(), slog.LevelError, message, attrs...)
}

// Compile-time interface satisfaction check.
var _ Reporter = (*SlogReporter)(nil)
