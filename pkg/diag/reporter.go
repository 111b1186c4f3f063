package diag

import (
	"time"

	"github.com/google/uuid"
	"github.com/sessionlog/sessionlog-go/pkg/session"
)

// Reporter receives non-fatal failures. Implementations must not panic and
// must be safe for concurrent use, since writers of different sessions may
// share one reporter.
type Reporter interface {
	Report(id session.ID, message string, cause error)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(id session.ID, message string, cause error)

// Report calls f.
func (f ReporterFunc) Report(id session.ID, message string, cause error) {
	f(id, message, cause)
}

// NoopReporter discards all reports.
// NoopReporter is safe for concurrent use and usable as a zero value.
type NoopReporter struct{}

// Report discards the failure.
func (NoopReporter) Report(session.ID, string, error) {}

// Record is the serialized form of a single report.
// CBOR encoding uses integer keys for compactness.
type Record struct {
	// ID uniquely identifies the report (UUID).
	ID string `cbor:"1,keyasint"`

	// Time the failure was reported, in UTC.
	Time time.Time `cbor:"2,keyasint"`

	// Session is the session ID in its textual form.
	Session string `cbor:"3,keyasint"`

	// Message describes the failed operation.
	Message string `cbor:"4,keyasint"`

	// Cause is the underlying error text, if any.
	Cause string `cbor:"5,keyasint,omitempty"`
}

// NewRecord builds a Record stamped with a fresh UUID and the current time.
func NewRecord(id session.ID, message string, cause error) Record {
	r := Record{
		ID:      uuid.NewString(),
		Time:    time.Now().UTC(),
		Session: id.String(),
		Message: message,
	}
	if cause != nil {
		r.Cause = cause.Error()
	}
	return r
}

// Compile-time interface satisfaction checks.
var (
	_ Reporter = NoopReporter{}
	_ Reporter = ReporterFunc(nil)
)
