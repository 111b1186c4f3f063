package filelog

import (
	"time"

	"github.com/sessionlog/sessionlog-go/pkg/diag"
	"github.com/spf13/afero"
)

// Option configures a Writer at construction.
type Option func(*Writer)

// WithMillis sets whether timestamps carry a millisecond fraction.
func WithMillis(enabled bool) Option {
	return func(w *Writer) {
		w.includeMillis = enabled
	}
}

// WithMessageTimestamps sets whether message lines are timestamp-prefixed.
// Event lines are always prefixed.
func WithMessageTimestamps(enabled bool) Option {
	return func(w *Writer) {
		w.includeTimestampForMessages = enabled
	}
}

// WithSyncAfterWrite sets the initial durability mode.
// See Writer.SetDurabilityMode.
func WithSyncAfterWrite(enabled bool) Option {
	return func(w *Writer) {
		w.syncAfterWrite.Store(enabled)
	}
}

// WithClock replaces the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(w *Writer) {
		if now != nil {
			w.now = now
		}
	}
}

// WithReporter sets where runtime failures are reported.
// The default reports through slog on stderr.
func WithReporter(r diag.Reporter) Option {
	return func(w *Writer) {
		if r != nil {
			w.reporter = r
		}
	}
}

// WithFs sets the filesystem the log files live on. Defaults to the OS
// filesystem.
func WithFs(fs afero.Fs) Option {
	return func(w *Writer) {
		if fs != nil {
			w.fs = fs
		}
	}
}

// WithExclusiveLock makes construction take an advisory lock on the
// messages log, failing with ErrLocked if another writer holds it. The lock
// is taken on the OS filesystem path regardless of WithFs.
func WithExclusiveLock(enabled bool) Option {
	return func(w *Writer) {
		w.exclusiveLock = enabled
	}
}
