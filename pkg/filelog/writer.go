package filelog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"
	"github.com/sessionlog/sessionlog-go/pkg/diag"
	"github.com/sessionlog/sessionlog-go/pkg/session"
	"github.com/spf13/afero"
)

const (
	messagesSuffix = "messages.log"
	eventsSuffix   = "event.log"

	dirPerm  = 0755
	filePerm = 0644

	// maxRetainedLine caps the line buffer kept between writes.
	maxRetainedLine = 64 << 10
)

// stream is the subset of a file handle the writer needs.
type stream interface {
	io.Writer
	Sync() error
	Close() error
}

// Writer appends a session's messages and events to two files.
type Writer struct {
	id           session.ID
	messagesPath string
	eventsPath   string

	messages stream
	events   stream

	includeMillis               bool
	includeTimestampForMessages bool
	syncAfterWrite              atomic.Bool

	fs       afero.Fs
	now      func() time.Time
	reporter diag.Reporter

	exclusiveLock bool
	lock          *flock.Flock

	closed atomic.Bool

	// line is reused across writes to build each record, up to
	// maxRetainedLine bytes.
	line []byte
}

// FileName returns the session part of the log file names:
// "<begin>-<sender>-<target>" plus "-<qualifier>" when one is set.
func FileName(id session.ID) string {
	name := id.BeginString + "-" + id.SenderCompID + "-" + id.TargetCompID
	if id.HasQualifier() {
		name += "-" + id.Qualifier
	}
	return name
}

// Paths returns the messages and event log paths for a session under dir.
func Paths(dir string, id session.ID) (messages, events string) {
	prefix := filepath.Join(dir, FileName(id)+".")
	return prefix + messagesSuffix, prefix + eventsSuffix
}

// New opens the message and event logs of a session under dir, creating the
// directory if needed. Existing logs are appended to.
//
// Any failure returns an *InitError and leaves no file open.
func New(dir string, id session.ID, opts ...Option) (*Writer, error) {
	w := &Writer{
		id:       id,
		fs:       afero.NewOsFs(),
		now:      time.Now,
		reporter: diag.NewStderrReporter(),
	}
	for _, opt := range opts {
		opt(w)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, &InitError{Op: "resolve", Path: dir, Err: err}
	}
	w.messagesPath, w.eventsPath = Paths(absDir, id)

	parent := filepath.Dir(w.messagesPath)
	if err := w.fs.MkdirAll(parent, dirPerm); err != nil {
		return nil, &InitError{Op: "mkdir", Path: parent, Err: err}
	}

	if err := w.openStreams(); err != nil {
		return nil, err
	}

	if w.exclusiveLock {
		if err := w.acquireLock(); err != nil {
			_ = w.closeStreams()
			return nil, err
		}
	}

	return w, nil
}

func (w *Writer) openStreams() error {
	const flag = os.O_CREATE | os.O_WRONLY | os.O_APPEND

	messages, err := w.fs.OpenFile(w.messagesPath, flag, filePerm)
	if err != nil {
		return &InitError{Op: "open", Path: w.messagesPath, Err: err}
	}

	events, err := w.fs.OpenFile(w.eventsPath, flag, filePerm)
	if err != nil {
		_ = messages.Close()
		return &InitError{Op: "open", Path: w.eventsPath, Err: err}
	}

	w.messages = messages
	w.events = events
	return nil
}

func (w *Writer) acquireLock() error {
	w.lock = flock.New(w.messagesPath)
	locked, err := w.lock.TryLock()
	if err != nil {
		return &InitError{Op: "lock", Path: w.messagesPath, Err: err}
	}
	if !locked {
		return &InitError{Op: "lock", Path: w.messagesPath, Err: ErrLocked}
	}
	return nil
}

// ID returns the session the writer logs for.
func (w *Writer) ID() session.ID {
	return w.id
}

// MessagesPath returns the absolute path of the messages log.
func (w *Writer) MessagesPath() string {
	return w.messagesPath
}

// EventsPath returns the absolute path of the event log.
func (w *Writer) EventsPath() string {
	return w.eventsPath
}

// RecordIncoming appends a received message to the messages log.
func (w *Writer) RecordIncoming(message string) error {
	return w.writeMessage(message)
}

// RecordOutgoing appends a sent message to the messages log.
func (w *Writer) RecordOutgoing(message string) error {
	return w.writeMessage(message)
}

// RecordEvent appends a timestamped notice to the event log.
func (w *Writer) RecordEvent(text string) error {
	if w.closed.Load() {
		return ErrClosed
	}
	if err := w.writeLine(w.events, text, true); err != nil {
		w.reporter.Report(w.id, "error writing event to log", err)
		return err
	}
	return nil
}

func (w *Writer) writeMessage(message string) error {
	if w.closed.Load() {
		return ErrClosed
	}
	if err := w.writeLine(w.messages, message, w.includeTimestampForMessages); err != nil {
		w.reporter.Report(w.id, "error writing message to log", err)
		return err
	}
	return nil
}

// writeLine writes one record with a single Write call, then syncs if the
// writer is in durability mode.
func (w *Writer) writeLine(s stream, text string, timestamp bool) error {
	line := w.line[:0]
	if timestamp {
		line = appendTimestamp(line, w.now(), w.includeMillis)
		line = append(line, TimestampDelimiter...)
	}
	line = append(line, text...)
	line = append(line, '\n')
	if cap(line) <= maxRetainedLine {
		w.line = line
	} else {
		w.line = nil
	}

	if _, err := s.Write(line); err != nil {
		return err
	}
	if w.syncAfterWrite.Load() {
		if err := s.Sync(); err != nil {
			return fmt.Errorf("sync: %w", err)
		}
	}
	return nil
}

// SetDurabilityMode sets whether every write is synced to stable storage
// before returning. It applies from the next write on and may be called
// from any goroutine.
func (w *Writer) SetDurabilityMode(enabled bool) {
	w.syncAfterWrite.Store(enabled)
}

// DurabilityMode reports whether writes are synced to stable storage.
func (w *Writer) DurabilityMode() bool {
	return w.syncAfterWrite.Load()
}

// Clear truncates both logs and leaves the writer open for further writes.
//
// If a log cannot be reopened truncated it is reopened for append instead,
// and if that fails too, writes to it report the failure until the next
// Clear. Failures are reported and returned; the writer stays usable.
// Clear must not run concurrently with other calls on the writer.
func (w *Writer) Clear() error {
	if w.closed.Load() {
		return ErrClosed
	}

	var errs []error
	for _, s := range []stream{w.messages, w.events} {
		// A handle closed underneath is replaced below anyway.
		if err := s.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			errs = append(errs, err)
		}
	}

	var err error
	if w.messages, err = w.reopenTruncated(w.messagesPath); err != nil {
		errs = append(errs, err)
	}
	if w.events, err = w.reopenTruncated(w.eventsPath); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		err := errors.Join(errs...)
		w.reporter.Report(w.id, "could not clear log", err)
		return err
	}
	return nil
}

// reopenTruncated always returns a usable stream, even alongside an error.
func (w *Writer) reopenTruncated(path string) (stream, error) {
	f, err := w.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err == nil {
		return f, nil
	}
	truncErr := fmt.Errorf("truncate %s: %w", path, err)

	f, err = w.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePerm)
	if err == nil {
		return f, truncErr
	}
	openErr := fmt.Errorf("reopen %s: %w", path, err)
	return brokenStream{err: openErr}, errors.Join(truncErr, openErr)
}

// Close releases both log files and any exclusive lock. Close is
// idempotent: calls after the first return nil. Writes after Close return
// ErrClosed without reporting.
func (w *Writer) Close() error {
	if w.closed.Swap(true) {
		return nil
	}

	err := w.closeStreams()
	if w.lock != nil {
		err = errors.Join(err, w.lock.Close())
	}
	return err
}

// Closed reports whether Close has been called.
func (w *Writer) Closed() bool {
	return w.closed.Load()
}

func (w *Writer) closeStreams() error {
	return errors.Join(w.messages.Close(), w.events.Close())
}

// brokenStream stands in for a log file that could not be reopened.
type brokenStream struct {
	err error
}

func (b brokenStream) Write([]byte) (int, error) { return 0, b.err }
func (b brokenStream) Sync() error               { return b.err }
func (b brokenStream) Close() error              { return nil }
