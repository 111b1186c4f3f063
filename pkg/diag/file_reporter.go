package diag

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"github.com/sessionlog/sessionlog-go/pkg/session"
)

// FileReporter appends CBOR-encoded records to a file.
// It is safe for concurrent use from multiple goroutines.
type FileReporter struct {
	file    *os.File
	encoder *cbor.Encoder
	mu      sync.Mutex
	closed  bool
}

// NewFileReporter creates a FileReporter that writes to the specified path.
// Missing parent directories are created. If the file exists, new records
// are appended.
func NewFileReporter(path string) (*FileReporter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &FileReporter{
		file:    f,
		encoder: recordEncoding.NewEncoder(f),
	}, nil
}

// Report appends a record for the failure.
func (r *FileReporter) Report(id session.ID, message string, cause error) {
	rec := NewRecord(id, message, cause)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}

	// A reporter has nowhere left to report its own failure.
	_ = r.encoder.Encode(rec)
}

// Close closes the underlying file.
// It is safe to call Close multiple times.
// After Close is called, subsequent reports are silently dropped.
func (r *FileReporter) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}

	r.closed = true
	return r.file.Close()
}

// Compile-time interface satisfaction check.
var _ Reporter = (*FileReporter)(nil)
