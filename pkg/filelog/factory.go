package filelog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sessionlog/sessionlog-go/pkg/session"
)

// Settings configures writers created by a Factory.
type Settings struct {
	// Path is the base directory of the log files.
	Path string `yaml:"path"`

	// IncludeMillis adds a millisecond fraction to timestamps.
	IncludeMillis bool `yaml:"include_millis"`

	// IncludeTimestampForMessages prefixes message lines with a timestamp.
	IncludeTimestampForMessages bool `yaml:"include_timestamp_for_messages"`

	// SyncAfterWrite syncs every write to stable storage.
	SyncAfterWrite bool `yaml:"sync_after_write"`

	// ExclusiveLock takes an advisory lock on each session's messages log.
	ExclusiveLock bool `yaml:"exclusive_lock"`
}

// DefaultSettings returns the settings used when none are configured.
func DefaultSettings() Settings {
	return Settings{Path: "logs"}
}

// Options converts the settings to writer options.
func (s Settings) Options() []Option {
	return []Option{
		WithMillis(s.IncludeMillis),
		WithMessageTimestamps(s.IncludeTimestampForMessages),
		WithSyncAfterWrite(s.SyncAfterWrite),
		WithExclusiveLock(s.ExclusiveLock),
	}
}

// Factory creates one Writer per session from shared settings and keeps
// track of the writers it handed out. It is safe for concurrent use;
// the writers themselves are not.
type Factory struct {
	settings Settings
	opts     []Option

	mu      sync.Mutex
	writers map[session.ID]*Writer
}

// NewFactory creates a factory. Extra options are applied after those
// derived from settings.
func NewFactory(settings Settings, opts ...Option) *Factory {
	return &Factory{
		settings: settings,
		opts:     opts,
		writers:  make(map[session.ID]*Writer),
	}
}

// Settings returns the settings the factory was created with, reflecting
// any later SetDurabilityMode call.
func (f *Factory) Settings() Settings {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.settings
}

// Create opens a writer for the session. It fails with ErrDuplicateSession
// if the factory already holds an open writer for the same session.
func (f *Factory) Create(id session.ID) (*Writer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if w, ok := f.writers[id]; ok && !w.Closed() {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateSession, id)
	}

	opts := append(f.settings.Options(), f.opts...)
	w, err := New(f.settings.Path, id, opts...)
	if err != nil {
		return nil, err
	}
	f.writers[id] = w
	return w, nil
}

// Get returns the open writer for a session, if any.
func (f *Factory) Get(id session.ID) (*Writer, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w, ok := f.writers[id]
	if !ok || w.Closed() {
		return nil, false
	}
	return w, true
}

// Release closes the session's writer and forgets it.
func (f *Factory) Release(id session.ID) error {
	f.mu.Lock()
	w, ok := f.writers[id]
	delete(f.writers, id)
	f.mu.Unlock()

	if !ok {
		return nil
	}
	return w.Close()
}

// SetDurabilityMode switches durability on all open writers and on
// writers created afterwards.
func (f *Factory) SetDurabilityMode(enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.settings.SyncAfterWrite = enabled
	for _, w := range f.writers {
		w.SetDurabilityMode(enabled)
	}
}

// CloseAll closes every writer the factory holds.
func (f *Factory) CloseAll() error {
	f.mu.Lock()
	writers := f.writers
	f.writers = make(map[session.ID]*Writer)
	f.mu.Unlock()

	var errs []error
	for id, w := range writers {
		if err := w.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", id, err))
		}
	}
	return errors.Join(errs...)
}
