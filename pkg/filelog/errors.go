package filelog

import (
	"errors"
	"fmt"
)

var (
	// ErrLogInitialization matches every construction failure.
	ErrLogInitialization = errors.New("log initialization failed")

	// ErrClosed is returned by operations on a closed writer.
	ErrClosed = errors.New("log writer closed")

	// ErrLocked is returned when exclusive locking is enabled and another
	// writer already owns the session's log files.
	ErrLocked = errors.New("session log owned by another writer")

	// ErrDuplicateSession is returned by Factory.Create when the factory
	// already holds an open writer for the session.
	ErrDuplicateSession = errors.New("session log writer already open")
)

// InitError describes why a Writer could not be constructed.
type InitError struct {
	Op   string // "resolve", "mkdir", "open" or "lock"
	Path string
	Err  error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("%v: %s %s: %v", ErrLogInitialization, e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *InitError) Unwrap() error {
	return e.Err
}

// Is reports ErrLogInitialization as a match.
func (e *InitError) Is(target error) bool {
	return target == ErrLogInitialization
}
