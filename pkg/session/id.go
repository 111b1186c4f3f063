package session

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidID is returned when a textual session ID cannot be parsed.
var ErrInvalidID = errors.New("invalid session id")

// ID identifies a single protocol session.
type ID struct {
	// BeginString is the protocol version, e.g. "FIX.4.2" or "FIXT.1.1".
	BeginString string

	// SenderCompID identifies the local side of the session.
	SenderCompID string

	// TargetCompID identifies the remote side of the session.
	TargetCompID string

	// Qualifier optionally distinguishes sessions sharing the fields above.
	Qualifier string
}

// NewID creates a session ID without a qualifier.
func NewID(beginString, sender, target string) ID {
	return ID{BeginString: beginString, SenderCompID: sender, TargetCompID: target}
}

// HasQualifier reports whether the ID carries a non-empty qualifier.
func (id ID) HasQualifier() bool {
	return id.Qualifier != ""
}

// IsZero reports whether no field of the ID is set.
func (id ID) IsZero() bool {
	return id == ID{}
}

// String returns the ID as "BEGIN:SENDER->TARGET[:QUALIFIER]".
func (id ID) String() string {
	s := id.BeginString + ":" + id.SenderCompID + "->" + id.TargetCompID
	if id.HasQualifier() {
		s += ":" + id.Qualifier
	}
	return s
}

// ParseID parses the form produced by ID.String.
//
// The begin string itself contains no colon, so the first colon separates it
// from the sender. A qualifier follows the last colon after the target.
func ParseID(s string) (ID, error) {
	begin, rest, ok := strings.Cut(s, ":")
	if !ok || begin == "" {
		return ID{}, fmt.Errorf("%w %q: missing begin string", ErrInvalidID, s)
	}

	sender, rest, ok := strings.Cut(rest, "->")
	if !ok || sender == "" {
		return ID{}, fmt.Errorf("%w %q: expected SENDER->TARGET", ErrInvalidID, s)
	}

	target, qualifier, _ := strings.Cut(rest, ":")
	if target == "" {
		return ID{}, fmt.Errorf("%w %q: missing target", ErrInvalidID, s)
	}
	if strings.ContainsAny(sender+target+qualifier, `/\`) {
		return ID{}, fmt.Errorf("%w %q: path separator in identifier", ErrInvalidID, s)
	}

	return ID{
		BeginString:  begin,
		SenderCompID: sender,
		TargetCompID: target,
		Qualifier:    qualifier,
	}, nil
}
