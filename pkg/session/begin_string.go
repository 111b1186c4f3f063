package session

import (
	"fmt"
	"strconv"
	"strings"
)

// Known protocol families.
const (
	ProtocolFIX  = "FIX"
	ProtocolFIXT = "FIXT"
)

// BeginString is a parsed "PROTOCOL.major.minor" version string.
type BeginString struct {
	Protocol string
	Major    uint16
	Minor    uint16
}

// ParseBeginString parses strings such as "FIX.4.2" or "FIXT.1.1".
func ParseBeginString(s string) (BeginString, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return BeginString{}, fmt.Errorf("invalid begin string %q: expected PROTOCOL.major.minor", s)
	}

	if parts[0] != ProtocolFIX && parts[0] != ProtocolFIXT {
		return BeginString{}, fmt.Errorf("invalid begin string %q: unknown protocol %q", s, parts[0])
	}

	major, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || parts[1] == "" {
		return BeginString{}, fmt.Errorf("invalid begin string %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[2], 10, 16)
	if err != nil || parts[2] == "" {
		return BeginString{}, fmt.Errorf("invalid begin string %q: bad minor component", s)
	}

	return BeginString{Protocol: parts[0], Major: uint16(major), Minor: uint16(minor)}, nil
}

// String returns the begin string as "PROTOCOL.major.minor".
func (b BeginString) String() string {
	return fmt.Sprintf("%s.%d.%d", b.Protocol, b.Major, b.Minor)
}

// IsTransport reports whether this is a FIXT transport-layer session, whose
// application version is negotiated separately.
func (b BeginString) IsTransport() bool {
	return b.Protocol == ProtocolFIXT
}
