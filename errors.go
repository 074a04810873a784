package hl7

import (
	"errors"
	"fmt"
)

var (
	// ErrSegmentNotFound is returned by lookups when no segment carries the requested tag
	ErrSegmentNotFound = errors.New("segment not found")
	// ErrMissingHeader is returned when header delimiters cannot be read
	ErrMissingHeader = errors.New("invalid message header")
	// ErrUnsupportedVersion is returned when no catalog is registered for a message version
	ErrUnsupportedVersion = errors.New("unsupported HL7 version")
	// ErrInvalidLocation is returned for malformed location strings such as "PID.x"
	ErrInvalidLocation = errors.New("invalid location")
)

// FormatError reports a token that cannot be converted to its declared kind.
// It is only returned in strict mode.
type FormatError struct {
	Kind  Kind
	Token string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot read %q as %s: %v", e.Token, e.Kind, e.Err)
	}
	return fmt.Sprintf("cannot read %q as %s", e.Token, e.Kind)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// UnknownSegmentError reports a segment tag with no catalog entry that is not a Z-segment
type UnknownSegmentError struct {
	Tag  string
	Line int
}

func (e *UnknownSegmentError) Error() string {
	return fmt.Sprintf("line %d: unknown segment %q", e.Line, e.Tag)
}
