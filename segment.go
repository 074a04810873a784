package hl7

import (
	"fmt"
	"strings"
)

// Segment is one line of a message. Fields holds field n at index n-1. For
// header segments Fields[0] and Fields[1] are the field delimiter and the
// encoding characters; they are filled on parse and ignored on serialize.
//
// A segment without a Def is generic: its fields are whatever the caller or
// the wire supplied, usually Raw tokens.
type Segment struct {
	Tag     string
	Ordinal int
	Def     *SegmentDef
	Fields  []Value
}

// NewSegment returns an empty segment declared by def
func NewSegment(def *SegmentDef) *Segment {
	return &Segment{
		Tag:    def.Tag,
		Def:    def,
		Fields: make([]Value, len(def.Fields)),
	}
}

// NewGenericSegment returns a segment with a caller-supplied field list
func NewGenericSegment(tag string, fields ...Value) *Segment {
	return &Segment{Tag: tag, Fields: fields}
}

// IsGeneric reports whether the segment has no declared field list
func (s *Segment) IsGeneric() bool {
	return s.Def == nil
}

// Name returns the segment tag
func (s *Segment) Name() string {
	return s.Tag
}

func (s *Segment) isHeader() bool {
	if s.Def != nil {
		return s.Def.Header
	}
	return isHeaderTag(s.Tag)
}

// Field returns field n (1-based) or nil when absent
func (s *Segment) Field(n int) Value {
	if n < 1 || n > len(s.Fields) {
		return nil
	}
	return s.Fields[n-1]
}

// FieldByName returns the value of the declared field called name
func (s *Segment) FieldByName(name string) Value {
	return s.Field(s.Def.FieldIndex(name))
}

// SetField stores v as field n (1-based), growing the field list as needed
func (s *Segment) SetField(n int, v Value) {
	if n < 1 {
		return
	}
	for len(s.Fields) < n {
		s.Fields = append(s.Fields, nil)
	}
	s.Fields[n-1] = v
}

// slot returns the declaration of field n, nil for generic or undeclared fields
func (s *Segment) slot(n int) *Slot {
	return s.Def.Field(n)
}

// EncodeSegment serializes a segment: the tag, then each field joined by the
// field delimiter, with trailing empty fields trimmed. Header segments emit the
// delimiters themselves as fields 1 and 2.
func (c *Codec) EncodeSegment(s *Segment) string {
	fd := c.sep.Field
	parts := make([]string, 0, len(s.Fields)+1)
	parts = append(parts, s.Tag)
	start := 0
	if s.isHeader() {
		parts = append(parts, c.sep.EncodingCharacters())
		start = 2
	}
	for i := start; i < len(s.Fields); i++ {
		parts = append(parts, c.EncodeField(s.slot(i+1), s.Fields[i]))
	}
	out := strings.Join(parts, fd)
	if s.isHeader() {
		head := s.Tag + fd + c.sep.EncodingCharacters()
		return head + trimTrailing(out[len(head):], fd)
	}
	return trimTrailing(out, fd)
}

// DecodeSegment parses one segment line. def may be nil for a generic segment,
// in which case every field is kept as a Raw token. Tokens beyond the declared
// fields are kept as Raw tokens.
func (c *Codec) DecodeSegment(line string, def *SegmentDef) (*Segment, error) {
	fd := c.sep.Field
	tag := segmentTag(line, fd)
	if def != nil && def.Tag != tag {
		return nil, fmt.Errorf("segment %q does not match declaration %q", tag, def.Tag)
	}
	seg := &Segment{Tag: tag, Def: def}
	if def != nil {
		seg.Fields = make([]Value, len(def.Fields))
	}

	rest := strings.TrimPrefix(line[len(tag):], fd)
	if len(line) == len(tag) {
		return seg, nil
	}

	var tokens []string
	offset := 0
	if seg.isHeader() {
		seg.SetField(1, String(fd))
		enc, after, _ := strings.Cut(rest, fd)
		seg.SetField(2, String(enc))
		if after == "" {
			return seg, nil
		}
		tokens = strings.Split(after, fd)
		offset = 2
	} else {
		tokens = strings.Split(rest, fd)
	}

	for i, tok := range tokens {
		n := i + offset + 1
		slot := seg.slot(n)
		if slot == nil {
			switch {
			case tok != "":
				seg.SetField(n, Raw(tok))
			case def == nil:
				seg.SetField(n, nil)
			}
			continue
		}
		v, err := c.DecodeField(slot, tok)
		if err != nil {
			return nil, fmt.Errorf("%s-%d: %w", tag, n, err)
		}
		seg.Fields[n-1] = v
	}
	return seg, nil
}

// segmentTag returns the text before the first field delimiter
func segmentTag(line, fd string) string {
	if i := strings.Index(line, fd); i >= 0 {
		return line[:i]
	}
	return line
}
