package hl7

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"golang.org/x/net/html/charset"
)

// Message is an HL7 message: an ordered collection of segments
type Message struct {
	Version    string
	Separators Separators
	Segments   []*Segment
	// Catalog declares the segments of Version; nil for messages parsed without one
	Catalog *Catalog
}

// NewMessage returns an empty message using the catalog's version
func NewMessage(cat *Catalog) *Message {
	m := &Message{Separators: DefaultSeparators(), Catalog: cat}
	if cat != nil {
		m.Version = cat.Version
	}
	return m
}

// Parse reads an ER7 message using the catalog registered for its version
func Parse(text string, reg *Registry, opts ...Option) (*Message, error) {
	return NewCodec(opts...).DecodeMessage(text, reg)
}

// ParseBytes converts raw feed bytes to UTF-8 and parses them
func ParseBytes(v []byte, reg *Registry, opts ...Option) (*Message, error) {
	text, err := decodeCharset(v)
	if err != nil {
		return nil, err
	}
	return Parse(text, reg, opts...)
}

func decodeCharset(v []byte) (string, error) {
	if len(v) == 0 {
		return "", nil
	}
	reader, err := charset.NewReader(bytes.NewReader(v), "text/plain")
	if err != nil {
		return "", err
	}
	utf8V, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return string(utf8V), nil
}

// String returns the ER7 text of the message
func (m *Message) String() string {
	return m.Encode()
}

// Encode serializes the message
func (m *Message) Encode(opts ...Option) string {
	return NewCodec(opts...).EncodeMessage(m)
}

// Add appends segments, giving each the next ordinal
func (m *Message) Add(segs ...*Segment) {
	next := 0
	for _, s := range m.Segments {
		if s.Ordinal > next {
			next = s.Ordinal
		}
	}
	for _, s := range segs {
		next++
		s.Ordinal = next
		m.Segments = append(m.Segments, s)
	}
}

// AddSegment creates an empty segment declared by the message catalog and
// appends it. Z-segments without a declaration are created generic.
func (m *Message) AddSegment(tag string) (*Segment, error) {
	var seg *Segment
	if def := m.Catalog.Segment(tag); def != nil {
		seg = NewSegment(def)
	} else if IsZSegment(tag) {
		seg = NewGenericSegment(tag)
	} else {
		return nil, &UnknownSegmentError{Tag: tag}
	}
	m.Add(seg)
	return seg, nil
}

// Sorted returns the segments in serialization order: MSH first, then by
// ordinal. When the message carries a file or batch envelope (FHS, BHS) the
// segments keep plain ordinal order so headers stay ahead of their messages.
func (m *Message) Sorted() []*Segment {
	out := make([]*Segment, len(m.Segments))
	copy(out, m.Segments)
	enveloped := false
	for _, s := range out {
		if s.Tag == "FHS" || s.Tag == "BHS" {
			enveloped = true
			break
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return sortKey(out[i], enveloped) < sortKey(out[j], enveloped)
	})
	return out
}

func sortKey(s *Segment, enveloped bool) int {
	if s.Tag == "MSH" && !enveloped {
		return math.MinInt
	}
	return s.Ordinal
}

// Segment returns the first segment named s
func (m *Message) Segment(s string) (*Segment, error) {
	for _, seg := range m.Sorted() {
		if seg.Tag == s {
			return seg, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrSegmentNotFound, s)
}

// LastSegment returns the last segment named s
func (m *Message) LastSegment(s string) (*Segment, error) {
	segs := m.Sorted()
	for i := len(segs) - 1; i >= 0; i-- {
		if segs[i].Tag == s {
			return segs[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrSegmentNotFound, s)
}

// AllSegments returns every segment named s
func (m *Message) AllSegments(s string) ([]*Segment, error) {
	segs := []*Segment{}
	for _, seg := range m.Sorted() {
		if seg.Tag == s {
			segs = append(segs, seg)
		}
	}
	if len(segs) == 0 {
		return segs, fmt.Errorf("%w: %s", ErrSegmentNotFound, s)
	}
	return segs, nil
}

// EncodeMessage serializes every segment in ordinal order, each followed by
// the line terminator. The message's own separators are used unless the
// codec was given explicit ones.
func (c *Codec) EncodeMessage(m *Message) string {
	cc := c
	if !c.explicit && !m.Separators.IsZero() {
		cc = c.withSeparators(m.Separators)
	}
	var b strings.Builder
	for _, seg := range m.Sorted() {
		b.WriteString(cc.EncodeSegment(seg))
		b.WriteString(cc.sep.LineTerminator)
	}
	return b.String()
}

// DecodeMessage parses message text. Delimiters come from the MSH segment when
// present; the catalog is chosen by the forced version or MSH-12. Segments
// missing from the catalog are parsed generic when they are Z-segments and
// otherwise fail with *UnknownSegmentError. reg may be nil, in which case
// every segment is generic.
func (c *Codec) DecodeMessage(text string, reg *Registry) (*Message, error) {
	text = strings.Trim(text, "\n\r\x1c\x0b")
	if text == "" {
		return nil, errors.New("empty message")
	}
	lines := splitLines(text, c.sep.LineTerminator)

	cc := c
	if len(lines[0]) > 3 && isHeaderTag(lines[0][:3]) {
		sep, err := ParseSeparators(lines[0])
		if err != nil {
			return nil, err
		}
		sep.LineTerminator = c.sep.LineTerminator
		cc = c.withSeparators(sep)
	}
	sep := cc.sep

	version := c.opts.Version
	if version == "" {
		version = headerVersion(lines, sep)
	}
	var cat *Catalog
	if reg != nil {
		var err error
		if cat, err = reg.Catalog(version); err != nil {
			return nil, err
		}
	}
	c.log.Debug().Str("version", version).Int("lines", len(lines)).Msg("parsing message")

	m := &Message{Version: version, Separators: sep, Catalog: cat}
	ordinal := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		tag := segmentTag(line, sep.Field)
		def := cat.Segment(tag)
		if def == nil {
			if !IsZSegment(tag) && !(c.opts.GenericSegments || reg == nil) {
				return nil, &UnknownSegmentError{Tag: tag, Line: i + 1}
			}
			c.log.Debug().Str("tag", tag).Int("line", i+1).Msg("parsing generic segment")
		}
		seg, err := cc.DecodeSegment(line, def)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		ordinal++
		seg.Ordinal = ordinal
		m.Segments = append(m.Segments, seg)
	}
	return m, nil
}

// splitLines splits on the terminator. A carriage return terminator also
// accepts CRLF and LF line ends.
func splitLines(text, term string) []string {
	if term == "\r" {
		text = strings.ReplaceAll(text, "\r\n", "\r")
		text = strings.ReplaceAll(text, "\n", "\r")
	}
	return strings.Split(text, term)
}

// headerVersion reads the first component of MSH-12 from the first MSH line,
// which follows any FHS/BHS envelope
func headerVersion(lines []string, sep Separators) string {
	for _, line := range lines {
		if !strings.HasPrefix(line, "MSH") {
			continue
		}
		// tokens[0] is the tag and tokens[1] MSH-2, so MSH-n sits at n-1
		tokens := strings.Split(line, sep.Field)
		if len(tokens) < 12 {
			return ""
		}
		v, _, _ := strings.Cut(tokens[11], sep.Component)
		return strings.TrimSpace(v)
	}
	return ""
}
