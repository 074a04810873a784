package hl7

import (
	"errors"
	"io"
	"strings"
)

// Encoder writes hl7 messages to a stream
type Encoder struct {
	w     io.Writer
	codec *Codec
}

// NewEncoder returns a new Encoder that writes to stream w
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, codec: NewCodec(opts...)}
}

// Encode writes the ER7 text of m to the stream
func (e *Encoder) Encode(m *Message) error {
	b := []byte(e.codec.EncodeMessage(m))
	i, err := e.w.Write(b)
	if err != nil {
		return err
	}
	if i < len(b) {
		return errors.New("Failed to write all bytes")
	}
	return nil
}

// Decoder reads hl7 messages from a stream
type Decoder struct {
	r     io.Reader
	reg   *Registry
	codec *Codec
}

// NewDecoder returns a new Decoder that reads from stream r and resolves
// segments through reg
func NewDecoder(r io.Reader, reg *Registry, opts ...Option) *Decoder {
	return &Decoder{r: r, reg: reg, codec: NewCodec(opts...)}
}

// Messages reads the whole stream and parses every message in it. A message
// starts at each MSH segment, or at the FHS/BHS headers before it; blank
// lines are ignored.
func (d *Decoder) Messages() ([]*Message, error) {
	raw, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}
	text, err := decodeCharset(raw)
	if err != nil {
		return nil, err
	}
	msgs := []*Message{}
	for _, chunk := range splitMessages(text, d.codec.sep.LineTerminator) {
		m, err := d.codec.DecodeMessage(chunk, d.reg)
		if err != nil {
			return msgs, err
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

// splitMessages groups the lines of text into messages. Each message starts
// at its MSH line; file and batch headers (FHS, BHS) open the message that
// follows them and trailers (BTS, FTS) close the one before.
func splitMessages(text, term string) []string {
	var (
		out     []string
		current []string
		hasMSH  bool
	)
	flush := func() {
		if len(current) > 0 {
			out = append(out, strings.Join(current, term))
			current = nil
		}
		hasMSH = false
	}
	for _, line := range splitLines(strings.Trim(text, "\x1c\x0b"), term) {
		line = strings.Trim(line, "\x1c\x0b")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if tag := line[:min(3, len(line))]; isHeaderTag(tag) {
			if hasMSH {
				flush()
			}
			hasMSH = hasMSH || tag == "MSH"
		}
		current = append(current, line)
	}
	flush()
	return out
}
