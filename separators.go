package hl7

import (
	"fmt"
	"strings"
)

// Separators holds the delimiters of an ER7 message
type Separators struct {
	Field          string `yaml:"field"`
	Component      string `yaml:"component"`
	Repetition     string `yaml:"repetition"`
	Escape         string `yaml:"escape"`
	SubComponent   string `yaml:"subcomponent"`
	LineTerminator string `yaml:"terminator"`
}

// DefaultSeparators returns the standard |^~\& delimiters with a carriage return terminator
func DefaultSeparators() Separators {
	return Separators{
		Field:          "|",
		Component:      "^",
		Repetition:     "~",
		Escape:         `\`,
		SubComponent:   "&",
		LineTerminator: "\r",
	}
}

// IsZero reports whether no delimiter has been set
func (s Separators) IsZero() bool {
	return s == Separators{}
}

// EncodingCharacters returns the MSH-2 value: component, repetition, escape and
// sub-component delimiters in that order
func (s Separators) EncodingCharacters() string {
	return s.Component + s.Repetition + s.Escape + s.SubComponent
}

// withDefaults fills any empty delimiter from DefaultSeparators
func (s Separators) withDefaults() Separators {
	d := DefaultSeparators()
	if s.Field == "" {
		s.Field = d.Field
	}
	if s.Component == "" {
		s.Component = d.Component
	}
	if s.Repetition == "" {
		s.Repetition = d.Repetition
	}
	if s.Escape == "" {
		s.Escape = d.Escape
	}
	if s.SubComponent == "" {
		s.SubComponent = d.SubComponent
	}
	if s.LineTerminator == "" {
		s.LineTerminator = d.LineTerminator
	}
	return s
}

// ParseSeparators reads the delimiters declared by a header segment line
// (MSH, FHS or BHS). The character after the tag is the field delimiter and the
// following token spells component, repetition, escape and sub-component.
// Missing encoding characters fall back to the defaults.
func ParseSeparators(line string) (Separators, error) {
	if len(line) < 4 {
		return Separators{}, fmt.Errorf("%w: header too short", ErrMissingHeader)
	}
	tag := line[:3]
	if !isHeaderTag(tag) {
		return Separators{}, fmt.Errorf("%w: got %q", ErrMissingHeader, tag)
	}
	r := []rune(line[3:])
	s := Separators{Field: string(r[0])}
	enc := r[1:]
	for i, ch := range enc {
		if string(ch) == s.Field {
			enc = enc[:i]
			break
		}
	}
	for i, ch := range enc {
		switch i {
		case 0:
			s.Component = string(ch)
		case 1:
			s.Repetition = string(ch)
		case 2:
			s.Escape = string(ch)
		case 3:
			s.SubComponent = string(ch)
		}
	}
	return s.withDefaults(), nil
}

func isHeaderTag(tag string) bool {
	return tag == "MSH" || tag == "FHS" || tag == "BHS"
}

// Level selects which delimiter joins the parts of a composite value
type Level int

// Delimiter levels, outermost first.
const (
	LevelField Level = iota
	LevelComponent
	LevelSubComponent
)

// next is the level used for values nested one step deeper. HL7 has no
// delimiter below the sub-component, so it stays there.
func (l Level) next() Level {
	if l >= LevelSubComponent {
		return LevelSubComponent
	}
	return l + 1
}

func (s Separators) delimiter(l Level) string {
	switch l {
	case LevelField:
		return s.Field
	case LevelComponent:
		return s.Component
	default:
		return s.SubComponent
	}
}

// trimTrailing removes every trailing occurrence of delim
func trimTrailing(s, delim string) string {
	if delim == "" {
		return s
	}
	for strings.HasSuffix(s, delim) {
		s = s[:len(s)-len(delim)]
	}
	return s
}
