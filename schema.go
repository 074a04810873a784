package hl7

import "regexp"

// Slot declares one field of a segment or one component of a composite type
type Slot struct {
	Name string
	// Kind is the primitive kind; ignored when Type is set
	Kind Kind
	// Type is set for composite slots
	Type *TypeDef
	// Repeated marks slots whose occurrences are joined by the repetition delimiter
	Repeated bool
	// Table is the id of the code table bound to the slot, if any
	Table string
}

// Field declares a primitive slot
func Field(name string, kind Kind) Slot {
	return Slot{Name: name, Kind: kind}
}

// CompositeField declares a slot holding a composite type
func CompositeField(name string, t *TypeDef) Slot {
	return Slot{Name: name, Type: t}
}

// Repeating returns a copy of s that repeats
func (s Slot) Repeating() Slot {
	s.Repeated = true
	return s
}

// Coded returns a copy of s bound to a code table
func (s Slot) Coded(table string) Slot {
	s.Table = table
	return s
}

// IsComposite reports whether the slot holds a composite type
func (s *Slot) IsComposite() bool {
	return s != nil && s.Type != nil
}

// single is the slot describing one occurrence of s
func (s *Slot) single() *Slot {
	if s == nil || !s.Repeated {
		return s
	}
	c := *s
	c.Repeated = false
	return &c
}

// TypeDef is a composite data type: an ordered list of component slots
type TypeDef struct {
	ID          string
	Description string
	Slots       []Slot
}

// NewType declares a composite type
func NewType(id, description string, slots ...Slot) *TypeDef {
	return &TypeDef{ID: id, Description: description, Slots: slots}
}

// Slot returns the slot at position i (0-based) or nil
func (t *TypeDef) Slot(i int) *Slot {
	if t == nil || i < 0 || i >= len(t.Slots) {
		return nil
	}
	return &t.Slots[i]
}

// SegmentDef declares a segment: its tag and ordered field list. Header
// segments (MSH, FHS, BHS) declare the delimiters in their first two fields.
type SegmentDef struct {
	Tag         string
	Description string
	Header      bool
	Fields      []Slot
}

// NewSegmentDef declares a segment
func NewSegmentDef(tag, description string, fields ...Slot) *SegmentDef {
	return &SegmentDef{Tag: tag, Description: description, Fields: fields, Header: isHeaderTag(tag)}
}

// Field returns the declaration of field n (1-based, HL7 numbering) or nil
func (d *SegmentDef) Field(n int) *Slot {
	if d == nil || n < 1 || n > len(d.Fields) {
		return nil
	}
	return &d.Fields[n-1]
}

// FieldIndex returns the 1-based position of the named field, or 0
func (d *SegmentDef) FieldIndex(name string) int {
	if d == nil {
		return 0
	}
	for i := range d.Fields {
		if d.Fields[i].Name == name {
			return i + 1
		}
	}
	return 0
}

var zSegmentTag = regexp.MustCompile(`^Z[0-9A-Z]{2,}$`)

// IsZSegment reports whether tag names a locally defined Z-segment
func IsZSegment(tag string) bool {
	return zSegmentTag.MatchString(tag)
}
