package hl7

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Location addresses a value in a message: segment, field, component and
// sub-component, 1-based. Zero means "the whole thing" at that level.
type Location struct {
	Segment  string
	FieldSeq int
	Comp     int
	SubComp  int
}

// ParseLocation reads "PID.5.2" or "PID-5-2" style locations
func ParseLocation(loc string) (*Location, error) {
	parts := strings.FieldsFunc(strings.TrimSpace(loc), func(r rune) bool {
		return r == '.' || r == '-'
	})
	if len(parts) == 0 || len(parts) > 4 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocation, loc)
	}
	l := &Location{Segment: parts[0]}
	nums := []*int{&l.FieldSeq, &l.Comp, &l.SubComp}
	for i, p := range parts[1:] {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLocation, loc)
		}
		*nums[i] = n
	}
	return l, nil
}

// NewLocation parses loc, returning an empty location when it is malformed
func NewLocation(loc string) *Location {
	l, err := ParseLocation(loc)
	if err != nil {
		return &Location{}
	}
	return l
}

func (l *Location) String() string {
	s := l.Segment
	for _, n := range []int{l.FieldSeq, l.Comp, l.SubComp} {
		if n == 0 {
			break
		}
		s += "." + strconv.Itoa(n)
	}
	return s
}

// node is a value found at a location, with what is known about its declaration
type node struct {
	v    Value
	slot *Slot
	lvl  Level
}

func (s *Slot) component(i int) *Slot {
	if s == nil || s.Type == nil {
		return nil
	}
	return s.Type.Slot(i)
}

// child returns component idx (1-based) of n; idx 0 is n itself
func (c *Codec) child(n node, idx int) node {
	if idx == 0 {
		return n
	}
	next := node{slot: n.slot.component(idx - 1), lvl: n.lvl.next()}
	switch v := n.v.(type) {
	case Composite:
		next.v = first(v.At(idx - 1))
	case Raw:
		parts := strings.Split(string(v), c.sep.delimiter(n.lvl))
		if idx <= len(parts) && parts[idx-1] != "" {
			next.v = Raw(parts[idx-1])
		}
	case nil:
	default:
		// a primitive is its own first component
		if idx == 1 {
			next.v = v
			next.slot = n.slot
		}
	}
	return next
}

func (c *Codec) text(n node) string {
	switch v := n.v.(type) {
	case String:
		return string(v)
	case Raw:
		return string(v)
	}
	return c.encode(n.slot, n.v, n.lvl)
}

// nodes returns the values addressed by l within seg. all selects every
// repetition instead of the first.
func (c *Codec) nodes(seg *Segment, l *Location, all bool) []node {
	if l.FieldSeq == 0 {
		return []node{{v: String(seg.Tag)}}
	}
	slot := seg.slot(l.FieldSeq)
	v := seg.Field(l.FieldSeq)
	reps := []Value{first(v)}
	if all {
		reps = occurrences(v)
	}
	out := make([]node, 0, len(reps))
	for _, r := range reps {
		n := node{v: r, slot: slot.single(), lvl: LevelComponent}
		out = append(out, c.child(c.child(n, l.Comp), l.SubComp))
	}
	return out
}

// codec returns a codec using the message's separators
func (m *Message) codec() *Codec {
	c := NewCodec()
	if !m.Separators.IsZero() {
		c = c.withSeparators(m.Separators)
	}
	return c
}

// Find gets a value from a message using location syntax.
// It reads the first occurrence of the segment and the first repetition.
// Components beyond the end of a value read as "".
func (m *Message) Find(loc string) (string, error) {
	l, err := ParseLocation(loc)
	if err != nil {
		return "", err
	}
	return m.Get(l)
}

// FindAll gets the values of every matching segment and repetition
func (m *Message) FindAll(loc string) ([]string, error) {
	l, err := ParseLocation(loc)
	if err != nil {
		return nil, err
	}
	return m.GetAll(l)
}

// Get returns the first value specified by the Location
func (m *Message) Get(l *Location) (string, error) {
	if l.Segment == "" {
		return m.String(), nil
	}
	seg, err := m.Segment(l.Segment)
	if err != nil {
		return "", err
	}
	c := m.codec()
	return c.text(c.nodes(seg, l, false)[0]), nil
}

// GetAll returns all values specified by the Location
func (m *Message) GetAll(l *Location) ([]string, error) {
	vals := []string{}
	if l.Segment == "" {
		vals = append(vals, m.String())
		return vals, nil
	}
	segs, err := m.AllSegments(l.Segment)
	if err != nil {
		return vals, err
	}
	c := m.codec()
	for _, s := range segs {
		for _, n := range c.nodes(s, l, true) {
			vals = append(vals, c.text(n))
		}
	}
	return vals, nil
}

// Set parses val as the value at Location and stores it in the first matching
// segment, creating the segment when the message has none. Repeating fields
// are set on their first repetition when a component is addressed.
func (m *Message) Set(l *Location, val string) error {
	if l.Segment == "" || l.FieldSeq < 1 {
		return fmt.Errorf("%w: segment and field are required", ErrInvalidLocation)
	}
	seg, err := m.Segment(l.Segment)
	if err != nil {
		if seg, err = m.AddSegment(l.Segment); err != nil {
			return err
		}
	}
	if seg.isHeader() && l.FieldSeq <= 2 {
		return fmt.Errorf("%w: %s-%d holds the delimiters", ErrInvalidLocation, seg.Tag, l.FieldSeq)
	}
	c := m.codec()
	slot := seg.slot(l.FieldSeq)
	if l.Comp == 0 {
		v, err := c.DecodeField(slot, val)
		if err != nil {
			return err
		}
		seg.SetField(l.FieldSeq, v)
		return nil
	}

	cur := seg.Field(l.FieldSeq)
	v, err := c.setComponent(slot.single(), first(cur), l.Comp, l.SubComp, val, LevelComponent)
	if err != nil {
		return fmt.Errorf("%s: %w", l, err)
	}
	switch rep := cur.(type) {
	case Repeated:
		if len(rep) == 0 {
			rep = Repeated{nil}
		}
		rep[0] = v
		seg.SetField(l.FieldSeq, rep)
	default:
		if slot != nil && slot.Repeated {
			v = Repeated{v}
		}
		seg.SetField(l.FieldSeq, v)
	}
	return nil
}

var errNoComponents = errors.New("primitive field has no components")

// setComponent stores val as component idx of cur, a value whose parts are
// joined by the delimiter of lvl. sub, when set, addresses a sub-component of
// that component instead.
func (c *Codec) setComponent(slot *Slot, cur Value, idx, sub int, val string, lvl Level) (Value, error) {
	if raw, ok := cur.(Raw); ok {
		delim := c.sep.delimiter(lvl)
		parts := strings.Split(string(raw), delim)
		for len(parts) < idx {
			parts = append(parts, "")
		}
		if sub == 0 {
			parts[idx-1] = val
		} else {
			v, err := c.setComponent(nil, Raw(parts[idx-1]), sub, 0, val, lvl.next())
			if err != nil {
				return nil, err
			}
			parts[idx-1] = c.text(node{v: v, lvl: lvl.next()})
		}
		return Raw(trimTrailing(strings.Join(parts, delim), delim)), nil
	}

	comp, ok := cur.(Composite)
	if !ok {
		declaredPrimitive := slot != nil && slot.Type == nil
		if idx == 1 && (sub <= 1 || declaredPrimitive) && (declaredPrimitive || cur != nil) {
			return c.decodeSingle(slot, val, lvl)
		}
		if declaredPrimitive {
			return nil, errNoComponents
		}
		size := idx
		if slot != nil && len(slot.Type.Slots) > size {
			size = len(slot.Type.Slots)
		}
		comp = make(Composite, size)
		if cur != nil {
			comp[0] = cur
		}
	} else {
		grown := make(Composite, max(len(comp), idx))
		copy(grown, comp)
		comp = grown
	}

	cs := slot.component(idx - 1)
	var err error
	if sub == 0 {
		comp[idx-1], err = c.decode(cs, val, lvl.next())
	} else {
		comp[idx-1], err = c.setComponent(cs.single(), first(comp[idx-1]), sub, 0, val, lvl.next())
	}
	if err != nil {
		return nil, err
	}
	return comp, nil
}
