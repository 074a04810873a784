package hl7

import (
	"errors"
	"reflect"
	"strings"
)

// MsgInfo is a summary of the message header
type MsgInfo struct {
	SendingApp        string `hl7:"MSH.3"`
	SendingFacility   string `hl7:"MSH.4"`
	ReceivingApp      string `hl7:"MSH.5"`
	ReceivingFacility string `hl7:"MSH.6"`
	MsgDate           string `hl7:"MSH.7"`
	MessageType       string `hl7:"MSH.9"`
	ControlID         string `hl7:"MSH.10"`
	ProcessingID      string `hl7:"MSH.11"`
	VersionID         string `hl7:"MSH.12"`
}

// Info returns the MsgInfo for the message
func (m *Message) Info() (MsgInfo, error) {
	mi := MsgInfo{}
	err := m.Unmarshal(&mi)
	return mi, err
}

// Unmarshal fills a structure from an HL7 message using `hl7` struct tags.
//
//   - string fields take the first value at the tag's location ("PID.5.2")
//   - []string fields take every value (all segments, all repetitions)
//   - struct fields tagged with a segment ("PID") read their own tags
//     relative to the first such segment
//   - []struct fields tagged with a segment ("OBX") get one element per
//     segment; tagged with a field ("PID.3") they get one element per
//     repetition, and their tags address components: "X.1" is the first
//     component, "X.1.2" its second sub-component
func (m *Message) Unmarshal(it interface{}) error {
	rv := reflect.ValueOf(it)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return errors.New("unmarshal target must be a pointer to a struct")
	}
	return fill(messageScope{m: m, c: m.codec()}, rv.Elem())
}

type scope interface {
	value(l *Location) string
	values(l *Location) []string
	children(l *Location) []scope
}

type messageScope struct {
	m *Message
	c *Codec
}

func (s messageScope) value(l *Location) string {
	v, _ := s.m.Get(l)
	return v
}

func (s messageScope) values(l *Location) []string {
	v, _ := s.m.GetAll(l)
	return v
}

func (s messageScope) children(l *Location) []scope {
	segs, _ := s.m.AllSegments(l.Segment)
	out := []scope{}
	for _, seg := range segs {
		out = append(out, segmentScope{c: s.c, seg: seg}.children(l)...)
	}
	return out
}

type segmentScope struct {
	c   *Codec
	seg *Segment
}

func (s segmentScope) value(l *Location) string {
	return s.c.text(s.c.nodes(s.seg, l, false)[0])
}

func (s segmentScope) values(l *Location) []string {
	out := []string{}
	for _, n := range s.c.nodes(s.seg, l, true) {
		out = append(out, s.c.text(n))
	}
	return out
}

func (s segmentScope) children(l *Location) []scope {
	if l.FieldSeq == 0 {
		return []scope{s}
	}
	out := []scope{}
	for _, n := range s.c.nodes(s.seg, l, true) {
		if n.v != nil {
			out = append(out, nodeScope{c: s.c, n: n})
		}
	}
	return out
}

// nodeScope reads components of one field repetition. FieldSeq addresses the
// component and Comp the sub-component.
type nodeScope struct {
	c *Codec
	n node
}

func (s nodeScope) at(l *Location) node {
	return s.c.child(s.c.child(s.n, l.FieldSeq), l.Comp)
}

func (s nodeScope) value(l *Location) string {
	return s.c.text(s.at(l))
}

func (s nodeScope) values(l *Location) []string {
	return []string{s.value(l)}
}

func (s nodeScope) children(l *Location) []scope {
	return []scope{nodeScope{c: s.c, n: s.at(l)}}
}

func fill(sc scope, st reflect.Value) error {
	stt := st.Type()
	for i := 0; i < st.NumField(); i++ {
		fld := stt.Field(i)
		r := fld.Tag.Get("hl7")
		if r == "" || !st.Field(i).CanSet() {
			continue
		}
		l, err := ParseLocation(strings.Split(r, ",")[0])
		if err != nil {
			return err
		}
		f := st.Field(i)
		switch fld.Type.Kind() {
		case reflect.String:
			if val := sc.value(l); val != "" {
				f.SetString(strings.TrimSpace(val))
			}
		case reflect.Struct:
			if kids := sc.children(l); len(kids) > 0 {
				if err := fill(kids[0], f); err != nil {
					return err
				}
			}
		case reflect.Slice:
			elem := fld.Type.Elem()
			switch elem.Kind() {
			case reflect.String:
				vals := sc.values(l)
				slice := reflect.MakeSlice(fld.Type, 0, len(vals))
				for _, v := range vals {
					slice = reflect.Append(slice, reflect.ValueOf(strings.TrimSpace(v)).Convert(elem))
				}
				f.Set(slice)
			case reflect.Struct:
				kids := sc.children(l)
				slice := reflect.MakeSlice(fld.Type, 0, len(kids))
				for _, k := range kids {
					item := reflect.New(elem).Elem()
					if err := fill(k, item); err != nil {
						return err
					}
					slice = reflect.Append(slice, item)
				}
				f.Set(slice)
			}
		}
	}
	return nil
}
