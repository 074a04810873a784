package hl7

import (
	"strconv"
	"time"

	"github.com/oarkflow/json"
)

type jsonSegment struct {
	Tag     string         `json:"tag"`
	Ordinal int            `json:"ordinal"`
	Fields  map[string]any `json:"fields"`
}

type jsonMessage struct {
	Version  string        `json:"version"`
	Segments []jsonSegment `json:"segments"`
}

// MarshalJSON renders the message as a named tree. Declared fields and
// components are keyed by name, others by their 1-based position.
func (m *Message) MarshalJSON() ([]byte, error) {
	out := jsonMessage{Version: m.Version, Segments: []jsonSegment{}}
	for _, seg := range m.Sorted() {
		js := jsonSegment{Tag: seg.Tag, Ordinal: seg.Ordinal, Fields: map[string]any{}}
		for i, v := range seg.Fields {
			if v == nil {
				continue
			}
			slot := seg.slot(i + 1)
			js.Fields[slotKey(slot, i)] = jsonValue(slot, v)
		}
		out.Segments = append(out.Segments, js)
	}
	return json.Marshal(out)
}

func slotKey(slot *Slot, i int) string {
	if slot != nil && slot.Name != "" {
		return slot.Name
	}
	return strconv.Itoa(i + 1)
}

func jsonValue(slot *Slot, v Value) any {
	switch v := v.(type) {
	case String:
		return string(v)
	case Raw:
		return string(v)
	case Integer:
		return int64(v)
	case Decimal:
		return v.String()
	case Time:
		return v.Format(time.RFC3339Nano)
	case Repeated:
		one := slot.single()
		out := make([]any, 0, len(v))
		for _, item := range v {
			out = append(out, jsonValue(one, item))
		}
		return out
	case Composite:
		out := map[string]any{}
		for i, item := range v {
			if item == nil {
				continue
			}
			s := slot.component(i)
			out[slotKey(s, i)] = jsonValue(s, item)
		}
		return out
	}
	return nil
}
