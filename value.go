package hl7

import (
	"time"

	"github.com/shopspring/decimal"
)

// Value is one field value: a primitive, a Composite or a Repeated collection.
// A nil Value is an absent field.
type Value interface {
	isValue()
}

// String is a text primitive (ST, ID, IS, TX, FT, ...)
type String string

// Raw is a token kept exactly as it appeared on the wire. It is never escaped
// or unescaped and is used for generic segment fields and for tokens beyond
// a segment's declared fields.
type Raw string

// Integer is a whole number primitive (SI and integer NM fields)
type Integer int64

// Decimal is a numeric primitive (NM)
type Decimal struct {
	decimal.Decimal
}

// Time is a date/time primitive. Its wire precision comes from the slot's Kind.
type Time struct {
	time.Time
}

// Composite holds one Value per declared slot, positionally
type Composite []Value

// Repeated holds the occurrences of a repeating field, in wire order
type Repeated []Value

func (String) isValue()    {}
func (Raw) isValue()       {}
func (Integer) isValue()   {}
func (Decimal) isValue()   {}
func (Time) isValue()      {}
func (Composite) isValue() {}
func (Repeated) isValue()  {}

// NewDecimal parses s into a Decimal value
func NewDecimal(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{d}, nil
}

// At returns the value in slot i (0-based) or nil when i is out of range
func (c Composite) At(i int) Value {
	if i < 0 || i >= len(c) {
		return nil
	}
	return c[i]
}

// IsEmpty reports whether every slot is absent
func (c Composite) IsEmpty() bool {
	for _, v := range c {
		if v != nil {
			return false
		}
	}
	return true
}

// first returns the first occurrence of a repeated value, or v itself
func first(v Value) Value {
	if r, ok := v.(Repeated); ok {
		if len(r) == 0 {
			return nil
		}
		return r[0]
	}
	return v
}

// occurrences returns every occurrence of a repeated value, or v itself
func occurrences(v Value) []Value {
	if r, ok := v.(Repeated); ok {
		return r
	}
	return []Value{v}
}
