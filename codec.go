package hl7

import (
	"strings"

	"github.com/oarkflow/log"
)

// Codec converts between typed values and ER7 text. A Codec holds no mutable
// state and may be shared between goroutines.
type Codec struct {
	opts Options
	sep  Separators
	// explicit is set when the caller chose the separators
	explicit bool
	log      *log.Logger
}

// NewCodec returns a Codec configured by opts
func NewCodec(opts ...Option) *Codec {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.Logger == nil {
		o.Logger = &quietLogger
	}
	return &Codec{
		opts:     *o,
		sep:      o.Separators.withDefaults(),
		explicit: !o.Separators.IsZero(),
		log:      o.Logger,
	}
}

// Separators returns the delimiters used for serialization
func (c *Codec) Separators() Separators {
	return c.sep
}

// withSeparators returns a copy of c using sep
func (c *Codec) withSeparators(sep Separators) *Codec {
	cc := *c
	cc.sep = sep.withDefaults()
	return &cc
}

// EncodeField serializes a segment field value declared by slot. slot may be
// nil, in which case the value alone drives the encoding.
func (c *Codec) EncodeField(slot *Slot, v Value) string {
	return c.encode(slot, v, LevelComponent)
}

// DecodeField parses a segment field token declared by slot
func (c *Codec) DecodeField(slot *Slot, token string) (Value, error) {
	return c.decode(slot, token, LevelComponent)
}

// EncodeComposite serializes a composite value at the component level.
// Unpopulated trailing components are omitted.
func (c *Codec) EncodeComposite(t *TypeDef, v Composite) string {
	return c.encodeComposite(t, v, LevelComponent)
}

// DecodeComposite parses a component-level token into a composite of t.
// The result always has one entry per declared slot; the empty token yields
// an all-absent composite.
func (c *Codec) DecodeComposite(t *TypeDef, token string) (Composite, error) {
	return c.decodeComposite(t, token, LevelComponent)
}

func (c *Codec) encode(slot *Slot, v Value, lvl Level) string {
	switch v := v.(type) {
	case nil:
		return ""
	case Repeated:
		one := slot.single()
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = c.encode(one, item, lvl)
		}
		return trimTrailing(strings.Join(parts, c.sep.Repetition), c.sep.Repetition)
	case Composite:
		var t *TypeDef
		if slot != nil {
			t = slot.Type
		}
		return c.encodeComposite(t, v, lvl)
	case String:
		if c.opts.Escaping {
			return Escape(string(v), c.sep)
		}
		return string(v)
	}
	kind := KindString
	if slot != nil {
		kind = slot.Kind
	}
	return FormatPrimitive(v, kind)
}

// encodeComposite joins the slots of v with the delimiter of lvl and trims
// trailing delimiters. t may be nil or shorter than v.
func (c *Codec) encodeComposite(t *TypeDef, v Composite, lvl Level) string {
	delim := c.sep.delimiter(lvl)
	parts := make([]string, len(v))
	for i, item := range v {
		parts[i] = c.encode(t.Slot(i), item, lvl.next())
	}
	return trimTrailing(strings.Join(parts, delim), delim)
}

func (c *Codec) decode(slot *Slot, token string, lvl Level) (Value, error) {
	if token == "" {
		return nil, nil
	}
	if slot != nil && slot.Repeated {
		one := slot.single()
		chunks := strings.Split(token, c.sep.Repetition)
		out := make(Repeated, 0, len(chunks))
		for _, chunk := range chunks {
			v, err := c.decodeSingle(one, chunk, lvl)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
	return c.decodeSingle(slot, token, lvl)
}

func (c *Codec) decodeSingle(slot *Slot, token string, lvl Level) (Value, error) {
	if token == "" {
		return nil, nil
	}
	if slot == nil {
		return c.decodeString(token), nil
	}
	if slot.Type != nil {
		return c.decodeComposite(slot.Type, token, lvl)
	}
	if slot.Kind == KindString {
		return c.decodeString(token), nil
	}
	return c.decodePrimitive(token, slot.Kind)
}

// decodeComposite splits token on the delimiter of lvl without dropping empty
// entries so positions stay aligned. Slots past the last token stay absent;
// tokens past the last slot are dropped.
func (c *Codec) decodeComposite(t *TypeDef, token string, lvl Level) (Composite, error) {
	out := make(Composite, len(t.Slots))
	if token == "" {
		return out, nil
	}
	parts := strings.Split(token, c.sep.delimiter(lvl))
	for i := range out {
		if i >= len(parts) {
			break
		}
		v, err := c.decode(&t.Slots[i], parts[i], lvl.next())
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// decodeString reads a text token. A token still holding delimiters belongs
// to a structure the declaration does not know about; it is kept Raw so it is
// written back unchanged.
func (c *Codec) decodeString(token string) Value {
	if !c.opts.Escaping {
		return String(token)
	}
	if strings.ContainsAny(token, c.sep.Field+c.sep.Component+c.sep.Repetition+c.sep.SubComponent) {
		return Raw(token)
	}
	return String(Unescape(token, c.sep))
}

func (c *Codec) decodePrimitive(token string, kind Kind) (Value, error) {
	if c.opts.Strict {
		return ParsePrimitive(token, kind)
	}
	v, err := parseLenient(token, kind)
	if err != nil {
		c.log.Debug().Str("kind", kind.String()).Str("token", token).Err(err).Msg("discarding malformed value")
		return nil, nil
	}
	return v, nil
}
