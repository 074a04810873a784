package hl7

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSegment(t *testing.T) {
	c := NewCodec()
	seg := NewSegment(testEQL)
	seg.SetField(1, String("Q1"))
	seg.SetField(3, Composite{String("N1"), nil, nil})
	assert.Equal(t, "EQL|Q1||N1", c.EncodeSegment(seg))

	empty := NewSegment(testEQL)
	assert.Equal(t, "EQL", c.EncodeSegment(empty))
}

func TestDecodeSegment(t *testing.T) {
	c := NewCodec()
	seg, err := c.DecodeSegment("EQL|Q1||N1", testEQL)
	require.NoError(t, err)
	assert.Equal(t, "EQL", seg.Tag)
	assert.False(t, seg.IsGeneric())
	assert.Equal(t, []Value{String("Q1"), nil, Composite{String("N1"), nil, nil}, nil}, seg.Fields)
	assert.Equal(t, String("Q1"), seg.FieldByName("QueryTag"))
	assert.Nil(t, seg.FieldByName("NoSuchField"))

	seg, err = c.DecodeSegment("EQL", testEQL)
	require.NoError(t, err)
	assert.Equal(t, []Value{nil, nil, nil, nil}, seg.Fields)
}

func TestSegmentExtraTokensKeptRaw(t *testing.T) {
	c := NewCodec()
	line := "EQL|Q1|D|N1|SELECT|extra^stuff||last"
	seg, err := c.DecodeSegment(line, testEQL)
	require.NoError(t, err)
	assert.Equal(t, Raw("extra^stuff"), seg.Field(5))
	assert.Nil(t, seg.Field(6))
	assert.Equal(t, Raw("last"), seg.Field(7))
	assert.Equal(t, line, c.EncodeSegment(seg))
}

func TestGenericSegment(t *testing.T) {
	c := NewCodec()
	line := `ZPI|a^b||c\F\d`
	seg, err := c.DecodeSegment(line, nil)
	require.NoError(t, err)
	assert.True(t, seg.IsGeneric())
	assert.Equal(t, []Value{Raw("a^b"), nil, Raw(`c\F\d`)}, seg.Fields)
	assert.Equal(t, line, c.EncodeSegment(seg))

	built := NewGenericSegment("ZZ1", String("a|b"), nil, Composite{String("x"), String("y")})
	assert.Equal(t, `ZZ1|a\F\b||x^y`, c.EncodeSegment(built))
}

func TestHeaderSegment(t *testing.T) {
	c := NewCodec()
	seg := NewSegment(testMSH)
	seg.SetField(3, Composite{String("APP"), nil, nil})
	out := c.EncodeSegment(seg)
	assert.Equal(t, `MSH|^~\&|APP`, out)

	// fields 1 and 2 are never taken from the field list
	seg.SetField(1, String("#"))
	seg.SetField(2, String("xxxx"))
	assert.Equal(t, out, c.EncodeSegment(seg))

	assert.Equal(t, `MSH|^~\&`, c.EncodeSegment(NewSegment(testMSH)))

	decoded, err := c.DecodeSegment(`MSH|^~\&|APP|FAC&1.2&ISO`, testMSH)
	require.NoError(t, err)
	assert.Equal(t, String("|"), decoded.Field(1))
	assert.Equal(t, String(`^~\&`), decoded.Field(2))
	assert.Equal(t, Composite{String("APP"), nil, nil}, decoded.Field(3))
	// sub-components under a primitive slot stay as they came
	assert.Equal(t, Composite{Raw("FAC&1.2&ISO"), nil, nil}, decoded.Field(4))
	assert.Equal(t, `MSH|^~\&|APP|FAC&1.2&ISO`, c.EncodeSegment(decoded))
}

func TestHeaderSegmentCustomSeparators(t *testing.T) {
	sep := Separators{Field: "#", Component: ":", Repetition: "*", Escape: "!", SubComponent: "@"}
	c := NewCodec(WithSeparators(sep))
	seg := NewSegment(testMSH)
	seg.SetField(3, Composite{String("APP"), String("1.2")})
	assert.Equal(t, "MSH#:*!@#APP:1.2", c.EncodeSegment(seg))

	generic, err := c.DecodeSegment("BHS#:*!@#A#B", nil)
	require.NoError(t, err)
	assert.Equal(t, []Value{String("#"), String(":*!@"), Raw("A"), Raw("B")}, generic.Fields)
	assert.Equal(t, "BHS#:*!@#A#B", c.EncodeSegment(generic))
}

func TestTypedSegment(t *testing.T) {
	c := NewCodec()
	seg, err := c.DecodeSegment("ZOB|2|98.60|20240101101500|A^Alpha~B^Beta", testObs)
	require.NoError(t, err)
	assert.Equal(t, Integer(2), seg.Field(1))
	assert.Equal(t, "98.6", FormatPrimitive(seg.Field(2), KindDecimal))
	assert.Equal(t, Time{time.Date(2024, 1, 1, 10, 15, 0, 0, time.UTC)}, seg.Field(3))
	assert.Equal(t, Repeated{
		Composite{String("A"), String("Alpha"), nil},
		Composite{String("B"), String("Beta"), nil},
	}, seg.Field(4))
	assert.Equal(t, "ZOB|2|98.6|20240101101500|A^Alpha~B^Beta", c.EncodeSegment(seg))
}

func TestSegmentErrors(t *testing.T) {
	c := NewCodec(WithStrict(true))
	_, err := c.DecodeSegment("ZOB|x", testObs)
	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Contains(t, err.Error(), "ZOB-1")

	_, err = c.DecodeSegment("PID|1", testEQL)
	assert.Error(t, err)

	// lenient mode reads the same token as absent
	seg, err := NewCodec().DecodeSegment("ZOB|x|1", testObs)
	require.NoError(t, err)
	assert.Nil(t, seg.Field(1))
	assert.Equal(t, "ZOB||1", NewCodec().EncodeSegment(seg))
}

func TestSetField(t *testing.T) {
	seg := NewGenericSegment("ZZ1")
	seg.SetField(3, String("c"))
	assert.Equal(t, []Value{nil, nil, String("c")}, seg.Fields)
	seg.SetField(0, String("ignored"))
	assert.Len(t, seg.Fields, 3)
	assert.Nil(t, seg.Field(10))
	assert.Equal(t, "ZZ1", seg.Name())
}
