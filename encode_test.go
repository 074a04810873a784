package hl7_test

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hl7 "github.com/kamlesh-microsoft/clear-hl7-net-sub002"
	"github.com/kamlesh-microsoft/clear-hl7-net-sub002/v251"
)

func TestDecoderMessages(t *testing.T) {
	file, err := os.Open("./testdata/batch.hl7")
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	msgs, err := hl7.NewDecoder(file, v251.Registry()).Messages()
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, msgs, 2)

	for i, want := range []string{"ALPHA", "BETA"} {
		assert.Len(t, msgs[i].Segments, 3)
		name, err := msgs[i].Find("PID.5.1")
		require.NoError(t, err)
		assert.Equal(t, want, name)
	}
	id, err := msgs[1].Find("MSH.10")
	require.NoError(t, err)
	assert.Equal(t, "B0002", id)
}

func TestDecoderFramedStream(t *testing.T) {
	stream := "\x0bMSH|^~\\&|||||||ADT^A01|1|P|2.5.1\rPID|1||A\r\x1c\r" +
		"\x0bMSH|^~\\&|||||||ADT^A01|2|P|2.5.1\rPID|1||B\r\x1c\r"
	msgs, err := hl7.NewDecoder(strings.NewReader(stream), v251.Registry()).Messages()
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "MSH|^~\\&|||||||ADT^A01|2|P|2.5.1\rPID|1||B\r", msgs[1].String())
}

func TestDecoderStopsAtFirstError(t *testing.T) {
	stream := "MSH|^~\\&|||||||ADT^A01|1|P|2.5.1\rPID|1\r" +
		"MSH|^~\\&|||||||ADT^A01|2|P|2.5.1\rXYZ|1\r"
	msgs, err := hl7.NewDecoder(strings.NewReader(stream), v251.Registry()).Messages()
	var unknown *hl7.UnknownSegmentError
	assert.True(t, errors.As(err, &unknown))
	assert.Len(t, msgs, 1)
}

func TestEncoder(t *testing.T) {
	msg, text := parseFile(t, "./testdata/adt_a01.hl7")

	var buf bytes.Buffer
	require.NoError(t, hl7.NewEncoder(&buf).Encode(msg))
	assert.Equal(t, text, buf.String())

	sep := hl7.DefaultSeparators()
	sep.LineTerminator = "\n"
	buf.Reset()
	require.NoError(t, hl7.NewEncoder(&buf, hl7.WithSeparators(sep)).Encode(msg))
	assert.Equal(t, strings.ReplaceAll(text, "\r", "\n"), buf.String())

	// what the encoder writes the decoder reads back
	msgs, err := hl7.NewDecoder(&buf, v251.Registry()).Messages()
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, msg.Segments, msgs[0].Segments)
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	return len(p) / 2, nil
}

func TestEncoderShortWrite(t *testing.T) {
	msg, _ := parseFile(t, "./testdata/adt_a01.hl7")
	assert.Error(t, hl7.NewEncoder(shortWriter{}).Encode(msg))
}

func TestDecoderBatchEnvelope(t *testing.T) {
	file, err := os.Open("./testdata/batch_fhs.hl7")
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	msgs, err := hl7.NewDecoder(file, v251.Registry()).Messages()
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	assert.Equal(t, []string{"FHS", "BHS", "MSH", "PID"}, tags(msgs[0].Segments))
	assert.Equal(t, []string{"MSH", "PID", "BTS", "FTS"}, tags(msgs[1].Segments))
	assert.True(t, strings.HasPrefix(msgs[0].String(), "FHS|^~\\&|LAB|"))

	id, err := msgs[0].Find("BHS.11")
	require.NoError(t, err)
	assert.Equal(t, "B001", id)
	name, err := msgs[1].Find("PID.5.1")
	require.NoError(t, err)
	assert.Equal(t, "DELTA", name)
}

func TestDecoderLongSegment(t *testing.T) {
	// an embedded document well past any line buffer
	doc := strings.Repeat("QUJD", 5*1024*1024/4)
	stream := "MSH|^~\\&|||||||ORU^R01|1|P|2.5.1\rOBX|1|ED|PDF||^AP^PDF^Base64^" + doc + "\r" +
		"MSH|^~\\&|||||||ORU^R01|2|P|2.5.1\rNTE|1||after\r"

	msgs, err := hl7.NewDecoder(strings.NewReader(stream), v251.Registry()).Messages()
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, []string{"MSH", "OBX"}, tags(msgs[0].Segments))

	data, err := msgs[0].Find("OBX.5.5")
	require.NoError(t, err)
	assert.Len(t, data, len(doc))

	note, err := msgs[1].Find("NTE.3")
	require.NoError(t, err)
	assert.Equal(t, "after", note)
}
