package hl7_test

import (
	"testing"

	"github.com/oarkflow/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON(t *testing.T) {
	msg, _ := parseFile(t, "./testdata/adt_a01.hl7")
	data, err := json.Marshal(msg)
	require.NoError(t, err)

	var out struct {
		Version  string `json:"version"`
		Segments []struct {
			Tag     string         `json:"tag"`
			Ordinal int            `json:"ordinal"`
			Fields  map[string]any `json:"fields"`
		} `json:"segments"`
	}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "2.5.1", out.Version)
	require.Len(t, out.Segments, 7)

	msh := out.Segments[0]
	assert.Equal(t, "MSH", msh.Tag)
	assert.Equal(t, "|", msh.Fields["FieldSeparator"])
	assert.Equal(t, map[string]any{"MessageCode": "ADT", "TriggerEvent": "A01", "MessageStructure": "ADT_A01"}, msh.Fields["MessageType"])

	pid := out.Segments[2]
	assert.Equal(t, "PID", pid.Tag)
	assert.Equal(t, 3, pid.Ordinal)
	assert.Equal(t, float64(1), pid.Fields["SetID"])
	assert.Equal(t, "M", pid.Fields["AdministrativeSex"])
	_, present := pid.Fields["PatientID"]
	assert.False(t, present, "absent fields are omitted")

	ids, ok := pid.Fields["PatientIdentifierList"].([]any)
	require.True(t, ok)
	require.Len(t, ids, 2)
	first := ids[0].(map[string]any)
	assert.Equal(t, "PATID1234", first["IDNumber"])
	assert.Equal(t, map[string]any{"NamespaceID": "GOOD HEALTH HOSPITAL"}, first["AssigningAuthority"])

	dob := pid.Fields["DateTimeOfBirth"].(map[string]any)
	assert.Equal(t, "1961-06-15T00:00:00Z", dob["Time"])

	zpi := out.Segments[6]
	assert.Equal(t, "ZPI", zpi.Tag)
	assert.Equal(t, map[string]any{"1": "custom^value", "3": "42"}, zpi.Fields)
}
