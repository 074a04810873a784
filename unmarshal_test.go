package hl7_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type Observation struct {
	SetID        string `hl7:"OBX.1"`
	ValueType    string `hl7:"OBX.2"`
	Identifier   string `hl7:"OBX.3.1"`
	Name         string `hl7:"OBX.3.2"`
	Value        string `hl7:"OBX.5"`
	Units        string `hl7:"OBX.6.1"`
	Range        string `hl7:"OBX.7"`
	ResultStatus string `hl7:"OBX.11"`
}

type MessageHeader struct {
	SendingApp        string      `hl7:"MSH.3"`
	SendingFacility   string      `hl7:"MSH.4"`
	ReceivingApp      string      `hl7:"MSH.5"`
	MsgDate           string      `hl7:"MSH.7"`
	MessageCode       MessageType `hl7:"MSH.9"`
	SimpleMessageCode string      `hl7:"MSH.9.1"`
	ControlID         string      `hl7:"MSH.10"`
	ProcessingID      string      `hl7:"MSH.11"`
	VersionID         string      `hl7:"MSH.12"`
	NoSuchValue       string      `hl7:"MSH.99"`
}

type MessageType struct {
	MessageCode      string `hl7:"MSG.1"`
	TriggerEvent     string `hl7:"MSG.2"`
	MessageStructure string `hl7:"MSG.3"`
}

type PatientVisit struct {
	PatientClass    string                  `hl7:"PV1.2"`
	Location        AssignedPatientLocation `hl7:"PV1.3"`
	FullLocation    string                  `hl7:"PV1.3"`
	AttendingDoctor []PersonIdentifier      `hl7:"PV1.7"`
}

type AssignedPatientLocation struct {
	PointOfCare string `hl7:"PL.1"`
	Room        string `hl7:"PL.2"`
	Bed         string `hl7:"PL.3"`
	Facility    string `hl7:"PL.4"`
}

type PersonIdentifier struct {
	PersonalIdentifier string `hl7:"XCN.1"`
	FamilyName         string `hl7:"XCN.2"`
	AssigningAuthority string `hl7:"XCN.9"`
	IdentifierTypeCode string `hl7:"XCN.13"`
}

type RoleSegment struct {
	RoleInstanceID string             `hl7:"ROL.1"`
	RoleActionCode string             `hl7:"ROL.2"`
	Role           string             `hl7:"ROL.3.2"`
	RolePersons    []PersonIdentifier `hl7:"ROL.4"`
}

type ORUMessage struct {
	Header       MessageHeader `hl7:"MSH"`
	Visit        PatientVisit  `hl7:"PV1"`
	Observations []Observation `hl7:"OBX"`
	Roles        []RoleSegment `hl7:"ROL"`
	AllValues    []string      `hl7:"OBX.5"`
}

func TestTaggedStructParsing(t *testing.T) {
	msg, _ := parseFile(t, "./testdata/oru_r01.hl7")

	oru := &ORUMessage{}
	if err := msg.Unmarshal(oru); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "LAB", oru.Header.SendingApp)
	assert.Equal(t, "MCM", oru.Header.SendingFacility)
	assert.Equal(t, "EHR", oru.Header.ReceivingApp)
	assert.Equal(t, "20240305083000", oru.Header.MsgDate)
	assert.Equal(t, "ORU", oru.Header.MessageCode.MessageCode)
	assert.Equal(t, "R01", oru.Header.MessageCode.TriggerEvent)
	assert.Equal(t, "ORU_R01", oru.Header.MessageCode.MessageStructure)
	assert.Equal(t, "ORU", oru.Header.SimpleMessageCode)
	assert.Equal(t, "MSG00002", oru.Header.ControlID)
	assert.Equal(t, "P", oru.Header.ProcessingID)
	assert.Equal(t, "2.5.1", oru.Header.VersionID)
	assert.Equal(t, "", oru.Header.NoSuchValue)

	// check the observations
	assert.Equal(t, 2, len(oru.Observations))
	assert.Equal(t, Observation{
		SetID:        "1",
		ValueType:    "NM",
		Identifier:   "2093-3",
		Name:         "Cholesterol",
		Value:        "196",
		Units:        "mg/dL",
		Range:        "<200",
		ResultStatus: "F",
	}, oru.Observations[0])
	assert.Equal(t, "247.5", oru.Observations[1].Value)
	assert.Equal(t, []string{"196", "247.5"}, oru.AllValues)

	// check the role segments
	assert.Equal(t, 2, len(oru.Roles))
	role := oru.Roles[0]
	assert.Equal(t, "1", role.RoleInstanceID)
	assert.Equal(t, "UP", role.RoleActionCode)
	assert.Equal(t, "Patient Care", role.Role)
	assert.Equal(t, 2, len(role.RolePersons))
	assert.Equal(t, "10535", role.RolePersons[0].PersonalIdentifier)
	assert.Equal(t, "SMITH", role.RolePersons[0].FamilyName)
	assert.Equal(t, "10536", role.RolePersons[1].PersonalIdentifier)

	role = oru.Roles[1]
	assert.Equal(t, "2", role.RoleInstanceID)
	assert.Equal(t, "AD", role.RoleActionCode)
	assert.Equal(t, "Consult MD", role.Role)
	assert.Equal(t, 1, len(role.RolePersons))
	assert.Equal(t, "LFA", role.RolePersons[0].PersonalIdentifier)
	assert.Equal(t, "EHR1", role.RolePersons[0].AssigningAuthority)
	assert.Equal(t, "EHR_ID", role.RolePersons[0].IdentifierTypeCode)

	// check the visit
	assert.Equal(t, "I", oru.Visit.PatientClass)
	assert.Equal(t, 1, len(oru.Visit.AttendingDoctor))
	assert.Equal(t, "004777", oru.Visit.AttendingDoctor[0].PersonalIdentifier)

	// check visit location
	assert.Equal(t, "2000", oru.Visit.Location.PointOfCare)
	assert.Equal(t, "2012", oru.Visit.Location.Room)
	assert.Equal(t, "01", oru.Visit.Location.Bed)
	assert.Equal(t, "", oru.Visit.Location.Facility)
	assert.Equal(t, "2000^2012^01", oru.Visit.FullLocation)
}

func TestStandardPatientIdParsing(t *testing.T) {
	msg, _ := parseFile(t, "./testdata/oru_r01.hl7")

	type PatientID struct {
		ID         string `hl7:"CX.1"`
		Authority  string `hl7:"CX.4"`
		IDTypeCode string `hl7:"CX.5"`
	}
	type PatientDetails struct {
		GivenName string      `hl7:"PID.5.2"`
		Sex       string      `hl7:"PID.8.1"`
		IDs       []PatientID `hl7:"PID.3"`
	}
	type Message struct {
		Patient PatientDetails `hl7:"PID"`
	}

	patient := &Message{}
	if err := msg.Unmarshal(patient); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "GRACE", patient.Patient.GivenName)
	assert.Equal(t, "F", patient.Patient.Sex)
	if assert.Len(t, patient.Patient.IDs, 2) {
		assert.Equal(t, PatientID{ID: "1", Authority: "MCM", IDTypeCode: "MR"}, patient.Patient.IDs[0])
		assert.Equal(t, PatientID{ID: "2", Authority: "MCM", IDTypeCode: "SS"}, patient.Patient.IDs[1])
	}

	// the same struct read from the message directly
	details := &PatientDetails{}
	if err := msg.Unmarshal(details); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, patient.Patient, *details)
}

func TestUnmarshalRejectsNonPointer(t *testing.T) {
	msg, _ := parseFile(t, "./testdata/oru_r01.hl7")
	assert.Error(t, msg.Unmarshal(ORUMessage{}))

	s := "x"
	assert.Error(t, msg.Unmarshal(&s))
}
