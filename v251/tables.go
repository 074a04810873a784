package v251

import hl7 "github.com/kamlesh-microsoft/clear-hl7-net-sub002"

func code(name, value, display string) hl7.CodeEntry {
	return hl7.CodeEntry{Name: name, Code: value, Display: display}
}

// Code tables
var (
	AdministrativeSex = hl7.NewCodeTable("0001", "Administrative Sex",
		code("Female", "F", "Female"),
		code("Male", "M", "Male"),
		code("Other", "O", "Other"),
		code("Unknown", "U", "Unknown"),
		code("Ambiguous", "A", "Ambiguous"),
		code("NotApplicable", "N", "Not applicable"),
	)

	EventType = hl7.NewCodeTable("0003", "Event Type",
		code("AdmitVisitNotification", "A01", "ADT/ACK - Admit/visit notification"),
		code("TransferPatient", "A02", "ADT/ACK - Transfer a patient"),
		code("DischargeEndVisit", "A03", "ADT/ACK - Discharge/end visit"),
		code("RegisterPatient", "A04", "ADT/ACK - Register a patient"),
		code("PreadmitPatient", "A05", "ADT/ACK - Pre-admit a patient"),
		code("UpdatePatientInformation", "A08", "ADT/ACK - Update patient information"),
		code("CancelAdmit", "A11", "ADT/ACK - Cancel admit/visit notification"),
		code("MergePatientInformation", "A40", "ADT/ACK - Merge patient - patient identifier list"),
		code("OrderMessage", "O01", "ORM - Order message"),
		code("UnsolicitedObservation", "R01", "ORU/ACK - Unsolicited transmission of an observation message"),
		code("EmbeddedQueryLanguageQuery", "Q04", "EQQ - embedded query language query"),
	)

	PatientClass = hl7.NewCodeTable("0004", "Patient Class",
		code("Emergency", "E", "Emergency"),
		code("Inpatient", "I", "Inpatient"),
		code("Outpatient", "O", "Outpatient"),
		code("Preadmit", "P", "Preadmit"),
		code("RecurringPatient", "R", "Recurring patient"),
		code("Obstetrics", "B", "Obstetrics"),
		code("CommercialAccount", "C", "Commercial Account"),
		code("NotApplicable", "N", "Not Applicable"),
		code("Unknown", "U", "Unknown"),
	)

	AcknowledgmentCode = hl7.NewCodeTable("0008", "Acknowledgment Code",
		code("ApplicationAccept", "AA", "Original mode: Application Accept - Enhanced mode: Application acknowledgment: Accept"),
		code("ApplicationError", "AE", "Original mode: Application Error - Enhanced mode: Application acknowledgment: Error"),
		code("ApplicationReject", "AR", "Original mode: Application Reject - Enhanced mode: Application acknowledgment: Reject"),
		code("CommitAccept", "CA", "Enhanced mode: Accept acknowledgment: Commit Accept"),
		code("CommitError", "CE", "Enhanced mode: Accept acknowledgment: Commit Error"),
		code("CommitReject", "CR", "Enhanced mode: Accept acknowledgment: Commit Reject"),
	)

	MessageType = hl7.NewCodeTable("0076", "Message Type",
		code("GeneralAcknowledgment", "ACK", "General acknowledgment message"),
		code("AdtMessage", "ADT", "ADT message"),
		code("EmbeddedQueryLanguageQuery", "EQQ", "Embedded query language query"),
		code("OrderMessage", "ORM", "Pharmacy/treatment order message"),
		code("UnsolicitedObservation", "ORU", "Unsolicited transmission of an observation message"),
		code("SchedulingInformation", "SIU", "Schedule information unsolicited"),
	)

	ObservationResultStatus = hl7.NewCodeTable("0085", "Observation Result Status Codes Interpretation",
		code("Correction", "C", "Record coming over is a correction and thus replaces a final result"),
		code("Deleted", "D", "Deletes the OBX record"),
		code("Final", "F", "Final results; Can only be changed with a corrected result."),
		code("Pending", "I", "Specimen in lab; results pending"),
		code("NotAsked", "N", "Not asked; used to affirmatively document that the observation identified in the OBX was not sought when the universal service ID in OBR-4 implies that it would be sought."),
		code("OrderDetail", "O", "Order detail description only (no result)"),
		code("Preliminary", "P", "Preliminary results"),
		code("NotVerified", "R", "Results entered -- not verified"),
		code("Partial", "S", "Partial results"),
		code("StatusChanged", "U", "Results status change to final without retransmitting results already sent as 'preliminary.'"),
		code("Wrong", "W", "Post original as wrong, e.g., transmitted for wrong patient"),
		code("Cannot", "X", "Results cannot be obtained for this observation"),
	)

	ProcessingID = hl7.NewCodeTable("0103", "Processing ID",
		code("Debugging", "D", "Debugging"),
		code("Production", "P", "Production"),
		code("Training", "T", "Training"),
	)

	VersionID = hl7.NewCodeTable("0104", "Version ID",
		code("Release2_3", "2.3", "Release 2.3"),
		code("Release2_3_1", "2.3.1", "Release 2.3.1"),
		code("Release2_4", "2.4", "Release 2.4"),
		code("Release2_5", "2.5", "Release 2.5"),
		code("Release2_5_1", "2.5.1", "Release 2.5.1"),
		code("Release2_6", "2.6", "Release 2.6"),
	)

	QueryResponseFormatCode = hl7.NewCodeTable("0106", "Query/Response Format Code",
		code("Display", "D", "Response is in display format"),
		code("Record", "R", "Response is in record-oriented format"),
		code("Tabular", "T", "Response is in tabular format"),
	)

	OrderControl = hl7.NewCodeTable("0119", "Order Control Codes",
		code("NewOrder", "NW", "New order/service"),
		code("OrderAccepted", "OK", "Order/service accepted & OK"),
		code("CancelRequest", "CA", "Cancel order/service request"),
		code("Canceled", "CR", "Canceled as requested"),
		code("StatusChanged", "SC", "Status changed"),
		code("ChangeOrder", "XO", "Change order/service request"),
		code("ObservationsFollow", "RE", "Observations/Performed Service to follow"),
	)

	ValueType = hl7.NewCodeTable("0125", "Value Type",
		code("CodedElement", "CE", "Coded Entry"),
		code("CodedWithExceptions", "CWE", "Coded Entry"),
		code("Date", "DT", "Date"),
		code("EncapsulatedData", "ED", "Encapsulated Data"),
		code("FormattedText", "FT", "Formatted Text (Display)"),
		code("Numeric", "NM", "Numeric"),
		code("StructuredNumeric", "SN", "Structured Numeric"),
		code("String", "ST", "String Data."),
		code("Time", "TM", "Time"),
		code("TimeStamp", "TS", "Time Stamp (Date & Time)"),
		code("Text", "TX", "Text Data (Display)"),
	)

	YesNoIndicator = hl7.NewCodeTable("0136", "Yes/no Indicator",
		code("Yes", "Y", "Yes"),
		code("No", "N", "No"),
	)

	AcceptApplicationAcknowledgmentConditions = hl7.NewCodeTable("0155", "Accept/Application Acknowledgment Conditions",
		code("Always", "AL", "Always"),
		code("Never", "NE", "Never"),
		code("ErrorRejectOnly", "ER", "Error/reject conditions only"),
		code("SuccessfulOnly", "SU", "Successful completion only"),
	)
)

// Tables returns every code table of the version
func Tables() []*hl7.CodeTable {
	return []*hl7.CodeTable{
		AdministrativeSex, EventType, PatientClass, AcknowledgmentCode, MessageType,
		ObservationResultStatus, ProcessingID, VersionID, QueryResponseFormatCode,
		OrderControl, ValueType, YesNoIndicator, AcceptApplicationAcknowledgmentConditions,
	}
}
