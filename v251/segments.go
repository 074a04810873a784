package v251

import hl7 "github.com/kamlesh-microsoft/clear-hl7-net-sub002"

func header(kind string) []hl7.Slot {
	return []hl7.Slot{
		str("FieldSeparator"),
		str("EncodingCharacters"),
		comp(kind+"SendingApplication", HD),
		comp(kind+"SendingFacility", HD),
		comp(kind+"ReceivingApplication", HD),
		comp(kind+"ReceivingFacility", HD),
		comp(kind+"CreationDateTime", TS),
		str(kind + "Security"),
		str(kind + "NameID"),
		str(kind + "HeaderComment"),
		str(kind + "ControlID"),
		str("Reference" + kind + "ControlID"),
	}
}

// Segments
var (
	MSH = hl7.NewSegmentDef("MSH", "Message Header",
		str("FieldSeparator"),
		str("EncodingCharacters"),
		comp("SendingApplication", HD),
		comp("SendingFacility", HD),
		comp("ReceivingApplication", HD),
		comp("ReceivingFacility", HD),
		comp("DateTimeOfMessage", TS),
		str("Security"),
		comp("MessageType", MSG),
		str("MessageControlID"),
		comp("ProcessingID", PT),
		comp("VersionID", VID),
		num("SequenceNumber"),
		str("ContinuationPointer"),
		str("AcceptAcknowledgmentType").Coded("0155"),
		str("ApplicationAcknowledgmentType").Coded("0155"),
		str("CountryCode"),
		str("CharacterSet").Repeating(),
		comp("PrincipalLanguageOfMessage", CE),
		str("AlternateCharacterSetHandlingScheme"),
		comp("MessageProfileIdentifier", EI).Repeating(),
	)

	FHS = hl7.NewSegmentDef("FHS", "File Header", header("File")...)
	BHS = hl7.NewSegmentDef("BHS", "Batch Header", header("Batch")...)

	FTS = hl7.NewSegmentDef("FTS", "File Trailer",
		num("FileBatchCount"),
		str("FileTrailerComment"),
	)

	BTS = hl7.NewSegmentDef("BTS", "Batch Trailer",
		str("BatchMessageCount"),
		str("BatchComment"),
		num("BatchTotals").Repeating(),
	)

	EVN = hl7.NewSegmentDef("EVN", "Event Type",
		str("EventTypeCode").Coded("0003"),
		comp("RecordedDateTime", TS),
		comp("DateTimePlannedEvent", TS),
		str("EventReasonCode"),
		comp("OperatorID", XCN).Repeating(),
		comp("EventOccurred", TS),
		comp("EventFacility", HD),
	)

	PID = hl7.NewSegmentDef("PID", "Patient Identification",
		si("SetID"),
		comp("PatientID", CX),
		comp("PatientIdentifierList", CX).Repeating(),
		comp("AlternatePatientID", CX).Repeating(),
		comp("PatientName", XPN).Repeating(),
		comp("MothersMaidenName", XPN).Repeating(),
		comp("DateTimeOfBirth", TS),
		str("AdministrativeSex").Coded("0001"),
		comp("PatientAlias", XPN).Repeating(),
		comp("Race", CE).Repeating(),
		comp("PatientAddress", XAD).Repeating(),
		str("CountyCode"),
		comp("PhoneNumberHome", XTN).Repeating(),
		comp("PhoneNumberBusiness", XTN).Repeating(),
		comp("PrimaryLanguage", CE),
		comp("MaritalStatus", CE),
		comp("Religion", CE),
		comp("PatientAccountNumber", CX),
		str("SSNNumberPatient"),
		comp("DriversLicenseNumberPatient", DLN),
		comp("MothersIdentifier", CX).Repeating(),
		comp("EthnicGroup", CE).Repeating(),
		str("BirthPlace"),
		str("MultipleBirthIndicator").Coded("0136"),
		num("BirthOrder"),
		comp("Citizenship", CE).Repeating(),
		comp("VeteransMilitaryStatus", CE),
		comp("Nationality", CE),
		comp("PatientDeathDateAndTime", TS),
		str("PatientDeathIndicator").Coded("0136"),
		str("IdentityUnknownIndicator").Coded("0136"),
		str("IdentityReliabilityCode").Repeating(),
		comp("LastUpdateDateTime", TS),
		comp("LastUpdateFacility", HD),
		comp("SpeciesCode", CE),
		comp("BreedCode", CE),
		str("Strain"),
		comp("ProductionClassCode", CE),
		comp("TribalCitizenship", CWE).Repeating(),
	)

	PV1 = hl7.NewSegmentDef("PV1", "Patient Visit",
		si("SetID"),
		str("PatientClass").Coded("0004"),
		comp("AssignedPatientLocation", PL),
		str("AdmissionType"),
		comp("PreadmitNumber", CX),
		comp("PriorPatientLocation", PL),
		comp("AttendingDoctor", XCN).Repeating(),
		comp("ReferringDoctor", XCN).Repeating(),
		comp("ConsultingDoctor", XCN).Repeating(),
		str("HospitalService"),
		comp("TemporaryLocation", PL),
		str("PreadmitTestIndicator"),
		str("ReadmissionIndicator"),
		str("AdmitSource"),
		str("AmbulatoryStatus").Repeating(),
		str("VIPIndicator"),
		comp("AdmittingDoctor", XCN).Repeating(),
		str("PatientType"),
		comp("VisitNumber", CX),
		comp("FinancialClass", FC).Repeating(),
		str("ChargePriceIndicator"),
		str("CourtesyCode"),
		str("CreditRating"),
		str("ContractCode").Repeating(),
		dt("ContractEffectiveDate").Repeating(),
		num("ContractAmount").Repeating(),
		num("ContractPeriod").Repeating(),
		str("InterestCode"),
		str("TransferToBadDebtCode"),
		dt("TransferToBadDebtDate"),
		str("BadDebtAgencyCode"),
		num("BadDebtTransferAmount"),
		num("BadDebtRecoveryAmount"),
		str("DeleteAccountIndicator"),
		dt("DeleteAccountDate"),
		str("DischargeDisposition"),
		comp("DischargedToLocation", DLD),
		comp("DietType", CE),
		str("ServicingFacility"),
		str("BedStatus"),
		str("AccountStatus"),
		comp("PendingLocation", PL),
		comp("PriorTemporaryLocation", PL),
		comp("AdmitDateTime", TS),
		comp("DischargeDateTime", TS).Repeating(),
		num("CurrentPatientBalance"),
		num("TotalCharges"),
		num("TotalAdjustments"),
		num("TotalPayments"),
		comp("AlternateVisitID", CX),
		str("VisitIndicator"),
		comp("OtherHealthcareProvider", XCN).Repeating(),
	)

	AL1 = hl7.NewSegmentDef("AL1", "Patient Allergy Information",
		si("SetID"),
		comp("AllergenTypeCode", CE),
		comp("AllergenCodeMnemonicDescription", CE),
		comp("AllergySeverityCode", CE),
		str("AllergyReactionCode").Repeating(),
		dt("IdentificationDate"),
	)

	DG1 = hl7.NewSegmentDef("DG1", "Diagnosis",
		si("SetID"),
		str("DiagnosisCodingMethod"),
		comp("DiagnosisCode", CE),
		str("DiagnosisDescription"),
		comp("DiagnosisDateTime", TS),
		str("DiagnosisType"),
		comp("MajorDiagnosticCategory", CE),
		comp("DiagnosticRelatedGroup", CE),
		str("DRGApprovalIndicator"),
		str("DRGGrouperReviewCode"),
		comp("OutlierType", CE),
		num("OutlierDays"),
		str("OutlierCost"),
		str("GrouperVersionAndType"),
		str("DiagnosisPriority"),
		comp("DiagnosingClinician", XCN).Repeating(),
		str("DiagnosisClassification"),
		str("ConfidentialIndicator"),
		comp("AttestationDateTime", TS),
		comp("DiagnosisIdentifier", EI),
		str("DiagnosisActionCode"),
	)

	ORC = hl7.NewSegmentDef("ORC", "Common Order",
		str("OrderControl").Coded("0119"),
		comp("PlacerOrderNumber", EI),
		comp("FillerOrderNumber", EI),
		comp("PlacerGroupNumber", EI),
		str("OrderStatus"),
		str("ResponseFlag"),
		str("QuantityTiming").Repeating(),
		comp("Parent", EIP),
		comp("DateTimeOfTransaction", TS),
		comp("EnteredBy", XCN).Repeating(),
		comp("VerifiedBy", XCN).Repeating(),
		comp("OrderingProvider", XCN).Repeating(),
		comp("EnterersLocation", PL),
		comp("CallBackPhoneNumber", XTN).Repeating(),
		comp("OrderEffectiveDateTime", TS),
		comp("OrderControlCodeReason", CE),
		comp("EnteringOrganization", CE),
		comp("EnteringDevice", CE),
		comp("ActionBy", XCN).Repeating(),
		comp("AdvancedBeneficiaryNoticeCode", CE),
		comp("OrderingFacilityName", XON).Repeating(),
		comp("OrderingFacilityAddress", XAD).Repeating(),
		comp("OrderingFacilityPhoneNumber", XTN).Repeating(),
		comp("OrderingProviderAddress", XAD).Repeating(),
		comp("OrderStatusModifier", CWE),
		comp("AdvancedBeneficiaryNoticeOverrideReason", CWE),
		comp("FillersExpectedAvailabilityDateTime", TS),
		comp("ConfidentialityCode", CWE),
		comp("OrderType", CWE),
		comp("EntererAuthorizationMode", CWE),
		comp("ParentUniversalServiceIdentifier", CWE),
	)

	OBR = hl7.NewSegmentDef("OBR", "Observation Request",
		si("SetID"),
		comp("PlacerOrderNumber", EI),
		comp("FillerOrderNumber", EI),
		comp("UniversalServiceIdentifier", CE),
		str("Priority"),
		comp("RequestedDateTime", TS),
		comp("ObservationDateTime", TS),
		comp("ObservationEndDateTime", TS),
		comp("CollectionVolume", CQ),
		comp("CollectorIdentifier", XCN).Repeating(),
		str("SpecimenActionCode"),
		comp("DangerCode", CE),
		str("RelevantClinicalInformation"),
		comp("SpecimenReceivedDateTime", TS),
		comp("SpecimenSource", SPS),
		comp("OrderingProvider", XCN).Repeating(),
		comp("OrderCallbackPhoneNumber", XTN).Repeating(),
		str("PlacerField1"),
		str("PlacerField2"),
		str("FillerField1"),
		str("FillerField2"),
		comp("ResultsRptStatusChngDateTime", TS),
		comp("ChargeToPractice", MOC),
		str("DiagnosticServSectID"),
		str("ResultStatus"),
		comp("ParentResult", PRL),
		str("QuantityTiming").Repeating(),
		comp("ResultCopiesTo", XCN).Repeating(),
		comp("Parent", EIP),
		str("TransportationMode"),
		comp("ReasonForStudy", CE).Repeating(),
		comp("PrincipalResultInterpreter", NDL),
		comp("AssistantResultInterpreter", NDL).Repeating(),
		comp("Technician", NDL).Repeating(),
		comp("Transcriptionist", NDL).Repeating(),
		comp("ScheduledDateTime", TS),
		num("NumberOfSampleContainers"),
		comp("TransportLogisticsOfCollectedSample", CE).Repeating(),
		comp("CollectorsComment", CE).Repeating(),
		comp("TransportArrangementResponsibility", CE),
		str("TransportArranged"),
		str("EscortRequired"),
		comp("PlannedPatientTransportComment", CE).Repeating(),
		comp("ProcedureCode", CE),
		comp("ProcedureCodeModifier", CE).Repeating(),
		comp("PlacerSupplementalServiceInformation", CE).Repeating(),
		comp("FillerSupplementalServiceInformation", CE).Repeating(),
		comp("MedicallyNecessaryDuplicateProcedureReason", CWE),
		str("ResultHandling"),
		comp("ParentUniversalServiceIdentifier", CWE),
	)

	OBX = hl7.NewSegmentDef("OBX", "Observation/Result",
		si("SetID"),
		str("ValueType").Coded("0125"),
		comp("ObservationIdentifier", CE),
		str("ObservationSubID"),
		// the type of OBX-5 is named by OBX-2
		str("ObservationValue").Repeating(),
		comp("Units", CE),
		str("ReferencesRange"),
		str("AbnormalFlags").Repeating(),
		num("Probability"),
		str("NatureOfAbnormalTest").Repeating(),
		str("ObservationResultStatus").Coded("0085"),
		comp("EffectiveDateOfReferenceRange", TS),
		str("UserDefinedAccessChecks"),
		comp("DateTimeOfTheObservation", TS),
		comp("ProducersID", CE),
		comp("ResponsibleObserver", XCN).Repeating(),
		comp("ObservationMethod", CE).Repeating(),
		comp("EquipmentInstanceIdentifier", EI).Repeating(),
		comp("DateTimeOfTheAnalysis", TS),
		str("Reserved20"),
		str("Reserved21"),
		str("Reserved22"),
		comp("PerformingOrganizationName", XON),
		comp("PerformingOrganizationAddress", XAD),
		comp("PerformingOrganizationMedicalDirector", XCN),
	)

	NTE = hl7.NewSegmentDef("NTE", "Notes and Comments",
		si("SetID"),
		str("SourceOfComment"),
		str("Comment").Repeating(),
		comp("CommentType", CE),
	)

	MSA = hl7.NewSegmentDef("MSA", "Message Acknowledgment",
		str("AcknowledgmentCode").Coded("0008"),
		str("MessageControlID"),
		str("TextMessage"),
		num("ExpectedSequenceNumber"),
		str("DelayedAcknowledgmentType"),
		comp("ErrorCondition", CE),
	)

	ERR = hl7.NewSegmentDef("ERR", "Error",
		comp("ErrorCodeAndLocation", ELD).Repeating(),
		comp("ErrorLocation", ERL).Repeating(),
		comp("HL7ErrorCode", CWE),
		str("Severity"),
		comp("ApplicationErrorCode", CWE),
		str("ApplicationErrorParameter").Repeating(),
		str("DiagnosticInformation"),
		str("UserMessage"),
		str("InformPersonIndicator").Repeating(),
		comp("OverrideType", CWE),
		comp("OverrideReasonCode", CWE).Repeating(),
		comp("HelpDeskContactPoint", XTN).Repeating(),
	)

	EQL = hl7.NewSegmentDef("EQL", "Embedded Query Language",
		str("QueryTag"),
		str("QueryResponseFormatCode").Coded("0106"),
		comp("EQLQueryName", CE),
		str("EQLQueryStatement"),
	)

	SFT = hl7.NewSegmentDef("SFT", "Software Segment",
		comp("SoftwareVendorOrganization", XON),
		str("SoftwareCertifiedVersionOrReleaseNumber"),
		str("SoftwareProductName"),
		str("SoftwareBinaryID"),
		str("SoftwareProductInformation"),
		comp("SoftwareInstallDate", TS),
	)

	ROL = hl7.NewSegmentDef("ROL", "Role",
		comp("RoleInstanceID", EI),
		str("ActionCode"),
		comp("RoleROL", CE),
		comp("RolePerson", XCN).Repeating(),
		comp("RoleBeginDateTime", TS),
		comp("RoleEndDateTime", TS),
		comp("RoleDuration", CE),
		comp("RoleActionReason", CE),
		comp("ProviderType", CE).Repeating(),
		comp("OrganizationUnitType", CE),
		comp("OfficeHomeAddressBirthplace", XAD).Repeating(),
		comp("Phone", XTN).Repeating(),
	)
)

// Segments returns every segment declaration of the version
func Segments() []*hl7.SegmentDef {
	return []*hl7.SegmentDef{
		MSH, FHS, BHS, FTS, BTS, EVN, PID, PV1, AL1, DG1,
		ORC, OBR, OBX, NTE, MSA, ERR, EQL, SFT, ROL,
	}
}
