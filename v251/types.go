// Package v251 declares the HL7 version 2.5.1 segments, composite data types
// and code tables used by the codec.
package v251

import hl7 "github.com/kamlesh-microsoft/clear-hl7-net-sub002"

func str(name string) hl7.Slot { return hl7.Field(name, hl7.KindString) }
func num(name string) hl7.Slot { return hl7.Field(name, hl7.KindDecimal) }
func si(name string) hl7.Slot  { return hl7.Field(name, hl7.KindInteger) }
func dt(name string) hl7.Slot  { return hl7.Field(name, hl7.KindDate) }
func dtm(name string) hl7.Slot { return hl7.Field(name, hl7.KindDateTime) }

func comp(name string, t *hl7.TypeDef) hl7.Slot { return hl7.CompositeField(name, t) }

// Composite data types
var (
	HD = hl7.NewType("HD", "Hierarchic Designator",
		str("NamespaceID"),
		str("UniversalID"),
		str("UniversalIDType"),
	)

	EI = hl7.NewType("EI", "Entity Identifier",
		str("EntityIdentifier"),
		str("NamespaceID"),
		str("UniversalID"),
		str("UniversalIDType"),
	)

	CE = hl7.NewType("CE", "Coded Element",
		str("Identifier"),
		str("Text"),
		str("NameOfCodingSystem"),
		str("AlternateIdentifier"),
		str("AlternateText"),
		str("NameOfAlternateCodingSystem"),
	)

	CWE = hl7.NewType("CWE", "Coded with Exceptions",
		str("Identifier"),
		str("Text"),
		str("NameOfCodingSystem"),
		str("AlternateIdentifier"),
		str("AlternateText"),
		str("NameOfAlternateCodingSystem"),
		str("CodingSystemVersionID"),
		str("AlternateCodingSystemVersionID"),
		str("OriginalText"),
	)

	MSG = hl7.NewType("MSG", "Message Type",
		str("MessageCode").Coded("0076"),
		str("TriggerEvent").Coded("0003"),
		str("MessageStructure"),
	)

	PT = hl7.NewType("PT", "Processing Type",
		str("ProcessingID").Coded("0103"),
		str("ProcessingMode"),
	)

	VID = hl7.NewType("VID", "Version Identifier",
		str("VersionID").Coded("0104"),
		comp("InternationalizationCode", CE),
		comp("InternationalVersionID", CE),
	)

	TS = hl7.NewType("TS", "Time Stamp",
		dtm("Time"),
		str("DegreeOfPrecision"),
	)

	DR = hl7.NewType("DR", "Date/Time Range",
		comp("RangeStartDateTime", TS),
		comp("RangeEndDateTime", TS),
	)

	CX = hl7.NewType("CX", "Extended Composite ID with Check Digit",
		str("IDNumber"),
		str("CheckDigit"),
		str("CheckDigitScheme"),
		comp("AssigningAuthority", HD),
		str("IdentifierTypeCode"),
		comp("AssigningFacility", HD),
		dt("EffectiveDate"),
		dt("ExpirationDate"),
		comp("AssigningJurisdiction", CWE),
		comp("AssigningAgencyOrDepartment", CWE),
	)

	FN = hl7.NewType("FN", "Family Name",
		str("Surname"),
		str("OwnSurnamePrefix"),
		str("OwnSurname"),
		str("SurnamePrefixFromPartnerSpouse"),
		str("SurnameFromPartnerSpouse"),
	)

	XPN = hl7.NewType("XPN", "Extended Person Name",
		comp("FamilyName", FN),
		str("GivenName"),
		str("SecondAndFurtherGivenNamesOrInitialsThereof"),
		str("Suffix"),
		str("Prefix"),
		str("Degree"),
		str("NameTypeCode"),
		str("NameRepresentationCode"),
		comp("NameContext", CE),
		comp("NameValidityRange", DR),
		str("NameAssemblyOrder"),
		comp("EffectiveDate", TS),
		comp("ExpirationDate", TS),
		str("ProfessionalSuffix"),
	)

	SAD = hl7.NewType("SAD", "Street Address",
		str("StreetOrMailingAddress"),
		str("StreetName"),
		str("DwellingNumber"),
	)

	XAD = hl7.NewType("XAD", "Extended Address",
		comp("StreetAddress", SAD),
		str("OtherDesignation"),
		str("City"),
		str("StateOrProvince"),
		str("ZipOrPostalCode"),
		str("Country"),
		str("AddressType"),
		str("OtherGeographicDesignation"),
		str("CountyParishCode"),
		str("CensusTract"),
		str("AddressRepresentationCode"),
		comp("AddressValidityRange", DR),
		comp("EffectiveDate", TS),
		comp("ExpirationDate", TS),
	)

	XTN = hl7.NewType("XTN", "Extended Telecommunication Number",
		str("TelephoneNumber"),
		str("TelecommunicationUseCode"),
		str("TelecommunicationEquipmentType"),
		str("EmailAddress"),
		num("CountryCode"),
		num("AreaCityCode"),
		num("LocalNumber"),
		num("Extension"),
		str("AnyText"),
		str("ExtensionPrefix"),
		str("SpeedDialCode"),
		str("UnformattedTelephoneNumber"),
	)

	XCN = hl7.NewType("XCN", "Extended Composite ID Number and Name for Persons",
		str("IDNumber"),
		comp("FamilyName", FN),
		str("GivenName"),
		str("SecondAndFurtherGivenNamesOrInitialsThereof"),
		str("Suffix"),
		str("Prefix"),
		str("Degree"),
		str("SourceTable"),
		comp("AssigningAuthority", HD),
		str("NameTypeCode"),
		str("IdentifierCheckDigit"),
		str("CheckDigitScheme"),
		str("IdentifierTypeCode"),
		comp("AssigningFacility", HD),
		str("NameRepresentationCode"),
		comp("NameContext", CE),
		comp("NameValidityRange", DR),
		str("NameAssemblyOrder"),
		comp("EffectiveDate", TS),
		comp("ExpirationDate", TS),
		str("ProfessionalSuffix"),
		comp("AssigningJurisdiction", CWE),
		comp("AssigningAgencyOrDepartment", CWE),
	)

	PL = hl7.NewType("PL", "Person Location",
		str("PointOfCare"),
		str("Room"),
		str("Bed"),
		comp("Facility", HD),
		str("LocationStatus"),
		str("PersonLocationType"),
		str("Building"),
		str("Floor"),
		str("LocationDescription"),
		comp("ComprehensiveLocationIdentifier", EI),
		comp("AssigningAuthorityForLocation", HD),
	)

	XON = hl7.NewType("XON", "Extended Composite Name and Identification Number for Organizations",
		str("OrganizationName"),
		str("OrganizationNameTypeCode"),
		num("IDNumber"),
		num("CheckDigit"),
		str("CheckDigitScheme"),
		comp("AssigningAuthority", HD),
		str("IdentifierTypeCode"),
		comp("AssigningFacility", HD),
		str("NameRepresentationCode"),
		str("OrganizationIdentifier"),
	)

	DLN = hl7.NewType("DLN", "Driver's License Number",
		str("LicenseNumber"),
		str("IssuingStateProvinceCountry"),
		dt("ExpirationDate"),
	)

	FC = hl7.NewType("FC", "Financial Class",
		str("FinancialClassCode"),
		comp("EffectiveDate", TS),
	)

	DLD = hl7.NewType("DLD", "Discharge to Location and Date",
		str("DischargeLocation"),
		comp("EffectiveDate", TS),
	)

	CQ = hl7.NewType("CQ", "Composite Quantity with Units",
		num("Quantity"),
		comp("Units", CE),
	)

	EIP = hl7.NewType("EIP", "Entity Identifier Pair",
		comp("PlacerAssignedIdentifier", EI),
		comp("FillerAssignedIdentifier", EI),
	)

	SPS = hl7.NewType("SPS", "Specimen Source",
		comp("SpecimenSourceNameOrCode", CWE),
		comp("Additives", CWE),
		str("SpecimenCollectionMethod"),
		comp("BodySite", CWE),
		comp("SiteModifier", CWE),
		comp("CollectionMethodModifierCode", CWE),
		comp("SpecimenRole", CWE),
	)

	MO = hl7.NewType("MO", "Money",
		num("Quantity"),
		str("Denomination"),
	)

	MOC = hl7.NewType("MOC", "Money and Code",
		comp("MonetaryAmount", MO),
		comp("ChargeCode", CE),
	)

	PRL = hl7.NewType("PRL", "Parent Result Link",
		comp("ParentObservationIdentifier", CE),
		str("ParentObservationSubIdentifier"),
		str("ParentObservationValueDescriptor"),
	)

	CNN = hl7.NewType("CNN", "Composite ID Number and Name Simplified",
		str("IDNumber"),
		str("FamilyName"),
		str("GivenName"),
		str("SecondAndFurtherGivenNamesOrInitialsThereof"),
		str("Suffix"),
		str("Prefix"),
		str("Degree"),
		str("SourceTable"),
		str("AssigningAuthorityNamespaceID"),
		str("AssigningAuthorityUniversalID"),
		str("AssigningAuthorityUniversalIDType"),
	)

	NDL = hl7.NewType("NDL", "Name with Date and Location",
		comp("Name", CNN),
		comp("StartDateTime", TS),
		comp("EndDateTime", TS),
		str("PointOfCare"),
		str("Room"),
		str("Bed"),
		comp("Facility", HD),
		str("LocationStatus"),
		str("PatientLocationType"),
		str("Building"),
		str("Floor"),
	)

	ELD = hl7.NewType("ELD", "Error Location and Description",
		str("SegmentID"),
		num("SegmentSequence"),
		num("FieldPosition"),
		comp("CodeIdentifyingError", CE),
	)

	ERL = hl7.NewType("ERL", "Error Location",
		str("SegmentID"),
		num("SegmentSequence"),
		num("FieldPosition"),
		num("FieldRepetition"),
		num("ComponentNumber"),
		num("SubComponentNumber"),
	)
)

// Types returns every composite type of the version
func Types() []*hl7.TypeDef {
	return []*hl7.TypeDef{
		HD, EI, CE, CWE, MSG, PT, VID, TS, DR, CX, FN, XPN, SAD, XAD, XTN, XCN,
		PL, XON, DLN, FC, DLD, CQ, EIP, SPS, MO, MOC, PRL, CNN, NDL, ELD, ERL,
	}
}
