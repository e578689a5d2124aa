package metadata

import "strings"

// KnownVendor is a normalized classification of a JVM vendor string.
type KnownVendor string

const (
	VendorAdoptium       KnownVendor = "adoptium"
	VendorAdoptOpenJDK   KnownVendor = "adoptopenjdk"
	VendorAmazon         KnownVendor = "amazon"
	VendorApple          KnownVendor = "apple"
	VendorAzul           KnownVendor = "azul"
	VendorBellSoft       KnownVendor = "bellsoft"
	VendorGraalVM        KnownVendor = "graalvm"
	VendorHewlettPackard KnownVendor = "hp"
	VendorIBM            KnownVendor = "ibm"
	VendorMicrosoft      KnownVendor = "microsoft"
	VendorOracle         KnownVendor = "oracle"
	VendorSAP            KnownVendor = "sap"
	VendorUnknown        KnownVendor = "unknown"
)

// vendorSpec ties a classification to the keyword that identifies it and the
// label shown to users. Matching is first-hit against the ordered list below.
type vendorSpec struct {
	known   KnownVendor
	keyword string
	display string
}

var knownVendors = []vendorSpec{
	{VendorAdoptium, "adoptium", "Eclipse Temurin"},
	{VendorAdoptium, "temurin", "Eclipse Temurin"},
	{VendorAdoptOpenJDK, "adoptopenjdk", "AdoptOpenJDK"},
	{VendorAmazon, "amazon", "Amazon Corretto"},
	{VendorApple, "apple", "Apple"},
	{VendorAzul, "azul", "Azul Zulu"},
	{VendorBellSoft, "bellsoft", "BellSoft Liberica"},
	{VendorGraalVM, "graalvm", "GraalVM"},
	{VendorHewlettPackard, "hewlett", "HP-UX"},
	{VendorIBM, "ibm", "IBM"},
	{VendorMicrosoft, "microsoft", "Microsoft"},
	{VendorOracle, "oracle", "Oracle"},
	{VendorSAP, "sap se", "SAP SapMachine"},
}

// Vendor pairs the raw vendor string reported by a runtime with its
// normalized classification.
type Vendor struct {
	raw   string
	known KnownVendor
}

// ResolveVendor classifies a raw vendor string. Every input, including the
// empty string, resolves to exactly one classification; strings matching no
// known keyword classify as VendorUnknown.
func ResolveVendor(raw string) Vendor {
	lower := strings.ToLower(raw)
	for _, spec := range knownVendors {
		if strings.Contains(lower, spec.keyword) {
			return Vendor{raw: raw, known: spec.known}
		}
	}
	return Vendor{raw: raw, known: VendorUnknown}
}

// Known returns the normalized classification.
func (v Vendor) Known() KnownVendor { return v.known }

// Raw returns the vendor string as reported by the runtime.
func (v Vendor) Raw() string { return v.raw }

// DisplayName returns the canonical label for a known vendor. Unknown vendors
// fall back to the raw string so nothing reported by a runtime is lost.
func (v Vendor) DisplayName() string {
	for _, spec := range knownVendors {
		if spec.known == v.known {
			return spec.display
		}
	}
	return v.raw
}
