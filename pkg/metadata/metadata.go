// Package metadata classifies a probed JVM installation home: its language
// version, vendor and capabilities, plus a stable human-readable display name.
package metadata

import (
	"fmt"
	"strings"
	"sync"
)

// InstallationMetadata is the result of probing a JVM installation home. It
// has exactly two variants: a valid installation carrying version, vendor and
// capability information, or an invalid one carrying only the error message
// from the failed probe. Calling a valid-only accessor on the invalid variant
// (or ErrorMessage on the valid one) is a contract violation and panics.
type InstallationMetadata struct {
	javaHome string
	valid    bool

	languageVersion    JavaVersion
	vendorRaw          string
	implementationName string

	errorMessage string

	capsOnce sync.Once
	caps     []Capability
}

// New builds the valid variant from the raw results of a successful probe.
// Inputs are stored as-is; implementationName may be empty.
func New(javaHome string, version JavaVersion, vendorRaw, implementationName string) *InstallationMetadata {
	return &InstallationMetadata{
		javaHome:           javaHome,
		valid:              true,
		languageVersion:    version,
		vendorRaw:          vendorRaw,
		implementationName: implementationName,
	}
}

// NewFailure builds the invalid variant for a home whose probe failed.
func NewFailure(javaHome, errorMessage string) *InstallationMetadata {
	return &InstallationMetadata{
		javaHome:     javaHome,
		errorMessage: errorMessage,
	}
}

// JavaHome returns the installation root. Available on both variants.
func (m *InstallationMetadata) JavaHome() string { return m.javaHome }

// IsValid reports whether this is the valid variant.
func (m *InstallationMetadata) IsValid() bool { return m.valid }

// LanguageVersion returns the Java language version. Panics on the invalid
// variant.
func (m *InstallationMetadata) LanguageVersion() JavaVersion {
	m.mustBeValid("LanguageVersion")
	return m.languageVersion
}

// Vendor resolves the raw vendor string into its classification. Panics on
// the invalid variant.
func (m *InstallationMetadata) Vendor() Vendor {
	m.mustBeValid("Vendor")
	return ResolveVendor(m.vendorRaw)
}

// ImplementationName returns the JVM implementation name as reported by the
// runtime, possibly empty. Panics on the invalid variant.
func (m *InstallationMetadata) ImplementationName() string {
	m.mustBeValid("ImplementationName")
	return m.implementationName
}

// ErrorMessage returns the probe failure reason. Panics on the valid variant.
func (m *InstallationMetadata) ErrorMessage() string {
	if m.valid {
		panic("metadata: ErrorMessage is not supported on a valid installation")
	}
	return m.errorMessage
}

// DisplayName returns the user-facing name of the installation. Available on
// both variants; the invalid variant describes the failure instead.
func (m *InstallationMetadata) DisplayName() string {
	if !m.valid {
		return "Invalid installation: " + m.errorMessage
	}
	label := m.vendorLabel()
	return fmt.Sprintf("%s%s %d", label, m.installationType(label), m.languageVersion.Major)
}

// vendorLabel picks the base label for the display name. Oracle-classified
// installations whose implementation identifies as OpenJDK display as
// "OpenJDK" since that is what the user actually installed.
func (m *InstallationMetadata) vendorLabel() string {
	if m.Vendor().Known() == VendorOracle && strings.Contains(m.implementationName, "OpenJDK") {
		return "OpenJDK"
	}
	return m.Vendor().DisplayName()
}

// installationType returns the display-name suffix: " JDK" for installations
// with a compiler (unless the label already says so), " JRE" otherwise.
func (m *InstallationMetadata) installationType(label string) string {
	if m.HasCapability(CapabilityCompiler) {
		if strings.Contains(strings.ToLower(label), "jdk") {
			return ""
		}
		return " JDK"
	}
	return " JRE"
}

func (m *InstallationMetadata) mustBeValid(accessor string) {
	if !m.valid {
		panic(fmt.Sprintf("metadata: %s is not supported on an invalid installation (original error: %s)", accessor, m.errorMessage))
	}
}
