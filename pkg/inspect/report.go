package inspect

import "jvminspect/pkg/metadata"

// Report is the serializable view of a classification result.
type Report struct {
	Home         string   `json:"home"`
	Valid        bool     `json:"valid"`
	DisplayName  string   `json:"display_name"`
	Version      string   `json:"version,omitempty"`
	MajorVersion int      `json:"major_version,omitempty"`
	Vendor       string   `json:"vendor,omitempty"`
	VendorRaw    string   `json:"vendor_raw,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// BuildReport flattens metadata into a Report, branching on the variant so
// valid-only accessors are never touched on a failure.
func BuildReport(md *metadata.InstallationMetadata) Report {
	r := Report{
		Home:        md.JavaHome(),
		Valid:       md.IsValid(),
		DisplayName: md.DisplayName(),
	}
	if !md.IsValid() {
		r.Error = md.ErrorMessage()
		return r
	}

	version := md.LanguageVersion()
	r.Version = version.String()
	r.MajorVersion = version.Major
	r.Vendor = md.Vendor().DisplayName()
	r.VendorRaw = md.Vendor().Raw()
	for _, c := range md.Capabilities() {
		r.Capabilities = append(r.Capabilities, string(c))
	}
	return r
}
