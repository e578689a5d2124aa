package metadata

import "fmt"

// JavaVersion is an already-parsed Java language version. The zero value is
// an unknown version.
type JavaVersion struct {
	// Major is the feature release number (8, 11, 17, 21, ...).
	Major int `json:"major"`
	// Minor is the interim number (the "0" in "17.0.2").
	Minor int `json:"minor"`
	// Patch is the update number in the modern scheme (the "2" in "17.0.2").
	Patch int `json:"patch"`
	// Update is the legacy update number (the "202" in "1.8.0_202").
	Update int `json:"update,omitempty"`
	// Raw is the version string as reported by the runtime, kept for display.
	Raw string `json:"raw,omitempty"`
}

func (v JavaVersion) String() string {
	if v.Raw != "" {
		return v.Raw
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
