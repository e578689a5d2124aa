package metadata

import (
	"os"
	"path/filepath"
	"runtime"
)

// Capability is a feature an installation was probed to have.
type Capability string

const (
	// CapabilityCompiler marks an installation that ships javac, i.e. a full
	// JDK rather than a runtime-only JRE.
	CapabilityCompiler Capability = "compiler"
)

// Capabilities returns the probed capability set. The filesystem probe runs
// at most once per instance; later calls return the memoized result even if
// the directory contents change. Panics on the invalid variant.
func (m *InstallationMetadata) Capabilities() []Capability {
	m.mustBeValid("Capabilities")
	m.capsOnce.Do(func() {
		m.caps = probeCapabilities(m.javaHome)
	})
	return m.caps
}

// HasCapability reports whether the installation has the given capability.
// Panics on the invalid variant.
func (m *InstallationMetadata) HasCapability(c Capability) bool {
	for _, have := range m.Capabilities() {
		if have == c {
			return true
		}
	}
	return false
}

// probeCapabilities checks for the platform-appropriate compiler executable
// under bin/. Stat errors, permission problems included, count as absent.
func probeCapabilities(javaHome string) []Capability {
	compiler := filepath.Join(javaHome, "bin", CompilerExecutable())
	if info, err := os.Stat(compiler); err == nil && !info.IsDir() {
		return []Capability{CapabilityCompiler}
	}
	return nil
}

// CompilerExecutable returns the javac executable name for the host OS.
func CompilerExecutable() string {
	if runtime.GOOS == "windows" {
		return "javac.exe"
	}
	return "javac"
}
