package inspect

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"jvminspect/pkg/metadata"
)

// versionPattern captures the quoted version string in `java -version` output,
// e.g. `openjdk version "17.0.2" 2022-01-18`.
var versionPattern = regexp.MustCompile(`version "([^"]+)"`)

// probeResult carries the raw inspection values handed to the classifier.
type probeResult struct {
	version            metadata.JavaVersion
	vendorRaw          string
	implementationName string
}

// parseProbeOutput extracts version, vendor and VM name from the output of
// `java -version`.
func parseProbeOutput(output string) (probeResult, error) {
	matches := versionPattern.FindStringSubmatch(output)
	if len(matches) < 2 {
		return probeResult{}, fmt.Errorf("no version string in probe output")
	}

	version, err := ParseVersion(matches[1])
	if err != nil {
		return probeResult{}, err
	}

	return probeResult{
		version:            version,
		vendorRaw:          guessVendor(output),
		implementationName: vmName(output),
	}, nil
}

// guessVendor maps distribution keywords in the probe output to the vendor
// string the runtime would report in its java.vendor property. Output with no
// recognizable keyword falls back to the runtime environment line verbatim.
func guessVendor(output string) string {
	lower := strings.ToLower(output)
	switch {
	case strings.Contains(lower, "temurin"), strings.Contains(lower, "adoptium"):
		return "Eclipse Adoptium"
	case strings.Contains(lower, "adoptopenjdk"):
		return "AdoptOpenJDK"
	case strings.Contains(lower, "corretto"):
		return "Amazon.com Inc."
	case strings.Contains(lower, "zulu"):
		return "Azul Systems, Inc."
	case strings.Contains(lower, "liberica"):
		return "BellSoft"
	case strings.Contains(lower, "graalvm"):
		return "GraalVM Community"
	case strings.Contains(lower, "microsoft"):
		return "Microsoft"
	case strings.Contains(lower, "sapmachine"):
		return "SAP SE"
	case strings.Contains(lower, "java(tm)"), strings.Contains(lower, "hotspot(tm)"):
		return "Oracle Corporation"
	case strings.Contains(lower, "openjdk"):
		// Vanilla OpenJDK builds report Oracle as their vendor property.
		return "Oracle Corporation"
	}

	lines := nonEmptyLines(output)
	if len(lines) >= 2 {
		return lines[1]
	}
	if len(lines) == 1 {
		return lines[0]
	}
	return ""
}

// vmName returns the VM line of the probe output without its build qualifier,
// e.g. "OpenJDK 64-Bit Server VM Temurin-17.0.2+8". Empty when absent.
func vmName(output string) string {
	for _, line := range nonEmptyLines(output) {
		if strings.Contains(line, "VM") {
			if i := strings.Index(line, " (build"); i >= 0 {
				line = line[:i]
			}
			return strings.TrimSpace(line)
		}
	}
	return ""
}

func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ParseVersion parses the two version schemes real runtimes report: the
// legacy "1.8.0_202" form and the modern "17.0.2" / "21" form. Anything else
// is rejected.
func ParseVersion(raw string) (metadata.JavaVersion, error) {
	s := raw
	// Build and pre-release qualifiers ("11.0.2+9", "9-ea") are not part of
	// the language version.
	if i := strings.IndexAny(s, "+-"); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return metadata.JavaVersion{}, fmt.Errorf("unparseable version %q", raw)
	}

	v := metadata.JavaVersion{Raw: raw}

	if strings.HasPrefix(s, "1.") {
		// Legacy scheme: 1.<major>.<minor>_<update>
		rest := strings.TrimPrefix(s, "1.")
		var update string
		if i := strings.Index(rest, "_"); i >= 0 {
			rest, update = rest[:i], rest[i+1:]
		}
		parts := strings.Split(rest, ".")
		major, err := strconv.Atoi(parts[0])
		if err != nil {
			return metadata.JavaVersion{}, fmt.Errorf("unparseable version %q", raw)
		}
		v.Major = major
		if len(parts) > 1 {
			v.Minor, _ = strconv.Atoi(parts[1])
		}
		if update != "" {
			v.Update, _ = strconv.Atoi(update)
		}
		return v, nil
	}

	parts := strings.Split(s, ".")
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return metadata.JavaVersion{}, fmt.Errorf("unparseable version %q", raw)
	}
	v.Major = major
	if len(parts) > 1 {
		v.Minor, _ = strconv.Atoi(parts[1])
	}
	if len(parts) > 2 {
		v.Patch, _ = strconv.Atoi(parts[2])
	}
	return v, nil
}
