package inspect

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// probeReleaseFile reads the `release` metadata file JDKs ship at the
// installation root. It is the fallback for homes whose java executable
// cannot be run. Keys look like: JAVA_VERSION="17.0.2".
func probeReleaseFile(home string) (probeResult, error) {
	path := filepath.Join(home, "release")
	cfg, err := ini.Load(path)
	if err != nil {
		return probeResult{}, fmt.Errorf("reading release file: %w", err)
	}

	section := cfg.Section("")
	rawVersion := unquote(section.Key("JAVA_VERSION").String())
	if rawVersion == "" {
		return probeResult{}, fmt.Errorf("release file at %s has no JAVA_VERSION", path)
	}

	version, err := ParseVersion(rawVersion)
	if err != nil {
		return probeResult{}, err
	}

	// The release file carries no VM name; IMPLEMENTOR_VERSION (for example
	// "Temurin-17.0.2+8") is the closest thing to an implementation name.
	return probeResult{
		version:            version,
		vendorRaw:          unquote(section.Key("IMPLEMENTOR").String()),
		implementationName: unquote(section.Key("IMPLEMENTOR_VERSION").String()),
	}, nil
}

func unquote(v string) string {
	return strings.Trim(strings.TrimSpace(v), `"`)
}
