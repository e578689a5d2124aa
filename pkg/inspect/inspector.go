// Package inspect probes JVM installation homes and feeds the raw results to
// the metadata classifier. Probing never returns an error to callers: every
// outcome, success or failure, is an InstallationMetadata variant.
package inspect

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"jvminspect/pkg/logging"
	"jvminspect/pkg/metadata"
)

const defaultProbeTimeout = 10 * time.Second

// Inspector probes installation homes supplied by the caller. It does not
// discover homes on its own.
type Inspector struct {
	probeTimeout time.Duration
}

func New() *Inspector {
	return &Inspector{probeTimeout: defaultProbeTimeout}
}

// Inspect classifies the installation rooted at javaHome. The primary probe
// executes bin/java -version; when that fails the release metadata file is
// tried before giving up and returning the invalid variant.
func (i *Inspector) Inspect(ctx context.Context, javaHome string) *metadata.InstallationMetadata {
	home, err := filepath.Abs(javaHome)
	if err != nil {
		home = javaHome
	}

	info, err := os.Stat(home)
	if os.IsNotExist(err) {
		return metadata.NewFailure(home, "home directory does not exist")
	}
	if err != nil {
		return metadata.NewFailure(home, fmt.Sprintf("cannot access home directory: %v", err))
	}
	if !info.IsDir() {
		return metadata.NewFailure(home, "home path is not a directory")
	}

	result, execErr := i.probeExecutable(ctx, home)
	if execErr == nil {
		return metadata.New(home, result.version, result.vendorRaw, result.implementationName)
	}
	logging.Logger.Debug("executable probe failed, trying release file", "home", home, "err", execErr)

	result, relErr := probeReleaseFile(home)
	if relErr == nil {
		return metadata.New(home, result.version, result.vendorRaw, result.implementationName)
	}
	logging.Logger.Debug("release file probe failed", "home", home, "err", relErr)

	return metadata.NewFailure(home, execErr.Error())
}

func (i *Inspector) probeExecutable(ctx context.Context, home string) (probeResult, error) {
	exe := filepath.Join(home, "bin", javaExecutable())
	if _, err := os.Stat(exe); err != nil {
		return probeResult{}, fmt.Errorf("no java executable at %s", exe)
	}

	ctx, cancel := context.WithTimeout(ctx, i.probeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, exe, "-version")
	// java -version historically writes to stderr; capture both streams.
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return probeResult{}, fmt.Errorf("running %s -version: %w", exe, err)
	}
	return parseProbeOutput(out.String())
}

// javaExecutable returns the java executable name for the host OS.
func javaExecutable() string {
	if runtime.GOOS == "windows" {
		return "java.exe"
	}
	return "java"
}
