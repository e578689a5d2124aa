package inspect

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"jvminspect/pkg/metadata"
)

// createHome lays out a fake installation home with the given files.
func createHome(t *testing.T, files map[string]string) string {
	t.Helper()
	home := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(home, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0755); err != nil {
			t.Fatalf("Failed to write file %s: %v", path, err)
		}
	}
	return home
}

// fakeJava returns a bin/java shell script that prints the given -version
// output on stderr, the way real runtimes do.
func fakeJava(output string) string {
	return fmt.Sprintf("#!/bin/sh\ncat >&2 <<'EOF'\n%s\nEOF\n", output)
}

func TestInspectMissingHome(t *testing.T) {
	md := New().Inspect(context.Background(), filepath.Join(t.TempDir(), "no-such-jdk"))

	if md.IsValid() {
		t.Fatal("Expected invalid variant for missing home")
	}
	if md.ErrorMessage() != "home directory does not exist" {
		t.Errorf("Unexpected error message %q", md.ErrorMessage())
	}
}

func TestInspectHomeIsAFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	md := New().Inspect(context.Background(), path)

	if md.IsValid() {
		t.Fatal("Expected invalid variant for a plain file")
	}
	if md.ErrorMessage() != "home path is not a directory" {
		t.Errorf("Unexpected error message %q", md.ErrorMessage())
	}
}

func TestInspectEmptyDirectory(t *testing.T) {
	md := New().Inspect(context.Background(), t.TempDir())

	if md.IsValid() {
		t.Fatal("Expected invalid variant for an empty directory")
	}
}

func TestInspectExecutableProbe(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("probe script fixture requires a POSIX shell")
	}

	output := `openjdk version "17.0.2" 2022-01-18
OpenJDK Runtime Environment Temurin-17.0.2+8 (build 17.0.2+8)
OpenJDK 64-Bit Server VM Temurin-17.0.2+8 (build 17.0.2+8, mixed mode, sharing)`

	home := createHome(t, map[string]string{
		"bin/java":  fakeJava(output),
		"bin/javac": "#!/bin/sh\n",
	})

	md := New().Inspect(context.Background(), home)

	if !md.IsValid() {
		t.Fatalf("Expected valid variant, got error %q", md.ErrorMessage())
	}
	if md.LanguageVersion().Major != 17 {
		t.Errorf("Expected major 17, got %d", md.LanguageVersion().Major)
	}
	if md.Vendor().Known() != metadata.VendorAdoptium {
		t.Errorf("Expected adoptium classification, got %s", md.Vendor().Known())
	}
	if !md.HasCapability(metadata.CapabilityCompiler) {
		t.Error("Expected compiler capability")
	}
	if got := md.DisplayName(); got != "Eclipse Temurin JDK 17" {
		t.Errorf("Unexpected display name %q", got)
	}
}

func TestInspectFallsBackToReleaseFile(t *testing.T) {
	home := createHome(t, map[string]string{
		"release": `IMPLEMENTOR="Eclipse Adoptium"
IMPLEMENTOR_VERSION="Temurin-17.0.2+8"
JAVA_VERSION="17.0.2"
`,
	})

	md := New().Inspect(context.Background(), home)

	if !md.IsValid() {
		t.Fatalf("Expected valid variant via release file, got error %q", md.ErrorMessage())
	}
	if md.LanguageVersion().Raw != "17.0.2" {
		t.Errorf("Expected version 17.0.2, got %s", md.LanguageVersion())
	}
	if md.Vendor().Known() != metadata.VendorAdoptium {
		t.Errorf("Expected adoptium classification, got %s", md.Vendor().Known())
	}
	if md.ImplementationName() != "Temurin-17.0.2+8" {
		t.Errorf("Unexpected implementation name %q", md.ImplementationName())
	}
}

func TestInspectBrokenExecutableReportsExecError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("probe script fixture requires a POSIX shell")
	}

	home := createHome(t, map[string]string{
		"bin/java": "#!/bin/sh\nexit 1\n",
	})

	md := New().Inspect(context.Background(), home)

	if md.IsValid() {
		t.Fatal("Expected invalid variant for a failing executable")
	}
	if md.ErrorMessage() == "" {
		t.Error("Expected a non-empty error message")
	}
}
