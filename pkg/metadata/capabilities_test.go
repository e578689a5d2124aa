package metadata

import (
	"reflect"
	"sync"
	"testing"
)

func TestCapabilityProbe(t *testing.T) {
	tests := []struct {
		name         string
		withCompiler bool
		expected     []Capability
	}{
		{
			name:         "compiler present",
			withCompiler: true,
			expected:     []Capability{CapabilityCompiler},
		},
		{
			name:         "compiler absent",
			withCompiler: false,
			expected:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := createInstallation(t, tt.withCompiler)
			md := New(home, JavaVersion{Major: 17}, "Eclipse Adoptium", "")

			if got := md.Capabilities(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Expected capabilities %v, got %v", tt.expected, got)
			}
			if got := md.HasCapability(CapabilityCompiler); got != tt.withCompiler {
				t.Errorf("Expected HasCapability(compiler)=%v, got %v", tt.withCompiler, got)
			}
		})
	}
}

func TestCapabilityProbeOnMissingHome(t *testing.T) {
	md := New("/nonexistent/jdk", JavaVersion{Major: 17}, "Eclipse Adoptium", "")

	if got := md.Capabilities(); got != nil {
		t.Errorf("Expected empty capabilities for missing home, got %v", got)
	}
}

func TestCapabilitiesAreMemoized(t *testing.T) {
	home := createInstallation(t, false)
	md := New(home, JavaVersion{Major: 17}, "Eclipse Adoptium", "")

	first := md.Capabilities()
	if len(first) != 0 {
		t.Fatalf("Expected no capabilities before compiler exists, got %v", first)
	}

	// The compiler appearing later must not change the memoized result.
	addCompiler(t, home)

	second := md.Capabilities()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected memoized result %v, got %v after directory change", first, second)
	}
	if md.HasCapability(CapabilityCompiler) {
		t.Error("Expected memoized probe to still report no compiler")
	}

	// A fresh instance over the same home sees the new state.
	fresh := New(home, JavaVersion{Major: 17}, "Eclipse Adoptium", "")
	if !fresh.HasCapability(CapabilityCompiler) {
		t.Error("Expected fresh instance to observe the compiler")
	}
}

func TestConcurrentCapabilityAccess(t *testing.T) {
	home := createInstallation(t, true)
	md := New(home, JavaVersion{Major: 21}, "Amazon.com Inc.", "")

	const readers = 16
	results := make([][]Capability, readers)

	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = md.Capabilities()
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if !reflect.DeepEqual(got, results[0]) {
			t.Fatalf("Reader %d observed %v, want %v", i, got, results[0])
		}
	}
}
