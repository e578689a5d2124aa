// Package registry persists the set of installation homes the user has
// registered for inspection. Homes are always supplied explicitly; nothing
// here walks the filesystem looking for them.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	configDirName  = ".jvminspect"
	configFileName = "config.json"
)

// Registry is the persisted state: registered homes plus an optional default.
type Registry struct {
	Default string   `json:"default,omitempty"`
	Homes   []string `json:"homes"`
}

// ConfigPath returns the full path to the registry file
// (e.g. ~/.jvminspect/config.json).
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Load reads the registry from disk. A missing file yields an empty registry.
func Load() (*Registry, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Registry{Homes: []string{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read registry at %s: %w", path, err)
	}

	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("failed to parse registry: %w", err)
	}
	return &reg, nil
}

// Save writes the registry to disk, creating the config directory as needed.
func (r *Registry) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write registry to %s: %w", path, err)
	}
	return nil
}

// Add registers an installation home. The path must be an existing directory;
// re-adding a known home is a no-op.
func (r *Registry) Add(home string) error {
	abs, err := filepath.Abs(home)
	if err != nil {
		return fmt.Errorf("cannot resolve path %s: %w", home, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("cannot access %s: %w", abs, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", abs)
	}

	for _, existing := range r.Homes {
		if existing == abs {
			return nil
		}
	}
	r.Homes = append(r.Homes, abs)
	return nil
}

// Remove unregisters an installation home. Removing an unknown home is an
// error so typos surface instead of silently succeeding.
func (r *Registry) Remove(home string) error {
	abs, err := filepath.Abs(home)
	if err != nil {
		return fmt.Errorf("cannot resolve path %s: %w", home, err)
	}

	for i, existing := range r.Homes {
		if existing == abs {
			r.Homes = append(r.Homes[:i], r.Homes[i+1:]...)
			if r.Default == abs {
				r.Default = ""
			}
			return nil
		}
	}
	return fmt.Errorf("%s is not registered", abs)
}

// SetDefault marks a registered home as the default selection.
func (r *Registry) SetDefault(home string) error {
	abs, err := filepath.Abs(home)
	if err != nil {
		return fmt.Errorf("cannot resolve path %s: %w", home, err)
	}

	for _, existing := range r.Homes {
		if existing == abs {
			r.Default = abs
			return nil
		}
	}
	return fmt.Errorf("%s is not registered", abs)
}
