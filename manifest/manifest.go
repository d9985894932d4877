// Package manifest handles beamgen.toml project configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest represents a beamgen.toml project configuration.
type Manifest struct {
	OTP    OTP    `toml:"otp"`
	Output Output `toml:"output"`

	// Dir is the directory containing the beamgen.toml file (set at load time).
	Dir string `toml:"-"`
}

// OTP selects the source release and the directory holding its tables.
type OTP struct {
	Release string `toml:"release"`
	Tables  string `toml:"tables"`
}

// Output configures generated-code output.
type Output struct {
	Dir     string `toml:"dir"`
	Package string `toml:"package"`
}

// Load parses a beamgen.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "beamgen.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	// Defaults
	if m.OTP.Release == "" {
		m.OTP.Release = "otp20"
	}
	if m.OTP.Tables == "" {
		m.OTP.Tables = "tab"
	}
	if m.Output.Dir == "" {
		m.Output.Dir = "gen"
	}
	if m.Output.Package == "" {
		m.Output.Package = "genop"
	}

	return &m, nil
}

// FindAndLoad walks up from startDir to find a beamgen.toml file,
// then loads and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "beamgen.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// TablesDir returns the absolute path of the table files directory.
func (m *Manifest) TablesDir() string {
	return filepath.Join(m.Dir, m.OTP.Tables)
}

// OutputDir returns the absolute path of the generated-code directory.
func (m *Manifest) OutputDir() string {
	return filepath.Join(m.Dir, m.Output.Dir)
}
