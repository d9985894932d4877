package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadManifest(t *testing.T) {
	// Create a temporary directory with a beamgen.toml
	dir := t.TempDir()
	tomlContent := `
[otp]
release = "otp19"
tables = "priv/tab"

[output]
dir = "src/beam"
package = "gen_op"
`
	if err := os.WriteFile(filepath.Join(dir, "beamgen.toml"), []byte(tomlContent), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if m.OTP.Release != "otp19" {
		t.Errorf("otp release = %q, want otp19", m.OTP.Release)
	}
	if m.OTP.Tables != "priv/tab" {
		t.Errorf("otp tables = %q, want priv/tab", m.OTP.Tables)
	}
	if m.Output.Dir != "src/beam" {
		t.Errorf("output dir = %q, want src/beam", m.Output.Dir)
	}
	if m.Output.Package != "gen_op" {
		t.Errorf("output package = %q, want gen_op", m.Output.Package)
	}
	if m.TablesDir() != filepath.Join(m.Dir, "priv/tab") {
		t.Errorf("TablesDir() = %q", m.TablesDir())
	}
}

func TestLoadManifestDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "beamgen.toml"), []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if m.OTP.Release != "otp20" {
		t.Errorf("default release = %q, want otp20", m.OTP.Release)
	}
	if m.OTP.Tables != "tab" {
		t.Errorf("default tables = %q, want tab", m.OTP.Tables)
	}
	if m.Output.Dir != "gen" {
		t.Errorf("default output dir = %q, want gen", m.Output.Dir)
	}
	if m.Output.Package != "genop" {
		t.Errorf("default package = %q, want genop", m.Output.Package)
	}
}

func TestLoadManifestMissing(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("Load should fail when beamgen.toml is absent")
	}
}

func TestLoadManifestBadTOML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "beamgen.toml"), []byte("[otp\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("Load should fail on malformed TOML")
	}
}

func TestFindAndLoad(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "beamgen.toml"), []byte("[otp]\nrelease = \"otp19\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := FindAndLoad(nested)
	if err != nil {
		t.Fatalf("FindAndLoad failed: %v", err)
	}
	if m == nil {
		t.Fatal("FindAndLoad returned nil, want manifest from ancestor dir")
	}
	if m.OTP.Release != "otp19" {
		t.Errorf("release = %q, want otp19", m.OTP.Release)
	}
}

func TestFindAndLoadNoManifest(t *testing.T) {
	m, err := FindAndLoad(t.TempDir())
	if err != nil {
		t.Fatalf("FindAndLoad failed: %v", err)
	}
	if m != nil {
		t.Errorf("FindAndLoad = %+v, want nil when no manifest exists", m)
	}
}
