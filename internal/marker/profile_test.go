package marker

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	pperrors "github.com/promptpress/promptpress/internal/errors"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "markers.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeProfile(t, `
name = "go"
description = "Markers for Go skill files"
markers = ["` + "```" + `", "func", "type", "##"]
`)

	set, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile() error = %v", err)
	}
	if set.Len() != 4 {
		t.Errorf("Len() = %d, want 4", set.Len())
	}

	lits := set.Literals()
	if lits[1] != "func" {
		t.Errorf("Literals()[1] = %q, want func", lits[1])
	}
}

func TestLoadProfile_Missing(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("LoadProfile() should fail for a missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestLoadProfile_NoMarkers(t *testing.T) {
	path := writeProfile(t, `name = "empty"`)

	_, err := LoadProfile(path)
	if !errors.Is(err, pperrors.ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadProfile_BadTOML(t *testing.T) {
	path := writeProfile(t, `markers = [unterminated`)

	if _, err := LoadProfile(path); err == nil {
		t.Error("LoadProfile() should fail on malformed TOML")
	}
}

func TestSaveProfile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.toml")
	p := Profile{
		Name:        "clojure",
		Description: "seeded from the builtin list",
		Markers:     Builtin().Literals(),
	}

	if err := SaveProfile(path, p); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}

	set, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile() error = %v", err)
	}
	if set.Len() != Builtin().Len() {
		t.Errorf("round-trip Len() = %d, want %d", set.Len(), Builtin().Len())
	}
}

func TestSaveProfile_NoMarkers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.toml")

	err := SaveProfile(path, Profile{Name: "empty"})
	if !errors.Is(err, pperrors.ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadProfile_EmptyLiteral(t *testing.T) {
	path := writeProfile(t, `
name = "bad"
markers = ["defn", ""]
`)

	_, err := LoadProfile(path)
	if !errors.Is(err, pperrors.ErrEmptyMarker) {
		t.Errorf("error = %v, want ErrEmptyMarker", err)
	}
}
