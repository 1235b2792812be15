package paths

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if !strings.HasSuffix(dir, filepath.Join("", "promptpress")) {
		t.Errorf("ConfigDir() = %q, want suffix promptpress", dir)
	}
}

func TestProfilesDir(t *testing.T) {
	dir := ProfilesDir()
	if !strings.HasSuffix(dir, filepath.Join("promptpress", "profiles")) {
		t.Errorf("ProfilesDir() = %q, want suffix promptpress/profiles", dir)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory in test environment")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{filepath.Join("~", "profiles"), filepath.Join(home, "profiles")},
		{"relative.toml", "relative.toml"},
		{filepath.Join(string(filepath.Separator), "abs", "p.toml"), filepath.Join(string(filepath.Separator), "abs", "p.toml")},
	}
	for _, tt := range tests {
		got, err := ExpandHome(tt.in)
		if err != nil {
			t.Errorf("ExpandHome(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExpandHome_Empty(t *testing.T) {
	if _, err := ExpandHome(""); err == nil {
		t.Error("ExpandHome(\"\") should fail")
	}
}

func TestEnsureDir(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "a", "b", "c")

	if err := EnsureDir(target, 0); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.IsDir() {
		t.Error("EnsureDir did not create a directory")
	}

	// Idempotent.
	if err := EnsureDir(target, 0); err != nil {
		t.Errorf("EnsureDir() second call error = %v", err)
	}
}
