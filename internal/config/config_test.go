package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)
	Init()

	// Point the search away from any real config file.
	tmp := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Ratio != DefaultRatio {
		t.Errorf("Ratio = %v, want %v", cfg.Ratio, DefaultRatio)
	}
	if cfg.Tolerance != DefaultTolerance {
		t.Errorf("Tolerance = %v, want %v", cfg.Tolerance, DefaultTolerance)
	}
	if !cfg.PreserveCode {
		t.Error("PreserveCode should default to true")
	}
}

func TestLoad_File(t *testing.T) {
	resetViper(t)
	Init()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "version: 1\nratio: 15.0\npreserve_code: false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Ratio != 15.0 {
		t.Errorf("Ratio = %v, want 15.0", cfg.Ratio)
	}
	if cfg.PreserveCode {
		t.Error("PreserveCode should be false")
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	resetViper(t)
	Init()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for an explicit missing path")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid default", func(c *Config) {}, nil},
		{"ratio of exactly 1.0 is valid", func(c *Config) { c.Ratio = 1.0 }, nil},
		{"ratio below 1", func(c *Config) { c.Ratio = 0.5 }, ErrRatioTooLow},
		{"negative tolerance", func(c *Config) { c.Tolerance = -0.1 }, ErrToleranceOutOfRange},
		{"tolerance of 1", func(c *Config) { c.Tolerance = 1.0 }, ErrToleranceOutOfRange},
		{"version zero", func(c *Config) { c.Version = 0 }, ErrVersionTooLow},
		{"zero file size", func(c *Config) { c.MaxFileSize = 0 }, ErrMaxFileSizeTooLow},
		{"null byte in markers file", func(c *Config) { c.MarkersFile = "bad\x00path" }, ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			errs := Validate(cfg)
			if tt.wantErr == nil {
				if len(errs) != 0 {
					t.Errorf("Validate() = %v, want no errors", errs)
				}
				return
			}

			found := false
			for _, e := range errs {
				if errors.Is(e, tt.wantErr) {
					found = true
				}
			}
			if !found {
				t.Errorf("Validate() = %v, want %v", errs, tt.wantErr)
			}
		})
	}
}

func TestValidate_NilConfig(t *testing.T) {
	if errs := Validate(nil); len(errs) == 0 {
		t.Error("Validate(nil) should report an error")
	}
}
