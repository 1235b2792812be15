package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/promptpress/promptpress/pkg/fileutil"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skill.md")
	content := "# Title\r\n\r\nBody with CRLF endings.\r\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path, 1<<20)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Byte-exact: line endings untouched.
	if doc.Text != content {
		t.Errorf("Text = %q, want %q", doc.Text, content)
	}
	if doc.Path != path {
		t.Errorf("Path = %q, want %q", doc.Path, path)
	}
	if doc.Chars() != len(content) {
		t.Errorf("Chars() = %d, want %d", doc.Chars(), len(content))
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.md"), 1<<20)
	if err == nil {
		t.Fatal("Load() should fail for a missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestLoad_TooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.md")
	if err := os.WriteFile(path, make([]byte, 100), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path, 10)
	if !errors.Is(err, fileutil.ErrFileTooLarge) {
		t.Errorf("error = %v, want ErrFileTooLarge", err)
	}
}

func TestDocument_Runes(t *testing.T) {
	doc := FromString("héllo")
	if doc.Runes() != 5 {
		t.Errorf("Runes() = %d, want 5", doc.Runes())
	}
	if doc.Chars() != 6 {
		t.Errorf("Chars() = %d, want 6", doc.Chars())
	}
}

func TestDocument_Frontmatter(t *testing.T) {
	doc := FromString("---\nname: malli\ndescription: Data validation\n---\n# Body\n")

	meta, err := doc.Frontmatter()
	if err != nil {
		t.Fatalf("Frontmatter() error = %v", err)
	}
	if meta.Name != "malli" {
		t.Errorf("Name = %q, want malli", meta.Name)
	}
	if meta.Description != "Data validation" {
		t.Errorf("Description = %q", meta.Description)
	}
}

func TestDocument_Frontmatter_Absent(t *testing.T) {
	meta, err := FromString("# Plain doc\n").Frontmatter()
	if err != nil {
		t.Fatalf("Frontmatter() error = %v", err)
	}
	if meta != (Meta{}) {
		t.Errorf("meta = %+v, want zero value", meta)
	}
}

func TestDocument_Frontmatter_Malformed(t *testing.T) {
	if _, err := FromString("---\nname: [unclosed\n---\nbody\n").Frontmatter(); err == nil {
		t.Error("Frontmatter() should surface YAML errors")
	}
}

func TestDocument_FrontmatterRange(t *testing.T) {
	doc := FromString("---\nname: x\n---\n# Body\n")
	start, end, ok := doc.FrontmatterRange()
	if !ok {
		t.Fatal("FrontmatterRange() should detect frontmatter")
	}
	if start != 0 || doc.Text[end:] != "# Body\n" {
		t.Errorf("range [%d,%d) leaves %q", start, end, doc.Text[end:])
	}

	if _, _, ok := FromString("plain text").FrontmatterRange(); ok {
		t.Error("FrontmatterRange() on plain text should be false")
	}
}
