// Package document provides the pipeline's loader: it reads a source
// markdown/text file into a Document value without transforming it.
// Byte-exact content, including line endings, is preserved; any
// transformation is the compressor's job.
package document

import (
	"unicode/utf8"

	"github.com/promptpress/promptpress/internal/errors"
	"github.com/promptpress/promptpress/pkg/fileutil"
	"github.com/promptpress/promptpress/pkg/frontmatter"
)

// Document is an in-memory source document. It is created by Load,
// consumed by the compressor, and discarded after reporting; there is no
// persistence beyond the output file.
type Document struct {
	// Path is the source file path, kept for error context.
	Path string

	// Text is the raw file content, byte for byte.
	Text string
}

// Load reads the file at path into a Document. The read is capped at
// limit bytes; see fileutil.ReadFileWithLimit.
func Load(path string, limit int64) (*Document, error) {
	data, err := fileutil.ReadFileWithLimit(path, limit)
	if err != nil {
		return nil, errors.Wrapf(err, "loading document %s", path)
	}

	return &Document{
		Path: path,
		Text: string(data),
	}, nil
}

// FromString wraps already-loaded content in a Document. Used by tests
// and by callers that read from stdin.
func FromString(text string) *Document {
	return &Document{Text: text}
}

// Chars returns the document length in bytes. Size reports are stated
// in bytes, which for UTF-8 text is what len() gives.
func (d *Document) Chars() int {
	return len(d.Text)
}

// Runes returns the document length in runes.
func (d *Document) Runes() int {
	return utf8.RuneCountInString(d.Text)
}

// FrontmatterRange reports the byte range of a leading YAML frontmatter
// block, if any. The compressor force-keeps this range so skill metadata
// survives compression intact.
func (d *Document) FrontmatterRange() (start, end int, ok bool) {
	return frontmatter.Block([]byte(d.Text))
}

// Meta is the metadata a skill file carries in its frontmatter block.
type Meta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Frontmatter parses the leading frontmatter block into Meta. A document
// without frontmatter yields a zero Meta and no error; malformed YAML is
// an error.
func (d *Document) Frontmatter() (Meta, error) {
	var m Meta
	if _, err := frontmatter.Parse([]byte(d.Text), &m); err != nil {
		return Meta{}, errors.Wrapf(err, "parsing frontmatter of %s", d.Path)
	}
	return m, nil
}
