// Package frontmatter provides utilities for handling YAML frontmatter
// in markdown documents.
//
// Skill files carry structured metadata in a frontmatter block. The
// compressor must treat that block as a single protected unit: dropping
// or reordering tokens inside it would corrupt the YAML. Block reports
// the byte range so the whole span can be marked forced-keep.
package frontmatter

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

var delim = []byte("---")

// Block reports the byte range [start, end) of a leading YAML frontmatter
// block, including both delimiter lines and the trailing newline of the
// closing delimiter. ok is false if the content has no frontmatter.
func Block(content []byte) (start, end int, ok bool) {
	rest, offset := afterOpenDelim(content)
	if offset < 0 {
		return 0, 0, false
	}

	closeIdx, closeLen := findCloseDelim(rest)
	if closeIdx < 0 {
		return 0, 0, false
	}

	return 0, offset + closeIdx + closeLen, true
}

// Parse extracts frontmatter metadata and body content.
// If no frontmatter is present, matter is left untouched and the full
// content is returned as body.
func Parse(content []byte, matter any) (body []byte, err error) {
	rest, offset := afterOpenDelim(content)
	if offset < 0 {
		return content, nil
	}

	closeIdx, closeLen := findCloseDelim(rest)
	if closeIdx < 0 {
		return content, nil
	}

	if err := yaml.Unmarshal(rest[:closeIdx], matter); err != nil {
		return nil, err
	}

	return rest[closeIdx+closeLen:], nil
}

// afterOpenDelim returns the content following the opening "---" line and
// the offset of that content within the input, or offset -1 if the content
// does not start with a frontmatter delimiter.
func afterOpenDelim(content []byte) ([]byte, int) {
	if !bytes.HasPrefix(content, delim) {
		return nil, -1
	}
	rest := content[len(delim):]
	offset := len(delim)

	// The opening delimiter must be alone on its line.
	if len(rest) > 0 && rest[0] == '\r' {
		rest = rest[1:]
		offset++
	}
	if len(rest) == 0 || rest[0] != '\n' {
		return nil, -1
	}
	return rest[1:], offset + 1
}

// findCloseDelim locates the closing "---" line within content and returns
// its index plus the length of the delimiter line (through its newline).
// Returns index -1 if no closing delimiter exists.
func findCloseDelim(content []byte) (int, int) {
	offset := 0
	for {
		idx := bytes.Index(content[offset:], delim)
		if idx < 0 {
			return -1, 0
		}
		idx += offset

		// Must start a line.
		if idx != 0 && content[idx-1] != '\n' {
			offset = idx + len(delim)
			continue
		}

		// Must end the line (allowing CRLF and EOF).
		tail := content[idx+len(delim):]
		switch {
		case len(tail) == 0:
			return idx, len(delim)
		case tail[0] == '\n':
			return idx, len(delim) + 1
		case tail[0] == '\r' && len(tail) > 1 && tail[1] == '\n':
			return idx, len(delim) + 2
		default:
			offset = idx + len(delim)
		}
	}
}
