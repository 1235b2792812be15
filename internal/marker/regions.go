package marker

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/promptpress/promptpress/internal/token"
)

// Range is a protected byte range [Start, End) in the source document.
type Range struct {
	Start int
	End   int
}

// Regions parses source as markdown and returns the byte ranges of
// structural elements that must survive compression whole: fenced and
// indented code blocks and ATX headings. Ranges include the fence
// delimiter lines and the heading prefix.
func Regions(source []byte) []Range {
	md := goldmark.New()
	reader := gmtext.NewReader(source)
	root := md.Parser().Parse(reader)

	var ranges []Range

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.Kind() {
		case ast.KindFencedCodeBlock, ast.KindCodeBlock:
			if r, ok := blockRange(source, n); ok {
				ranges = append(ranges, r)
			}
			return ast.WalkSkipChildren, nil
		case ast.KindHeading:
			if r, ok := headingRange(source, n); ok {
				ranges = append(ranges, r)
			}
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return ranges
}

// blockRange computes the byte range of a code block, extended to cover
// the fence delimiter lines which goldmark does not include in the
// block's line segments.
func blockRange(source []byte, n ast.Node) (Range, bool) {
	lines := n.Lines()
	if lines.Len() == 0 {
		// An empty fenced block still has its fences protected by the
		// literal "```" markers; nothing else to cover.
		return Range{}, false
	}

	start := lines.At(0).Start
	end := lines.At(lines.Len() - 1).Stop

	if n.Kind() == ast.KindFencedCodeBlock {
		start = lineStart(source, start)
		end = lineEnd(source, end)
	}

	return Range{Start: start, End: end}, true
}

// headingRange computes the byte range of an ATX heading including its
// "#" prefix.
func headingRange(source []byte, n ast.Node) (Range, bool) {
	lines := n.Lines()
	if lines.Len() == 0 {
		return Range{}, false
	}

	seg := lines.At(0)
	return Range{
		Start: lineStart(source, seg.Start),
		End:   seg.Stop,
	}, true
}

// lineStart returns the offset of the first byte of the line preceding
// pos's line boundary: for a position at the start of a content line it
// backs up over the previous line (the opening fence), for a position
// inside a line it backs up to that line's start.
func lineStart(source []byte, pos int) int {
	if pos == 0 {
		return 0
	}
	// Step over the newline terminating the previous line, if we are
	// sitting exactly on a line start.
	i := pos - 1
	if source[i] == '\n' {
		i--
	}
	for i >= 0 && source[i] != '\n' {
		i--
	}
	return i + 1
}

// lineEnd returns the offset one past the line containing pos, i.e. past
// the next newline (or the end of source).
func lineEnd(source []byte, pos int) int {
	idx := bytes.IndexByte(source[pos:], '\n')
	if idx < 0 {
		return len(source)
	}
	return pos + idx + 1
}

// MarkRanges sets forced[i] for every token overlapping any of the
// ranges. forced must be indexed like tokens.
func MarkRanges(tokens []token.Token, ranges []Range, forced []bool) {
	for _, r := range ranges {
		for i, tok := range tokens {
			if tok.End <= r.Start {
				continue
			}
			if tok.Start >= r.End {
				break
			}
			forced[i] = true
		}
	}
}
