package marker

import (
	"strings"
	"testing"

	"github.com/promptpress/promptpress/internal/token"
)

const fencedDoc = `Intro prose that can be dropped.

` + "```clojure\n(defn add [a b]\n  (+ a b))\n```" + `

Closing prose.
`

func TestRegions_FencedCodeBlock(t *testing.T) {
	ranges := Regions([]byte(fencedDoc))
	if len(ranges) != 1 {
		t.Fatalf("Regions() = %d ranges, want 1", len(ranges))
	}

	covered := fencedDoc[ranges[0].Start:ranges[0].End]
	if !strings.HasPrefix(covered, "```clojure") {
		t.Errorf("range should start at the opening fence, got %q", covered)
	}
	if !strings.Contains(covered, "(+ a b)") {
		t.Errorf("range should cover the code, got %q", covered)
	}
	if !strings.Contains(covered, "```\n") || strings.Count(covered, "```") != 2 {
		t.Errorf("range should cover both fences, got %q", covered)
	}
	if strings.Contains(covered, "Intro prose") || strings.Contains(covered, "Closing prose") {
		t.Errorf("range should not cover surrounding prose, got %q", covered)
	}
}

func TestRegions_Headings(t *testing.T) {
	doc := "# Top\n\nprose\n\n### Usage\n\nmore prose\n"
	ranges := Regions([]byte(doc))

	if len(ranges) != 2 {
		t.Fatalf("Regions() = %d ranges, want 2", len(ranges))
	}

	first := doc[ranges[0].Start:ranges[0].End]
	if first != "# Top" {
		t.Errorf("first range = %q, want %q", first, "# Top")
	}
	second := doc[ranges[1].Start:ranges[1].End]
	if second != "### Usage" {
		t.Errorf("second range = %q, want %q", second, "### Usage")
	}
}

func TestRegions_NoStructure(t *testing.T) {
	if ranges := Regions([]byte("just a plain paragraph of prose\n")); len(ranges) != 0 {
		t.Errorf("Regions() = %v, want none", ranges)
	}
}

func TestRegions_EmptyInput(t *testing.T) {
	if ranges := Regions(nil); len(ranges) != 0 {
		t.Errorf("Regions(nil) = %v, want none", ranges)
	}
}

func TestMarkRanges(t *testing.T) {
	doc := "drop me\n```\nkeep this\n```\ndrop too\n"
	tokens := token.Tokenize(doc)
	ranges := Regions([]byte(doc))
	if len(ranges) != 1 {
		t.Fatalf("Regions() = %d ranges, want 1", len(ranges))
	}

	forced := make([]bool, len(tokens))
	MarkRanges(tokens, ranges, forced)

	for i, tok := range tokens {
		inBlock := tok.Text == "```" || tok.Text == "keep" || tok.Text == "this"
		if forced[i] != inBlock {
			t.Errorf("token %q forced = %v, want %v", tok.Text, forced[i], inBlock)
		}
	}
}
