// Package marker implements the forced-keep model: literal protected
// markers matched against the token sequence, and structural regions
// (code fences, headings, frontmatter) resolved to byte ranges by a
// markdown parser.
//
// Protection is expressed as token indices, never as post-hoc substring
// search, so a marker occurrence cannot be split or half-dropped by the
// compressor regardless of how the surrounding text tokenizes.
package marker

import (
	"github.com/promptpress/promptpress/internal/errors"
	"github.com/promptpress/promptpress/internal/token"
)

// Set is an ordered list of protected marker literals. Matching is
// case-sensitive and exact.
type Set struct {
	literals []string
	compiled [][]token.Token
}

// builtinLiterals is the closed default marker list: markdown structure
// markers plus the Clojure keywords and example arrows the original
// skill corpus relies on. Extending it is a config change (a TOML
// profile), not a runtime parameter.
var builtinLiterals = []string{
	// Markdown code markers
	"```", "```clojure",
	// Common Clojure keywords
	"defn", "def", "let", "require", "ns",
	// Important markers
	"##", "###", "####",
	// Keep arrows for examples
	"=>", "->", "->>",
}

// Builtin returns the default marker set.
func Builtin() *Set {
	s, err := NewSet(builtinLiterals)
	if err != nil {
		// The builtin list is a compile-time constant; a bad entry is a
		// programming error.
		panic(err)
	}
	return s
}

// NewSet compiles a marker set from literals. Returns ErrEmptyMarker if
// any literal is empty or tokenizes to nothing.
func NewSet(literals []string) (*Set, error) {
	s := &Set{
		literals: make([]string, 0, len(literals)),
		compiled: make([][]token.Token, 0, len(literals)),
	}

	for _, lit := range literals {
		toks := token.Tokenize(lit)
		if len(toks) == 0 {
			return nil, errors.Wrapf(errors.ErrEmptyMarker, "marker %q", lit)
		}
		s.literals = append(s.literals, lit)
		s.compiled = append(s.compiled, toks)
	}

	return s, nil
}

// Literals returns the marker literals in order.
func (s *Set) Literals() []string {
	out := make([]string, len(s.literals))
	copy(out, s.literals)
	return out
}

// Len returns the number of markers in the set.
func (s *Set) Len() int {
	return len(s.literals)
}

// Match marks every token that is part of an occurrence of any marker.
// The returned slice is indexed like tokens; true means forced-keep.
//
// A multi-token marker such as "```clojure" matches only where the
// document tokens are adjacent exactly as they are in the literal, so
// "``` clojure" (with a space) does not match it, though it still
// matches the bare "```" marker.
func (s *Set) Match(tokens []token.Token) []bool {
	forced := make([]bool, len(tokens))

	for _, lit := range s.compiled {
		for i := 0; i+len(lit) <= len(tokens); i++ {
			if matchAt(tokens, i, lit) {
				for k := range lit {
					forced[i+k] = true
				}
			}
		}
	}

	return forced
}

// matchAt reports whether the marker's token sequence occurs at tokens[i].
func matchAt(tokens []token.Token, i int, lit []token.Token) bool {
	for k, lt := range lit {
		dt := tokens[i+k]
		if dt.Text != lt.Text {
			return false
		}
		if k > 0 {
			litAdjacent := lit[k-1].End == lt.Start
			docAdjacent := tokens[i+k-1].End == dt.Start
			if litAdjacent && !docAdjacent {
				return false
			}
		}
	}
	return true
}

// Occurrences returns, for each marker literal, how many times it occurs
// in the token sequence. Used by the post-condition check that verifies
// no protected occurrence was lost.
func (s *Set) Occurrences(tokens []token.Token) map[string]int {
	counts := make(map[string]int, len(s.literals))

	for m, lit := range s.compiled {
		n := 0
		for i := 0; i+len(lit) <= len(tokens); i++ {
			if matchAt(tokens, i, lit) {
				n++
			}
		}
		counts[s.literals[m]] = n
	}

	return counts
}
