package compress

import (
	"context"
	"sort"
	"strings"

	"github.com/tiktoken-go/tokenizer"

	"github.com/promptpress/promptpress/internal/errors"
	"github.com/promptpress/promptpress/internal/token"
)

// FrequencyOracle is the builtin importance scorer. It needs no network
// or model weights beyond the embedded BPE vocabulary and is fully
// deterministic.
//
// Scoring combines three signals per token:
//   - inverse document frequency: words repeated throughout the
//     document carry less information per occurrence
//   - BPE cost: words that encode to more subword tokens are rarer in
//     general text and tend to be the load-bearing terms
//   - position: earlier occurrences win ties, which also keeps the
//     selection stable
//
// Punctuation-only tokens score at a flat minimum; structural
// punctuation that matters is protected by markers, the rest is the
// first thing to go.
type FrequencyOracle struct {
	codec tokenizer.Codec
}

// NewFrequencyOracle constructs the oracle, loading the BPE vocabulary.
// A load failure is reported as ErrScoringUnavailable.
func NewFrequencyOracle() (*FrequencyOracle, error) {
	codec, err := tokenizer.Get(tokenizer.O200kBase)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "loading BPE vocabulary"), errors.ErrScoringUnavailable)
	}
	return &FrequencyOracle{codec: codec}, nil
}

// Retain implements the Oracle contract.
func (o *FrequencyOracle) Retain(ctx context.Context, tokens []token.Token, forced []bool, budget int) ([]bool, error) {
	retain := make([]bool, len(tokens))

	remaining := budget
	for i, f := range forced {
		if f {
			retain[i] = true
			remaining--
		}
	}
	if remaining <= 0 {
		return retain, nil
	}

	scores, err := o.score(tokens)
	if err != nil {
		return nil, errors.Mark(err, errors.ErrScoringUnavailable)
	}

	// Rank the compressible tokens; forced ones are already in.
	candidates := make([]int, 0, len(tokens))
	for i := range tokens {
		if !forced[i] {
			candidates = append(candidates, i)
		}
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		ia, ib := candidates[a], candidates[b]
		if scores[ia] != scores[ib] {
			return scores[ia] > scores[ib]
		}
		return ia < ib
	})

	if remaining > len(candidates) {
		remaining = len(candidates)
	}
	for _, idx := range candidates[:remaining] {
		retain[idx] = true
	}

	return retain, nil
}

// score assigns an importance score to every token.
func (o *FrequencyOracle) score(tokens []token.Token) ([]float64, error) {
	freq := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		if isWordToken(tok.Text) {
			freq[strings.ToLower(tok.Text)]++
		}
	}

	n := float64(len(tokens))
	scores := make([]float64, len(tokens))

	for i, tok := range tokens {
		if !isWordToken(tok.Text) {
			scores[i] = 0.05
			continue
		}

		score := 0.0

		// Inverse frequency: a word seen once outranks one seen twenty times.
		score += 0.5 / float64(freq[strings.ToLower(tok.Text)])

		// BPE cost: multi-subword terms are the domain vocabulary.
		ids, _, err := o.codec.Encode(tok.Text)
		if err != nil {
			return nil, errors.Wrapf(err, "scoring token %q", tok.Text)
		}
		score += 0.15 * float64(len(ids))

		// Position: gentle preference for the front of the document.
		score += 0.1 * (1.0 - float64(i)/n)

		scores[i] = score
	}

	return scores, nil
}

// isWordToken reports whether text starts with a word rune; punctuation
// runs do not.
func isWordToken(text string) bool {
	if text == "" {
		return false
	}
	r := rune(text[0])
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		return true
	case text[0] >= 0x80:
		// Multi-byte rune: word content by the tokenizer's rules.
		return true
	}
	return false
}
