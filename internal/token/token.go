// Package token provides the compression unit: a whitespace and
// punctuation aware word tokenizer whose tokens carry byte offsets into
// the source document.
//
// Offsets are what make the forced-keep contract enforceable. Protected
// spans are index ranges over this token sequence, not substrings, so a
// marker occurrence can never be half-dropped by a tokenization boundary
// mismatch. Reassembly via Join copies original source text between
// adjacent retained tokens, which keeps fully retained regions (code
// blocks, frontmatter) verbatim.
package token

import "strings"

// Token is a single compression unit with its byte range in the source.
type Token struct {
	// Text is the token's text, identical to the source slice [Start, End).
	Text string

	// Start is the byte offset of the token in the source.
	Start int

	// End is the byte offset one past the token's last byte.
	End int
}

// Tokenize splits text into an ordered token sequence. Whitespace
// separates tokens and is never part of one. Runs of word runes
// (letters, digits, underscore) form one token; hyphens and apostrophes
// join word runes on both sides, so "clj-kondo" is a single token while
// "->" is not. Runs of any other runes form punctuation tokens, keeping
// fences ("```") and arrows ("->>", "=>") whole.
func Tokenize(text string) []Token {
	var tokens []Token
	runes := []rune(text)

	// Byte offset of each rune, plus the terminating offset.
	offsets := make([]int, len(runes)+1)
	pos := 0
	for i, r := range runes {
		offsets[i] = pos
		pos += len(string(r))
	}
	offsets[len(runes)] = pos

	i := 0
	for i < len(runes) {
		r := runes[i]

		if isSpace(r) {
			i++
			continue
		}

		start := i
		if isWordRune(r) {
			i++
			for i < len(runes) {
				if isWordRune(runes[i]) {
					i++
					continue
				}
				// Connectors stay inside a word only with a word rune on
				// both sides.
				if isConnector(runes[i]) && i+1 < len(runes) && isWordRune(runes[i+1]) {
					i += 2
					continue
				}
				break
			}
		} else {
			i = punctEnd(runes, i)
		}

		tokens = append(tokens, Token{
			Text:  string(runes[start:i]),
			Start: offsets[start],
			End:   offsets[i],
		})
	}

	return tokens
}

// Join reassembles the retained subset of tokens in original order.
// keep must be the same length as tokens. Source text between two
// consecutively retained tokens is copied verbatim when no token was
// dropped between them; across a dropped gap a single separator is
// emitted instead, a newline if the skipped source contained one.
func Join(source string, tokens []Token, keep []bool) string {
	var b strings.Builder
	prev := -1 // index of the previously retained token

	for i, tok := range tokens {
		if !keep[i] {
			continue
		}

		if prev >= 0 {
			if prev == i-1 {
				// No dropped tokens in between: original spacing survives.
				b.WriteString(source[tokens[prev].End:tok.Start])
			} else if strings.ContainsRune(source[tokens[prev].End:tok.Start], '\n') {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}

		b.WriteString(tok.Text)
		prev = i
	}

	return b.String()
}

// punctEnd returns the end index of the punctuation token starting at i.
// A punctuation token is either a run of the identical rune ("```",
// "###", "...") or an arrow: '-' or '=' followed by a run of '>' ("->",
// "->>", "=>"). Anything else is a single rune, so brackets never fuse
// with the operators beside them.
func punctEnd(runes []rune, i int) int {
	r := runes[i]

	if (r == '-' || r == '=') && i+1 < len(runes) && runes[i+1] == '>' {
		i += 2
		for i < len(runes) && runes[i] == '>' {
			i++
		}
		return i
	}

	j := i + 1
	for j < len(runes) && runes[j] == r {
		j++
	}
	return j
}

// isSpace reports whether r separates tokens.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
}

// isWordRune reports whether r can appear in a word token.
func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_':
		return true
	case r > 127 && !isSpace(r):
		// Non-ASCII text runes group with words.
		return !isSymbolRune(r)
	}
	return false
}

// isConnector reports whether r joins two word runes into one token.
func isConnector(r rune) bool {
	return r == '-' || r == '\''
}

// isSymbolRune reports whether a non-ASCII rune should be treated as
// punctuation rather than word content.
func isSymbolRune(r rune) bool {
	// Common typographic punctuation; everything else non-ASCII counts
	// as word content (accented letters, CJK, etc).
	switch r {
	case '‘', '’', '“', '”', '–', '—', '…':
		return true
	}
	return false
}
