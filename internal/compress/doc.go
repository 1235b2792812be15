// Package compress implements the preservation-aware compressor: it
// reduces a document to a target token budget while guaranteeing that
// protected markers and regions are never dropped.
//
// The pipeline inside Compress is:
//
//  1. tokenize the document into offset-carrying word tokens
//  2. resolve the forced-keep set (marker literals, code blocks,
//     headings, frontmatter)
//  3. ask the injected Oracle to fill the remaining token budget
//  4. reassemble retained tokens in source order
//  5. compute before/after statistics
//
// Two invariants hold for every run: the output token count never
// exceeds the input's, and every forced-keep token survives in source
// order. When the forced set alone exceeds the budget the target ratio
// is relaxed rather than violated - the run succeeds and the result
// reports the ratio actually achieved.
package compress
