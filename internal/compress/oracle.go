package compress

import (
	"context"

	"github.com/promptpress/promptpress/internal/token"
)

// Oracle is the importance-scoring collaborator. It decides which
// non-forced tokens survive compression.
//
// The contract: retain[i] must be true for every index where forced[i]
// is true, and the total number of retained tokens should be as close
// to budget as the oracle can manage without exceeding it. The
// compressor re-asserts the forced part of the contract after every
// call, so a misbehaving oracle can lower quality but can never drop a
// protected token.
//
// Implementations are expected to be deterministic: same tokens, forced
// set and budget produce the same decisions. The compressor adds no
// randomness of its own, so a deterministic oracle makes the whole
// pipeline reproducible.
//
// Oracles may be expensive to construct (vocabulary or model load).
// Construct one per process and reuse it; construction failure is
// surfaced as ErrScoringUnavailable and is not retried.
type Oracle interface {
	Retain(ctx context.Context, tokens []token.Token, forced []bool, budget int) ([]bool, error)
}
