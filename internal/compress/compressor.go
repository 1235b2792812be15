package compress

import (
	"context"
	"math"
	"time"

	"github.com/promptpress/promptpress/internal/document"
	"github.com/promptpress/promptpress/internal/errors"
	"github.com/promptpress/promptpress/internal/logging"
	"github.com/promptpress/promptpress/internal/marker"
	"github.com/promptpress/promptpress/internal/token"
)

// DefaultTolerance is the accepted relative deviation from the target
// ratio when the forced-keep set does not exhaust the budget.
const DefaultTolerance = 0.10

// Request configures a single compression run.
type Request struct {
	// Doc is the source document.
	Doc *document.Document

	// Ratio is the target compression multiple (>= 1.0). A ratio of 10
	// asks for output around one tenth of the input token count.
	Ratio float64

	// Tolerance is the accepted relative deviation from Ratio. Zero
	// means DefaultTolerance.
	Tolerance float64

	// Markers is the forced-keep marker set. Nil selects the builtin
	// set when PreserveCode is true, and no markers otherwise.
	Markers *marker.Set

	// PreserveCode protects document structure: code blocks, headings
	// and a leading frontmatter block are forced-keep as whole regions,
	// and the marker literals apply.
	PreserveCode bool
}

// Result is the outcome of a compression run. All counts are word
// tokens unless named otherwise.
type Result struct {
	// Text is the compressed document.
	Text string

	OriginalTokens   int
	CompressedTokens int
	OriginalChars    int
	CompressedChars  int

	// BPE token counts, present when the compressor has a Counter.
	OriginalBPE   int
	CompressedBPE int

	// ForcedTokens is how many tokens the protection pass marked.
	ForcedTokens int

	// TargetRatio is the requested ratio; AchievedRatio is
	// OriginalTokens / CompressedTokens.
	TargetRatio   float64
	AchievedRatio float64

	// Relaxed is true when the forced-keep set alone exceeded the
	// budget, so the achieved ratio is lower than requested. This is a
	// recovered condition, not an error: protected content outranks the
	// target.
	Relaxed bool

	// WithinTolerance reports whether AchievedRatio is within the
	// request's tolerance of TargetRatio.
	WithinTolerance bool

	Duration time.Duration
}

// Compressor runs preservation-aware compression. The oracle is an
// explicit dependency: construct it once per process and inject it, so
// its expensive initialization happens exactly once and tests can
// substitute a fake.
type Compressor struct {
	oracle  Oracle
	counter *token.Counter
}

// Option configures a Compressor.
type Option func(*Compressor)

// WithCounter adds BPE token counts to results.
func WithCounter(c *token.Counter) Option {
	return func(cp *Compressor) {
		cp.counter = c
	}
}

// New creates a Compressor using the given oracle.
func New(oracle Oracle, opts ...Option) *Compressor {
	cp := &Compressor{oracle: oracle}
	for _, opt := range opts {
		opt(cp)
	}
	return cp
}

// Compress produces a Result honoring the forced-keep guarantee: every
// protected marker occurrence and protected region in the source
// survives, unchanged and in source order, whatever the ratio asks for.
func (cp *Compressor) Compress(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	log := logging.FromContext(ctx)

	if req.Ratio < 1.0 {
		return nil, errors.Wrapf(errors.ErrInvalidRatio, "got %.2f", req.Ratio)
	}
	tolerance := req.Tolerance
	if tolerance == 0 {
		tolerance = DefaultTolerance
	}

	source := req.Doc.Text
	tokens := token.Tokenize(source)
	n := len(tokens)

	if n == 0 {
		// Nothing to do; ratio reported as 1.0 by convention.
		return &Result{
			TargetRatio:     req.Ratio,
			AchievedRatio:   1.0,
			WithinTolerance: req.Ratio == 1.0,
			Duration:        time.Since(start),
		}, nil
	}

	forced := cp.resolveForced(req, tokens)
	forcedCount := 0
	for _, f := range forced {
		if f {
			forcedCount++
		}
	}

	// Token budget implied by the ratio. Never zero: an output with no
	// tokens at all serves nobody.
	budget := int(math.Floor(float64(n) / req.Ratio))
	if budget < 1 {
		budget = 1
	}

	var keep []bool
	relaxed := false

	if forcedCount >= budget {
		// Protected content alone meets or exceeds the budget. Keep
		// exactly the forced set and report the ratio we actually get.
		keep = forced
		relaxed = forcedCount > budget
		if relaxed {
			log.Info("protected content exceeds token budget, relaxing ratio",
				"forced", forcedCount, "budget", budget)
		}
	} else {
		retained, err := cp.oracle.Retain(ctx, tokens, forced, budget)
		if err != nil {
			return nil, errors.Wrap(err, "scoring tokens")
		}
		if len(retained) != n {
			return nil, errors.Mark(
				errors.Newf("oracle returned %d decisions for %d tokens", len(retained), n),
				errors.ErrScoringUnavailable)
		}
		// Re-assert the forced-keep contract; the oracle is not trusted
		// with it.
		for i, f := range forced {
			if f && !retained[i] {
				retained[i] = true
			}
		}
		keep = retained
	}

	retainedCount := 0
	for _, k := range keep {
		if k {
			retainedCount++
		}
	}

	text := token.Join(source, tokens, keep)

	achieved := 1.0
	if retainedCount > 0 {
		achieved = float64(n) / float64(retainedCount)
	}

	res := &Result{
		Text:             text,
		OriginalTokens:   n,
		CompressedTokens: retainedCount,
		OriginalChars:    len(source),
		CompressedChars:  len(text),
		ForcedTokens:     forcedCount,
		TargetRatio:      req.Ratio,
		AchievedRatio:    achieved,
		Relaxed:          relaxed,
		WithinTolerance:  math.Abs(achieved-req.Ratio) <= tolerance*req.Ratio,
		Duration:         time.Since(start),
	}

	if cp.counter != nil {
		orig, err := cp.counter.Count(source)
		if err != nil {
			return nil, errors.Wrap(err, "counting source BPE tokens")
		}
		comp, err := cp.counter.Count(text)
		if err != nil {
			return nil, errors.Wrap(err, "counting compressed BPE tokens")
		}
		res.OriginalBPE = orig
		res.CompressedBPE = comp
	}

	log.Debug("compression complete",
		"original_tokens", n,
		"compressed_tokens", retainedCount,
		"target_ratio", req.Ratio,
		"achieved_ratio", achieved,
		"relaxed", relaxed)

	return res, nil
}

// resolveForced computes the forced-keep token flags for the request:
// literal marker matches plus, when PreserveCode is set, structural
// regions (code blocks, headings) and a leading frontmatter block.
func (cp *Compressor) resolveForced(req Request, tokens []token.Token) []bool {
	markers := req.Markers
	if markers == nil && req.PreserveCode {
		markers = marker.Builtin()
	}

	var forced []bool
	if markers != nil {
		forced = markers.Match(tokens)
	} else {
		forced = make([]bool, len(tokens))
	}

	if req.PreserveCode {
		source := []byte(req.Doc.Text)
		marker.MarkRanges(tokens, marker.Regions(source), forced)

		if start, end, ok := req.Doc.FrontmatterRange(); ok {
			marker.MarkRanges(tokens, []marker.Range{{Start: start, End: end}}, forced)
		}
	}

	return forced
}
