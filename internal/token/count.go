package token

import (
	"github.com/tiktoken-go/tokenizer"

	"github.com/promptpress/promptpress/internal/errors"
)

// Counter counts BPE tokens for reporting. Word tokens are the
// compression unit, but downstream LLM budgets are stated in BPE tokens,
// so stats carry both.
type Counter struct {
	codec tokenizer.Codec
}

// NewCounter loads the o200k_base encoding. The vocabulary load is the
// expensive part; construct one Counter per process and reuse it.
func NewCounter() (*Counter, error) {
	codec, err := tokenizer.Get(tokenizer.O200kBase)
	if err != nil {
		return nil, errors.Wrap(err, "loading BPE vocabulary")
	}
	return &Counter{codec: codec}, nil
}

// Count returns the BPE token count of text.
func (c *Counter) Count(text string) (int, error) {
	ids, _, err := c.codec.Encode(text)
	if err != nil {
		return 0, errors.Wrap(err, "counting BPE tokens")
	}
	return len(ids), nil
}
