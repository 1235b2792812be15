// Package report renders compression results for humans and machines.
// The human form is a short terminal summary; the machine form is a
// Stats document written as JSON or YAML next to the output file.
package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/promptpress/promptpress/internal/compress"
	"github.com/promptpress/promptpress/internal/errors"
	"github.com/promptpress/promptpress/pkg/fileutil"
)

// Stats is the machine-readable record of a compression run.
type Stats struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	OriginalTokens   int `json:"original_tokens" yaml:"original_tokens"`
	CompressedTokens int `json:"compressed_tokens" yaml:"compressed_tokens"`
	OriginalChars    int `json:"original_chars" yaml:"original_chars"`
	CompressedChars  int `json:"compressed_chars" yaml:"compressed_chars"`

	OriginalBPE   int `json:"original_bpe,omitempty" yaml:"original_bpe,omitempty"`
	CompressedBPE int `json:"compressed_bpe,omitempty" yaml:"compressed_bpe,omitempty"`

	ForcedTokens int `json:"forced_tokens" yaml:"forced_tokens"`

	TargetRatio   float64 `json:"target_ratio" yaml:"target_ratio"`
	AchievedRatio float64 `json:"achieved_ratio" yaml:"achieved_ratio"`

	Relaxed         bool `json:"relaxed" yaml:"relaxed"`
	WithinTolerance bool `json:"within_tolerance" yaml:"within_tolerance"`

	DurationMS int64 `json:"duration_ms" yaml:"duration_ms"`
}

// FromResult builds a Stats record from a compression result.
func FromResult(input, output string, res *compress.Result) Stats {
	return Stats{
		Input:            input,
		Output:           output,
		OriginalTokens:   res.OriginalTokens,
		CompressedTokens: res.CompressedTokens,
		OriginalChars:    res.OriginalChars,
		CompressedChars:  res.CompressedChars,
		OriginalBPE:      res.OriginalBPE,
		CompressedBPE:    res.CompressedBPE,
		ForcedTokens:     res.ForcedTokens,
		TargetRatio:      res.TargetRatio,
		AchievedRatio:    res.AchievedRatio,
		Relaxed:          res.Relaxed,
		WithinTolerance:  res.WithinTolerance,
		DurationMS:       res.Duration.Milliseconds(),
	}
}

// Reduction is the size reduction in percent (0 when the input was empty).
func (s Stats) Reduction() float64 {
	if s.OriginalChars == 0 {
		return 0
	}
	return 100 * (1 - float64(s.CompressedChars)/float64(s.OriginalChars))
}

// Summary renders the human-readable report. Color is applied only when
// enabled; callers decide based on the destination terminal.
func Summary(s Stats, colored bool) string {
	plain := func(a ...interface{}) string { return fmt.Sprint(a...) }
	bold, warn, good := plain, plain, plain
	if colored {
		bold = color.New(color.Bold).SprintFunc()
		warn = color.New(color.FgYellow).SprintFunc()
		good = color.New(color.FgGreen).SprintFunc()
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", bold("Compressed"), s.Input)
	fmt.Fprintf(&b, "  tokens:  %d -> %d (%d protected)\n",
		s.OriginalTokens, s.CompressedTokens, s.ForcedTokens)
	fmt.Fprintf(&b, "  chars:   %d -> %d (%.1f%% smaller)\n",
		s.OriginalChars, s.CompressedChars, s.Reduction())
	if s.OriginalBPE > 0 {
		fmt.Fprintf(&b, "  bpe:     %d -> %d\n", s.OriginalBPE, s.CompressedBPE)
	}

	ratio := fmt.Sprintf("%.2fx (target %.2fx)", s.AchievedRatio, s.TargetRatio)
	switch {
	case s.Relaxed:
		fmt.Fprintf(&b, "  ratio:   %s\n", warn(ratio+" relaxed"))
		b.WriteString("  note:    protected content exceeds the target budget; all of it was kept\n")
	case s.WithinTolerance:
		fmt.Fprintf(&b, "  ratio:   %s\n", good(ratio))
	default:
		fmt.Fprintf(&b, "  ratio:   %s\n", ratio)
	}

	if s.DurationMS > 0 {
		fmt.Fprintf(&b, "  took:    %s\n", time.Duration(s.DurationMS)*time.Millisecond)
	}
	if s.Output != "" {
		fmt.Fprintf(&b, "  wrote:   %s\n", s.Output)
	}

	return b.String()
}

// WriteStats persists the stats record. The extension picks the format:
// .json for JSON, anything else (.yaml, .yml) for YAML.
func WriteStats(path string, s Stats) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return fileutil.AtomicWriteJSON(path, s)
	case ".yaml", ".yml", "":
		return fileutil.AtomicWriteYAML(path, s)
	default:
		return errors.Newf("unsupported stats format %q, use .json, .yaml or .yml", filepath.Ext(path))
	}
}

// WriteOutput writes the compressed document atomically, so a failed
// run never clobbers an existing destination with partial content.
func WriteOutput(path, text string) error {
	return fileutil.AtomicWriteFile(path, []byte(text), 0o644)
}
