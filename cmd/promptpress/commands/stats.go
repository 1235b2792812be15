package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptpress/promptpress/internal/document"
	"github.com/promptpress/promptpress/internal/errors"
	"github.com/promptpress/promptpress/internal/logging"
	"github.com/promptpress/promptpress/internal/marker"
	"github.com/promptpress/promptpress/internal/token"
)

var statsJSON bool

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false,
		"output as JSON")
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats <path>",
	Short: "Show token and size statistics for a document",
	Long: `Show how a document measures before any compression: word tokens,
BPE tokens, characters, and how many tokens the forced-keep markers
and protected regions would pin in place.

The protected count is the floor a compression run cannot go below;
compare it against your target budget to see whether a ratio is
reachable.`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

// docStats is the JSON output structure.
type docStats struct {
	Path            string  `json:"path"`
	Name            string  `json:"name,omitempty"`
	Description     string  `json:"description,omitempty"`
	Chars           int     `json:"chars"`
	Runes           int     `json:"runes"`
	WordTokens      int     `json:"word_tokens"`
	BPETokens       int     `json:"bpe_tokens,omitempty"`
	ProtectedTokens int     `json:"protected_tokens"`
	MaxRatio        float64 `json:"max_ratio"`
}

func runStats(cmd *cobra.Command, args []string) error {
	log := logging.FromContext(cmd.Context())

	doc, err := document.Load(args[0], cfg.MaxFileSize)
	if err != nil {
		return errors.NewSystemError(err, "check that the input file exists and is readable")
	}

	tokens := token.Tokenize(doc.Text)

	// Mirror what a default compress run would protect.
	set, err := resolveMarkers()
	if err != nil {
		return err
	}
	if set == nil && cfg.PreserveCode {
		set = marker.Builtin()
	}
	forced := make([]bool, len(tokens))
	if set != nil {
		forced = set.Match(tokens)
	}
	if cfg.PreserveCode {
		marker.MarkRanges(tokens, marker.Regions([]byte(doc.Text)), forced)
		if start, end, ok := doc.FrontmatterRange(); ok {
			marker.MarkRanges(tokens, []marker.Range{{Start: start, End: end}}, forced)
		}
	}
	protected := 0
	for _, f := range forced {
		if f {
			protected++
		}
	}

	meta, err := doc.Frontmatter()
	if err != nil {
		log.Debug("frontmatter not parseable", "error", err)
	}

	s := docStats{
		Path:            args[0],
		Name:            meta.Name,
		Description:     meta.Description,
		Chars:           doc.Chars(),
		Runes:           doc.Runes(),
		WordTokens:      len(tokens),
		ProtectedTokens: protected,
		MaxRatio:        1.0,
	}
	if protected > 0 {
		s.MaxRatio = float64(len(tokens)) / float64(protected)
	} else if len(tokens) > 0 {
		s.MaxRatio = float64(len(tokens))
	}

	if counter, err := token.NewCounter(); err == nil {
		if n, err := counter.Count(doc.Text); err == nil {
			s.BPETokens = n
		}
	} else {
		log.Debug("BPE counter unavailable", "error", err)
	}

	if statsJSON {
		return printJSON(cmd.OutOrStdout(), s)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", s.Path)
	if s.Name != "" {
		fmt.Fprintf(out, "  name:       %s\n", s.Name)
	}
	if s.Description != "" {
		fmt.Fprintf(out, "  about:      %s\n", s.Description)
	}
	fmt.Fprintf(out, "  chars:      %d\n", s.Chars)
	fmt.Fprintf(out, "  tokens:     %d\n", s.WordTokens)
	if s.BPETokens > 0 {
		fmt.Fprintf(out, "  bpe tokens: %d\n", s.BPETokens)
	}
	fmt.Fprintf(out, "  protected:  %d\n", s.ProtectedTokens)
	fmt.Fprintf(out, "  max ratio:  %.2fx\n", s.MaxRatio)
	return nil
}
