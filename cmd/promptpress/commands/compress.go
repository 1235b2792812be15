package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/promptpress/promptpress/internal/compress"
	"github.com/promptpress/promptpress/internal/document"
	"github.com/promptpress/promptpress/internal/errors"
	"github.com/promptpress/promptpress/internal/logging"
	"github.com/promptpress/promptpress/internal/marker"
	"github.com/promptpress/promptpress/internal/report"
	"github.com/promptpress/promptpress/internal/token"
)

var (
	compressOutput    string
	compressRatio     float64
	compressTolerance float64
	compressNoCode    bool
	compressMarkers   string
	compressStatsFile string
	compressJSON      bool
)

func init() {
	compressCmd.Flags().StringVarP(&compressOutput, "output", "o", "",
		"destination file (default: stdout)")
	compressCmd.Flags().Float64VarP(&compressRatio, "ratio", "r", 0,
		"target compression ratio, >= 1.0 (default: from config)")
	compressCmd.Flags().Float64Var(&compressTolerance, "tolerance", 0,
		"accepted relative deviation from the target ratio (default: from config)")
	compressCmd.Flags().BoolVar(&compressNoCode, "no-preserve-code", false,
		"do not protect code blocks, headings and frontmatter")
	compressCmd.Flags().StringVar(&compressMarkers, "markers", "",
		"TOML marker profile replacing the builtin forced-keep list")
	compressCmd.Flags().StringVar(&compressStatsFile, "stats-file", "",
		"write run statistics to this file (.json, .yaml or .yml)")
	compressCmd.Flags().BoolVar(&compressJSON, "json", false,
		"print statistics as JSON instead of the text summary")
	rootCmd.AddCommand(compressCmd)
}

var compressCmd = &cobra.Command{
	Use:   "compress [path]",
	Short: "Compress a document to a target token budget",
	Long: `Compress a document to roughly 1/ratio of its word tokens.

Protected content always survives: occurrences of the forced-keep
markers, fenced code blocks, headings and a leading frontmatter block
are retained verbatim and in source order. If the protected content
alone exceeds the token budget the target ratio is relaxed, the run
still succeeds, and the report shows the ratio actually achieved.

When no path is given and the session is interactive, a fuzzy picker
offers the Markdown files under the current directory.

Exit codes:
  0 - Compression succeeded
  1 - Invalid input or configuration
  2 - I/O failure or scoring oracle unavailable`,
	Example: `  # To a file, with the default ratio
  promptpress compress SKILL.md -o SKILL.min.md

  # Aggressive ratio, statistics on the side
  promptpress compress notes.md -o notes.min.md -r 20 --stats-file notes.json

  # Plain text only, nothing protected
  promptpress compress notes.md --no-preserve-code -r 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompress,
}

func runCompress(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	ratio := cfg.Ratio
	if cmd.Flags().Changed("ratio") {
		ratio = compressRatio
	}
	tolerance := cfg.Tolerance
	if cmd.Flags().Changed("tolerance") {
		tolerance = compressTolerance
	}

	// Reject a bad ratio before any destination I/O happens.
	if ratio < 1.0 {
		return errors.NewUserError(
			errors.Wrapf(errors.ErrInvalidRatio, "got %.2f", ratio),
			"ratios express shrinkage: 10 means one tenth of the input")
	}

	input, err := resolveInput(args)
	if err != nil {
		return err
	}

	doc, err := document.Load(input, cfg.MaxFileSize)
	if err != nil {
		return errors.NewSystemError(err, "check that the input file exists and is readable")
	}

	markers, err := resolveMarkers()
	if err != nil {
		return err
	}

	oracle, err := compress.NewFrequencyOracle()
	if err != nil {
		return errors.NewSystemError(err, "the BPE vocabulary could not be loaded")
	}

	opts := []compress.Option{}
	if counter, err := token.NewCounter(); err == nil {
		opts = append(opts, compress.WithCounter(counter))
	} else {
		log.Debug("BPE counter unavailable, skipping BPE stats", "error", err)
	}

	cp := compress.New(oracle, opts...)
	res, err := cp.Compress(ctx, compress.Request{
		Doc:          doc,
		Ratio:        ratio,
		Tolerance:    tolerance,
		Markers:      markers,
		PreserveCode: cfg.PreserveCode && !compressNoCode,
	})
	if err != nil {
		if errors.Is(err, errors.ErrInvalidRatio) {
			return errors.NewExitError(err, errors.ExitUser)
		}
		return errors.NewExitError(err, errors.ExitSystem)
	}

	// Only now, with a complete result in hand, touch the destination.
	if compressOutput != "" {
		if err := report.WriteOutput(compressOutput, res.Text); err != nil {
			return errors.NewSystemError(err, "check that the destination directory exists and is writable")
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), res.Text)
		if len(res.Text) > 0 && res.Text[len(res.Text)-1] != '\n' {
			fmt.Fprintln(cmd.OutOrStdout())
		}
	}

	stats := report.FromResult(input, compressOutput, res)

	if compressStatsFile != "" {
		if err := report.WriteStats(compressStatsFile, stats); err != nil {
			return errors.NewSystemError(err, "check the stats file path and extension")
		}
	}

	switch {
	case compressJSON:
		// When the document itself occupies stdout, the stats block goes
		// to stderr so both streams stay parseable.
		w := cmd.OutOrStdout()
		if compressOutput == "" {
			w = cmd.ErrOrStderr()
		}
		return printJSON(w, stats)
	case quiet || compressOutput == "":
		// Keep stdout clean when the document itself goes there.
		log.Info("compression complete",
			"achieved_ratio", res.AchievedRatio, "relaxed", res.Relaxed)
	default:
		colored := logging.SupportsColor(os.Stdout)
		fmt.Fprint(cmd.OutOrStdout(), report.Summary(stats, colored))
	}

	return nil
}

// resolveInput picks the source document: the positional argument if
// given, otherwise an interactive selection on a terminal.
func resolveInput(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if !logging.IsTTY(os.Stdin) {
		return "", errors.NewUserError(errors.New("no input file given"),
			"pass a path, or run interactively to pick one")
	}
	return pickInput(".")
}

// resolveMarkers loads the marker profile named by the flag or config,
// or returns nil to let the compressor use the builtin list.
func resolveMarkers() (*marker.Set, error) {
	path := cfg.MarkersFile
	if compressMarkers != "" {
		path = compressMarkers
	}
	if path == "" {
		return nil, nil
	}
	path, err := resolveProfilePath(path)
	if err != nil {
		return nil, errors.NewUserError(err, "check the marker profile reference")
	}
	set, err := marker.LoadProfile(path)
	if err != nil {
		return nil, errors.NewUserError(err, "check the marker profile path and TOML syntax")
	}
	return set, nil
}
