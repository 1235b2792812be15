package commands

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/promptpress/promptpress/internal/errors"
)

// pickInput presents a fuzzy finder over the Markdown files under root
// and returns the selected path.
func pickInput(root string) (string, error) {
	candidates, err := findMarkdown(root)
	if err != nil {
		return "", errors.Wrap(err, "scanning for documents")
	}
	if len(candidates) == 0 {
		return "", errors.NewUserError(errors.New("no Markdown files found"),
			"pass an input path explicitly")
	}

	idx, err := fuzzyfinder.Find(
		candidates,
		func(i int) string {
			return candidates[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return previewFile(candidates[i], h)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", errors.NewUserError(nil, "selection cancelled")
		}
		return "", errors.Wrap(err, "interactive selection failed")
	}

	return candidates[idx], nil
}

// findMarkdown walks root collecting .md files, skipping hidden
// directories and anything that looks like a dependency tree.
func findMarkdown(root string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, ".") || name == "node_modules" || name == "vendor") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(name), ".md") {
			out = append(out, path)
		}
		return nil
	})
	return out, err
}

// previewFile returns the first lines of path for the picker preview.
func previewFile(path string, height int) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("cannot read %s: %v", path, err)
	}
	lines := strings.SplitN(string(data), "\n", height+1)
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
