package commands

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/promptpress/promptpress/internal/errors"
	"github.com/promptpress/promptpress/internal/paths"
)

// resolveProfilePath turns a marker profile reference into a file path.
// A "~/" prefix expands to the home directory; a bare name with no
// separator or extension resolves to <config>/profiles/<name>.toml.
func resolveProfilePath(ref string) (string, error) {
	expanded, err := paths.ExpandHome(ref)
	if err != nil {
		return "", err
	}
	if strings.ContainsRune(expanded, filepath.Separator) || filepath.Ext(expanded) != "" {
		return expanded, nil
	}
	if _, err := os.Stat(expanded); err == nil {
		return expanded, nil
	}
	return filepath.Join(paths.ProfilesDir(), expanded+".toml"), nil
}

// printJSON writes v as indented JSON to w.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encoding JSON")
	}
	return nil
}
