package marker

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/promptpress/promptpress/internal/errors"
	"github.com/promptpress/promptpress/pkg/fileutil"
)

// Profile is an on-disk marker set. Profiles let a deployment swap the
// builtin Clojure-oriented list for another language's keywords without
// a code change.
//
// File format (TOML):
//
//	name = "go"
//	description = "Markers for Go skill files"
//	markers = ["```", "```go", "func", "type", "##", "###"]
type Profile struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Markers     []string `toml:"markers"`
}

// LoadProfile reads a TOML marker profile and compiles it into a Set.
func LoadProfile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading marker profile %s", path)
	}

	var p Profile
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrapf(err, "parsing marker profile %s", path)
	}

	if len(p.Markers) == 0 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "marker profile %s defines no markers", path)
	}

	set, err := NewSet(p.Markers)
	if err != nil {
		return nil, errors.Wrapf(err, "compiling marker profile %s", path)
	}
	return set, nil
}

// SaveProfile writes a profile as TOML. The write is atomic.
func SaveProfile(path string, p Profile) error {
	if len(p.Markers) == 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "profile %q defines no markers", p.Name)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return errors.Wrapf(err, "encoding marker profile %s", path)
	}

	return fileutil.AtomicWriteFile(path, data, 0o644)
}
