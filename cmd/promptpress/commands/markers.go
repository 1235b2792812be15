package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/promptpress/promptpress/internal/errors"
	"github.com/promptpress/promptpress/internal/marker"
	"github.com/promptpress/promptpress/internal/paths"
)

var (
	markersProfile string
	markersJSON    bool
)

func init() {
	markersCmd.Flags().StringVar(&markersProfile, "markers", "",
		"TOML marker profile to show instead of the effective set")
	markersCmd.Flags().BoolVar(&markersJSON, "json", false,
		"output as JSON")
	markersCmd.AddCommand(markersInitCmd)
	rootCmd.AddCommand(markersCmd)
}

var markersCmd = &cobra.Command{
	Use:   "markers",
	Short: "Show the forced-keep marker list in effect",
	Long: `Show the marker literals that compression will never drop.

Without flags this is the effective set: a profile named in the
configuration if any, otherwise the builtin list. Pass --markers to
inspect a specific profile file.`,
	Args: cobra.NoArgs,
	RunE: runMarkers,
}

var markersInitCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Write the builtin markers as an editable named profile",
	Long: `Write the builtin forced-keep marker list as a TOML profile under
the config directory. Edit the file, then reference it by name with
--markers or via the markers_file config key.`,
	Args: cobra.ExactArgs(1),
	RunE: runMarkersInit,
}

func runMarkersInit(cmd *cobra.Command, args []string) error {
	name := args[0]

	if err := paths.EnsureDir(paths.ProfilesDir(), 0); err != nil {
		return errors.NewSystemError(err, "check permissions on the config directory")
	}

	path := filepath.Join(paths.ProfilesDir(), name+".toml")
	p := marker.Profile{
		Name:        name,
		Description: "Forced-keep markers, seeded from the builtin list",
		Markers:     marker.Builtin().Literals(),
	}
	if err := marker.SaveProfile(path, p); err != nil {
		return errors.NewSystemError(err, "check permissions on the config directory")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runMarkers(cmd *cobra.Command, _ []string) error {
	ref := cfg.MarkersFile
	if markersProfile != "" {
		ref = markersProfile
	}

	var set *marker.Set
	source := "builtin"
	if ref != "" {
		path, err := resolveProfilePath(ref)
		if err != nil {
			return errors.NewUserError(err, "check the marker profile reference")
		}
		loaded, err := marker.LoadProfile(path)
		if err != nil {
			return errors.NewUserError(err, "check the marker profile path and TOML syntax")
		}
		set = loaded
		source = path
	} else {
		set = marker.Builtin()
	}

	if markersJSON {
		return printJSON(cmd.OutOrStdout(), struct {
			Source  string   `json:"source"`
			Markers []string `json:"markers"`
		}{Source: source, Markers: set.Literals()})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Forced-keep markers (%s):\n", source)
	for _, lit := range set.Literals() {
		fmt.Fprintf(out, "  %s\n", lit)
	}
	return nil
}
