// Package paths resolves the XDG base directories used by promptpress:
// the config directory holding config.yaml and marker profile files, and
// the cache directory holding downloaded oracle vocabularies.
package paths
