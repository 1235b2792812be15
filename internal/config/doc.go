// Package config provides configuration management for the promptpress CLI.
//
// # Configuration File
//
// The default configuration file location is ~/.config/promptpress/config.yaml.
// The configuration file uses YAML format with the following structure:
//
//	version: 1
//	ratio: 10.0
//	tolerance: 0.10
//	preserve_code: true
//	markers_file: /path/to/markers.toml  # optional
//	max_file_size: 1048576
//
// Environment variables with the PROMPTPRESS_ prefix override file values,
// and CLI flags override both.
//
// # Validation
//
// All loaded configurations are validated before the pipeline runs; an
// invalid ratio or tolerance fails fast, before any file I/O on the
// destination occurs:
//
//	errs := config.Validate(cfg)
//	if len(errs) > 0 {
//	    // report and exit with a user error
//	}
package config
