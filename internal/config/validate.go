package config

import (
	"errors"
	"path/filepath"
	"strings"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrRatioTooLow indicates a target ratio below 1.0; output cannot
	// exceed input size under this design.
	ErrRatioTooLow = errors.New("ratio must be >= 1.0")

	// ErrToleranceOutOfRange indicates a tolerance outside [0, 1).
	ErrToleranceOutOfRange = errors.New("tolerance must be in [0, 1)")

	// ErrMaxFileSizeTooLow indicates a non-positive file size cap.
	ErrMaxFileSizeTooLow = errors.New("max_file_size must be positive")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if cfg.Ratio < 1.0 {
		errs = append(errs, ErrRatioTooLow)
	}

	if cfg.Tolerance < 0 || cfg.Tolerance >= 1 {
		errs = append(errs, ErrToleranceOutOfRange)
	}

	if cfg.MaxFileSize <= 0 {
		errs = append(errs, ErrMaxFileSizeTooLow)
	}

	if cfg.MarkersFile != "" {
		if err := validatePath(cfg.MarkersFile); err != nil {
			errs = append(errs, &PathError{
				Field: "markers_file",
				Path:  cfg.MarkersFile,
				Err:   err,
			})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty paths are valid (they mean "use default")
	if path == "" {
		return nil
	}

	// Check for null bytes which are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	// Clean the path and check it's not empty after cleaning
	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
