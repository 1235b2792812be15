// Package errors provides error handling conventions for the promptpress CLI.
//
// This package defines sentinel errors for the pipeline's failure taxonomy,
// an ExitError type for CLI exit code handling, exit code constants
// following standard Unix conventions, and re-exports of the
// cockroachdb/errors helpers used throughout the codebase.
//
// # Failure taxonomy
//
// The compression pipeline distinguishes three failure classes:
//
//   - configuration errors ([ErrInvalidRatio], [ErrEmptyMarker],
//     [ErrInvalidConfig]): rejected before any processing begins
//   - I/O errors: source unreadable or destination unwritable, wrapped
//     with path context at the call site
//   - [ErrScoringUnavailable]: the importance-scoring oracle failed to
//     initialize or crashed; fatal for the invocation, never retried
//
// Callers check for specific conditions using [Is]:
//
//	if errors.Is(err, errors.ErrScoringUnavailable) {
//	    // oracle is down for the process, stop submitting documents
//	}
//
// # Exit codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid ratio, bad marker profile, etc.)
//   - ExitSystem (2): System-related error (I/O, oracle failure, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports unwrapping via [errors.Unwrap] and [errors.As]:
//
//	err := errors.NewUserError(errors.ErrInvalidRatio, "use --ratio 10")
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
