package errors

import crdberrors "github.com/cockroachdb/errors"

// Re-exports of cockroachdb/errors helpers so callers only import one
// errors package.
var (
	New    = crdberrors.New
	Newf   = crdberrors.Newf
	Wrap   = crdberrors.Wrap
	Wrapf  = crdberrors.Wrapf
	Is     = crdberrors.Is
	As     = crdberrors.As
	Unwrap = crdberrors.Unwrap
	Join   = crdberrors.Join
	Mark   = crdberrors.Mark
)
