package fileutil

import (
	"io"
	"os"

	"github.com/promptpress/promptpress/internal/errors"
)

// ErrFileTooLarge indicates that a file exceeded the caller's size limit.
var ErrFileTooLarge = errors.New("file exceeds maximum size")

// ReadFileWithLimit reads a file up to limit bytes.
// It returns ErrFileTooLarge if the file is larger than the limit.
// The limit exists because the whole document is tokenized in memory;
// a runaway input would otherwise exhaust the process.
func ReadFileWithLimit(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	// Get file info to fail fast if size is already too large
	info, err := f.Stat()
	if err == nil {
		if info.Size() > limit {
			return nil, errors.Wrapf(ErrFileTooLarge, "%s is %d bytes, limit %d", path, info.Size(), limit)
		}
	}

	// Read with limit
	r := io.LimitReader(f, limit+1)
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	if int64(len(data)) > limit {
		return nil, errors.Wrapf(ErrFileTooLarge, "%s exceeds %d bytes", path, limit)
	}

	return data, nil
}
