package installer

import "errors"

var (
	// ErrNetwork covers failures opening or reading the download stream.
	ErrNetwork = errors.New("network error")
	// ErrIO covers local filesystem failures.
	ErrIO = errors.New("i/o error")
	// ErrExtraction means an archive could not be fully extracted.
	ErrExtraction = errors.New("extraction failed")
)
