package domain

import "errors"

// Aggregation failures. All are terminal for the call that produced them;
// the caller may resubmit with adjusted parameters. Per-file read or parse
// errors are not part of this taxonomy: they are logged and the file is
// skipped without aborting the batch.
var (
	// ErrInvalidFilter means the filter specification is malformed,
	// e.g. an empty tag set that is not the match-all sentinel.
	ErrInvalidFilter = errors.New("invalid filter specification")

	// ErrOutputCollision means a file already exists at the computed
	// output path. Output files are never overwritten.
	ErrOutputCollision = errors.New("output file already exists")

	// ErrEmptySource means the notes directory contains no markdown files.
	ErrEmptySource = errors.New("no markdown files in source directory")

	// ErrNoFilesInRange means the date filter eliminated every candidate.
	ErrNoFilesInRange = errors.New("no files within date range")

	// ErrNoMatchingNotes means files existed and were readable but none
	// satisfied the tag and privacy filters, or all matches were empty
	// after content extraction.
	ErrNoMatchingNotes = errors.New("no notes matched the filter")

	// ErrWriteFailure means the output file could not be written.
	ErrWriteFailure = errors.New("failed to write output file")
)
