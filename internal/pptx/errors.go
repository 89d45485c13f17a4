// Package pptx treats a .pptx file as a zip container of named parts and
// provides fingerprinting, matching, and replacement of the embedded image
// parts under ppt/media/.
package pptx

import "errors"

// Sentinel errors for per-archive failure classification.
// Use errors.Is(err, ErrXxx) for typed assertions.
var (
	// ErrNotFound indicates a reference image or archive path does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrInvalidArchive indicates the container cannot be opened as a pptx
	// archive or lacks the expected internal structure.
	ErrInvalidArchive = errors.New("invalid pptx archive")

	// ErrBackup indicates the pre-replacement backup copy could not be
	// written. Replacement is aborted for that archive.
	ErrBackup = errors.New("backup failed")
)
