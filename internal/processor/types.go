package processor

import "pptxswap/internal/pptx"

// Status is the terminal state of one archive. Each archive reaches exactly
// one of these in a single step; there are no retries.
type Status int

const (
	StatusReplaced Status = iota
	StatusNoMatch
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusReplaced:
		return "replaced"
	case StatusNoMatch:
		return "no match"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Options configure one replacement batch.
type Options struct {
	Criterion   pptx.Criterion
	Replacement []byte
	// OutputDir mirrors each archive's root-relative path under a new
	// directory. Empty means overwrite in place.
	OutputDir string
	// Backup writes a pre-replacement sibling copy on in-place overwrites.
	Backup       bool
	BackupSuffix string
	Recursive    bool
}

// FileResult is one archive's outcome.
type FileResult struct {
	Path             string
	RelPath          string
	Status           Status
	Replaced         int
	FormatMismatches []string
	Err              error
}

// Summary aggregates a batch.
type Summary struct {
	// Archives is the number of candidate .pptx files processed.
	Archives int
	// ReplacedFiles counts archives with at least one replacement;
	// ReplacedImages counts individual image entries across them.
	ReplacedFiles  int
	ReplacedImages int
	NoMatch        int
	Failures       int
}

// ProgressUpdate is the delta stream feeding the progress UI.
type ProgressUpdate struct {
	TotalDelta     int
	ProcessedDelta int
	ReplacedDelta  int
	ErrorDelta     int
}
