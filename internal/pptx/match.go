package pptx

import (
	"fmt"
	"strconv"
	"strings"
)

// MatchBy selects which fingerprint field identifies the target image.
type MatchBy string

const (
	MatchByHash     MatchBy = "hash"
	MatchByFilename MatchBy = "filename"
	MatchBySize     MatchBy = "size"
)

// ParseMatchBy validates a --match-by flag value.
func ParseMatchBy(s string) (MatchBy, error) {
	switch MatchBy(strings.ToLower(s)) {
	case MatchByHash:
		return MatchByHash, nil
	case MatchByFilename:
		return MatchByFilename, nil
	case MatchBySize:
		return MatchBySize, nil
	default:
		return "", fmt.Errorf("unknown match method %q (want hash, filename, or size)", s)
	}
}

// Criterion is the equality predicate applied to each embedded image entry.
// Exactly one field is populated, selected by By.
//
// Hash matching is exact and safe. Filename and size matching are heuristic:
// distinct images sharing a name or byte size all match and are all replaced.
// Filename comparison is case-sensitive on the entry's stored base name.
type Criterion struct {
	By   MatchBy
	Hash string
	Name string
	Size int64
}

// NewCriterion builds a criterion from a --target identifier.
func NewCriterion(by MatchBy, target string) (Criterion, error) {
	switch by {
	case MatchByHash:
		return Criterion{By: by, Hash: strings.ToLower(target)}, nil
	case MatchByFilename:
		return Criterion{By: by, Name: target}, nil
	case MatchBySize:
		size, err := strconv.ParseInt(target, 10, 64)
		if err != nil {
			return Criterion{}, fmt.Errorf("size target %q is not an integer", target)
		}
		return Criterion{By: by, Size: size}, nil
	default:
		return Criterion{}, fmt.Errorf("unknown match method %q", by)
	}
}

// Matches reports whether an entry's fingerprint satisfies the criterion.
func (c Criterion) Matches(fp Fingerprint) bool {
	switch c.By {
	case MatchByHash:
		return fp.Hash == c.Hash
	case MatchByFilename:
		return fp.Filename == c.Name
	case MatchBySize:
		return fp.Size == c.Size
	default:
		return false
	}
}
