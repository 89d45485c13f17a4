// Package processor drives replacement batches: it discovers candidate
// archives under a root, rewrites them one at a time, and aggregates
// per-archive outcomes into a summary. Archives are independent; one
// failure never aborts the rest of the batch.
package processor

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"pptxswap/internal/log"
	"pptxswap/internal/pptx"
)

// lockPrefix marks Office's in-use temp files, which are never candidates.
const lockPrefix = "~$"

// FindArchives returns the .pptx files under root in lexical path order.
// The extension check is case-insensitive; lock files are excluded.
func FindArchives(root string, recursive bool) ([]string, error) {
	var archives []string

	if !recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.Type().IsRegular() && isCandidate(entry.Name()) {
				archives = append(archives, filepath.Join(root, entry.Name()))
			}
		}
		sort.Strings(archives)
		return archives, nil
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if isCandidate(d.Name()) {
			archives = append(archives, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(archives)
	return archives, nil
}

func isCandidate(name string) bool {
	if strings.HasPrefix(name, lockPrefix) {
		return false
	}
	return strings.EqualFold(filepath.Ext(name), ".pptx")
}

// Run processes every candidate archive under root sequentially. Root may
// also point at a single .pptx file. Per-archive failures are recorded in
// the results rather than returned; the returned error covers only the
// invocation itself (unreadable root, cancellation).
func Run(ctx context.Context, root string, opts Options, logger *log.Logger, updates chan<- ProgressUpdate) (Summary, []FileResult, error) {
	var summary Summary
	var results []FileResult

	info, err := os.Stat(root)
	if err != nil {
		return summary, nil, err
	}

	var archives []string
	rootDir := root
	if info.IsDir() {
		archives, err = FindArchives(root, opts.Recursive)
		if err != nil {
			return summary, nil, err
		}
	} else {
		archives = []string{root}
		rootDir = filepath.Dir(root)
	}

	logger.Infof("found %d candidate archives under %s", len(archives), root)
	if updates != nil {
		updates <- ProgressUpdate{TotalDelta: len(archives)}
	}

	for _, archive := range archives {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return summary, results, err
			}
		}

		rel, relErr := filepath.Rel(rootDir, archive)
		if relErr != nil {
			rel = filepath.Base(archive)
		}

		res := processOne(archive, rel, opts)
		results = append(results, res)
		summary.Archives++

		update := ProgressUpdate{ProcessedDelta: 1}
		switch res.Status {
		case StatusReplaced:
			summary.ReplacedFiles++
			summary.ReplacedImages += res.Replaced
			update.ReplacedDelta = res.Replaced
			logger.Infof("%s: replaced %d image(s)", rel, res.Replaced)
		case StatusNoMatch:
			summary.NoMatch++
			logger.Debugf("%s: no match", rel)
		case StatusError:
			summary.Failures++
			update.ErrorDelta = 1
			logger.Errorf("%s: %v", rel, res.Err)
		}
		if updates != nil {
			updates <- update
		}
	}

	return summary, results, nil
}

func processOne(archive, rel string, opts Options) FileResult {
	res := FileResult{Path: archive, RelPath: rel}

	replaceOpts := pptx.Options{
		Backup:       opts.Backup,
		BackupSuffix: opts.BackupSuffix,
	}
	if opts.OutputDir != "" {
		replaceOpts.OutputPath = filepath.Join(opts.OutputDir, rel)
	}

	stats, err := pptx.Replace(archive, opts.Criterion, opts.Replacement, replaceOpts)
	if err != nil {
		res.Status = StatusError
		res.Err = err
		return res
	}

	res.Replaced = stats.Replaced
	res.FormatMismatches = stats.FormatMismatches
	if stats.Replaced > 0 {
		res.Status = StatusReplaced
	} else {
		res.Status = StatusNoMatch
	}
	return res
}
