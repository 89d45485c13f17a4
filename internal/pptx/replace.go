package pptx

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"pptxswap/pkg/imgutil"
)

// Options control how a single presentation is rewritten.
type Options struct {
	// OutputPath is the destination archive. Empty means overwrite in place.
	OutputPath string
	// Backup copies the original to a sibling backup file before an
	// in-place overwrite. Ignored when OutputPath points elsewhere.
	Backup bool
	// BackupSuffix is appended to the original filename. Defaults to
	// ".backup".
	BackupSuffix string
}

// Stats describes one archive rewrite.
type Stats struct {
	// Replaced is the number of image entries overwritten.
	Replaced int
	// FormatMismatches lists replaced entries whose extension advertises a
	// different image format than the replacement bytes carry. The entry
	// keeps its internal path either way.
	FormatMismatches []string
}

// Replace rewrites one presentation, overwriting every embedded image entry
// that satisfies the criterion with the replacement bytes. All other parts
// are carried over unchanged. When nothing matches, no file is written and
// the original is untouched.
//
// The rewrite goes through a temp file in the destination directory and is
// renamed into place only after the backup (if any) has been written, so the
// original is never left partially modified.
func Replace(pptxPath string, crit Criterion, replacement []byte, opts Options) (Stats, error) {
	var stats Stats

	a, err := Open(pptxPath)
	if err != nil {
		return stats, err
	}
	defer a.Close()

	dest := opts.OutputPath
	if dest == "" {
		dest = pptxPath
	}
	destDir := filepath.Dir(dest)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return stats, err
	}

	tmp, err := os.CreateTemp(destDir, "pptxswap-*.tmp")
	if err != nil {
		return stats, err
	}
	defer os.Remove(tmp.Name())

	replacementKind := imgutil.DetectBytes(replacement)

	zw := zip.NewWriter(tmp)
	for _, f := range a.zr.File {
		data, err := readZipFile(f)
		if err != nil {
			_ = zw.Close()
			_ = tmp.Close()
			return stats, fmt.Errorf("read %s from %s: %w", f.Name, pptxPath, err)
		}

		if isMediaImage(f.Name) && crit.Matches(FingerprintBytes(path.Base(f.Name), data)) {
			data = replacement
			stats.Replaced++
			if extKind := imgutil.ExtKind(path.Ext(f.Name)); extKind != imgutil.KindUnknown &&
				replacementKind != imgutil.KindUnknown && extKind != replacementKind {
				stats.FormatMismatches = append(stats.FormatMismatches, f.Name)
			}
		}

		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.Name,
			Method:   zip.Deflate,
			Modified: f.Modified,
		})
		if err != nil {
			_ = zw.Close()
			_ = tmp.Close()
			return stats, err
		}
		if _, err := w.Write(data); err != nil {
			_ = zw.Close()
			_ = tmp.Close()
			return stats, fmt.Errorf("write %s: %w", f.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		_ = tmp.Close()
		return stats, err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return stats, err
	}
	if err := tmp.Close(); err != nil {
		return stats, err
	}

	if stats.Replaced == 0 {
		return stats, nil
	}

	// Release the source handle before touching the destination.
	if err := a.Close(); err != nil {
		return stats, err
	}

	if dest == pptxPath && opts.Backup {
		if err := writeBackup(pptxPath, opts.BackupSuffix); err != nil {
			return stats, fmt.Errorf("%w: %v", ErrBackup, err)
		}
	}

	if err := replaceFile(tmp.Name(), dest); err != nil {
		return stats, fmt.Errorf("save %s: %w", dest, err)
	}
	return stats, nil
}

// writeBackup copies src to src+suffix. An existing backup is kept as-is so
// repeated runs never clobber the first pre-image.
func writeBackup(src, suffix string) error {
	if suffix == "" {
		suffix = ".backup"
	}
	backupPath := src + suffix
	if _, err := os.Stat(backupPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return copyFile(src, backupPath)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func replaceFile(tmpPath, destPath string) error {
	if err := os.Rename(tmpPath, destPath); err == nil {
		return nil
	}
	if err := os.Remove(destPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(tmpPath, destPath)
}
