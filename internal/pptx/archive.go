package pptx

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"

	"pptxswap/pkg/imgutil"
)

// mediaPrefix is where PowerPoint stores embedded pictures inside the
// container.
const mediaPrefix = "ppt/media/"

// Entry is one embedded image part inside a presentation archive.
type Entry struct {
	// Path is the internal part path, e.g. ppt/media/image1.png.
	Path        string
	Fingerprint Fingerprint
}

// Archive is an opened presentation container.
type Archive struct {
	path string
	zr   *zip.ReadCloser
}

// Open opens a .pptx file for reading.
func Open(pptxPath string) (*Archive, error) {
	zr, err := zip.OpenReader(pptxPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, pptxPath)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidArchive, pptxPath, err)
	}
	return &Archive{path: pptxPath, zr: zr}, nil
}

func (a *Archive) Close() error {
	return a.zr.Close()
}

// Images enumerates the embedded image entries in container order and
// fingerprints each one.
func (a *Archive) Images() ([]Entry, error) {
	var entries []Entry
	for _, f := range a.zr.File {
		if !isMediaImage(f.Name) {
			continue
		}
		data, err := readZipFile(f)
		if err != nil {
			return nil, fmt.Errorf("read %s from %s: %w", f.Name, a.path, err)
		}
		entries = append(entries, Entry{
			Path:        f.Name,
			Fingerprint: FingerprintBytes(path.Base(f.Name), data),
		})
	}
	return entries, nil
}

// readPart returns the raw bytes of one named part.
func (a *Archive) readPart(name string) ([]byte, error) {
	for _, f := range a.zr.File {
		if f.Name == name {
			return readZipFile(f)
		}
	}
	return nil, fmt.Errorf("part %s: %w", name, fs.ErrNotExist)
}

// ListImages opens an archive, enumerates its image entries, and closes it.
func ListImages(pptxPath string) ([]Entry, error) {
	a, err := Open(pptxPath)
	if err != nil {
		return nil, err
	}
	defer a.Close()
	return a.Images()
}

func isMediaImage(name string) bool {
	if len(name) <= len(mediaPrefix) || name[:len(mediaPrefix)] != mediaPrefix {
		return false
	}
	return imgutil.IsMediaExt(path.Ext(name))
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
