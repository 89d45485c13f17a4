package pptx

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Fingerprint identifies an image by content. The digest is the MD5 of the
// raw bytes, lowercase hex.
type Fingerprint struct {
	Filename string
	Size     int64
	Hash     string
}

// FingerprintBytes computes the fingerprint of an in-memory image.
func FingerprintBytes(name string, data []byte) Fingerprint {
	sum := md5.Sum(data)
	return Fingerprint{
		Filename: name,
		Size:     int64(len(data)),
		Hash:     hex.EncodeToString(sum[:]),
	}
}

// FingerprintFile computes the fingerprint of an image on disk.
func FingerprintFile(path string) (Fingerprint, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Fingerprint{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Fingerprint{}, err
	}
	defer f.Close()

	h := md5.New()
	size, err := io.Copy(h, f)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("read %s: %w", path, err)
	}

	return Fingerprint{
		Filename: filepath.Base(path),
		Size:     size,
		Hash:     hex.EncodeToString(h.Sum(nil)),
	}, nil
}
