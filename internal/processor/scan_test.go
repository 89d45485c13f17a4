package processor

import (
	"os"
	"path/filepath"
	"testing"

	"pptxswap/internal/log"
	"pptxswap/internal/pptx"
)

func TestScanDirAggregatesByHash(t *testing.T) {
	dir := t.TempDir()
	shared := []byte("logo used everywhere")
	unique := []byte("only in one deck")

	writeDeck(t, filepath.Join(dir, "a.pptx"), map[string][]byte{"image1.png": shared})
	writeDeck(t, filepath.Join(dir, "b.pptx"), map[string][]byte{
		"image1.png": shared,
		// Embedded twice in the same deck; counts once for this file.
		"image2.png": shared,
		"image3.png": unique,
	})

	images, scanned, err := ScanDir(dir, true, log.New(false))
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	if scanned != 2 {
		t.Fatalf("scanned = %d, want 2", scanned)
	}
	if len(images) != 2 {
		t.Fatalf("unique images = %d, want 2: %#v", len(images), images)
	}

	// Most-used image first.
	if images[0].Fingerprint.Hash != pptx.FingerprintBytes("x", shared).Hash {
		t.Fatalf("first image is not the shared one: %#v", images[0])
	}
	if len(images[0].Files) != 2 {
		t.Fatalf("shared image file count = %d, want 2", len(images[0].Files))
	}
	if len(images[1].Files) != 1 {
		t.Fatalf("unique image file count = %d, want 1", len(images[1].Files))
	}
}

func TestScanDirSkipsUnreadableArchives(t *testing.T) {
	dir := t.TempDir()
	writeDeck(t, filepath.Join(dir, "good.pptx"), map[string][]byte{"image1.png": []byte("fine")})
	if err := os.WriteFile(filepath.Join(dir, "bad.pptx"), []byte("not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}

	images, scanned, err := ScanDir(dir, true, log.New(false))
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	if scanned != 1 {
		t.Fatalf("scanned = %d, want 1", scanned)
	}
	if len(images) != 1 {
		t.Fatalf("unique images = %d, want 1", len(images))
	}
}
