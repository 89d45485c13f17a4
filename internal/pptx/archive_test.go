package pptx

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

type part struct {
	name string
	data []byte
}

func writeArchive(t *testing.T, path string, parts []part) {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			t.Fatalf("create %s: %v", p.name, err)
		}
		if _, err := w.Write(p.data); err != nil {
			t.Fatalf("write %s: %v", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readArchiveParts(t *testing.T, path string) map[string][]byte {
	t.Helper()

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer zr.Close()

	parts := make(map[string][]byte)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open part %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read part %s: %v", f.Name, err)
		}
		parts[f.Name] = data
	}
	return parts
}

func TestImagesFiltersMediaParts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.pptx")
	writeArchive(t, path, []part{
		{"[Content_Types].xml", []byte("<Types/>")},
		{"ppt/media/image1.png", []byte("png-bytes")},
		{"ppt/media/image2.JPG", []byte("jpg-bytes")},
		{"ppt/media/notes.txt", []byte("not an image")},
		{"docProps/thumbnail.jpeg", []byte("outside media")},
		{"ppt/slides/slide1.xml", []byte("<sld/>")},
	})

	entries, err := ListImages(path)
	if err != nil {
		t.Fatalf("ListImages: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %#v", len(entries), entries)
	}
	if entries[0].Path != "ppt/media/image1.png" || entries[1].Path != "ppt/media/image2.JPG" {
		t.Fatalf("unexpected entry paths: %q, %q", entries[0].Path, entries[1].Path)
	}
	if entries[0].Fingerprint != FingerprintBytes("image1.png", []byte("png-bytes")) {
		t.Fatalf("unexpected fingerprint: %#v", entries[0].Fingerprint)
	}
}

func TestOpenMissingArchive(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.pptx"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOpenInvalidArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pptx")
	if err := os.WriteFile(path, []byte("this is not a zip file"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(path)
	if !errors.Is(err, ErrInvalidArchive) {
		t.Fatalf("expected ErrInvalidArchive, got %v", err)
	}
}

func TestSlideUsage(t *testing.T) {
	const relNS = `xmlns="http://schemas.openxmlformats.org/package/2006/relationships"`
	const imageType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	const slideType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"

	presentation := []byte(`<p:presentation
		xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"
		xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
		<p:sldIdLst>
			<p:sldId id="256" r:id="rId2"/>
			<p:sldId id="257" r:id="rId3"/>
		</p:sldIdLst>
	</p:presentation>`)
	presRels := []byte(`<Relationships ` + relNS + `>
		<Relationship Id="rId2" Type="` + slideType + `" Target="slides/slide1.xml"/>
		<Relationship Id="rId3" Type="` + slideType + `" Target="slides/slide2.xml"/>
	</Relationships>`)
	slide1Rels := []byte(`<Relationships ` + relNS + `>
		<Relationship Id="rId1" Type="` + imageType + `" Target="../media/image1.png"/>
	</Relationships>`)
	slide2Rels := []byte(`<Relationships ` + relNS + `>
		<Relationship Id="rId1" Type="` + imageType + `" Target="../media/image1.png"/>
		<Relationship Id="rId2" Type="` + imageType + `" Target="../media/image2.jpg"/>
	</Relationships>`)

	path := filepath.Join(t.TempDir(), "deck.pptx")
	writeArchive(t, path, []part{
		{"ppt/presentation.xml", presentation},
		{"ppt/_rels/presentation.xml.rels", presRels},
		{"ppt/slides/slide1.xml", []byte("<sld/>")},
		{"ppt/slides/slide2.xml", []byte("<sld/>")},
		{"ppt/slides/_rels/slide1.xml.rels", slide1Rels},
		{"ppt/slides/_rels/slide2.xml.rels", slide2Rels},
		{"ppt/media/image1.png", []byte("one")},
		{"ppt/media/image2.jpg", []byte("two")},
	})

	a, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer a.Close()

	usage := a.SlideUsage()

	if got := usage["ppt/media/image1.png"]; len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("image1 usage = %v, want [1 2]", got)
	}
	if got := usage["ppt/media/image2.jpg"]; len(got) != 1 || got[0] != 2 {
		t.Fatalf("image2 usage = %v, want [2]", got)
	}
}

func TestSlideUsageMissingRelationships(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pptx")
	writeArchive(t, path, []part{
		{"ppt/media/image1.png", []byte("one")},
	})

	a, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer a.Close()

	if usage := a.SlideUsage(); len(usage) != 0 {
		t.Fatalf("expected empty usage, got %v", usage)
	}
}
