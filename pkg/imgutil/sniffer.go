package imgutil

import (
	"errors"
	"strings"
)

// Kind identifies a supported image type.
type Kind int

const (
	KindUnknown Kind = iota
	KindJPEG
	KindPNG
	KindTIFF
	KindGIF
	KindBMP
)

func (k Kind) String() string {
	switch k {
	case KindJPEG:
		return "jpeg"
	case KindPNG:
		return "png"
	case KindTIFF:
		return "tiff"
	case KindGIF:
		return "gif"
	case KindBMP:
		return "bmp"
	default:
		return "unknown"
	}
}

// mediaExtensions is the set of extensions PowerPoint stores under ppt/media.
var mediaExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
	".wmf":  true,
	".emf":  true,
	".svg":  true,
	".wdp":  true,
}

// IsMediaExt reports whether ext (with leading dot) is a PowerPoint media
// image extension. Comparison is case-insensitive.
func IsMediaExt(ext string) bool {
	return mediaExtensions[strings.ToLower(ext)]
}

// ExtKind maps a filename extension to the image kind it advertises.
// Extensions without a sniffable raster format map to KindUnknown.
func ExtKind(ext string) Kind {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return KindJPEG
	case ".png":
		return KindPNG
	case ".tiff", ".tif":
		return KindTIFF
	case ".gif":
		return KindGIF
	case ".bmp":
		return KindBMP
	default:
		return KindUnknown
	}
}

var (
	pngSig    = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	jpegSig   = []byte{0xff, 0xd8, 0xff}
	tiffSigLE = []byte{0x49, 0x49, 0x2a, 0x00}
	tiffSigBE = []byte{0x4d, 0x4d, 0x00, 0x2a}
	gifSig    = []byte{0x47, 0x49, 0x46, 0x38}
	bmpSig    = []byte{0x42, 0x4d}
)

// DetectHeader inspects the first 8 bytes of a file for known signatures.
func DetectHeader(header []byte) (Kind, error) {
	if len(header) < 8 {
		return KindUnknown, errors.New("header too short")
	}

	if hasPrefix(header, jpegSig) {
		return KindJPEG, nil
	}
	if hasPrefix(header, pngSig) {
		return KindPNG, nil
	}
	if hasPrefix(header, tiffSigLE) || hasPrefix(header, tiffSigBE) {
		return KindTIFF, nil
	}
	if hasPrefix(header, gifSig) {
		return KindGIF, nil
	}
	if hasPrefix(header, bmpSig) {
		return KindBMP, nil
	}

	return KindUnknown, nil
}

// DetectBytes determines the image kind of an in-memory file.
func DetectBytes(data []byte) Kind {
	if len(data) < 8 {
		return KindUnknown
	}
	kind, err := DetectHeader(data[:8])
	if err != nil {
		return KindUnknown
	}
	return kind
}

func hasPrefix(buf, prefix []byte) bool {
	if len(buf) < len(prefix) {
		return false
	}
	for i := range prefix {
		if buf[i] != prefix[i] {
			return false
		}
	}
	return true
}
