package processor

import (
	"sort"

	"pptxswap/internal/log"
	"pptxswap/internal/pptx"
)

// UniqueImage is one distinct image (by content hash) seen across a
// directory scan, with the presentations that embed it.
type UniqueImage struct {
	Fingerprint pptx.Fingerprint
	Files       []string
}

// ScanDir aggregates the embedded images of every .pptx under root by
// content hash. Returns the unique images (most-used first, hash as
// tiebreak) and the number of archives scanned. Unreadable archives are
// logged and skipped; they don't abort the scan.
func ScanDir(root string, recursive bool, logger *log.Logger) ([]UniqueImage, int, error) {
	archives, err := FindArchives(root, recursive)
	if err != nil {
		return nil, 0, err
	}

	byHash := make(map[string]*UniqueImage)
	scanned := 0
	for _, archive := range archives {
		entries, err := pptx.ListImages(archive)
		if err != nil {
			logger.Warnf("skipping %s: %v", archive, err)
			continue
		}
		scanned++

		seen := make(map[string]bool)
		for _, entry := range entries {
			img, ok := byHash[entry.Fingerprint.Hash]
			if !ok {
				img = &UniqueImage{Fingerprint: entry.Fingerprint}
				byHash[entry.Fingerprint.Hash] = img
			}
			// One archive counts once per image, however often it
			// embeds it.
			if !seen[entry.Fingerprint.Hash] {
				img.Files = append(img.Files, archive)
				seen[entry.Fingerprint.Hash] = true
			}
		}
	}

	images := make([]UniqueImage, 0, len(byHash))
	for _, img := range byHash {
		images = append(images, *img)
	}
	sort.Slice(images, func(i, j int) bool {
		if len(images[i].Files) != len(images[j].Files) {
			return len(images[i].Files) > len(images[j].Files)
		}
		return images[i].Fingerprint.Hash < images[j].Fingerprint.Hash
	})
	return images, scanned, nil
}
