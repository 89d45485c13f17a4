package pptx

import (
	"strings"

	exif "github.com/dsoprea/go-exif/v3"
)

// MetadataNote flags identifying metadata embedded in a reference image.
// Surfaced by analyze so users know what the replacement will carry into
// every matched presentation.
type MetadataNote struct {
	Kind  string
	Value string
}

// MetadataNotes inspects an image's EXIF payload for identifying fields.
// Images without EXIF (or with an unreadable payload) yield no notes.
func MetadataNotes(data []byte) []MetadataNote {
	rawExif, err := exif.SearchAndExtractExif(data)
	if err != nil {
		return nil
	}

	tags, _, err := exif.GetFlatExifData(rawExif, nil)
	if err != nil {
		return nil
	}

	var notes []MetadataNote
	hasGPS := false
	for _, tag := range tags {
		switch {
		case strings.HasPrefix(tag.TagName, "GPS") || strings.Contains(tag.IfdPath, "GPS"):
			hasGPS = true
		case tag.TagName == "Model" || tag.TagName == "CameraModelName":
			notes = append(notes, MetadataNote{Kind: "Device Model", Value: tag.FormattedFirst})
		case tag.TagName == "DateTimeOriginal" || tag.TagName == "DateTime":
			notes = append(notes, MetadataNote{Kind: "Timestamp", Value: tag.FormattedFirst})
		}
	}
	if hasGPS {
		notes = append(notes, MetadataNote{Kind: "GPS", Value: "location data present"})
	}
	return notes
}
