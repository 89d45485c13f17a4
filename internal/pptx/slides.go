package pptx

import (
	"encoding/xml"
	"path"
	"sort"
	"strings"
)

// OOXML relationship plumbing, enough to answer "which slides use this
// image". Presentations missing any of these parts yield partial (or empty)
// usage maps rather than errors.

type relationships struct {
	Rels []relationship `xml:"Relationship"`
}

type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type presentationXML struct {
	SlideIDs []slideID `xml:"sldIdLst>sldId"`
}

type slideID struct {
	// The r:id attribute; the namespace must be spelled out or the plain
	// id attribute on the same element would match first.
	RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
}

// SlideUsage maps each media part path to the slide numbers that reference
// it, in presentation order. Slide numbers are 1-based.
func (a *Archive) SlideUsage() map[string][]int {
	usage := make(map[string][]int)

	presRels, err := a.relationshipMap("ppt/_rels/presentation.xml.rels")
	if err != nil {
		return usage
	}

	raw, err := a.readPart("ppt/presentation.xml")
	if err != nil {
		return usage
	}
	var pres presentationXML
	if err := xml.Unmarshal(raw, &pres); err != nil {
		return usage
	}

	for i, sld := range pres.SlideIDs {
		slideNum := i + 1
		slidePath, ok := presRels[sld.RID]
		if !ok {
			continue
		}
		slidePath = resolveTarget("ppt", slidePath)

		relsPath := path.Join(path.Dir(slidePath), "_rels", path.Base(slidePath)+".rels")
		slideRels, err := a.imageRelationships(relsPath)
		if err != nil {
			continue
		}
		for _, target := range slideRels {
			mediaPath := resolveTarget(path.Dir(slidePath), target)
			usage[mediaPath] = append(usage[mediaPath], slideNum)
		}
	}

	for _, nums := range usage {
		sort.Ints(nums)
	}
	return usage
}

// relationshipMap parses a .rels part into rId -> Target.
func (a *Archive) relationshipMap(relsPath string) (map[string]string, error) {
	raw, err := a.readPart(relsPath)
	if err != nil {
		return nil, err
	}
	var rels relationships
	if err := xml.Unmarshal(raw, &rels); err != nil {
		return nil, err
	}
	m := make(map[string]string, len(rels.Rels))
	for _, rel := range rels.Rels {
		m[rel.ID] = rel.Target
	}
	return m, nil
}

// imageRelationships returns the deduplicated targets of image-typed
// relationships in a slide's .rels part.
func (a *Archive) imageRelationships(relsPath string) ([]string, error) {
	raw, err := a.readPart(relsPath)
	if err != nil {
		return nil, err
	}
	var rels relationships
	if err := xml.Unmarshal(raw, &rels); err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var targets []string
	for _, rel := range rels.Rels {
		if !strings.Contains(strings.ToLower(rel.Type), "image") {
			continue
		}
		if seen[rel.Target] {
			continue
		}
		seen[rel.Target] = true
		targets = append(targets, rel.Target)
	}
	return targets, nil
}

// resolveTarget resolves a relationship target against the directory of the
// part that declared it. Absolute targets are package-rooted.
func resolveTarget(baseDir, target string) string {
	target = strings.ReplaceAll(target, "\\", "/")
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(baseDir, target))
}
