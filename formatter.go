package coco

import (
	"strconv"
	"strings"
)

// ImageReport gathers everything known about one image.
type ImageReport struct {
	ImageID    int
	Captions   []string
	Categories []Category
	URL        string
	Found      bool

	// ImagePath is empty when the image has no file name.
	ImagePath string
}

// NewImageReport builds a report for id from idx.
func NewImageReport(idx Index, id int) ImageReport {
	captions, categories := idx.CaptionsAndCategories(id)
	url, found := idx.ImageURL(id)
	path, _ := idx.ImagePath(id)
	return ImageReport{
		ImageID:    id,
		Captions:   captions,
		Categories: categories,
		URL:        url,
		Found:      found,
		ImagePath:  path,
	}
}

// FormatImageReport formats captions, then categories, then the URL and local
// file path, each section tab-indented and separated by a blank line.
func FormatImageReport(r ImageReport) string {
	var b strings.Builder
	b.WriteString("Image ID: ")
	b.WriteString(strconv.Itoa(r.ImageID))
	b.WriteString("\n")
	for _, c := range r.Captions {
		b.WriteString("\t" + c + "\n")
	}
	b.WriteString("\n")
	for _, c := range r.Categories {
		b.WriteString("\t" + c.String() + "\n")
	}
	b.WriteString("\n")
	if r.Found {
		b.WriteString("\t" + r.URL + "\n")
		if r.ImagePath != "" {
			b.WriteString("\t" + r.ImagePath + "\n")
		}
	} else {
		b.WriteString("\tnot found\n")
	}
	return b.String()
}

// FormatMatch formats a caption search result as the image id followed by
// the indented caption.
func FormatMatch(imageID int, caption string) string {
	return strconv.Itoa(imageID) + ":\n\t" + caption
}

// FormatImageIDs formats ids as a bracketed, comma separated list.
func FormatImageIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
