package coco

import "iter"

// CaptionMatch is one result of a caption search.
type CaptionMatch struct {
	ImageID int    `json:"imageId"`
	Caption string `json:"caption"`
}

// Index answers read-only queries over a loaded dataset.
// Implementations must be safe for concurrent use.
type Index interface {
	// Category returns the category with the given id, or InvalidCategory.
	Category(id int) Category

	// Categories returns all categories in insertion order.
	Categories() []Category

	// CategoryNames returns one name per distinct category id in insertion order.
	CategoryNames() []string

	// ImageIDs returns image ids in images-table order. Duplicates are kept.
	ImageIDs() []int

	// ImageURL returns the URL of the first image with the given id.
	ImageURL(id int) (string, bool)

	// ImagePath returns the on-disk path of the first image with the given id.
	ImagePath(id int) (string, bool)

	// CaptionsAndCategories returns every caption and every object category
	// annotated on the image. Both are empty, never nil, when nothing matches.
	CaptionsAndCategories(imageID int) ([]string, []Category)

	// SearchCaptions yields (image id, caption) for every caption containing
	// substr. Matching is case sensitive. The scan is lazy.
	SearchCaptions(substr string) iter.Seq2[int, string]
}

// CollectMatches drains a caption search into a slice.
// A limit <= 0 collects every match.
func CollectMatches(seq iter.Seq2[int, string], limit int) []CaptionMatch {
	matches := []CaptionMatch{}
	for id, caption := range seq {
		matches = append(matches, CaptionMatch{ImageID: id, Caption: caption})
		if limit > 0 && len(matches) >= limit {
			break
		}
	}
	return matches
}
