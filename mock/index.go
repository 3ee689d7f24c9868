package mock

import (
	"iter"

	"github.com/cocosearch/coco"
)

var _ coco.Index = (*Index)(nil)

// Index is a mock implementation of coco.Index.
type Index struct {
	CategoryFn              func(id int) coco.Category
	CategoriesFn            func() []coco.Category
	CategoryNamesFn         func() []string
	ImageIDsFn              func() []int
	ImageURLFn              func(id int) (string, bool)
	ImagePathFn             func(id int) (string, bool)
	CaptionsAndCategoriesFn func(imageID int) ([]string, []coco.Category)
	SearchCaptionsFn        func(substr string) iter.Seq2[int, string]
}

func (i *Index) Category(id int) coco.Category {
	return i.CategoryFn(id)
}

func (i *Index) Categories() []coco.Category {
	return i.CategoriesFn()
}

func (i *Index) CategoryNames() []string {
	return i.CategoryNamesFn()
}

func (i *Index) ImageIDs() []int {
	return i.ImageIDsFn()
}

func (i *Index) ImageURL(id int) (string, bool) {
	return i.ImageURLFn(id)
}

func (i *Index) ImagePath(id int) (string, bool) {
	return i.ImagePathFn(id)
}

func (i *Index) CaptionsAndCategories(imageID int) ([]string, []coco.Category) {
	return i.CaptionsAndCategoriesFn(imageID)
}

func (i *Index) SearchCaptions(substr string) iter.Seq2[int, string] {
	return i.SearchCaptionsFn(substr)
}

// Matches returns a caption sequence over fixed results.
func Matches(matches ...coco.CaptionMatch) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for _, m := range matches {
			if !yield(m.ImageID, m.Caption) {
				return
			}
		}
	}
}
