// Package inmem provides the in-memory dataset index. Queries are linear
// scans over the loaded tables; only categories are keyed by id.
package inmem

import (
	"iter"
	"path/filepath"
	"strings"

	"github.com/cocosearch/coco"
	"github.com/cocosearch/coco/bloom"
)

// Compile-time interface verification.
var _ coco.Index = (*Index)(nil)

// imageFilterFPRate is the false positive rate of the image-id filter.
const imageFilterFPRate = 0.01

// Index implements coco.Index over a loaded coco.Dataset.
// It never mutates the dataset and is safe for concurrent use.
type Index struct {
	ds *coco.Dataset

	categories map[int]coco.Category
	order      []int

	// images records every id in the images table. A miss proves the id is
	// absent, so lookups can skip the scan.
	images *bloom.Filter
}

// NewIndex builds an index over ds. The dataset is validated first so that
// duplicate category ids are reported instead of silently overwritten.
func NewIndex(ds *coco.Dataset) (*Index, error) {
	if ds == nil {
		return nil, coco.Errorf(coco.EINVALID, "dataset required")
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	idx := &Index{
		ds:         ds,
		categories: make(map[int]coco.Category, len(ds.Categories)),
		order:      make([]int, 0, len(ds.Categories)),
		images:     bloom.NewFilter(uint(len(ds.Images)), imageFilterFPRate),
	}
	for _, c := range ds.Categories {
		idx.categories[c.ID] = c
		idx.order = append(idx.order, c.ID)
	}
	for _, img := range ds.Images {
		idx.images.Add(img.ID)
	}
	return idx, nil
}

// Category returns the category with the given id, or coco.InvalidCategory.
func (idx *Index) Category(id int) coco.Category {
	if c, ok := idx.categories[id]; ok {
		return c
	}
	return coco.InvalidCategory
}

// Categories returns all categories in insertion order.
func (idx *Index) Categories() []coco.Category {
	categories := make([]coco.Category, 0, len(idx.order))
	for _, id := range idx.order {
		categories = append(categories, idx.categories[id])
	}
	return categories
}

// CategoryNames returns one name per category in insertion order.
func (idx *Index) CategoryNames() []string {
	names := make([]string, 0, len(idx.order))
	for _, id := range idx.order {
		names = append(names, idx.categories[id].Name)
	}
	return names
}

// ImageIDs returns image ids in table order.
func (idx *Index) ImageIDs() []int {
	ids := make([]int, 0, len(idx.ds.Images))
	for _, img := range idx.ds.Images {
		ids = append(ids, img.ID)
	}
	return ids
}

// ImageURL returns the URL of the first image with the given id.
func (idx *Index) ImageURL(id int) (string, bool) {
	img, ok := idx.findImage(id)
	if !ok {
		return "", false
	}
	return img.CocoURL, true
}

// ImagePath returns the image file path under the images root.
func (idx *Index) ImagePath(id int) (string, bool) {
	img, ok := idx.findImage(id)
	if !ok || img.FileName == "" {
		return "", false
	}
	return filepath.Join(idx.ds.ImagesRoot, img.FileName), true
}

// CaptionsAndCategories scans the caption and instance tables for imageID.
// Each call is O(n) over both tables.
func (idx *Index) CaptionsAndCategories(imageID int) ([]string, []coco.Category) {
	captions := []string{}
	for _, c := range idx.ds.Captions {
		if c.ImageID == imageID {
			captions = append(captions, c.Caption)
		}
	}

	categories := []coco.Category{}
	for _, in := range idx.ds.Instances {
		if in.ImageID == imageID {
			categories = append(categories, idx.Category(in.CategoryID))
		}
	}
	return captions, categories
}

// SearchCaptions yields every caption containing substr, in table order.
func (idx *Index) SearchCaptions(substr string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for _, c := range idx.ds.Captions {
			if !strings.Contains(c.Caption, substr) {
				continue
			}
			if !yield(c.ImageID, c.Caption) {
				return
			}
		}
	}
}

func (idx *Index) findImage(id int) (coco.Image, bool) {
	if !idx.images.Test(id) {
		return coco.Image{}, false
	}
	for _, img := range idx.ds.Images {
		if img.ID == id {
			return img, true
		}
	}
	return coco.Image{}, false
}
