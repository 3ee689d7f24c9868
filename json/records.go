package json

import (
	"github.com/cocosearch/coco"
)

// Raw records use pointers so that absent keys can be told apart from zero
// values and rejected at load time.

type captionsFile struct {
	Annotations *[]rawCaption `json:"annotations"`
}

type rawCaption struct {
	ImageID *int    `json:"image_id"`
	Caption *string `json:"caption"`
}

type instancesFile struct {
	Categories  *[]rawCategory `json:"categories"`
	Images      *[]rawImage    `json:"images"`
	Annotations *[]rawInstance `json:"annotations"`
}

type rawCategory struct {
	ID            *int    `json:"id"`
	SuperCategory *string `json:"supercategory"`
	Name          *string `json:"name"`
}

type rawImage struct {
	ID       *int    `json:"id"`
	FileName string  `json:"file_name"`
	CocoURL  *string `json:"coco_url"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
}

type rawInstance struct {
	ImageID    *int `json:"image_id"`
	CategoryID *int `json:"category_id"`
}

type instancesTables struct {
	categories  []coco.Category
	images      []coco.Image
	annotations []coco.Instance
}

func decodeCaptions(data []byte) ([]coco.Caption, error) {
	var f captionsFile
	if err := unmarshal(data, &f); err != nil {
		return nil, err
	}
	if f.Annotations == nil {
		return nil, coco.Errorf(coco.EINVALID, "annotations required")
	}

	captions := make([]coco.Caption, 0, len(*f.Annotations))
	for i, r := range *f.Annotations {
		if r.ImageID == nil {
			return nil, coco.Errorf(coco.EINVALID, "annotations[%d]: image_id required", i)
		}
		if r.Caption == nil {
			return nil, coco.Errorf(coco.EINVALID, "annotations[%d]: caption required", i)
		}
		captions = append(captions, coco.Caption{ImageID: *r.ImageID, Caption: *r.Caption})
	}
	return captions, nil
}

func decodeInstances(data []byte) (*instancesTables, error) {
	var f instancesFile
	if err := unmarshal(data, &f); err != nil {
		return nil, err
	}
	switch {
	case f.Categories == nil:
		return nil, coco.Errorf(coco.EINVALID, "categories required")
	case f.Images == nil:
		return nil, coco.Errorf(coco.EINVALID, "images required")
	case f.Annotations == nil:
		return nil, coco.Errorf(coco.EINVALID, "annotations required")
	}

	t := &instancesTables{
		categories:  make([]coco.Category, 0, len(*f.Categories)),
		images:      make([]coco.Image, 0, len(*f.Images)),
		annotations: make([]coco.Instance, 0, len(*f.Annotations)),
	}

	for i, r := range *f.Categories {
		if r.ID == nil || r.SuperCategory == nil || r.Name == nil {
			return nil, coco.Errorf(coco.EINVALID, "categories[%d]: id, supercategory and name required", i)
		}
		t.categories = append(t.categories, coco.Category{ID: *r.ID, SuperCategory: *r.SuperCategory, Name: *r.Name})
	}

	for i, r := range *f.Images {
		if r.ID == nil {
			return nil, coco.Errorf(coco.EINVALID, "images[%d]: id required", i)
		}
		if r.CocoURL == nil {
			return nil, coco.Errorf(coco.EINVALID, "images[%d]: coco_url required", i)
		}
		t.images = append(t.images, coco.Image{
			ID:       *r.ID,
			FileName: r.FileName,
			CocoURL:  *r.CocoURL,
			Width:    r.Width,
			Height:   r.Height,
		})
	}

	for i, r := range *f.Annotations {
		if r.ImageID == nil {
			return nil, coco.Errorf(coco.EINVALID, "annotations[%d]: image_id required", i)
		}
		if r.CategoryID == nil {
			return nil, coco.Errorf(coco.EINVALID, "annotations[%d]: category_id required", i)
		}
		t.annotations = append(t.annotations, coco.Instance{ImageID: *r.ImageID, CategoryID: *r.CategoryID})
	}
	return t, nil
}
