package coco

import "context"

// Image is one record of the images table.
type Image struct {
	ID       int    `json:"id"`
	FileName string `json:"file_name"`
	CocoURL  string `json:"coco_url"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// Caption links an image to one of its captions.
type Caption struct {
	ImageID int    `json:"image_id"`
	Caption string `json:"caption"`
}

// Instance links an image to an object category present in it.
type Instance struct {
	ImageID    int `json:"image_id"`
	CategoryID int `json:"category_id"`
}

// Dataset holds the loaded tables. A Dataset is built once and must not be
// mutated after it has been handed to an index.
type Dataset struct {
	// Directory holding the image files. Stored, never read.
	ImagesRoot string `json:"imagesRoot"`

	// Categories in source order.
	Categories []Category `json:"categories"`
	Images     []Image    `json:"images"`
	Captions   []Caption  `json:"captions"`
	Instances  []Instance `json:"instances"`

	// Hash of the source files the dataset was built from.
	Fingerprint string `json:"fingerprint"`
}

// Validate returns an error if the dataset contains invalid records.
// Duplicate category ids are rejected rather than silently overwritten.
// Empty names and urls are valid values; key presence is checked by the
// loader that decodes the source files.
func (ds *Dataset) Validate() error {
	seen := make(map[int]struct{}, len(ds.Categories))
	for _, c := range ds.Categories {
		if _, ok := seen[c.ID]; ok {
			return Errorf(EINVALID, "duplicate category id %d", c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}

// DatasetLoader loads a complete, validated dataset.
type DatasetLoader interface {
	// LoadDataset returns the dataset or an error; never a partial dataset.
	LoadDataset(ctx context.Context) (*Dataset, error)
}

// DatasetStore persists a dataset snapshot for later loading.
type DatasetStore interface {
	DatasetLoader

	// SaveDataset replaces the stored snapshot with ds.
	SaveDataset(ctx context.Context, ds *Dataset) error

	// Fingerprint returns the fingerprint of the stored snapshot.
	// Returns ENOTFOUND if no snapshot has been saved.
	Fingerprint(ctx context.Context) (string, error)
}
