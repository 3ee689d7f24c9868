package coco

import "fmt"

// Category is a labeled object class grouped under a super category.
type Category struct {
	ID            int    `json:"id"`
	SuperCategory string `json:"supercategory"`
	Name          string `json:"name"`
}

// InvalidCategory is returned for category ids that are not in the dataset.
// The super category holds the textual form of -1.
var InvalidCategory = Category{ID: -1, SuperCategory: "-1", Name: "INVALID"}

// Valid reports whether c is a real category rather than InvalidCategory.
func (c Category) Valid() bool {
	return c != InvalidCategory
}

// String renders the category as (id, super category, name).
func (c Category) String() string {
	return fmt.Sprintf("(%d, %s, %s)", c.ID, c.SuperCategory, c.Name)
}
