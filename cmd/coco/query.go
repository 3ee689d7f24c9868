package main

import (
	"fmt"

	"github.com/cocosearch/coco"
)

// Run executes the selected queries: categories, then caption search, then
// image lookup.
func (c *QueryCmd) Run(deps *Dependencies) error {
	if c.Categories {
		for _, category := range deps.Index.Categories() {
			fmt.Fprintln(deps.Stdout, category.String())
		}
	}

	if c.CategoryNames {
		for _, name := range deps.Index.CategoryNames() {
			fmt.Fprintln(deps.Stdout, name)
		}
	}

	if c.Caption != nil {
		ids := deps.Index.ImageIDs()
		if len(ids) > c.Preview {
			ids = ids[:c.Preview]
		}
		fmt.Fprintln(deps.Stdout, coco.FormatImageIDs(ids))

		if err := deps.Ctx.Err(); err != nil {
			return err
		}
		for _, m := range coco.CollectMatches(deps.Index.SearchCaptions(*c.Caption), c.Limit) {
			fmt.Fprintln(deps.Stdout, coco.FormatMatch(m.ImageID, m.Caption))
		}
	}

	if c.ImageID != nil {
		report := coco.NewImageReport(deps.Index, *c.ImageID)
		fmt.Fprint(deps.Stdout, coco.FormatImageReport(report))
	}

	return nil
}
