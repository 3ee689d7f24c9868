package main

import (
	"fmt"

	"github.com/cocosearch/coco"
)

// Run saves ds into the snapshot store unless an identical snapshot exists.
func (c *ImportCmd) Run(deps *Dependencies, ds *coco.Dataset) error {
	current, err := deps.Store.Fingerprint(deps.Ctx)
	if err != nil && coco.ErrorCode(err) != coco.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coco.ErrorMessage(err))
		return err
	}
	if err == nil && current == ds.Fingerprint {
		fmt.Fprintf(deps.Stdout, "Snapshot %s is up to date\n", ds.Fingerprint)
		return nil
	}

	if err := deps.Store.SaveDataset(deps.Ctx, ds); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coco.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported snapshot %s: %d images, %d captions, %d instances, %d categories\n",
		ds.Fingerprint, len(ds.Images), len(ds.Captions), len(ds.Instances), len(ds.Categories))
	return nil
}
