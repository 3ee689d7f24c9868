package main

import (
	"context"
	"io"

	"github.com/cocosearch/coco"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	// Loader produced the dataset; Store is set when --db is given.
	Loader coco.DatasetLoader
	Store  coco.DatasetStore
	Index  coco.Index
}

// QueryCmd runs the read-only queries selected by flags.
type QueryCmd struct {
	Caption       *string
	ImageID       *int
	Categories    bool
	CategoryNames bool
	Preview       int
	Limit         int
}

// ImportCmd saves a loaded dataset as a snapshot.
type ImportCmd struct{}
