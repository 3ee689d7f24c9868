// Package json loads a dataset from its captions and instances JSON files.
package json

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/cocosearch/coco"
	"golang.org/x/sync/errgroup"
)

// Compile-time interface verification.
var _ coco.DatasetLoader = (*Loader)(nil)

// Loader implements coco.DatasetLoader by reading JSON files from disk.
type Loader struct {
	CaptionsPath  string
	InstancesPath string
	ImagesRoot    string
}

// NewLoader creates a Loader for the files named in cfg.
func NewLoader(cfg *coco.Config) *Loader {
	return &Loader{
		CaptionsPath:  cfg.Captions,
		InstancesPath: cfg.Instances,
		ImagesRoot:    cfg.Images,
	}
}

// LoadDataset reads both files concurrently and returns a validated dataset.
// Any failure aborts the load with a *coco.LoadError naming the file.
func (l *Loader) LoadDataset(ctx context.Context) (*coco.Dataset, error) {
	var (
		captionsData, instancesData []byte
		captions                    []coco.Caption
		instances                   *instancesTables
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := readFile(gctx, l.CaptionsPath)
		if err != nil {
			return err
		}
		captionsData = data
		captions, err = decodeCaptions(data)
		if err != nil {
			return &coco.LoadError{Path: l.CaptionsPath, Err: err}
		}
		return nil
	})
	g.Go(func() error {
		data, err := readFile(gctx, l.InstancesPath)
		if err != nil {
			return err
		}
		instancesData = data
		instances, err = decodeInstances(data)
		if err != nil {
			return &coco.LoadError{Path: l.InstancesPath, Err: err}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ds := &coco.Dataset{
		ImagesRoot:  l.ImagesRoot,
		Categories:  instances.categories,
		Images:      instances.images,
		Captions:    captions,
		Instances:   instances.annotations,
		Fingerprint: Fingerprint([]byte(l.ImagesRoot), captionsData, instancesData),
	}
	if err := ds.Validate(); err != nil {
		return nil, &coco.LoadError{Path: l.InstancesPath, Err: err}
	}
	return ds, nil
}

// Fingerprint returns the hex xxHash of the given parts, in order. Each part
// is length-prefixed so moving bytes between parts changes the result.
// LoadDataset hashes the images root followed by both file contents.
func Fingerprint(parts ...[]byte) string {
	h := xxhash.New()
	b := make([]byte, 8)
	for _, data := range parts {
		binary.BigEndian.PutUint64(b, uint64(len(data)))
		_, _ = h.Write(b)
		_, _ = h.Write(data)
	}
	binary.BigEndian.PutUint64(b, h.Sum64())
	return hex.EncodeToString(b)
}

func readFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &coco.LoadError{Path: path, Err: coco.Errorf(coco.ENOTFOUND, "file %q not found", path)}
	}
	if err != nil {
		return nil, &coco.LoadError{Path: path, Err: fmt.Errorf("failed to read file: %w", err)}
	}
	return data, nil
}

func unmarshal(data []byte, v any) error {
	if err := stdjson.Unmarshal(data, v); err != nil {
		return coco.Errorf(coco.EINVALID, "invalid JSON: %v", err)
	}
	return nil
}
