package mock

import (
	"context"

	"github.com/cocosearch/coco"
)

var _ coco.DatasetLoader = (*DatasetLoader)(nil)

// DatasetLoader is a mock implementation of coco.DatasetLoader.
type DatasetLoader struct {
	LoadDatasetFn func(ctx context.Context) (*coco.Dataset, error)
}

func (l *DatasetLoader) LoadDataset(ctx context.Context) (*coco.Dataset, error) {
	return l.LoadDatasetFn(ctx)
}

var _ coco.DatasetStore = (*DatasetStore)(nil)

// DatasetStore is a mock implementation of coco.DatasetStore.
type DatasetStore struct {
	LoadDatasetFn func(ctx context.Context) (*coco.Dataset, error)
	SaveDatasetFn func(ctx context.Context, ds *coco.Dataset) error
	FingerprintFn func(ctx context.Context) (string, error)
}

func (s *DatasetStore) LoadDataset(ctx context.Context) (*coco.Dataset, error) {
	return s.LoadDatasetFn(ctx)
}

func (s *DatasetStore) SaveDataset(ctx context.Context, ds *coco.Dataset) error {
	return s.SaveDatasetFn(ctx, ds)
}

func (s *DatasetStore) Fingerprint(ctx context.Context) (string, error) {
	return s.FingerprintFn(ctx)
}

var _ coco.ConfigLoader = (*ConfigLoader)(nil)

// ConfigLoader is a mock implementation of coco.ConfigLoader.
type ConfigLoader struct {
	LoadConfigFn func(path string) (*coco.Config, error)
}

func (l *ConfigLoader) LoadConfig(path string) (*coco.Config, error) {
	return l.LoadConfigFn(path)
}
