package slog_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/cocosearch/coco"
	"github.com/cocosearch/coco/mock"
	cocoslog "github.com/cocosearch/coco/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingLoader_LoadDataset(t *testing.T) {
	t.Parallel()

	t.Run("logs table sizes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.DatasetLoader{
			LoadDatasetFn: func(_ context.Context) (*coco.Dataset, error) {
				return &coco.Dataset{
					Categories:  []coco.Category{{ID: 1, SuperCategory: "person", Name: "person"}},
					Images:      []coco.Image{{ID: 1, CocoURL: "u1"}, {ID: 2, CocoURL: "u2"}},
					Captions:    []coco.Caption{{ImageID: 1, Caption: "c"}},
					Fingerprint: "abc",
				}, nil
			},
		}

		l := cocoslog.NewLoggingLoader(inner, newLogger(&buf))
		ds, err := l.LoadDataset(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, ds)
		output := buf.String()
		assert.Contains(t, output, "dataset loaded")
		assert.Contains(t, output, "images=2")
		assert.Contains(t, output, "captions=1")
		assert.Contains(t, output, "instances=0")
		assert.Contains(t, output, "fingerprint=abc")
	})

	t.Run("logs failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.DatasetLoader{
			LoadDatasetFn: func(_ context.Context) (*coco.Dataset, error) {
				return nil, &coco.LoadError{Path: "captions.json", Err: coco.Errorf(coco.ENOTFOUND, "file not found")}
			},
		}

		l := cocoslog.NewLoggingLoader(inner, newLogger(&buf))
		_, err := l.LoadDataset(context.Background())

		require.Error(t, err)
		assert.Contains(t, buf.String(), "dataset load failed")
		assert.Contains(t, buf.String(), "captions.json")
	})
}
