package slog_test

import (
	"bytes"
	"iter"
	"log/slog"
	"testing"

	"github.com/cocosearch/coco"
	"github.com/cocosearch/coco/mock"
	cocoslog "github.com/cocosearch/coco/slog"
	"github.com/stretchr/testify/assert"
)

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingIndex_SearchCaptions(t *testing.T) {
	t.Parallel()

	t.Run("logs query and match count after iteration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Index{
			SearchCaptionsFn: func(substr string) iter.Seq2[int, string] {
				return mock.Matches(
					coco.CaptionMatch{ImageID: 1, Caption: "a cat sits"},
					coco.CaptionMatch{ImageID: 4, Caption: "a cat sleeps"},
				)
			},
		}

		idx := cocoslog.NewLoggingIndex(inner, newLogger(&buf))
		got := coco.CollectMatches(idx.SearchCaptions("cat"), 0)

		assert.Len(t, got, 2)
		output := buf.String()
		assert.Contains(t, output, "search captions")
		assert.Contains(t, output, "query=cat")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs partial count when consumer stops early", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Index{
			SearchCaptionsFn: func(substr string) iter.Seq2[int, string] {
				return mock.Matches(
					coco.CaptionMatch{ImageID: 1, Caption: "a cat sits"},
					coco.CaptionMatch{ImageID: 4, Caption: "a cat sleeps"},
				)
			},
		}

		idx := cocoslog.NewLoggingIndex(inner, newLogger(&buf))
		got := coco.CollectMatches(idx.SearchCaptions("cat"), 1)

		assert.Len(t, got, 1)
		assert.Contains(t, buf.String(), "count=1")
	})

	t.Run("logs nothing until iterated", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Index{
			SearchCaptionsFn: func(substr string) iter.Seq2[int, string] {
				return mock.Matches()
			},
		}

		idx := cocoslog.NewLoggingIndex(inner, newLogger(&buf))
		_ = idx.SearchCaptions("cat")

		assert.Empty(t, buf.String())
	})
}

func TestLoggingIndex_CaptionsAndCategories(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.Index{
		CaptionsAndCategoriesFn: func(imageID int) ([]string, []coco.Category) {
			return []string{"a dog runs"}, []coco.Category{{ID: 18, SuperCategory: "animal", Name: "dog"}}
		},
	}

	idx := cocoslog.NewLoggingIndex(inner, newLogger(&buf))
	captions, categories := idx.CaptionsAndCategories(2)

	assert.Equal(t, []string{"a dog runs"}, captions)
	assert.Len(t, categories, 1)
	output := buf.String()
	assert.Contains(t, output, "image lookup")
	assert.Contains(t, output, "image_id=2")
	assert.Contains(t, output, "captions=1")
	assert.Contains(t, output, "categories=1")
}

func TestLoggingIndex_Category(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.Index{
		CategoryFn: func(id int) coco.Category {
			return coco.InvalidCategory
		},
	}

	idx := cocoslog.NewLoggingIndex(inner, newLogger(&buf))

	assert.Equal(t, coco.InvalidCategory, idx.Category(99))
	assert.Contains(t, buf.String(), "unknown category")
	assert.Contains(t, buf.String(), "id=99")
}

func TestLoggingIndex_ImageURL(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.Index{
		ImageURLFn: func(id int) (string, bool) {
			return "", false
		},
	}

	idx := cocoslog.NewLoggingIndex(inner, newLogger(&buf))
	_, ok := idx.ImageURL(404)

	assert.False(t, ok)
	assert.Contains(t, buf.String(), "found=false")
}
