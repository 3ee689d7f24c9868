package coco_test

import (
	"testing"

	"github.com/cocosearch/coco"
	"github.com/cocosearch/coco/mock"
	"github.com/stretchr/testify/assert"
)

func TestFormatImageReport(t *testing.T) {
	t.Parallel()

	t.Run("formats captions, categories and url", func(t *testing.T) {
		t.Parallel()

		r := coco.ImageReport{
			ImageID:  42,
			Captions: []string{"a cat sits", "a cat on a mat"},
			Categories: []coco.Category{
				{ID: 17, SuperCategory: "animal", Name: "cat"},
			},
			URL:   "http://images.example/42.jpg",
			Found: true,
		}

		expected := "Image ID: 42\n" +
			"\ta cat sits\n" +
			"\ta cat on a mat\n" +
			"\n" +
			"\t(17, animal, cat)\n" +
			"\n" +
			"\thttp://images.example/42.jpg\n"
		assert.Equal(t, expected, coco.FormatImageReport(r))
	})

	t.Run("adds local file path after url", func(t *testing.T) {
		t.Parallel()

		r := coco.ImageReport{
			ImageID:   9,
			URL:       "http://images.example/9.jpg",
			Found:     true,
			ImagePath: "/data/val2017/000000000009.jpg",
		}

		expected := "Image ID: 9\n\n\n" +
			"\thttp://images.example/9.jpg\n" +
			"\t/data/val2017/000000000009.jpg\n"
		assert.Equal(t, expected, coco.FormatImageReport(r))
	})

	t.Run("reports missing url", func(t *testing.T) {
		t.Parallel()

		r := coco.ImageReport{ImageID: 7}

		expected := "Image ID: 7\n\n\n\tnot found\n"
		assert.Equal(t, expected, coco.FormatImageReport(r))
	})
}

func TestFormatMatch(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1:\n\ta cat sits", coco.FormatMatch(1, "a cat sits"))
}

func TestFormatImageIDs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[]", coco.FormatImageIDs(nil))
	assert.Equal(t, "[3, 1, 3]", coco.FormatImageIDs([]int{3, 1, 3}))
}

func TestNewImageReport(t *testing.T) {
	t.Parallel()

	idx := &mock.Index{
		CaptionsAndCategoriesFn: func(imageID int) ([]string, []coco.Category) {
			assert.Equal(t, 5, imageID)
			return []string{"two dogs"}, []coco.Category{{ID: 18, SuperCategory: "animal", Name: "dog"}}
		},
		ImageURLFn: func(id int) (string, bool) {
			return "http://images.example/5.jpg", true
		},
		ImagePathFn: func(id int) (string, bool) {
			return "/data/val2017/5.jpg", true
		},
	}

	r := coco.NewImageReport(idx, 5)

	assert.Equal(t, 5, r.ImageID)
	assert.Equal(t, []string{"two dogs"}, r.Captions)
	assert.Len(t, r.Categories, 1)
	assert.True(t, r.Found)
	assert.Equal(t, "http://images.example/5.jpg", r.URL)
	assert.Equal(t, "/data/val2017/5.jpg", r.ImagePath)
}

func TestCollectMatches(t *testing.T) {
	t.Parallel()

	rows := []coco.CaptionMatch{
		{ImageID: 1, Caption: "a cat sits"},
		{ImageID: 3, Caption: "a cat sleeps"},
		{ImageID: 1, Caption: "the cat again"},
	}
	seq := func(yield func(int, string) bool) {
		for _, m := range rows {
			if !yield(m.ImageID, m.Caption) {
				return
			}
		}
	}

	t.Run("collects every match without limit", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, rows, coco.CollectMatches(seq, 0))
	})

	t.Run("stops at limit", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, rows[:2], coco.CollectMatches(seq, 2))
	})

	t.Run("returns empty slice for no matches", func(t *testing.T) {
		t.Parallel()

		empty := func(yield func(int, string) bool) {}
		got := coco.CollectMatches(empty, 0)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
