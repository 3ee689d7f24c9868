package slog

import (
	"iter"
	"log/slog"
	"time"

	"github.com/cocosearch/coco"
)

// Ensure LoggingIndex implements coco.Index.
var _ coco.Index = (*LoggingIndex)(nil)

// LoggingIndex wraps an Index with query logging.
type LoggingIndex struct {
	next   coco.Index
	logger *slog.Logger
}

// NewLoggingIndex creates a new LoggingIndex.
func NewLoggingIndex(next coco.Index, logger *slog.Logger) *LoggingIndex {
	return &LoggingIndex{next: next, logger: logger}
}

// Category delegates to the wrapped index and logs unknown ids.
func (idx *LoggingIndex) Category(id int) coco.Category {
	c := idx.next.Category(id)
	if !c.Valid() {
		idx.logger.Debug("unknown category", "id", id)
	}
	return c
}

// Categories delegates to the wrapped index.
func (idx *LoggingIndex) Categories() []coco.Category {
	return idx.next.Categories()
}

// CategoryNames delegates to the wrapped index.
func (idx *LoggingIndex) CategoryNames() []string {
	return idx.next.CategoryNames()
}

// ImageIDs delegates to the wrapped index.
func (idx *LoggingIndex) ImageIDs() []int {
	return idx.next.ImageIDs()
}

// ImageURL delegates to the wrapped index and logs the lookup.
func (idx *LoggingIndex) ImageURL(id int) (url string, ok bool) {
	defer func(begin time.Time) {
		idx.logger.Debug("image url lookup",
			"image_id", id,
			"found", ok,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return idx.next.ImageURL(id)
}

// ImagePath delegates to the wrapped index.
func (idx *LoggingIndex) ImagePath(id int) (string, bool) {
	return idx.next.ImagePath(id)
}

// CaptionsAndCategories delegates to the wrapped index and logs result sizes.
func (idx *LoggingIndex) CaptionsAndCategories(imageID int) (captions []string, categories []coco.Category) {
	defer func(begin time.Time) {
		idx.logger.Info("image lookup",
			"image_id", imageID,
			"captions", len(captions),
			"categories", len(categories),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return idx.next.CaptionsAndCategories(imageID)
}

// SearchCaptions wraps the lazy search and logs once iteration ends,
// whether exhausted or stopped early by the consumer.
func (idx *LoggingIndex) SearchCaptions(substr string) iter.Seq2[int, string] {
	seq := idx.next.SearchCaptions(substr)
	return func(yield func(int, string) bool) {
		begin := time.Now()
		count := 0
		defer func() {
			idx.logger.Info("search captions",
				"query", substr,
				"count", count,
				"duration", time.Since(begin),
			)
		}()
		for id, caption := range seq {
			count++
			if !yield(id, caption) {
				return
			}
		}
	}
}
