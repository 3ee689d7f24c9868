package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/cocosearch/coco"
)

// Ensure LoggingLoader implements coco.DatasetLoader.
var _ coco.DatasetLoader = (*LoggingLoader)(nil)

// LoggingLoader wraps a DatasetLoader with load logging.
type LoggingLoader struct {
	next   coco.DatasetLoader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next coco.DatasetLoader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// LoadDataset delegates to the wrapped loader and logs table sizes.
func (l *LoggingLoader) LoadDataset(ctx context.Context) (ds *coco.Dataset, err error) {
	defer func(begin time.Time) {
		if err != nil {
			l.logger.Error("dataset load failed",
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		l.logger.Info("dataset loaded",
			"categories", len(ds.Categories),
			"images", len(ds.Images),
			"captions", len(ds.Captions),
			"instances", len(ds.Instances),
			"fingerprint", ds.Fingerprint,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return l.next.LoadDataset(ctx)
}
