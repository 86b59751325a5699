package ingest

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/manasvohal/aiInternshipTracker/internal/async"
)

// Service bridges the directory watcher to the analysis queue.
type Service struct {
	logger *slog.Logger
	queue  async.Queue
}

func NewService(logger *slog.Logger, queue async.Queue) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger, queue: queue}
}

// Run watches the configured roots until the context is cancelled, enqueuing
// every discovered screenshot. Watcher errors are logged, not fatal.
func (s *Service) Run(ctx context.Context, cfg WatchConfig) error {
	events, errs, err := StartWatcher(ctx, cfg)
	if err != nil {
		return err
	}
	s.logger.Info("ingest.watching", "roots", cfg.Roots)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case path, ok := <-events:
			if !ok {
				return nil
			}
			err := s.queue.Enqueue(ctx, async.Job{
				Path:        path,
				SubmittedAt: time.Now(),
				TraceID:     uuid.New().String(),
			})
			if errors.Is(err, async.ErrQueueClosed) {
				return err
			}
			if err != nil {
				s.logger.Warn("ingest.enqueue_failed", "path", path, "error", err)
			}
		case werr, ok := <-errs:
			if ok && werr != nil {
				s.logger.Warn("ingest.watcher_error", "error", werr)
			}
		}
	}
}
