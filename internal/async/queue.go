// Package async provides a bounded worker pool for screenshot analysis so
// watcher bursts do not run OCR for every file at once.
package async

import (
	"context"
	"errors"
	"time"
)

// ErrQueueClosed is returned by Enqueue once shutdown has begun.
var ErrQueueClosed = errors.New("queue closed")

// Job is the smallest useful unit: one screenshot to analyze.
type Job struct {
	Path        string
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
