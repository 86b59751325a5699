package async

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manasvohal/aiInternshipTracker/internal/core"
	"github.com/manasvohal/aiInternshipTracker/internal/pipeline"
)

// Jobs with a non-image extension fail the processor's extension gate before
// any pipeline or repository work, so a nil repository is never touched.
func newTestQueue(opts ...Option) *ProcessorQueue {
	proc := core.NewProcessor(nil, pipeline.NewScreenshotPipeline(nil, nil, nil), nil)
	return NewProcessorQueue(proc, nil, opts...)
}

func TestEnqueueAfterShutdownReturnsError(t *testing.T) {
	q := newTestQueue(WithWorkers(1), WithQueueSize(4))
	q.Shutdown(context.Background())

	err := q.Enqueue(context.Background(), Job{Path: "late.txt"})
	assert.ErrorIs(t, err, ErrQueueClosed)
}

func TestShutdownCompletesDuringBackpressure(t *testing.T) {
	q := newTestQueue(WithWorkers(1), WithQueueSize(1))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := q.Enqueue(context.Background(), Job{Path: fmt.Sprintf("shot-%d.txt", i)})
			if err != nil {
				assert.ErrorIs(t, err, ErrQueueClosed)
			}
		}(i)
	}

	// Shutdown races the senders on purpose: it must wait out any send that
	// is blocked on the full channel rather than deadlock or panic.
	time.Sleep(5 * time.Millisecond)
	done := make(chan struct{})
	go func() {
		defer close(done)
		q.Shutdown(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("shutdown did not complete")
	}
	wg.Wait()
}

func TestShutdownIdempotent(t *testing.T) {
	q := newTestQueue(WithWorkers(2))
	require.NoError(t, q.Enqueue(context.Background(), Job{Path: "one.txt"}))
	q.Shutdown(context.Background())
	q.Shutdown(context.Background())
}
