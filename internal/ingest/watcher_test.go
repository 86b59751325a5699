package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherSurvivesBurstDuringDebounce(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: time.Millisecond,
	})
	require.NoError(t, err)

	// A burst of writes timed to overlap the debounce flush. The event loop
	// must keep accepting events while it drains the pending set.
	const n = 100
	want := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		want[filepath.Join(dir, fmt.Sprintf("shot-%03d.png", i))] = struct{}{}
	}
	go func() {
		for p := range want {
			_ = os.WriteFile(p, []byte("img"), 0o644)
		}
		_ = os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644)
	}()

	got := make(map[string]struct{}, n)
	deadline := time.After(10 * time.Second)
	for len(got) < n {
		select {
		case p := <-events:
			assert.NotEqual(t, ".txt", filepath.Ext(p))
			got[p] = struct{}{}
		case <-deadline:
			t.Fatalf("saw %d of %d screenshots before timeout", len(got), n)
		}
	}
	for p := range want {
		assert.Contains(t, got, p)
	}
}

func TestWatcherInitialScan(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "earlier.png")
	require.NoError(t, os.WriteFile(existing, []byte("img"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), []byte("x"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, WatchConfig{
		Roots:       []string{dir},
		InitialScan: true,
	})
	require.NoError(t, err)

	select {
	case p := <-events:
		assert.Equal(t, existing, p)
	case <-time.After(5 * time.Second):
		t.Fatal("initial scan emitted nothing")
	}
}

func TestWatcherRequiresRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{})
	assert.Error(t, err)
}
