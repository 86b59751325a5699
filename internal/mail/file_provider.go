package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// FileProvider reads messages from a JSON export of a mailbox (an array of
// Message objects). It exists for offline runs and for wiring the scanner in
// environments without mailbox credentials.
type FileProvider struct {
	path string
}

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

func (p *FileProvider) Fetch(_ context.Context, opts FetchOptions) ([]Message, error) {
	raw, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("read mailbox file: %w", err)
	}
	var msgs []Message
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil, fmt.Errorf("decode mailbox file: %w", err)
	}

	var out []Message
	for _, m := range msgs {
		if !opts.Since.IsZero() && m.Date.Before(opts.Since) {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if opts.Max > 0 && len(out) > opts.Max {
		out = out[:opts.Max]
	}
	return out, nil
}
