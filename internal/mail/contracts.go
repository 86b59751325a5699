// Package mail scans a mailbox for application-related messages and turns
// the relevant ones into tracked applications.
package mail

import (
	"context"
	"time"
)

// Message is one fetched mail item, already reduced to plain text.
type Message struct {
	ID      string    `json:"id"`
	Thread  string    `json:"thread,omitempty"`
	Subject string    `json:"subject"`
	From    string    `json:"from"`
	To      string    `json:"to,omitempty"`
	Date    time.Time `json:"date"`
	Body    string    `json:"body"`
}

// FetchOptions bounds one provider fetch.
type FetchOptions struct {
	Since time.Time
	Max   int
}

// Provider fetches candidate messages from a mailbox source.
type Provider interface {
	Fetch(ctx context.Context, opts FetchOptions) ([]Message, error)
}
