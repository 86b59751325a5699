package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScanJob represents one mailbox scan run for data transfer between layers.
type ScanJob struct {
	ID           uuid.UUID  `json:"id"`
	StartedAt    time.Time  `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	Status       string     `json:"status"`
	Scanned      int        `json:"scanned"`
	Relevant     int        `json:"relevant"`
	Created      int        `json:"created"`
	Updated      int        `json:"updated"`
	Skipped      int        `json:"skipped"`
	Failed       int        `json:"failed"`
	ErrorMessage *string    `json:"error_message,omitempty"`
}
