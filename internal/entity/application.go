package entity

import (
	"time"

	"github.com/google/uuid"
)

// Application represents a tracked application for data transfer between layers.
type Application struct {
	ID              uuid.UUID  `json:"id"`
	CompanyName     string     `json:"company_name"`
	JobTitle        string     `json:"job_title"`
	Location        string     `json:"location"`
	WorkArrangement string     `json:"work_arrangement"`
	Salary          string     `json:"salary"`
	JobType         string     `json:"job_type"`
	Seniority       string     `json:"seniority"`
	Department      string     `json:"department"`
	Description     string     `json:"description"`
	Skills          []string   `json:"skills,omitempty"`
	Benefits        []string   `json:"benefits,omitempty"`
	Status          string     `json:"status"`
	Source          string     `json:"source"`
	Confidence      *float32   `json:"confidence,omitempty"`
	EmailID         *string    `json:"email_id,omitempty"`
	EmailSubject    *string    `json:"email_subject,omitempty"`
	EmailFrom       *string    `json:"email_from,omitempty"`
	EmailDate       *time.Time `json:"email_date,omitempty"`
	AddedAt         time.Time  `json:"added_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
