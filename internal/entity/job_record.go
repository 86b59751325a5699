package entity

import (
	"time"

	"github.com/manasvohal/aiInternshipTracker/constants"
)

// JobRecord is the structured output of one pipeline run. It is fully shaped
// even for near-empty input: unresolved fields hold their sentinel strings,
// never empty/nil, because downstream consumers match on exact sentinel text.
type JobRecord struct {
	Company         string `json:"company"`
	JobTitle        string `json:"job_title"`
	Location        string `json:"location"`
	WorkArrangement string `json:"work_arrangement"`
	Salary          string `json:"salary"`
	JobType         string `json:"job_type"`
	Duration        string `json:"duration"`
	Department      string `json:"department"`
	Seniority       string `json:"seniority"`
	Description     string `json:"description"`

	Skills   []string `json:"skills"`
	Benefits []string `json:"benefits"`

	Requirements    Requirements    `json:"requirements"`
	ApplicationInfo ApplicationInfo `json:"application_info"`
	CompanyInfo     CompanyInfo     `json:"company_info"`
	AdditionalInfo  AdditionalInfo  `json:"additional_info"`

	ExtractionMetadata ExtractionMetadata `json:"extraction_metadata"`
}

// Requirements groups extracted qualification lines by kind.
type Requirements struct {
	Education  []string `json:"education"`
	Experience []string `json:"experience"`
	Technical  []string `json:"technical"`
	Soft       []string `json:"soft"`
}

// Total returns the number of requirement lines across all groups.
func (r Requirements) Total() int {
	return len(r.Education) + len(r.Experience) + len(r.Technical) + len(r.Soft)
}

// ApplicationInfo holds how-to-apply details.
type ApplicationInfo struct {
	Deadline string `json:"deadline"`
	Process  string `json:"process"`
	Contact  string `json:"contact"`
	ApplyURL string `json:"apply_url"`
}

// CompanyInfo holds employer details when the posting mentions them.
type CompanyInfo struct {
	Industry    string `json:"industry"`
	Size        string `json:"size"`
	Description string `json:"description"`
}

// AdditionalInfo holds miscellaneous posting details.
type AdditionalInfo struct {
	StartDate         string `json:"start_date"`
	Timezone          string `json:"timezone"`
	TravelRequired    string `json:"travel_required"`
	SecurityClearance string `json:"security_clearance"`
}

// ExtractionMetadata records provenance for one pipeline run.
type ExtractionMetadata struct {
	SourceType      constants.SourceType `json:"source_type"`
	TextLength      int                  `json:"text_length"`
	ExtractionDate  time.Time            `json:"extraction_date"`
	Confidence      float32              `json:"confidence"`
	ConfidenceLabel string               `json:"confidence_label,omitempty"`
}

// EmailDerivedRecord is a JobRecord produced from the email path, with a
// required status and the source message linkage used for thread dedup.
type EmailDerivedRecord struct {
	JobRecord

	Status       constants.ApplicationStatus `json:"status"`
	EmailID      string                      `json:"email_id"`
	EmailSubject string                      `json:"email_subject"`
	EmailFrom    string                      `json:"email_from"`
	EmailDate    time.Time                   `json:"email_date"`
}
