package constants

import "strings"

// ApplicationStatus is the canonical status for tracked applications.
type ApplicationStatus string

// Stable values (store these exact strings in DB).
const (
	StatusInterested ApplicationStatus = "interested" // saved, not yet applied
	StatusApplied    ApplicationStatus = "applied"    // application submitted
	StatusInterview  ApplicationStatus = "interview"  // interview scheduled or in progress
	StatusOffer      ApplicationStatus = "offer"      // offer extended
	StatusRejected   ApplicationStatus = "rejected"   // terminal rejection
	StatusAccepted   ApplicationStatus = "accepted"   // offer accepted
)

var allStatuses = []ApplicationStatus{
	StatusInterested,
	StatusApplied,
	StatusInterview,
	StatusOffer,
	StatusRejected,
	StatusAccepted,
}

// Statuses returns all canonical status strings.
func Statuses() []string {
	result := make([]string, len(allStatuses))
	for i, s := range allStatuses {
		result[i] = string(s)
	}
	return result
}

// CanonicalizeStatus maps free-form input onto a canonical status.
// Unknown input falls back to StatusApplied.
func CanonicalizeStatus(input string) (ApplicationStatus, bool) {
	if input == "" {
		return StatusApplied, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	synonyms := map[string]ApplicationStatus{
		"interviewing": StatusInterview,
		"phone screen": StatusInterview,
		"onsite":       StatusInterview,
		"declined":     StatusRejected,
		"saved":        StatusInterested,
		"submitted":    StatusApplied,
	}

	if s, ok := synonyms[normalized]; ok {
		return s, true
	}

	for _, s := range allStatuses {
		if normalized == string(s) {
			return s, true
		}
	}

	return StatusApplied, false
}

// ScanStatus is the canonical status for rows in scan_job.
type ScanStatus string

// Stable values (store these exact strings in DB).
const (
	ScanStatusQueued  ScanStatus = "QUEUED"  // queued for processing
	ScanStatusRunning ScanStatus = "RUNNING" // in progress
	ScanStatusOK      ScanStatus = "OK"      // completed
	ScanStatusFailed  ScanStatus = "FAILED"  // terminal failure
)
