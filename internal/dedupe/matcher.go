// Package dedupe decides whether a newly built record refers to an already
// tracked application.
package dedupe

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/manasvohal/aiInternshipTracker/constants"
	"github.com/manasvohal/aiInternshipTracker/internal/entity"
)

// Decision is the dedup outcome: create, or merge into ExistingID.
type Decision struct {
	IsNew      bool
	ExistingID uuid.UUID
}

// Match compares a candidate against the tracked entries. A candidate
// matches when the company names are equal case-insensitively and either
// job title contains the other (also case-insensitive). An empty store
// always yields a create.
func Match(candidate entity.JobRecord, existing []entity.Application) Decision {
	for _, entry := range existing {
		if companyTitleMatch(candidate.Company, candidate.JobTitle, entry) {
			return Decision{ExistingID: entry.ID}
		}
	}
	return Decision{IsNew: true}
}

// MatchEmail additionally matches on message identity: identical emailId or
// subject always refers to the same thread, even when the extracted fields
// drifted between scans.
func MatchEmail(candidate entity.EmailDerivedRecord, existing []entity.Application) Decision {
	for _, entry := range existing {
		if emailIdentityMatch(candidate, entry) {
			return Decision{ExistingID: entry.ID}
		}
		if companyTitleMatch(candidate.Company, candidate.JobTitle, entry) {
			return Decision{ExistingID: entry.ID}
		}
	}
	return Decision{IsNew: true}
}

func companyTitleMatch(company, title string, entry entity.Application) bool {
	if !strings.EqualFold(company, entry.CompanyName) {
		return false
	}
	a := strings.ToLower(title)
	b := strings.ToLower(entry.JobTitle)
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func emailIdentityMatch(candidate entity.EmailDerivedRecord, entry entity.Application) bool {
	if candidate.EmailID != "" && entry.EmailID != nil && candidate.EmailID == *entry.EmailID {
		return true
	}
	if candidate.EmailSubject != "" && entry.EmailSubject != nil && candidate.EmailSubject == *entry.EmailSubject {
		return true
	}
	return false
}

// Overlay proposes the merge for a matched entry: existing fields are
// preserved except where the candidate supplies a non-sentinel value, plus a
// fresh updated timestamp. The input entry is copied, never mutated.
func Overlay(entry entity.Application, candidate entity.JobRecord, now time.Time) entity.Application {
	merged := entry

	overlayField(&merged.CompanyName, candidate.Company)
	overlayField(&merged.JobTitle, candidate.JobTitle)
	overlayField(&merged.Location, candidate.Location)
	overlayField(&merged.WorkArrangement, candidate.WorkArrangement)
	overlayField(&merged.Salary, candidate.Salary)
	overlayField(&merged.JobType, candidate.JobType)
	overlayField(&merged.Seniority, candidate.Seniority)
	overlayField(&merged.Department, candidate.Department)
	if len(candidate.Skills) > 0 {
		merged.Skills = append([]string(nil), candidate.Skills...)
	}
	if len(candidate.Benefits) > 0 {
		merged.Benefits = append([]string(nil), candidate.Benefits...)
	}
	merged.UpdatedAt = now
	return merged
}

// Sentinel strings that never overwrite an existing value.
var sentinelValues = map[string]struct{}{
	constants.NotSpecified:         {},
	constants.CompanyNotSpecified:  {},
	constants.UnknownCompany:       {},
	constants.PositionNotSpecified: {},
	constants.SalaryNotSpecified:   {},
}

func overlayField(dst *string, candidate string) {
	if candidate == "" {
		return
	}
	if _, isSentinel := sentinelValues[candidate]; isSentinel {
		return
	}
	*dst = candidate
}
