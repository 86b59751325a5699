package record

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/manasvohal/aiInternshipTracker/constants"
	"github.com/manasvohal/aiInternshipTracker/internal/extract"
)

func screenshotMeta() Metadata {
	return Metadata{
		Source:          constants.SourceScreenshot,
		TextLength:      120,
		ExtractedAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Confidence:      80,
		ConfidenceLabel: constants.ConfidenceHigh,
	}
}

func TestBuildEmptyCandidatesYieldsFullShape(t *testing.T) {
	rec := NewBuilder(nil).Build("", nil, screenshotMeta())

	assert.Equal(t, constants.CompanyNotSpecified, rec.Company)
	assert.Equal(t, constants.PositionNotSpecified, rec.JobTitle)
	assert.Equal(t, constants.SalaryNotSpecified, rec.Salary)
	assert.Equal(t, constants.NotSpecified, rec.Location)
	assert.Equal(t, constants.SeniorityMidLevel, rec.Seniority)
	assert.NotNil(t, rec.Skills)
	assert.NotNil(t, rec.Benefits)
	assert.Empty(t, rec.Skills)
	assert.Equal(t, constants.NotSpecified, rec.ApplicationInfo.Contact)
	assert.NotEmpty(t, rec.Description)
}

func TestBuildEmailPathSentinels(t *testing.T) {
	meta := screenshotMeta()
	meta.Source = constants.SourceEmail
	rec := NewBuilder(nil).Build("", nil, meta)

	assert.Equal(t, constants.UnknownCompany, rec.Company)
	assert.Equal(t, constants.NotSpecified, rec.Salary)
	assert.Equal(t, constants.SeniorityEntryLevel, rec.Seniority)
}

func TestBuildAppliesCandidates(t *testing.T) {
	candidates := []extract.FieldCandidate{
		{Field: extract.FieldCompany, Value: "Google LLC", Found: true},
		{Field: extract.FieldJobTitle, Value: "Software Engineering Intern", Found: true},
		{Field: extract.FieldLocation, Value: "Mountain View, CA", Found: true},
		{Field: extract.FieldSkills, Values: []string{"Python", "Go"}, Found: true},
		{Field: extract.FieldRequirements, Values: []string{"2+ years of experience", "Bachelor's degree"}, Found: true},
		{Field: extract.FieldContact, Value: "jobs@google.com", Found: true},
	}
	rec := NewBuilder(nil).Build("", candidates, screenshotMeta())

	assert.Equal(t, "Google LLC", rec.Company)
	assert.Equal(t, "Software Engineering Intern", rec.JobTitle)
	assert.Equal(t, "Mountain View, CA", rec.Location)
	assert.Equal(t, []string{"Python", "Go"}, rec.Skills)
	assert.Equal(t, 2, rec.Requirements.Total())
	assert.Equal(t, "jobs@google.com", rec.ApplicationInfo.Contact)
	assert.Equal(t, constants.SourceScreenshot, rec.ExtractionMetadata.SourceType)
	assert.Equal(t, constants.ConfidenceHigh, rec.ExtractionMetadata.ConfidenceLabel)
}

func TestBuildListCaps(t *testing.T) {
	var skills, reqs []string
	for i := 0; i < 40; i++ {
		skills = append(skills, strings.Repeat("s", i+1))
		reqs = append(reqs, strings.Repeat("r", i+1))
	}
	candidates := []extract.FieldCandidate{
		{Field: extract.FieldSkills, Values: skills, Found: true},
		{Field: extract.FieldRequirements, Values: reqs, Found: true},
	}
	rec := NewBuilder(nil).Build("", candidates, screenshotMeta())

	assert.LessOrEqual(t, len(rec.Skills), constants.MaxSkills)
	assert.LessOrEqual(t, rec.Requirements.Total(), constants.MaxRequirements)
}

func TestBuildMalformedCandidateKeepsSentinel(t *testing.T) {
	candidates := []extract.FieldCandidate{
		{Field: extract.FieldCompany, Value: "", Found: true}, // malformed scalar
	}
	rec := NewBuilder(nil).Build("", candidates, screenshotMeta())
	assert.Equal(t, constants.CompanyNotSpecified, rec.Company)
}

func TestDescriptionNaturalParagraph(t *testing.T) {
	text := "Google LLC\n\nWe are building large scale systems that organize the world's information for billions of users."
	rec := NewBuilder(nil).Build(text, nil, screenshotMeta())
	assert.Contains(t, rec.Description, "large scale systems")
}

func TestDescriptionTemplatedFallback(t *testing.T) {
	candidates := []extract.FieldCandidate{
		{Field: extract.FieldCompany, Value: "Acme", Found: true},
		{Field: extract.FieldJobTitle, Value: "Data Intern", Found: true},
	}
	rec := NewBuilder(nil).Build("short text", candidates, screenshotMeta())
	assert.Equal(t, "Join Acme as a Data Intern and contribute to innovative projects while developing your skills.", rec.Description)
}

func TestDescriptionGenericFallback(t *testing.T) {
	rec := NewBuilder(nil).Build("short", nil, screenshotMeta())
	assert.Contains(t, rec.Description, "internship opportunity")
}

func TestBuildEmailStatusAndLinkage(t *testing.T) {
	date := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
	meta := screenshotMeta()
	meta.Source = constants.SourceEmail
	candidates := []extract.FieldCandidate{
		{Field: extract.FieldStatus, Value: string(constants.StatusRejected), Found: true},
	}
	rec := NewBuilder(nil).BuildEmail("body", candidates, meta, "msg-1", "Your application", "hr@acme.com", date)

	assert.Equal(t, constants.StatusRejected, rec.Status)
	assert.Equal(t, "msg-1", rec.EmailID)
	assert.Equal(t, "Your application", rec.EmailSubject)
	assert.Equal(t, "hr@acme.com", rec.EmailFrom)
	assert.Equal(t, date, rec.EmailDate)
}

func TestBuildEmailDefaultStatus(t *testing.T) {
	meta := screenshotMeta()
	meta.Source = constants.SourceEmail
	rec := NewBuilder(nil).BuildEmail("body", nil, meta, "msg-2", "subj", "x@y.com", time.Now())
	assert.Equal(t, constants.StatusApplied, rec.Status)
}
