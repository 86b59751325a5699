package dedupe

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/manasvohal/aiInternshipTracker/constants"
	"github.com/manasvohal/aiInternshipTracker/internal/entity"
)

func entry(company, title string) entity.Application {
	return entity.Application{
		ID:          uuid.New(),
		CompanyName: company,
		JobTitle:    title,
	}
}

func TestMatchEmptyStore(t *testing.T) {
	d := Match(entity.JobRecord{Company: "Acme", JobTitle: "Intern"}, nil)
	assert.True(t, d.IsNew)

	d = Match(entity.JobRecord{Company: "Acme", JobTitle: "Intern"}, []entity.Application{})
	assert.True(t, d.IsNew)
}

func TestMatchCompanyAndTitleOverlap(t *testing.T) {
	existing := entry("Acme Corp", "Software Engineering Intern")

	// candidate title is a substring of the stored title
	d := Match(entity.JobRecord{Company: "acme corp", JobTitle: "software engineering"}, []entity.Application{existing})
	assert.False(t, d.IsNew)
	assert.Equal(t, existing.ID, d.ExistingID)

	// stored title is a substring of the candidate title
	d = Match(entity.JobRecord{Company: "ACME CORP", JobTitle: "Software Engineering Intern (Summer)"}, []entity.Application{existing})
	assert.False(t, d.IsNew)
}

func TestMatchDifferentCompanyIsNew(t *testing.T) {
	existing := entry("Acme Corp", "Software Engineering Intern")
	d := Match(entity.JobRecord{Company: "Globex", JobTitle: "Software Engineering Intern"}, []entity.Application{existing})
	assert.True(t, d.IsNew)
}

func TestMatchSameCompanyUnrelatedTitleIsNew(t *testing.T) {
	existing := entry("Acme Corp", "Software Engineering Intern")
	d := Match(entity.JobRecord{Company: "Acme Corp", JobTitle: "Accountant"}, []entity.Application{existing})
	assert.True(t, d.IsNew)
}

func TestMatchEmailByMessageIdentity(t *testing.T) {
	emailID := "msg-123"
	existing := entry("Acme Corp", "Software Engineering Intern")
	existing.EmailID = &emailID

	// extracted company capitalization drifted between scans, but the
	// message id pins the thread
	candidate := entity.EmailDerivedRecord{
		JobRecord: entity.JobRecord{Company: "ACME CORP", JobTitle: "completely different"},
		EmailID:   "msg-123",
	}
	d := MatchEmail(candidate, []entity.Application{existing})
	assert.False(t, d.IsNew)
	assert.Equal(t, existing.ID, d.ExistingID)
}

func TestMatchEmailBySubject(t *testing.T) {
	subject := "Your application to Acme"
	existing := entry("Acme", "Intern")
	existing.EmailSubject = &subject

	candidate := entity.EmailDerivedRecord{
		JobRecord:    entity.JobRecord{Company: "Globex", JobTitle: "other"},
		EmailSubject: "Your application to Acme",
	}
	d := MatchEmail(candidate, []entity.Application{existing})
	assert.False(t, d.IsNew)
}

func TestMatchEmailEmptyIdentityDoesNotMatch(t *testing.T) {
	existing := entry("Acme", "Intern")
	candidate := entity.EmailDerivedRecord{
		JobRecord: entity.JobRecord{Company: "Globex", JobTitle: "other"},
	}
	d := MatchEmail(candidate, []entity.Application{existing})
	assert.True(t, d.IsNew)
}

func TestOverlayPreservesExistingOnSentinel(t *testing.T) {
	now := time.Now()
	existing := entry("Acme Corp", "Software Engineering Intern")
	existing.Location = "Austin, TX"
	existing.Salary = "$45/hour"

	candidate := entity.JobRecord{
		Company:  "Acme Corp",
		JobTitle: constants.PositionNotSpecified,
		Location: constants.NotSpecified,
		Salary:   "$50/hour",
	}
	merged := Overlay(existing, candidate, now)

	assert.Equal(t, "Software Engineering Intern", merged.JobTitle)
	assert.Equal(t, "Austin, TX", merged.Location)
	assert.Equal(t, "$50/hour", merged.Salary)
	assert.Equal(t, now, merged.UpdatedAt)
}

func TestOverlayDoesNotMutateInput(t *testing.T) {
	existing := entry("Acme", "Intern")
	existing.Location = "Austin, TX"
	_ = Overlay(existing, entity.JobRecord{Location: "Remote"}, time.Now())
	assert.Equal(t, "Austin, TX", existing.Location)
}
