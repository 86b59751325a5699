package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manasvohal/aiInternshipTracker/constants"
)

const googlePosting = "Google LLC\nSoftware Engineering Intern\nMountain View, CA"

func TestSentinelTotality(t *testing.T) {
	// every extractor must return a non-empty scalar value or a list, never
	// nothing, for any input including the empty string
	inputs := []string{"", "   ", "random text with no signal at all here"}
	for _, source := range []constants.SourceType{constants.SourceScreenshot, constants.SourceEmail} {
		for _, in := range inputs {
			for _, ex := range ForSource(source) {
				c := ex.Extract(in, Context{Source: source})
				assert.Equal(t, ex.Field(), c.Field)
				if c.Values == nil {
					assert.NotEmpty(t, c.Value, "extractor %s source %s input %q", ex.Field(), source, in)
				}
			}
		}
	}
}

func TestCompanyLegalSuffix(t *testing.T) {
	c := (CompanyExtractor{}).Extract(googlePosting, Context{Source: constants.SourceScreenshot})
	assert.True(t, c.Found)
	assert.Equal(t, "Google LLC", c.Value)
}

func TestCompanyHintWins(t *testing.T) {
	c := (CompanyExtractor{}).Extract(googlePosting, Context{
		Source:      constants.SourceEmail,
		CompanyHint: "Stripe",
	})
	assert.Equal(t, "Stripe", c.Value)
}

func TestCompanySentinelPerPath(t *testing.T) {
	screenshot := (CompanyExtractor{}).Extract("", Context{Source: constants.SourceScreenshot})
	assert.Equal(t, constants.CompanyNotSpecified, screenshot.Value)
	assert.False(t, screenshot.Found)

	email := (CompanyExtractor{}).Extract("", Context{Source: constants.SourceEmail})
	assert.Equal(t, constants.UnknownCompany, email.Value)
}

func TestCompanyFromSender(t *testing.T) {
	tests := []struct {
		from string
		want string
	}{
		{"Acme Careers <noreply@careers.acme.com>", "Acme"},
		{"recruiter@stripe.com", "Stripe"},
		{"someone@gmail.com", ""},
		{"jobs@mail.yahoo.com", ""},
		{"not-an-address", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CompanyFromSender(tt.from), "from %q", tt.from)
	}
}

func TestTitleExtraction(t *testing.T) {
	c := (TitleExtractor{}).Extract(googlePosting, Context{})
	require.True(t, c.Found)
	assert.Contains(t, c.Value, "Intern")
}

func TestTitleLabeledLine(t *testing.T) {
	c := (TitleExtractor{}).Extract("Position: Backend Developer\nsome other text", Context{})
	assert.Equal(t, "Backend Developer", c.Value)
}

func TestTitleSentinel(t *testing.T) {
	c := (TitleExtractor{}).Extract("nothing relevant", Context{})
	assert.Equal(t, constants.PositionNotSpecified, c.Value)
}

func TestLocationCityState(t *testing.T) {
	c := (LocationExtractor{}).Extract(googlePosting, Context{})
	assert.Equal(t, "Mountain View, CA", c.Value)
}

func TestLocationRemoteKeywordWins(t *testing.T) {
	c := (LocationExtractor{}).Extract("Remote position based near Austin, TX", Context{})
	assert.Equal(t, "Remote", c.Value)
}

func TestSalaryRange(t *testing.T) {
	c := (SalaryExtractor{}).Extract("Compensation: $45 - $55 /hour", Context{})
	assert.True(t, c.Found)
	assert.Contains(t, c.Value, "$45")
}

func TestSalaryUnpaid(t *testing.T) {
	c := (SalaryExtractor{}).Extract("This is an unpaid internship for course credit", Context{})
	assert.Equal(t, "Unpaid", c.Value)
}

func TestSalarySentinelPerPath(t *testing.T) {
	screenshot := (SalaryExtractor{}).Extract("", Context{Source: constants.SourceScreenshot})
	assert.Equal(t, constants.SalaryNotSpecified, screenshot.Value)

	email := (SalaryExtractor{}).Extract("", Context{Source: constants.SourceEmail})
	assert.Equal(t, constants.NotSpecified, email.Value)
}

func TestSkillsVocabularyAndCap(t *testing.T) {
	c := (SkillsExtractor{}).Extract("We use Python, React and AWS. Python experience required.", Context{})
	assert.True(t, c.Found)
	assert.Contains(t, c.Values, "Python")
	assert.Contains(t, c.Values, "React")
	assert.Contains(t, c.Values, "AWS")
	// exact-duplicate mentions collapse
	count := 0
	for _, s := range c.Values {
		if s == "Python" {
			count++
		}
	}
	assert.Equal(t, 1, count)

	var b strings.Builder
	for _, skills := range skillVocabulary {
		for _, s := range skills {
			fmt.Fprintf(&b, "%s ", s)
		}
	}
	all := (SkillsExtractor{}).Extract(b.String(), Context{})
	assert.LessOrEqual(t, len(all.Values), constants.MaxSkills)
}

func TestRequirementsSectionAndCap(t *testing.T) {
	text := "Requirements:\n• 3+ years of Go experience\n• Bachelor's degree in CS\n• strong communication skills\n\nother text"
	c := (RequirementsExtractor{}).Extract(text, Context{})
	assert.True(t, c.Found)
	assert.LessOrEqual(t, len(c.Values), constants.MaxRequirements)
	assert.NotEmpty(t, c.Values)

	var lines []string
	for i := 0; i < 30; i++ {
		lines = append(lines, fmt.Sprintf("• requirement line number %d with detail", i))
	}
	many := "Requirements:\n" + strings.Join(lines, "\n")
	c = (RequirementsExtractor{}).Extract(many, Context{})
	assert.LessOrEqual(t, len(c.Values), constants.MaxRequirements)
}

func TestGroupRequirements(t *testing.T) {
	grouped := GroupRequirements([]string{
		"Bachelor's degree in Computer Science",
		"2+ years of backend experience",
		"strong communication skills",
		"familiarity with container orchestration",
	})
	assert.Len(t, grouped.Education, 1)
	assert.Len(t, grouped.Experience, 1)
	assert.Len(t, grouped.Soft, 1)
	assert.Len(t, grouped.Technical, 1)
	assert.Equal(t, 4, grouped.Total())
}

func TestBenefits(t *testing.T) {
	c := (BenefitsExtractor{}).Extract("We offer health insurance, 401k matching and unlimited PTO", Context{})
	assert.True(t, c.Found)
	assert.Contains(t, c.Values, "health insurance")
	assert.Contains(t, c.Values, "401k")
}

func TestJobTypeInternship(t *testing.T) {
	c := (JobTypeExtractor{}).Extract(googlePosting, Context{})
	assert.Equal(t, "Internship", c.Value)
}

func TestSeniorityDefaultsPerPath(t *testing.T) {
	screenshot := (SeniorityExtractor{}).Extract("no signal", Context{Source: constants.SourceScreenshot})
	assert.Equal(t, constants.SeniorityMidLevel, screenshot.Value)
	assert.False(t, screenshot.Found)

	email := (SeniorityExtractor{}).Extract("no signal", Context{Source: constants.SourceEmail})
	assert.Equal(t, constants.SeniorityEntryLevel, email.Value)
	assert.False(t, email.Found)
}

func TestSenioritySenior(t *testing.T) {
	c := (SeniorityExtractor{}).Extract("Senior Backend Developer", Context{})
	assert.Equal(t, "Senior", c.Value)
	assert.True(t, c.Found)
}

func TestDepartment(t *testing.T) {
	c := (DepartmentExtractor{}).Extract("join our engineering org", Context{})
	assert.Equal(t, "Engineering", c.Value)
}

func TestDuration(t *testing.T) {
	c := (DurationExtractor{}).Extract("a 12 week program for summer 2026", Context{})
	assert.True(t, c.Found)
	assert.Equal(t, "12 week", c.Value)
}

func TestContact(t *testing.T) {
	c := (ContactExtractor{}).Extract("questions? reach recruiting@acme.com or (415) 555-0100", Context{})
	assert.Equal(t, "recruiting@acme.com", c.Value)

	c = (ContactExtractor{}).Extract("call (415) 555-0100", Context{})
	assert.Contains(t, c.Value, "555-0100")

	c = (ContactExtractor{}).Extract("find us at linkedin.com/company/acme", Context{})
	assert.Contains(t, c.Value, "linkedin.com/company/acme")
}

func TestDeadlineParse(t *testing.T) {
	c := (DeadlineExtractor{}).Extract("Apply by January 15, 2026 to be considered", Context{})
	assert.True(t, c.Found)
	assert.Equal(t, "January 15, 2026", c.Value)
}

func TestDeadlineInvalidDateDiscarded(t *testing.T) {
	c := (DeadlineExtractor{}).Extract("deadline: whenever you feel ready", Context{})
	assert.False(t, c.Found)
	assert.Equal(t, constants.NotSpecified, c.Value)
}

func TestStatusClassification(t *testing.T) {
	tests := []struct {
		body string
		want constants.ApplicationStatus
	}{
		{"Unfortunately, we have decided not to move forward with your application", constants.StatusRejected},
		{"We are pleased to offer you the position", constants.StatusOffer},
		{"We would like to schedule an interview with you", constants.StatusInterview},
		{"Thank you for applying to Acme", constants.StatusApplied},
		{"completely unrelated newsletter", constants.StatusApplied},
	}
	for _, tt := range tests {
		got, _ := ClassifyStatus(tt.body)
		assert.Equal(t, tt.want, got, "body %q", tt.body)
	}
}

func TestStatusDefaultNotFound(t *testing.T) {
	_, found := ClassifyStatus("completely unrelated newsletter")
	assert.False(t, found)
}
