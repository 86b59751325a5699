package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/manasvohal/aiInternshipTracker/constants"
	"github.com/manasvohal/aiInternshipTracker/internal/extract"
)

func found(f extract.Field) extract.FieldCandidate {
	return extract.FieldCandidate{Field: f, Value: "x", Found: true}
}

func missing(f extract.Field) extract.FieldCandidate {
	return extract.FieldCandidate{Field: f, Value: constants.NotSpecified}
}

func TestScoreScreenshotAllFound(t *testing.T) {
	pct, label := ScoreScreenshot([]extract.FieldCandidate{
		found(extract.FieldCompany),
		found(extract.FieldJobTitle),
		found(extract.FieldLocation),
		found(extract.FieldRequirements),
		found(extract.FieldSalary),
		found(extract.FieldContact),
		found(extract.FieldSkills),
	})
	assert.Equal(t, float32(100), pct)
	assert.Equal(t, constants.ConfidenceHigh, label)
}

func TestScoreScreenshotNothingFound(t *testing.T) {
	pct, label := ScoreScreenshot([]extract.FieldCandidate{
		missing(extract.FieldCompany),
		missing(extract.FieldJobTitle),
	})
	assert.Equal(t, float32(0), pct)
	assert.Equal(t, constants.ConfidenceVeryLow, label)
}

func TestScoreScreenshotBuckets(t *testing.T) {
	// company + title + requirements + location + salary = 8/10 -> High
	pct, label := ScoreScreenshot([]extract.FieldCandidate{
		found(extract.FieldCompany),
		found(extract.FieldJobTitle),
		found(extract.FieldRequirements),
		found(extract.FieldLocation),
		found(extract.FieldSalary),
	})
	assert.Equal(t, float32(80), pct)
	assert.Equal(t, constants.ConfidenceHigh, label)

	// company + title + location + salary = 6/10 -> Medium
	pct, label = ScoreScreenshot([]extract.FieldCandidate{
		found(extract.FieldCompany),
		found(extract.FieldJobTitle),
		found(extract.FieldLocation),
		found(extract.FieldSalary),
	})
	assert.Equal(t, float32(60), pct)
	assert.Equal(t, constants.ConfidenceMedium, label)

	// company + title = 4/10 -> Low
	pct, label = ScoreScreenshot([]extract.FieldCandidate{
		found(extract.FieldCompany),
		found(extract.FieldJobTitle),
	})
	assert.Equal(t, float32(40), pct)
	assert.Equal(t, constants.ConfidenceLow, label)
}

func TestScoreScreenshotMonotonic(t *testing.T) {
	subset := []extract.FieldCandidate{found(extract.FieldCompany)}
	superset := append([]extract.FieldCandidate{found(extract.FieldSalary)}, subset...)
	pctA, _ := ScoreScreenshot(subset)
	pctB, _ := ScoreScreenshot(superset)
	assert.LessOrEqual(t, pctA, pctB)
}

func TestScoreEmailRelevant(t *testing.T) {
	s := ScoreEmail(
		"Your application to Acme - next steps",
		"no-reply@careers.acme.com",
		"Thank you for applying for the internship position. We would like to schedule an interview.",
		true,
	)
	assert.True(t, s.SubjectMatch)
	assert.True(t, s.SenderMatch)
	assert.True(t, s.CompanyResolved)
	assert.True(t, s.Relevant)
	assert.GreaterOrEqual(t, s.Score, RelevanceThreshold)
	assert.LessOrEqual(t, s.Score, 100)
}

func TestScoreEmailIrrelevantGated(t *testing.T) {
	s := ScoreEmail(
		"50% off summer sale",
		"deals@shopmail.example.net",
		"buy more things now",
		false,
	)
	assert.False(t, s.Relevant)
	assert.Less(t, s.Score, RelevanceThreshold)
}

func TestScoreEmailClampedAt100(t *testing.T) {
	body := "your application interview offer assessment position role candidate resume hiring internship opportunity qualifications recruiter team unfortunately move forward schedule an interview pleased to offer next round background check do not reply"
	s := ScoreEmail("interview offer application status", "recruiting@workday.example.com", body, true)
	assert.Equal(t, 100, s.Score)
}

func TestScoreEmailMonotonic(t *testing.T) {
	base := ScoreEmail("hello", "friend@example.com", "position", false)
	more := ScoreEmail("hello interview", "friend@example.com", "position candidate", false)
	assert.LessOrEqual(t, base.Score, more.Score)
}

func TestConfidenceLabelBoundaries(t *testing.T) {
	assert.Equal(t, constants.ConfidenceHigh, ConfidenceLabel(80))
	assert.Equal(t, constants.ConfidenceMedium, ConfidenceLabel(79.9))
	assert.Equal(t, constants.ConfidenceMedium, ConfidenceLabel(60))
	assert.Equal(t, constants.ConfidenceLow, ConfidenceLabel(59.9))
	assert.Equal(t, constants.ConfidenceLow, ConfidenceLabel(40))
	assert.Equal(t, constants.ConfidenceVeryLow, ConfidenceLabel(39.9))
}
