package llm

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manasvohal/aiInternshipTracker/constants"
)

func TestSanitizeRenamesSynonymKeys(t *testing.T) {
	raw := []byte(`{"company_name":"Acme Corp","position":"Software Engineering Intern"}`)
	cleaned, dropped, err := NormalizeAndSanitizeJSON(nil, raw)
	require.NoError(t, err)
	assert.Empty(t, dropped)

	var m map[string]any
	require.NoError(t, json.Unmarshal(cleaned, &m))
	assert.Equal(t, "Acme Corp", m["company"])
	assert.Equal(t, "Software Engineering Intern", m["job_title"])
}

func TestSanitizeCoercesAndDrops(t *testing.T) {
	raw := []byte(`{
		"company": "Acme",
		"job_title": "Intern",
		"salary": 45,
		"location": null,
		"vibe": "great",
		"skills": ["Go", 2]
	}`)
	cleaned, dropped, err := NormalizeAndSanitizeJSON(nil, raw)
	require.NoError(t, err)
	assert.Contains(t, dropped, "location")
	assert.Contains(t, dropped, "vibe")

	var m map[string]any
	require.NoError(t, json.Unmarshal(cleaned, &m))
	assert.Equal(t, "45", m["salary"])
	assert.Equal(t, []any{"Go", "2"}, m["skills"])
	assert.NotContains(t, m, "location")
	assert.NotContains(t, m, "vibe")
}

func TestSanitizeGroupsFlatRequirements(t *testing.T) {
	raw := []byte(`{
		"company": "Acme",
		"job_title": "Intern",
		"requirements": ["Bachelor's degree in Computer Science", "2 years of experience", "Strong communication skills"]
	}`)
	cleaned, _, err := NormalizeAndSanitizeJSON(nil, raw)
	require.NoError(t, err)

	var m struct {
		Requirements map[string][]string `json:"requirements"`
	}
	require.NoError(t, json.Unmarshal(cleaned, &m))
	assert.NotEmpty(t, m.Requirements["education"])
	assert.NotEmpty(t, m.Requirements["experience"])
	assert.NotEmpty(t, m.Requirements["soft"])
}

func TestSchemaRejectsMissingRequired(t *testing.T) {
	schema := BuildPostingJSONSchema()
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"job_title":"Intern"}`)))
	assert.NoError(t, ValidateJSONAgainstSchema(schema, []byte(`{"company":"Acme","job_title":"Intern"}`)))
}

func TestLenientDropsInvalidEnum(t *testing.T) {
	schema := BuildPostingJSONSchema()
	raw := []byte(`{"company":"Acme","job_title":"Intern","work_arrangement":"remote-ish"}`)
	require.Error(t, ValidateJSONAgainstSchema(schema, raw))

	cleaned, dropped, err := SanitizeOptionalFields(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"work_arrangement"}, dropped)
	assert.NoError(t, ValidateJSONAgainstSchema(schema, cleaned))
}

func TestToRecordFillsSentinels(t *testing.T) {
	f := PostingFields{Company: "Acme", JobTitle: "Software Intern"}
	rec := f.ToRecord(120, time.Now())

	assert.Equal(t, "Acme", rec.Company)
	assert.Equal(t, constants.NotSpecified, rec.Location)
	assert.Equal(t, constants.SalaryNotSpecified, rec.Salary)
	assert.Equal(t, "Internship", rec.JobType)
	assert.Equal(t, constants.SeniorityMidLevel, rec.Seniority)
	assert.Equal(t, "Join Acme as a Software Intern and contribute to innovative projects while developing your skills.", rec.Description)
	assert.Equal(t, constants.SourceScreenshot, rec.ExtractionMetadata.SourceType)
	assert.Equal(t, constants.ConfidenceVeryLow, rec.ExtractionMetadata.ConfidenceLabel)
}

func TestToRecordEmitsEmptyListsNotNull(t *testing.T) {
	f := PostingFields{Company: "Acme", JobTitle: "Intern"}
	rec := f.ToRecord(0, time.Now())

	assert.NotNil(t, rec.Skills)
	assert.NotNil(t, rec.Benefits)

	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"skills":[]`)
	assert.Contains(t, string(out), `"benefits":[]`)
}

func TestToRecordConfidencePercent(t *testing.T) {
	f := PostingFields{Company: "Acme", JobTitle: "Intern", Confidence: 0.9}
	rec := f.ToRecord(0, time.Now())
	assert.InDelta(t, 90, rec.ExtractionMetadata.Confidence, 0.01)
	assert.Equal(t, constants.ConfidenceHigh, rec.ExtractionMetadata.ConfidenceLabel)
}

func TestToRecordCapsLists(t *testing.T) {
	f := PostingFields{Company: "Acme", JobTitle: "Intern"}
	for i := 0; i < 25; i++ {
		f.Skills = append(f.Skills, "Skill")
	}
	for i := 0; i < 12; i++ {
		f.Requirements.Education = append(f.Requirements.Education, "Degree")
	}
	f.Requirements.Experience = []string{"2 years of experience"}

	rec := f.ToRecord(0, time.Now())
	assert.Len(t, rec.Skills, constants.MaxSkills)
	assert.Len(t, rec.Requirements.Education, constants.MaxRequirements)
	assert.Empty(t, rec.Requirements.Experience)
	assert.Equal(t, constants.MaxRequirements, rec.Requirements.Total())
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFences("```{\"a\":1}```"))
	assert.Equal(t, `{"a":1}`, StripCodeFences(`{"a":1}`))
}
