package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manasvohal/aiInternshipTracker/constants"
	"github.com/manasvohal/aiInternshipTracker/internal/common"
	"github.com/manasvohal/aiInternshipTracker/internal/entity"
	"github.com/manasvohal/aiInternshipTracker/internal/ocr"
)

type stubImages struct {
	result ocr.MergedResult
	err    error
}

func (s stubImages) ExtractImage(context.Context, string) (ocr.MergedResult, error) {
	return s.result, s.err
}

type stubParser struct {
	rec entity.JobRecord
	err error
}

func (s stubParser) ParsePosting(context.Context, string) (entity.JobRecord, error) {
	return s.rec, s.err
}

const posting = "Google LLC\nSoftware Engineering Intern\nMountain View, CA\n\nWe are building large scale systems that organize information for billions of users worldwide.\n\nRequirements:\n• Currently pursuing a Bachelor's degree in Computer Science\n• Experience with Python or Go\n\nSalary: $45/hour\nContact: jobs@google.com"

func TestAnalyzeTextHeuristicPath(t *testing.T) {
	p := NewScreenshotPipeline(nil, nil, nil)
	rec := p.AnalyzeText(context.Background(), posting)

	assert.Equal(t, "Google LLC", rec.Company)
	assert.Contains(t, rec.JobTitle, "Intern")
	assert.Equal(t, "Mountain View, CA", rec.Location)
	assert.Contains(t, rec.Skills, "Python")
	assert.Equal(t, constants.SourceScreenshot, rec.ExtractionMetadata.SourceType)
	assert.NotEmpty(t, rec.ExtractionMetadata.ConfidenceLabel)
}

func TestAnalyzeTextEmptyInput(t *testing.T) {
	p := NewScreenshotPipeline(nil, nil, nil)
	rec := p.AnalyzeText(context.Background(), "")

	assert.Equal(t, constants.CompanyNotSpecified, rec.Company)
	assert.Equal(t, constants.PositionNotSpecified, rec.JobTitle)
	assert.Equal(t, constants.ConfidenceVeryLow, rec.ExtractionMetadata.ConfidenceLabel)
}

func TestAnalyzeImagePropagatesMergeFailure(t *testing.T) {
	p := NewScreenshotPipeline(nil, stubImages{err: common.ErrNoValidOCRResult}, nil)
	_, err := p.AnalyzeImage(context.Background(), "shot.png")
	assert.ErrorIs(t, err, common.ErrNoValidOCRResult)
}

func TestAnalyzeImageUsesMergedText(t *testing.T) {
	p := NewScreenshotPipeline(nil, stubImages{result: ocr.MergedResult{Text: posting, Confidence: 84}}, nil)
	rec, err := p.AnalyzeImage(context.Background(), "shot.png")
	require.NoError(t, err)
	assert.Equal(t, "Google LLC", rec.Company)
}

func TestAnalyzeTextParserWins(t *testing.T) {
	parsed := entity.JobRecord{Company: "Parsed Co", JobTitle: "Parsed Title"}
	p := NewScreenshotPipeline(nil, nil, stubParser{rec: parsed})
	rec := p.AnalyzeText(context.Background(), posting)
	assert.Equal(t, "Parsed Co", rec.Company)
}

func TestAnalyzeTextParserFallsBack(t *testing.T) {
	p := NewScreenshotPipeline(nil, nil, stubParser{err: errors.New("model unavailable")})
	rec := p.AnalyzeText(context.Background(), posting)
	assert.Equal(t, "Google LLC", rec.Company)
}

func TestEmailProcessRelevant(t *testing.T) {
	p := NewEmailPipeline(nil)
	res := p.Process(
		"msg-1",
		"Your application to Acme - next steps",
		"no-reply@careers.acme.com",
		"Thank you for applying for the internship position. We would like to schedule an interview with you.",
		time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
	)

	require.True(t, res.Relevant)
	assert.Equal(t, "Acme", res.Record.Company)
	assert.Equal(t, constants.StatusInterview, res.Record.Status)
	assert.Equal(t, "msg-1", res.Record.EmailID)
	assert.Equal(t, constants.SourceEmail, res.Record.ExtractionMetadata.SourceType)
}

func TestEmailProcessGatesIrrelevant(t *testing.T) {
	p := NewEmailPipeline(nil)
	res := p.Process("msg-2", "50% off sale", "deals@shopmail.example.net", "buy now", time.Now())

	assert.False(t, res.Relevant)
	assert.Less(t, res.Score.Score, 30)
	assert.Empty(t, res.Record.EmailID)
}

func TestEmailProcessRejectionStatus(t *testing.T) {
	p := NewEmailPipeline(nil)
	res := p.Process(
		"msg-3",
		"Update on your application",
		"recruiting@globex.com",
		"Unfortunately, we have decided not to move forward with your application at this time.",
		time.Now(),
	)

	require.True(t, res.Relevant)
	assert.Equal(t, constants.StatusRejected, res.Record.Status)
	assert.Equal(t, "Globex", res.Record.Company)
}
