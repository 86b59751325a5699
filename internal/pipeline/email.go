package pipeline

import (
	"log/slog"
	"time"

	"github.com/manasvohal/aiInternshipTracker/constants"
	"github.com/manasvohal/aiInternshipTracker/internal/entity"
	"github.com/manasvohal/aiInternshipTracker/internal/extract"
	"github.com/manasvohal/aiInternshipTracker/internal/normalize"
	"github.com/manasvohal/aiInternshipTracker/internal/record"
	"github.com/manasvohal/aiInternshipTracker/internal/score"
)

type EmailPipeline struct {
	logger  *slog.Logger
	builder *record.Builder
}

func NewEmailPipeline(logger *slog.Logger) *EmailPipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &EmailPipeline{logger: logger, builder: record.NewBuilder(logger)}
}

// EmailResult is the outcome for one message. Record is only meaningful when
// Relevant is true; gated messages carry just the score.
type EmailResult struct {
	Relevant bool
	Score    score.EmailScore
	Record   entity.EmailDerivedRecord
}

// Process runs the email path for one already-fetched message. The relevance
// gate is hard: messages scoring below the threshold are discarded, not
// low-confidence-flagged. Never returns an error; bad input yields an
// irrelevant result or a sentinel-filled record.
func (p *EmailPipeline) Process(id, subject, from, body string, date time.Time) EmailResult {
	hint := extract.CompanyFromSender(from)
	sc := score.ScoreEmail(subject, from, body, hint != "")
	if !sc.Relevant {
		p.logger.Debug("pipeline.email.gated", "email_id", id, "score", sc.Score)
		return EmailResult{Score: sc}
	}

	text := normalize.Normalize(subject + "\n\n" + body)
	ectx := extract.Context{Source: constants.SourceEmail, CompanyHint: hint}
	candidates := runExtractors(text, ectx)

	rec := p.builder.BuildEmail(text, candidates, record.Metadata{
		Source:      constants.SourceEmail,
		TextLength:  len(text),
		ExtractedAt: time.Now().UTC(),
		Confidence:  float32(sc.Score),
	}, id, subject, from, date)

	p.logger.Info("pipeline.email.ok",
		"email_id", id,
		"company", rec.Company,
		"status", rec.Status,
		"score", sc.Score,
	)
	return EmailResult{Relevant: true, Score: sc, Record: rec}
}
