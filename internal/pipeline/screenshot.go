// Package pipeline wires the extraction stages into the two ingestion paths:
// screenshot (OCR merge, normalize, extract, score, build) and email
// (relevance gate, extract with sender hint, classify, build).
package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/manasvohal/aiInternshipTracker/constants"
	"github.com/manasvohal/aiInternshipTracker/internal/entity"
	"github.com/manasvohal/aiInternshipTracker/internal/extract"
	"github.com/manasvohal/aiInternshipTracker/internal/normalize"
	"github.com/manasvohal/aiInternshipTracker/internal/ocr"
	"github.com/manasvohal/aiInternshipTracker/internal/record"
	"github.com/manasvohal/aiInternshipTracker/internal/score"
)

// ImageExtractor produces the merged OCR text for one screenshot.
type ImageExtractor interface {
	ExtractImage(ctx context.Context, path string) (ocr.MergedResult, error)
}

// PostingParser is the optional AI-assisted extraction path. A parse error
// falls back to the heuristic extractors, never aborts the run.
type PostingParser interface {
	ParsePosting(ctx context.Context, text string) (entity.JobRecord, error)
}

type ScreenshotPipeline struct {
	logger  *slog.Logger
	images  ImageExtractor
	parser  PostingParser
	builder *record.Builder
}

func NewScreenshotPipeline(logger *slog.Logger, images ImageExtractor, parser PostingParser) *ScreenshotPipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScreenshotPipeline{
		logger:  logger,
		images:  images,
		parser:  parser,
		builder: record.NewBuilder(logger),
	}
}

// AnalyzeImage runs the full screenshot path for one image. The only hard
// failure is ErrNoValidOCRResult from the merger; everything downstream is
// fail-open.
func (p *ScreenshotPipeline) AnalyzeImage(ctx context.Context, path string) (entity.JobRecord, error) {
	merged, err := p.images.ExtractImage(ctx, path)
	if err != nil {
		return entity.JobRecord{}, err
	}
	return p.AnalyzeText(ctx, merged.Text), nil
}

// AnalyzeText runs normalization, extraction, scoring and assembly over raw
// OCR text. It never fails: poor input yields an all-sentinel record.
func (p *ScreenshotPipeline) AnalyzeText(ctx context.Context, raw string) entity.JobRecord {
	start := time.Now()
	text := normalize.PostProcess(normalize.Normalize(raw))

	if p.parser != nil {
		rec, err := p.parser.ParsePosting(ctx, text)
		if err == nil {
			p.logger.Info("pipeline.parsed", "path", "llm", "company", rec.Company, "title", rec.JobTitle)
			return rec
		}
		p.logger.Warn("pipeline.llm_fallback", "error", err)
	}

	ectx := extract.Context{Source: constants.SourceScreenshot}
	candidates := runExtractors(text, ectx)
	pct, label := score.ScoreScreenshot(candidates)

	rec := p.builder.Build(text, candidates, record.Metadata{
		Source:          constants.SourceScreenshot,
		TextLength:      len(text),
		ExtractedAt:     time.Now().UTC(),
		Confidence:      pct,
		ConfidenceLabel: label,
	})

	p.logger.Info("pipeline.ok",
		"source", constants.SourceScreenshot,
		"company", rec.Company,
		"title", rec.JobTitle,
		"confidence", label,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return rec
}

// runExtractors fans the extractor set out concurrently and joins before
// scoring. Each extractor writes only its own slot, so no locking is needed.
func runExtractors(text string, ectx extract.Context) []extract.FieldCandidate {
	extractors := extract.ForSource(ectx.Source)
	out := make([]extract.FieldCandidate, len(extractors))

	var wg sync.WaitGroup
	for i, ex := range extractors {
		wg.Add(1)
		go func(i int, ex extract.FieldExtractor) {
			defer wg.Done()
			out[i] = ex.Extract(text, ectx)
		}(i, ex)
	}
	wg.Wait()
	return out
}
