// Package core coordinates the screenshot path end to end: analyze an image
// or raw text, dedup against the tracked applications, and persist.
package core

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/manasvohal/aiInternshipTracker/constants"
	"github.com/manasvohal/aiInternshipTracker/internal/dedupe"
	"github.com/manasvohal/aiInternshipTracker/internal/entity"
	"github.com/manasvohal/aiInternshipTracker/internal/pipeline"
	"github.com/manasvohal/aiInternshipTracker/internal/repository"
)

type Processor struct {
	logger *slog.Logger
	pipe   *pipeline.ScreenshotPipeline
	apps   repository.ApplicationRepository
}

func NewProcessor(logger *slog.Logger, pipe *pipeline.ScreenshotPipeline, apps repository.ApplicationRepository) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{logger: logger, pipe: pipe, apps: apps}
}

// ProcessImage runs OCR and extraction for one screenshot and persists the
// result. The bool reports whether a new row was created (false means the
// record merged into an existing entry).
func (p *Processor) ProcessImage(ctx context.Context, path string) (*entity.Application, bool, error) {
	ext := constants.NormalizeExt(filepath.Ext(path))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return nil, false, fmt.Errorf("unsupported image extension %q", ext)
	}

	rec, err := p.pipe.AnalyzeImage(ctx, path)
	if err != nil {
		p.logger.Error("processor.analyze_failed", "path", path, "error", err)
		return nil, false, err
	}
	return p.persist(ctx, rec, constants.StatusInterested)
}

// ProcessText runs extraction over already-captured posting text and persists
// the result under the given status.
func (p *Processor) ProcessText(ctx context.Context, text string, status constants.ApplicationStatus) (*entity.Application, bool, error) {
	rec := p.pipe.AnalyzeText(ctx, text)
	return p.persist(ctx, rec, status)
}

func (p *Processor) persist(ctx context.Context, rec entity.JobRecord, status constants.ApplicationStatus) (*entity.Application, bool, error) {
	rows, err := p.apps.ListApplications(ctx, repository.ListFilter{})
	if err != nil {
		return nil, false, err
	}
	store := make([]entity.Application, len(rows))
	for i, row := range rows {
		store[i] = *row
	}

	decision := dedupe.Match(rec, store)
	if decision.IsNew {
		created, err := p.apps.CreateFromRecord(ctx, rec, status)
		if err != nil {
			return nil, false, err
		}
		p.logger.Info("processor.created",
			"id", created.ID,
			"company", created.CompanyName,
			"title", created.JobTitle,
		)
		return created, true, nil
	}

	for _, entry := range store {
		if entry.ID != decision.ExistingID {
			continue
		}
		merged := dedupe.Overlay(entry, rec, time.Now())
		updated, err := p.apps.Update(ctx, &merged)
		if err != nil {
			return nil, false, err
		}
		p.logger.Info("processor.merged",
			"id", updated.ID,
			"company", updated.CompanyName,
		)
		return updated, false, nil
	}
	return nil, false, fmt.Errorf("matched application %s not found", decision.ExistingID)
}
