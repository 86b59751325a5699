package mail

import (
	"context"
	"log/slog"
	"time"

	"github.com/manasvohal/aiInternshipTracker/internal/common"
	"github.com/manasvohal/aiInternshipTracker/internal/dedupe"
	"github.com/manasvohal/aiInternshipTracker/internal/entity"
	"github.com/manasvohal/aiInternshipTracker/internal/pipeline"
	"github.com/manasvohal/aiInternshipTracker/internal/repository"
)

// Scanner runs one mailbox pass: fetch, gate, extract, dedup, persist. Each
// message fails open; a bad message bumps the failed counter and the scan
// moves on.
type Scanner struct {
	logger   *slog.Logger
	cfg      common.MailConfig
	provider Provider
	pipe     *pipeline.EmailPipeline
	apps     repository.ApplicationRepository
	jobs     repository.ScanJobRepository
	seen     *SeenCache
}

func NewScanner(
	logger *slog.Logger,
	cfg common.MailConfig,
	provider Provider,
	apps repository.ApplicationRepository,
	jobs repository.ScanJobRepository,
	seen *SeenCache,
) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{
		logger:   logger,
		cfg:      cfg,
		provider: provider,
		pipe:     pipeline.NewEmailPipeline(logger),
		apps:     apps,
		jobs:     jobs,
		seen:     seen,
	}
}

// Scan fetches up to MaxMessages and processes them in batches with a pause
// in between. The scan job row records the outcome either way.
func (s *Scanner) Scan(ctx context.Context) (*entity.ScanJob, error) {
	job, err := s.jobs.Start(ctx)
	if err != nil {
		return nil, err
	}
	ctx = common.WithScanID(ctx, job.ID.String())
	start := time.Now()
	var stats repository.ScanStats

	msgs, err := s.provider.Fetch(ctx, FetchOptions{Max: s.cfg.MaxMessages})
	if err != nil {
		s.logger.Error("mail.scan.fetch_failed", "scan_id", job.ID, "error", err)
		if failed, fErr := s.jobs.Fail(ctx, job.ID, stats, err.Error()); fErr == nil {
			return failed, err
		}
		return nil, err
	}

	store, err := s.loadExisting(ctx)
	if err != nil {
		if failed, fErr := s.jobs.Fail(ctx, job.ID, stats, err.Error()); fErr == nil {
			return failed, err
		}
		return nil, err
	}

	for i, msg := range msgs {
		if i > 0 && s.cfg.BatchSize > 0 && i%s.cfg.BatchSize == 0 {
			select {
			case <-ctx.Done():
				done, fErr := s.jobs.Fail(ctx, job.ID, stats, ctx.Err().Error())
				if fErr != nil {
					return nil, ctx.Err()
				}
				return done, ctx.Err()
			case <-time.After(s.cfg.BatchPause):
			}
		}

		stats.Scanned++
		if s.seen.Seen(ctx, msg.ID) {
			stats.Skipped++
			continue
		}

		body := msg.Body
		if s.cfg.MaxBodyChars > 0 && len(body) > s.cfg.MaxBodyChars {
			body = body[:s.cfg.MaxBodyChars]
		}

		res := s.pipe.Process(msg.ID, msg.Subject, msg.From, body, msg.Date)
		s.seen.Mark(ctx, msg.ID)
		if !res.Relevant {
			stats.Skipped++
			continue
		}
		stats.Relevant++

		if err := s.persist(ctx, res.Record, &store, &stats); err != nil {
			s.logger.Error("mail.scan.persist_failed", "email_id", msg.ID, "error", err)
			stats.Failed++
		}
	}

	finished, err := s.jobs.Finish(ctx, job.ID, stats)
	if err != nil {
		return nil, err
	}
	s.logger.Info("mail.scan.ok",
		"scan_id", job.ID,
		"scanned", stats.Scanned,
		"relevant", stats.Relevant,
		"created", stats.Created,
		"updated", stats.Updated,
		"skipped", stats.Skipped,
		"failed", stats.Failed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return finished, nil
}

func (s *Scanner) loadExisting(ctx context.Context) ([]entity.Application, error) {
	rows, err := s.apps.ListApplications(ctx, repository.ListFilter{})
	if err != nil {
		return nil, err
	}
	store := make([]entity.Application, len(rows))
	for i, row := range rows {
		store[i] = *row
	}
	return store, nil
}

func (s *Scanner) persist(ctx context.Context, rec entity.EmailDerivedRecord, store *[]entity.Application, stats *repository.ScanStats) error {
	decision := dedupe.MatchEmail(rec, *store)
	if decision.IsNew {
		created, err := s.apps.CreateFromEmail(ctx, rec)
		if err != nil {
			return err
		}
		stats.Created++
		*store = append(*store, *created)
		return nil
	}

	for i, entry := range *store {
		if entry.ID != decision.ExistingID {
			continue
		}
		merged := dedupe.Overlay(entry, rec.JobRecord, time.Now())
		merged.Status = string(rec.Status)
		merged.EmailID = &rec.EmailID
		merged.EmailSubject = &rec.EmailSubject
		merged.EmailFrom = &rec.EmailFrom
		merged.EmailDate = &rec.EmailDate

		updated, err := s.apps.Update(ctx, &merged)
		if err != nil {
			return err
		}
		stats.Updated++
		(*store)[i] = *updated
		return nil
	}
	return nil
}
