// Package scan schedules recurring mailbox scans.
package scan

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/robfig/cron/v3"

	"github.com/manasvohal/aiInternshipTracker/internal/common"
	"github.com/manasvohal/aiInternshipTracker/internal/mail"
)

// Scheduler triggers a mailbox scan on a fixed interval. Overlapping runs are
// skipped: a still-running scan wins over the tick.
type Scheduler struct {
	logger  *slog.Logger
	cfg     common.ScanConfig
	scanner *mail.Scanner
	cron    *cron.Cron
	running atomic.Bool
}

func NewScheduler(logger *slog.Logger, cfg common.ScanConfig, scanner *mail.Scanner) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		logger:  logger,
		cfg:     cfg,
		scanner: scanner,
		cron:    cron.New(),
	}
}

// Start registers the scan entry and starts the cron loop. Disabled config is
// a no-op so callers can wire the scheduler unconditionally.
func (s *Scheduler) Start() error {
	if !s.cfg.AutoScanEnabled {
		s.logger.Info("scan.scheduler.disabled")
		return nil
	}

	spec := "@every " + s.cfg.ScanInterval.String()
	if _, err := s.cron.AddFunc(spec, s.tick); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("scan.scheduler.started", "interval", s.cfg.ScanInterval)
	return nil
}

// Stop halts the cron loop and waits for a running tick to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scan.scheduler.stopped")
}

func (s *Scheduler) tick() {
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Warn("scan.scheduler.tick_skipped", "reason", "previous scan still running")
		return
	}
	defer s.running.Store(false)

	job, err := s.scanner.Scan(context.Background())
	if err != nil {
		s.logger.Error("scan.scheduler.scan_failed", "error", err)
		return
	}
	s.logger.Info("scan.scheduler.scan_ok",
		"scan_id", job.ID,
		"created", job.Created,
		"updated", job.Updated,
	)
}
