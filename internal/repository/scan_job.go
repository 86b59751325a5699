package repository

import (
	"context"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/manasvohal/aiInternshipTracker/constants"
	"github.com/manasvohal/aiInternshipTracker/gen/ent"
	"github.com/manasvohal/aiInternshipTracker/gen/ent/scanjob"
	"github.com/manasvohal/aiInternshipTracker/internal/entity"
	"github.com/manasvohal/aiInternshipTracker/internal/utils"
)

// ScanStats is the counter set a finished scan reports.
type ScanStats struct {
	Scanned  int
	Relevant int
	Created  int
	Updated  int
	Skipped  int
	Failed   int
}

type ScanJobRepository interface {
	Start(ctx context.Context) (*entity.ScanJob, error)
	Finish(ctx context.Context, id uuid.UUID, stats ScanStats) (*entity.ScanJob, error)
	Fail(ctx context.Context, id uuid.UUID, stats ScanStats, message string) (*entity.ScanJob, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.ScanJob, error)
}

type scanJobRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewScanJobRepository(client *ent.Client, logger *slog.Logger) ScanJobRepository {
	return &scanJobRepository{
		client: client,
		logger: logger,
	}
}

func (r *scanJobRepository) Start(ctx context.Context) (*entity.ScanJob, error) {
	row, err := r.client.ScanJob.Create().
		SetStatus(string(constants.ScanStatusRunning)).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to start scan job", "error", err)
		return nil, err
	}
	return utils.ToScanJob(row), nil
}

func (r *scanJobRepository) Finish(ctx context.Context, id uuid.UUID, stats ScanStats) (*entity.ScanJob, error) {
	row, err := r.setStats(r.client.ScanJob.UpdateOneID(id), stats).
		SetStatus(string(constants.ScanStatusOK)).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to finish scan job", "id", id, "error", err)
		return nil, err
	}
	return utils.ToScanJob(row), nil
}

func (r *scanJobRepository) Fail(ctx context.Context, id uuid.UUID, stats ScanStats, message string) (*entity.ScanJob, error) {
	row, err := r.setStats(r.client.ScanJob.UpdateOneID(id), stats).
		SetStatus(string(constants.ScanStatusFailed)).
		SetErrorMessage(message).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark scan job failed", "id", id, "error", err)
		return nil, err
	}
	return utils.ToScanJob(row), nil
}

func (r *scanJobRepository) ListRecent(ctx context.Context, limit int) ([]*entity.ScanJob, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.client.ScanJob.Query().
		Order(scanjob.ByStartedAt(entsql.OrderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list scan jobs", "error", err)
		return nil, err
	}
	result := make([]*entity.ScanJob, len(rows))
	for i, row := range rows {
		result[i] = utils.ToScanJob(row)
	}
	return result, nil
}

func (r *scanJobRepository) setStats(u *ent.ScanJobUpdateOne, stats ScanStats) *ent.ScanJobUpdateOne {
	return u.
		SetScanned(stats.Scanned).
		SetRelevant(stats.Relevant).
		SetCreated(stats.Created).
		SetUpdated(stats.Updated).
		SetSkipped(stats.Skipped).
		SetFailed(stats.Failed)
}
