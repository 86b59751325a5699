package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/manasvohal/aiInternshipTracker/constants"
	"github.com/manasvohal/aiInternshipTracker/gen/ent"
	"github.com/manasvohal/aiInternshipTracker/gen/ent/application"
	"github.com/manasvohal/aiInternshipTracker/internal/entity"
	"github.com/manasvohal/aiInternshipTracker/internal/utils"
)

// ListFilter narrows ListApplications. Zero values mean "no constraint".
type ListFilter struct {
	Status  string
	Source  string
	Company string
}

type ApplicationRepository interface {
	ListApplications(ctx context.Context, filter ListFilter) ([]*entity.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Application, error)
	CreateFromRecord(ctx context.Context, rec entity.JobRecord, status constants.ApplicationStatus) (*entity.Application, error)
	CreateFromEmail(ctx context.Context, rec entity.EmailDerivedRecord) (*entity.Application, error)
	Update(ctx context.Context, app *entity.Application) (*entity.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status constants.ApplicationStatus) (*entity.Application, error)
}

type applicationRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewApplicationRepository(client *ent.Client, logger *slog.Logger) ApplicationRepository {
	return &applicationRepository{
		client: client,
		logger: logger,
	}
}

func (r *applicationRepository) ListApplications(ctx context.Context, filter ListFilter) ([]*entity.Application, error) {
	q := r.client.Application.Query()
	if filter.Status != "" {
		q = q.Where(application.Status(filter.Status))
	}
	if filter.Source != "" {
		q = q.Where(application.Source(filter.Source))
	}
	if filter.Company != "" {
		q = q.Where(application.CompanyNameContainsFold(filter.Company))
	}
	rows, err := q.Order(application.ByAddedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list applications", "error", err)
		return nil, err
	}

	result := make([]*entity.Application, len(rows))
	for i, row := range rows {
		result[i] = utils.ToApplication(row)
	}
	return result, nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Application, error) {
	row, err := r.client.Application.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToApplication(row), nil
}

func (r *applicationRepository) CreateFromRecord(ctx context.Context, rec entity.JobRecord, status constants.ApplicationStatus) (*entity.Application, error) {
	builder := r.client.Application.Create().
		SetCompanyName(rec.Company).
		SetJobTitle(rec.JobTitle).
		SetLocation(rec.Location).
		SetWorkArrangement(rec.WorkArrangement).
		SetSalary(rec.Salary).
		SetJobType(rec.JobType).
		SetSeniority(rec.Seniority).
		SetDepartment(rec.Department).
		SetDescription(rec.Description).
		SetSkills(rec.Skills).
		SetBenefits(rec.Benefits).
		SetStatus(string(status)).
		SetSource(string(rec.ExtractionMetadata.SourceType)).
		SetConfidence(rec.ExtractionMetadata.Confidence)

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create application", "company", rec.Company, "error", err)
		return nil, err
	}
	return utils.ToApplication(row), nil
}

func (r *applicationRepository) CreateFromEmail(ctx context.Context, rec entity.EmailDerivedRecord) (*entity.Application, error) {
	builder := r.client.Application.Create().
		SetCompanyName(rec.Company).
		SetJobTitle(rec.JobTitle).
		SetLocation(rec.Location).
		SetWorkArrangement(rec.WorkArrangement).
		SetSalary(rec.Salary).
		SetJobType(rec.JobType).
		SetSeniority(rec.Seniority).
		SetDepartment(rec.Department).
		SetDescription(rec.Description).
		SetSkills(rec.Skills).
		SetBenefits(rec.Benefits).
		SetStatus(string(rec.Status)).
		SetSource(string(constants.SourceEmail)).
		SetConfidence(rec.ExtractionMetadata.Confidence).
		SetEmailID(rec.EmailID).
		SetEmailSubject(rec.EmailSubject).
		SetEmailFrom(rec.EmailFrom).
		SetEmailDate(rec.EmailDate)

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create application from email", "email_id", rec.EmailID, "error", err)
		return nil, err
	}
	return utils.ToApplication(row), nil
}

// Update persists a merged entry produced by the dedup overlay. Email linkage
// fields are written only when present so a screenshot update never clears
// the thread identity.
func (r *applicationRepository) Update(ctx context.Context, app *entity.Application) (*entity.Application, error) {
	builder := r.client.Application.UpdateOneID(app.ID).
		SetCompanyName(app.CompanyName).
		SetJobTitle(app.JobTitle).
		SetLocation(app.Location).
		SetWorkArrangement(app.WorkArrangement).
		SetSalary(app.Salary).
		SetJobType(app.JobType).
		SetSeniority(app.Seniority).
		SetDepartment(app.Department).
		SetStatus(app.Status).
		SetSkills(app.Skills).
		SetBenefits(app.Benefits)

	if app.Confidence != nil {
		builder = builder.SetConfidence(*app.Confidence)
	}
	if app.EmailID != nil {
		builder = builder.SetEmailID(*app.EmailID)
	}
	if app.EmailSubject != nil {
		builder = builder.SetEmailSubject(*app.EmailSubject)
	}
	if app.EmailFrom != nil {
		builder = builder.SetEmailFrom(*app.EmailFrom)
	}
	if app.EmailDate != nil {
		builder = builder.SetEmailDate(*app.EmailDate)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update application", "id", app.ID, "error", err)
		return nil, err
	}
	return utils.ToApplication(row), nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status constants.ApplicationStatus) (*entity.Application, error) {
	row, err := r.client.Application.UpdateOneID(id).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to update status", "id", id, "status", status, "error", err)
		return nil, err
	}
	return utils.ToApplication(row), nil
}
