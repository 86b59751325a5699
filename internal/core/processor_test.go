package core

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manasvohal/aiInternshipTracker/constants"
	"github.com/manasvohal/aiInternshipTracker/internal/entity"
	"github.com/manasvohal/aiInternshipTracker/internal/pipeline"
	"github.com/manasvohal/aiInternshipTracker/internal/repository"
)

type fakeApps struct {
	rows []entity.Application
}

func (f *fakeApps) ListApplications(context.Context, repository.ListFilter) ([]*entity.Application, error) {
	out := make([]*entity.Application, len(f.rows))
	for i := range f.rows {
		row := f.rows[i]
		out[i] = &row
	}
	return out, nil
}

func (f *fakeApps) GetByID(_ context.Context, id uuid.UUID) (*entity.Application, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			row := f.rows[i]
			return &row, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeApps) CreateFromRecord(_ context.Context, rec entity.JobRecord, status constants.ApplicationStatus) (*entity.Application, error) {
	row := entity.Application{
		ID:          uuid.New(),
		CompanyName: rec.Company,
		JobTitle:    rec.JobTitle,
		Location:    rec.Location,
		Status:      string(status),
		Source:      string(rec.ExtractionMetadata.SourceType),
	}
	f.rows = append(f.rows, row)
	return &row, nil
}

func (f *fakeApps) CreateFromEmail(_ context.Context, rec entity.EmailDerivedRecord) (*entity.Application, error) {
	row := entity.Application{ID: uuid.New(), CompanyName: rec.Company, JobTitle: rec.JobTitle}
	f.rows = append(f.rows, row)
	return &row, nil
}

func (f *fakeApps) Update(_ context.Context, app *entity.Application) (*entity.Application, error) {
	for i := range f.rows {
		if f.rows[i].ID == app.ID {
			f.rows[i] = *app
			return app, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeApps) UpdateStatus(_ context.Context, id uuid.UUID, status constants.ApplicationStatus) (*entity.Application, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].Status = string(status)
			row := f.rows[i]
			return &row, nil
		}
	}
	return nil, errors.New("not found")
}

const acmePosting = "Acme Corp\nSoftware Engineering Intern\nAustin, TX\n\nWe build tools for teams that ship software every day across many industries."

func TestProcessTextCreates(t *testing.T) {
	apps := &fakeApps{}
	p := NewProcessor(nil, pipeline.NewScreenshotPipeline(nil, nil, nil), apps)

	app, created, err := p.ProcessText(context.Background(), acmePosting, constants.StatusApplied)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Acme Corp", app.CompanyName)
	assert.Equal(t, string(constants.StatusApplied), app.Status)
	assert.Len(t, apps.rows, 1)
}

func TestProcessTextMergesDuplicate(t *testing.T) {
	apps := &fakeApps{rows: []entity.Application{{
		ID:          uuid.New(),
		CompanyName: "acme corp",
		JobTitle:    "Software Engineering Intern",
		Location:    "Austin, TX",
	}}}
	p := NewProcessor(nil, pipeline.NewScreenshotPipeline(nil, nil, nil), apps)

	_, created, err := p.ProcessText(context.Background(), acmePosting, constants.StatusInterested)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, apps.rows, 1)
	assert.Equal(t, "Acme Corp", apps.rows[0].CompanyName)
}

func TestProcessImageRejectsExtension(t *testing.T) {
	p := NewProcessor(nil, pipeline.NewScreenshotPipeline(nil, nil, nil), &fakeApps{})
	_, _, err := p.ProcessImage(context.Background(), "notes.txt")
	assert.Error(t, err)
}
