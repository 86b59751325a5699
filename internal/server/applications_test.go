package server

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	trackerpb "github.com/manasvohal/aiInternshipTracker/gen/proto/tracker/v1"
	"github.com/manasvohal/aiInternshipTracker/constants"
	"github.com/manasvohal/aiInternshipTracker/internal/core"
	"github.com/manasvohal/aiInternshipTracker/internal/entity"
	"github.com/manasvohal/aiInternshipTracker/internal/pipeline"
	"github.com/manasvohal/aiInternshipTracker/internal/repository"
)

type stubApps struct {
	rows []entity.Application
}

func (s *stubApps) ListApplications(context.Context, repository.ListFilter) ([]*entity.Application, error) {
	out := make([]*entity.Application, len(s.rows))
	for i := range s.rows {
		row := s.rows[i]
		out[i] = &row
	}
	return out, nil
}

func (s *stubApps) GetByID(_ context.Context, id uuid.UUID) (*entity.Application, error) {
	for i := range s.rows {
		if s.rows[i].ID == id {
			row := s.rows[i]
			return &row, nil
		}
	}
	return nil, errors.New("not found")
}

func (s *stubApps) CreateFromRecord(_ context.Context, rec entity.JobRecord, st constants.ApplicationStatus) (*entity.Application, error) {
	row := entity.Application{
		ID:          uuid.New(),
		CompanyName: rec.Company,
		JobTitle:    rec.JobTitle,
		Status:      string(st),
		Source:      string(constants.SourceScreenshot),
	}
	s.rows = append(s.rows, row)
	return &row, nil
}

func (s *stubApps) CreateFromEmail(_ context.Context, rec entity.EmailDerivedRecord) (*entity.Application, error) {
	row := entity.Application{ID: uuid.New(), CompanyName: rec.Company, JobTitle: rec.JobTitle}
	s.rows = append(s.rows, row)
	return &row, nil
}

func (s *stubApps) Update(_ context.Context, app *entity.Application) (*entity.Application, error) {
	for i := range s.rows {
		if s.rows[i].ID == app.ID {
			s.rows[i] = *app
			return app, nil
		}
	}
	return nil, errors.New("not found")
}

func (s *stubApps) UpdateStatus(_ context.Context, id uuid.UUID, st constants.ApplicationStatus) (*entity.Application, error) {
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows[i].Status = string(st)
			row := s.rows[i]
			return &row, nil
		}
	}
	return nil, errors.New("not found")
}

func newTestServer(apps *stubApps) *TrackerServer {
	proc := core.NewProcessor(nil, pipeline.NewScreenshotPipeline(nil, nil, nil), apps)
	return NewTrackerServer(apps, proc, nil)
}

func TestAddApplication(t *testing.T) {
	apps := &stubApps{}
	srv := newTestServer(apps)

	resp, err := srv.AddApplication(context.Background(), &trackerpb.AddApplicationRequest{
		Text:   "Acme Corp\nSoftware Engineering Intern\nAustin, TX\n\nWe build tools for teams that ship software every day.",
		Status: "Interviewing",
	})
	require.NoError(t, err)
	assert.True(t, resp.GetCreated())
	assert.Equal(t, "Acme Corp", resp.GetApplication().GetCompanyName())
	assert.Equal(t, string(constants.StatusInterview), resp.GetApplication().GetStatus())
}

func TestAddApplicationMissingText(t *testing.T) {
	srv := newTestServer(&stubApps{})

	_, err := srv.AddApplication(context.Background(), &trackerpb.AddApplicationRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestAddApplicationUnknownStatus(t *testing.T) {
	srv := newTestServer(&stubApps{})

	_, err := srv.AddApplication(context.Background(), &trackerpb.AddApplicationRequest{
		Text:   "some posting text",
		Status: "ghosted",
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestUpdateStatusCanonicalizes(t *testing.T) {
	id := uuid.New()
	apps := &stubApps{rows: []entity.Application{{ID: id, CompanyName: "Acme Corp", Status: "applied"}}}
	srv := newTestServer(apps)

	resp, err := srv.UpdateStatus(context.Background(), &trackerpb.UpdateStatusRequest{
		Id:     id.String(),
		Status: "declined",
	})
	require.NoError(t, err)
	assert.Equal(t, string(constants.StatusRejected), resp.GetApplication().GetStatus())
}

func TestGetApplicationBadID(t *testing.T) {
	srv := newTestServer(&stubApps{})

	_, err := srv.GetApplication(context.Background(), &trackerpb.GetApplicationRequest{Id: "not-a-uuid"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestListApplicationsRejectsUnknownStatus(t *testing.T) {
	srv := newTestServer(&stubApps{})

	_, err := srv.ListApplications(context.Background(), &trackerpb.ListApplicationsRequest{Status: "limbo"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
