package mail

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manasvohal/aiInternshipTracker/constants"
	"github.com/manasvohal/aiInternshipTracker/internal/common"
	"github.com/manasvohal/aiInternshipTracker/internal/entity"
	"github.com/manasvohal/aiInternshipTracker/internal/repository"
)

type memApps struct {
	rows []entity.Application
}

func (m *memApps) ListApplications(context.Context, repository.ListFilter) ([]*entity.Application, error) {
	out := make([]*entity.Application, len(m.rows))
	for i := range m.rows {
		row := m.rows[i]
		out[i] = &row
	}
	return out, nil
}

func (m *memApps) GetByID(_ context.Context, id uuid.UUID) (*entity.Application, error) {
	for i := range m.rows {
		if m.rows[i].ID == id {
			row := m.rows[i]
			return &row, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *memApps) CreateFromRecord(_ context.Context, rec entity.JobRecord, status constants.ApplicationStatus) (*entity.Application, error) {
	row := entity.Application{
		ID:          uuid.New(),
		CompanyName: rec.Company,
		JobTitle:    rec.JobTitle,
		Status:      string(status),
		Source:      string(rec.ExtractionMetadata.SourceType),
	}
	m.rows = append(m.rows, row)
	return &row, nil
}

func (m *memApps) CreateFromEmail(_ context.Context, rec entity.EmailDerivedRecord) (*entity.Application, error) {
	row := entity.Application{
		ID:           uuid.New(),
		CompanyName:  rec.Company,
		JobTitle:     rec.JobTitle,
		Status:       string(rec.Status),
		Source:       string(constants.SourceEmail),
		EmailID:      &rec.EmailID,
		EmailSubject: &rec.EmailSubject,
		EmailFrom:    &rec.EmailFrom,
	}
	m.rows = append(m.rows, row)
	return &row, nil
}

func (m *memApps) Update(_ context.Context, app *entity.Application) (*entity.Application, error) {
	for i := range m.rows {
		if m.rows[i].ID == app.ID {
			m.rows[i] = *app
			return app, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *memApps) UpdateStatus(_ context.Context, id uuid.UUID, status constants.ApplicationStatus) (*entity.Application, error) {
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows[i].Status = string(status)
			row := m.rows[i]
			return &row, nil
		}
	}
	return nil, errors.New("not found")
}

type memJobs struct {
	finished *entity.ScanJob
	failed   bool
}

func (m *memJobs) Start(context.Context) (*entity.ScanJob, error) {
	return &entity.ScanJob{ID: uuid.New(), StartedAt: time.Now(), Status: string(constants.ScanStatusRunning)}, nil
}

func (m *memJobs) Finish(_ context.Context, id uuid.UUID, stats repository.ScanStats) (*entity.ScanJob, error) {
	job := &entity.ScanJob{
		ID:       id,
		Status:   string(constants.ScanStatusOK),
		Scanned:  stats.Scanned,
		Relevant: stats.Relevant,
		Created:  stats.Created,
		Updated:  stats.Updated,
		Skipped:  stats.Skipped,
		Failed:   stats.Failed,
	}
	m.finished = job
	return job, nil
}

func (m *memJobs) Fail(_ context.Context, id uuid.UUID, stats repository.ScanStats, message string) (*entity.ScanJob, error) {
	m.failed = true
	return &entity.ScanJob{ID: id, Status: string(constants.ScanStatusFailed), ErrorMessage: &message}, nil
}

func (m *memJobs) ListRecent(context.Context, int) ([]*entity.ScanJob, error) { return nil, nil }

type stubProvider struct {
	msgs []Message
	err  error
}

func (s stubProvider) Fetch(context.Context, FetchOptions) ([]Message, error) {
	return s.msgs, s.err
}

func testConfig() common.MailConfig {
	return common.MailConfig{
		BatchSize:    10,
		BatchPause:   time.Millisecond,
		MaxBodyChars: 3000,
		MaxMessages:  200,
	}
}

func TestScanCreatesFromRelevantMessage(t *testing.T) {
	apps := &memApps{}
	jobs := &memJobs{}
	provider := stubProvider{msgs: []Message{{
		ID:      "msg-1",
		Subject: "Your application to Acme - next steps",
		From:    "no-reply@careers.acme.com",
		Date:    time.Now(),
		Body:    "Thank you for applying for the internship position. We would like to schedule an interview with you.",
	}}}

	s := NewScanner(nil, testConfig(), provider, apps, jobs, nil)
	job, err := s.Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, job.Scanned)
	assert.Equal(t, 1, job.Relevant)
	assert.Equal(t, 1, job.Created)
	require.Len(t, apps.rows, 1)
	assert.Equal(t, "Acme", apps.rows[0].CompanyName)
	assert.Equal(t, string(constants.StatusInterview), apps.rows[0].Status)
}

func TestScanUpdatesExistingThread(t *testing.T) {
	apps := &memApps{}
	jobs := &memJobs{}
	provider := stubProvider{msgs: []Message{
		{
			ID:      "msg-1",
			Subject: "Your application to Acme - next steps",
			From:    "no-reply@careers.acme.com",
			Date:    time.Now(),
			Body:    "Thank you for applying for the internship position. We would like to schedule an interview with you.",
		},
		{
			ID:      "msg-1",
			Subject: "Update on your application",
			From:    "recruiting@acme.com",
			Date:    time.Now(),
			Body:    "Unfortunately, we have decided not to move forward with your application at this time.",
		},
	}}

	s := NewScanner(nil, testConfig(), provider, apps, jobs, nil)
	job, err := s.Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, job.Created)
	assert.Equal(t, 1, job.Updated)
	require.Len(t, apps.rows, 1)
	assert.Equal(t, string(constants.StatusRejected), apps.rows[0].Status)
}

func TestScanSkipsIrrelevant(t *testing.T) {
	apps := &memApps{}
	jobs := &memJobs{}
	provider := stubProvider{msgs: []Message{{
		ID:      "msg-2",
		Subject: "50% off sale",
		From:    "deals@shopmail.example.net",
		Date:    time.Now(),
		Body:    "buy now",
	}}}

	s := NewScanner(nil, testConfig(), provider, apps, jobs, nil)
	job, err := s.Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, job.Skipped)
	assert.Zero(t, job.Created)
	assert.Empty(t, apps.rows)
}

func TestScanFetchFailureMarksJobFailed(t *testing.T) {
	jobs := &memJobs{}
	s := NewScanner(nil, testConfig(), stubProvider{err: errors.New("mailbox offline")}, &memApps{}, jobs, nil)

	_, err := s.Scan(context.Background())
	assert.Error(t, err)
	assert.True(t, jobs.failed)
}

func TestFileProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mailbox.json")
	payload := `[
		{"id":"a","subject":"first","from":"x@y.com","date":"2026-01-02T00:00:00Z","body":"one"},
		{"id":"b","subject":"second","from":"x@y.com","date":"2026-01-01T00:00:00Z","body":"two"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	p := NewFileProvider(path)
	msgs, err := p.Fetch(context.Background(), FetchOptions{Max: 1})
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "b", msgs[0].ID)

	msgs, err = p.Fetch(context.Background(), FetchOptions{Since: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "a", msgs[0].ID)
}
