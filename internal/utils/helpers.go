package utils

import (
	"time"

	"github.com/manasvohal/aiInternshipTracker/gen/ent"
	trackerpb "github.com/manasvohal/aiInternshipTracker/gen/proto/tracker/v1"
	"github.com/manasvohal/aiInternshipTracker/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ToApplication converts a row into the transfer shape.
func ToApplication(a *ent.Application) *entity.Application {
	return &entity.Application{
		ID:              a.ID,
		CompanyName:     a.CompanyName,
		JobTitle:        a.JobTitle,
		Location:        a.Location,
		WorkArrangement: a.WorkArrangement,
		Salary:          a.Salary,
		JobType:         a.JobType,
		Seniority:       a.Seniority,
		Department:      a.Department,
		Description:     a.Description,
		Skills:          a.Skills,
		Benefits:        a.Benefits,
		Status:          a.Status,
		Source:          a.Source,
		Confidence:      a.Confidence,
		EmailID:         a.EmailID,
		EmailSubject:    a.EmailSubject,
		EmailFrom:       a.EmailFrom,
		EmailDate:       a.EmailDate,
		AddedAt:         a.AddedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// ToScanJob converts a scan run row into the transfer shape.
func ToScanJob(j *ent.ScanJob) *entity.ScanJob {
	return &entity.ScanJob{
		ID:           j.ID,
		StartedAt:    j.StartedAt,
		FinishedAt:   j.FinishedAt,
		Status:       j.Status,
		Scanned:      j.Scanned,
		Relevant:     j.Relevant,
		Created:      j.Created,
		Updated:      j.Updated,
		Skipped:      j.Skipped,
		Failed:       j.Failed,
		ErrorMessage: j.ErrorMessage,
	}
}

func ToPBApplication(a *entity.Application) *trackerpb.Application {
	pb := &trackerpb.Application{
		Id:              a.ID.String(),
		CompanyName:     a.CompanyName,
		JobTitle:        a.JobTitle,
		Location:        a.Location,
		WorkArrangement: a.WorkArrangement,
		Salary:          a.Salary,
		JobType:         a.JobType,
		Seniority:       a.Seniority,
		Department:      a.Department,
		Description:     a.Description,
		Skills:          a.Skills,
		Benefits:        a.Benefits,
		Status:          a.Status,
		Source:          a.Source,
		EmailId:         strOrEmpty(a.EmailID),
		EmailSubject:    strOrEmpty(a.EmailSubject),
		EmailFrom:       strOrEmpty(a.EmailFrom),
		AddedAt:         a.AddedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       a.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if a.Confidence != nil {
		pb.Confidence = *a.Confidence
	}
	if a.EmailDate != nil {
		pb.EmailDate = a.EmailDate.UTC().Format(time.RFC3339)
	}
	return pb
}

func ToPBScanJob(j *entity.ScanJob) *trackerpb.ScanJob {
	pb := &trackerpb.ScanJob{
		Id:           j.ID.String(),
		Status:       j.Status,
		StartedAt:    j.StartedAt.UTC().Format(time.RFC3339),
		Scanned:      int32(j.Scanned),
		Relevant:     int32(j.Relevant),
		Created:      int32(j.Created),
		Updated:      int32(j.Updated),
		Skipped:      int32(j.Skipped),
		Failed:       int32(j.Failed),
		ErrorMessage: strOrEmpty(j.ErrorMessage),
	}
	if j.FinishedAt != nil {
		pb.FinishedAt = j.FinishedAt.UTC().Format(time.RFC3339)
	}
	return pb
}
