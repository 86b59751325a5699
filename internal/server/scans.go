package server

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	trackerpb "github.com/manasvohal/aiInternshipTracker/gen/proto/tracker/v1"
	"github.com/manasvohal/aiInternshipTracker/internal/mail"
	"github.com/manasvohal/aiInternshipTracker/internal/repository"
	"github.com/manasvohal/aiInternshipTracker/internal/utils"
)

type ScanServer struct {
	trackerpb.UnimplementedScanServiceServer
	scanner *mail.Scanner
	jobs    repository.ScanJobRepository
	logger  *slog.Logger
}

func NewScanServer(scanner *mail.Scanner, jobs repository.ScanJobRepository, logger *slog.Logger) *ScanServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScanServer{scanner: scanner, jobs: jobs, logger: logger}
}

func (s *ScanServer) ScanMailbox(ctx context.Context, _ *trackerpb.ScanMailboxRequest) (*trackerpb.ScanMailboxResponse, error) {
	if s.scanner == nil {
		return nil, status.Error(codes.FailedPrecondition, "mailbox scanning is not configured")
	}

	job, err := s.scanner.Scan(ctx)
	if err != nil {
		s.logger.Error("mailbox scan failed", "error", err)
		if job != nil {
			// the job row still records the failure
			return &trackerpb.ScanMailboxResponse{Job: utils.ToPBScanJob(job)}, nil
		}
		return nil, status.Errorf(codes.Internal, "scan mailbox: %v", err)
	}
	return &trackerpb.ScanMailboxResponse{Job: utils.ToPBScanJob(job)}, nil
}

func (s *ScanServer) ListScans(ctx context.Context, req *trackerpb.ListScansRequest) (*trackerpb.ListScansResponse, error) {
	jobs, err := s.jobs.ListRecent(ctx, int(req.GetLimit()))
	if err != nil {
		s.logger.Error("failed to list scans", "error", err)
		return nil, status.Errorf(codes.Internal, "list scans: %v", err)
	}
	out := make([]*trackerpb.ScanJob, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, utils.ToPBScanJob(job))
	}
	return &trackerpb.ListScansResponse{Jobs: out}, nil
}
