package server

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	trackerpb "github.com/manasvohal/aiInternshipTracker/gen/proto/tracker/v1"
	"github.com/manasvohal/aiInternshipTracker/constants"
	"github.com/manasvohal/aiInternshipTracker/internal/export"
	"github.com/manasvohal/aiInternshipTracker/internal/repository"
)

type ExportServer struct {
	trackerpb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportApplications(ctx context.Context, req *trackerpb.ExportApplicationsRequest) (*trackerpb.ExportApplicationsResponse, error) {
	filter := repository.ListFilter{
		Source:  strings.TrimSpace(req.GetSource()),
		Company: strings.TrimSpace(req.GetCompany()),
	}
	if st := strings.TrimSpace(req.GetStatus()); st != "" {
		canonical, ok := constants.CanonicalizeStatus(st)
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "unknown status %q", st)
		}
		filter.Status = string(canonical)
	}

	xlsx, err := s.svc.ExportApplicationsXLSX(ctx, filter)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "error", err)
		return nil, status.Errorf(codes.Internal, "export applications: %v", err)
	}
	return &trackerpb.ExportApplicationsResponse{Xlsx: xlsx}, nil
}
