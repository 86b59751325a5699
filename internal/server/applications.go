package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	trackerpb "github.com/manasvohal/aiInternshipTracker/gen/proto/tracker/v1"
	"github.com/manasvohal/aiInternshipTracker/constants"
	"github.com/manasvohal/aiInternshipTracker/internal/common"
	"github.com/manasvohal/aiInternshipTracker/internal/core"
	"github.com/manasvohal/aiInternshipTracker/internal/repository"
	"github.com/manasvohal/aiInternshipTracker/internal/utils"
)

type TrackerServer struct {
	trackerpb.UnimplementedTrackerServiceServer
	apps      repository.ApplicationRepository
	processor *core.Processor
	logger    *slog.Logger
}

func NewTrackerServer(apps repository.ApplicationRepository, processor *core.Processor, logger *slog.Logger) *TrackerServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &TrackerServer{
		apps:      apps,
		processor: processor,
		logger:    logger,
	}
}

func (s *TrackerServer) ListApplications(ctx context.Context, req *trackerpb.ListApplicationsRequest) (*trackerpb.ListApplicationsResponse, error) {
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

	rows, err := s.apps.ListApplications(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list applications", "error", err)
		return nil, status.Errorf(codes.Internal, "list applications: %v", err)
	}

	out := make([]*trackerpb.Application, 0, len(rows))
	for _, row := range rows {
		out = append(out, utils.ToPBApplication(row))
	}
	return &trackerpb.ListApplicationsResponse{Applications: out}, nil
}

func (s *TrackerServer) GetApplication(ctx context.Context, req *trackerpb.GetApplicationRequest) (*trackerpb.GetApplicationResponse, error) {
	v := common.NewValidator()
	v.Field("id", req.GetId(), common.Required, common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	id, _ := uuid.Parse(req.GetId())

	row, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "application %s not found", id)
	}
	return &trackerpb.GetApplicationResponse{Application: utils.ToPBApplication(row)}, nil
}

func (s *TrackerServer) AddApplication(ctx context.Context, req *trackerpb.AddApplicationRequest) (*trackerpb.AddApplicationResponse, error) {
	v := common.NewValidator()
	v.Field("text", req.GetText(), common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	initial := constants.StatusInterested
	if st := strings.TrimSpace(req.GetStatus()); st != "" {
		canonical, ok := constants.CanonicalizeStatus(st)
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "unknown status %q", st)
		}
		initial = canonical
	}

	app, created, err := s.processor.ProcessText(ctx, req.GetText(), initial)
	if err != nil {
		s.logger.Error("failed to add application", "error", err)
		return nil, status.Errorf(codes.Internal, "add application: %v", err)
	}
	return &trackerpb.AddApplicationResponse{
		Application: utils.ToPBApplication(app),
		Created:     created,
	}, nil
}

func (s *TrackerServer) AnalyzeScreenshot(ctx context.Context, req *trackerpb.AnalyzeScreenshotRequest) (*trackerpb.AnalyzeScreenshotResponse, error) {
	v := common.NewValidator()
	v.Field("path", req.GetPath(), common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	app, created, err := s.processor.ProcessImage(ctx, req.GetPath())
	if err != nil {
		if errors.Is(err, common.ErrNoValidOCRResult) {
			return nil, status.Errorf(codes.FailedPrecondition, "no readable text in %s", req.GetPath())
		}
		s.logger.Error("failed to analyze screenshot", "path", req.GetPath(), "error", err)
		return nil, status.Errorf(codes.Internal, "analyze screenshot: %v", err)
	}
	return &trackerpb.AnalyzeScreenshotResponse{
		Application: utils.ToPBApplication(app),
		Created:     created,
	}, nil
}

func (s *TrackerServer) UpdateStatus(ctx context.Context, req *trackerpb.UpdateStatusRequest) (*trackerpb.UpdateStatusResponse, error) {
	v := common.NewValidator()
	v.Field("id", req.GetId(), common.Required, common.UUID)
	v.Field("status", req.GetStatus(), common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	id, _ := uuid.Parse(req.GetId())

	canonical, ok := constants.CanonicalizeStatus(req.GetStatus())
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown status %q", req.GetStatus())
	}

	row, err := s.apps.UpdateStatus(ctx, id, canonical)
	if err != nil {
		s.logger.Error("failed to update status", "id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "update status: %v", err)
	}
	return &trackerpb.UpdateStatusResponse{Application: utils.ToPBApplication(row)}, nil
}
