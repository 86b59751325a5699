package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/manasvohal/aiInternshipTracker/internal/entity"
	"github.com/manasvohal/aiInternshipTracker/internal/repository"
)

// Service is a tiny façade over the applications repository that produces
// XLSX bytes for exports.
type Service struct {
	apps   repository.ApplicationRepository
	logger *slog.Logger
}

func NewService(apps repository.ApplicationRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{apps: apps, logger: logger}
}

// ExportApplicationsXLSX returns an XLSX workbook (as bytes) for the tracked
// applications matching the filter. An empty filter exports everything.
func (s *Service) ExportApplicationsXLSX(ctx context.Context, filter repository.ListFilter) ([]byte, error) {
	start := time.Now()

	apps, err := s.apps.ListApplications(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}

	buf, err := buildWorkbook(apps)
	if err != nil {
		return nil, err
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(apps),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf, nil
}

func buildWorkbook(apps []*entity.Application) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Applications"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Company",
		"Job Title",
		"Location",
		"Work Arrangement",
		"Salary",
		"Status",
		"Source",
		"Skills",
		"Added",
		"Last Update",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, a := range apps {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, a.CompanyName)
		write(2, a.JobTitle)
		write(3, a.Location)
		write(4, a.WorkArrangement)
		write(5, a.Salary)
		write(6, a.Status)
		write(7, a.Source)
		write(8, truncate(strings.Join(a.Skills, ", "), 140))
		write(9, a.AddedAt.Format("2006-01-02"))
		write(10, a.UpdatedAt.Format("2006-01-02"))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "B", 28)
	_ = f.SetColWidth(sheet, "C", "E", 18)
	_ = f.SetColWidth(sheet, "F", "G", 12)
	_ = f.SetColWidth(sheet, "H", "H", 48)
	_ = f.SetColWidth(sheet, "I", "J", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
