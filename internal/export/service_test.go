package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/manasvohal/aiInternshipTracker/internal/entity"
)

func TestBuildWorkbook(t *testing.T) {
	apps := []*entity.Application{
		{
			CompanyName:     "Acme Corp",
			JobTitle:        "Software Engineering Intern",
			Location:        "Austin, TX",
			WorkArrangement: "Hybrid",
			Salary:          "$45/hour",
			Status:          "applied",
			Source:          "screenshot",
			Skills:          []string{"Go", "Python"},
			AddedAt:         time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	raw, err := buildWorkbook(apps)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	company, err := f.GetCellValue("Applications", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", company)

	skills, err := f.GetCellValue("Applications", "H2")
	require.NoError(t, err)
	assert.Equal(t, "Go, Python", skills)

	header, err := f.GetCellValue("Applications", "F1")
	require.NoError(t, err)
	assert.Equal(t, "Status", header)
}

func TestBuildWorkbookEmpty(t *testing.T) {
	raw, err := buildWorkbook(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Len(t, []rune(truncate("abcdefghij", 5)), 5)
}
