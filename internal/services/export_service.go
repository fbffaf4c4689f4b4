package services

import (
	"context"
	"encoding/csv"
	"io"

	"gorm.io/gorm"

	"github.com/jobtrail/jobtrail/internal/dtos"
	"github.com/jobtrail/jobtrail/internal/models"
)

type ExportService struct {
	DB *gorm.DB
}

func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{DB: db}
}

// ExportApplicationsCSV streams the user's applications as CSV.
func (s *ExportService) ExportApplicationsCSV(ctx context.Context, userID uint, w io.Writer) error {
	var apps []models.Application
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("applied_date ASC, id ASC").
		Find(&apps).Error
	if err != nil {
		return err
	}
	return writeApplicationsCSV(w, apps)
}

func writeApplicationsCSV(w io.Writer, apps []models.Application) error {
	cw := csv.NewWriter(w)

	header := []string{
		"company", "position", "location", "status", "priority",
		"applied_date", "deadline", "job_link", "salary_range", "notes",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, app := range apps {
		deadline := ""
		if app.Deadline != nil {
			deadline = app.Deadline.Format(dtos.DateFormat)
		}
		record := []string{
			app.Company,
			app.Position,
			app.Location,
			app.Status,
			app.Priority,
			app.AppliedDate.Format(dtos.DateFormat),
			deadline,
			app.JobLink,
			app.SalaryRange,
			app.Notes,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
