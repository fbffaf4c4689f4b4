package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/jobtrail/jobtrail/internal/dtos"
	"github.com/jobtrail/jobtrail/internal/models"
)

// monthsShown is how far back the per-month series goes.
const monthsShown = 12

type DashboardService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db, Now: time.Now}
}

type bucketCount struct {
	Bucket string
	Count  int64
}

// Summary runs the dashboard aggregates, each one a single group-by query.
func (s *DashboardService) Summary(ctx context.Context, userID uint) (*dtos.DashboardSummary, error) {
	summary := &dtos.DashboardSummary{
		ByStatus:   map[string]int64{},
		ByPriority: map[string]int64{},
	}

	err := s.DB.WithContext(ctx).Model(&models.Application{}).
		Where("user_id = ?", userID).
		Count(&summary.TotalApplications).Error
	if err != nil {
		return nil, err
	}

	var byStatus []bucketCount
	err = s.DB.WithContext(ctx).Model(&models.Application{}).
		Select("status AS bucket, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&byStatus).Error
	if err != nil {
		return nil, err
	}
	for _, row := range byStatus {
		summary.ByStatus[row.Bucket] = row.Count
	}

	var byPriority []bucketCount
	err = s.DB.WithContext(ctx).Model(&models.Application{}).
		Select("priority AS bucket, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("priority").
		Scan(&byPriority).Error
	if err != nil {
		return nil, err
	}
	for _, row := range byPriority {
		summary.ByPriority[row.Bucket] = row.Count
	}

	since := monthStart(s.Now()).AddDate(0, -(monthsShown - 1), 0)
	var perMonth []bucketCount
	err = s.DB.WithContext(ctx).Model(&models.Application{}).
		Select("to_char(applied_date, 'YYYY-MM') AS bucket, COUNT(*) AS count").
		Where("user_id = ? AND applied_date >= ?", userID, since).
		Group("bucket").
		Order("bucket").
		Scan(&perMonth).Error
	if err != nil {
		return nil, err
	}
	summary.PerMonth = fillMonths(perMonth, s.Now())

	err = s.DB.WithContext(ctx).Model(&models.Reminder{}).
		Where("user_id = ? AND sent = ?", userID, false).
		Count(&summary.OpenReminders).Error
	if err != nil {
		return nil, err
	}

	return summary, nil
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// fillMonths turns sparse group-by rows into a dense series of the last
// twelve months, zero-filling months with no applications.
func fillMonths(rows []bucketCount, now time.Time) []dtos.MonthCount {
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Bucket] = row.Count
	}

	out := make([]dtos.MonthCount, 0, monthsShown)
	start := monthStart(now).AddDate(0, -(monthsShown - 1), 0)
	for i := 0; i < monthsShown; i++ {
		month := start.AddDate(0, i, 0).Format("2006-01")
		out = append(out, dtos.MonthCount{Month: month, Count: counts[month]})
	}
	return out
}
