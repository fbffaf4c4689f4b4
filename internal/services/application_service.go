package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jobtrail/jobtrail/internal/dtos"
	"github.com/jobtrail/jobtrail/internal/models"
	"github.com/jobtrail/jobtrail/internal/scheduler"
	"github.com/jobtrail/jobtrail/pkg/apperrors"
)

const (
	EventCreated       = "created"
	EventStatusChanged = "status_changed"
	EventUpdated       = "updated"
)

type ApplicationService struct {
	DB          *gorm.DB
	Preferences *PreferenceService
	Log         *zap.Logger

	// Now is injected so tests control "today". The scheduler itself
	// never reads a clock.
	Now func() time.Time
}

func NewApplicationService(db *gorm.DB, prefs *PreferenceService, log *zap.Logger) *ApplicationService {
	return &ApplicationService{
		DB:          db,
		Preferences: prefs,
		Log:         log,
		Now:         time.Now,
	}
}

// dateOnly strips time-of-day; all tracker dates are midnight UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *ApplicationService) Create(ctx context.Context, userID uint, req *dtos.ApplicationCreateRequest) (*models.Application, error) {
	pref, err := s.Preferences.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	app := &models.Application{
		UserID:      userID,
		Company:     req.Company,
		Position:    req.Position,
		Location:    req.Location,
		JobLink:     req.JobLink,
		SalaryRange: req.SalaryRange,
		Notes:       req.Notes,
		Status:      req.Status,
		Priority:    req.Priority,
	}

	if app.Status == "" {
		app.Status = pref.DefaultStatus
	}
	if !models.ValidStatus(app.Status) {
		return nil, apperrors.InvalidStatus
	}
	if app.Priority == "" {
		app.Priority = models.PriorityMedium
	}
	if !models.ValidPriority(app.Priority) {
		return nil, apperrors.InvalidPriority
	}

	// Applied date defaults to today; the deadline has no default.
	if req.AppliedDate == "" {
		app.AppliedDate = dateOnly(s.Now())
	} else {
		app.AppliedDate, err = dtos.ParseDate(req.AppliedDate)
		if err != nil {
			return nil, err
		}
	}
	if req.Deadline != "" {
		deadline, err := dtos.ParseDate(req.Deadline)
		if err != nil {
			return nil, err
		}
		app.Deadline = &deadline
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(app).Error; err != nil {
			return err
		}
		event := &models.ApplicationEvent{
			ApplicationID: app.ID,
			EventType:     EventCreated,
			Details:       fmt.Sprintf("Applied to %s for %s", app.Company, app.Position),
		}
		if err := tx.Create(event).Error; err != nil {
			return err
		}
		return s.rescheduleFollowUp(tx, app, pref.DefaultFollowUpDays)
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("application created",
		zap.Uint("user_id", userID),
		zap.Uint("application_id", app.ID))
	return app, nil
}

func (s *ApplicationService) List(ctx context.Context, userID uint, status string) ([]models.Application, error) {
	q := s.DB.WithContext(ctx).Where("user_id = ?", userID)
	if status != "" {
		if !models.ValidStatus(status) {
			return nil, apperrors.InvalidStatus
		}
		q = q.Where("status = ?", status)
	}

	var apps []models.Application
	if err := q.Order("applied_date DESC, id DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (s *ApplicationService) Get(ctx context.Context, userID, id uint) (*models.Application, error) {
	var app models.Application
	err := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Update rewrites the editable fields. When the applied date, deadline or
// the user's follow-up preference changed since the reminder was computed,
// the open follow-up reminder is recomputed from scratch.
func (s *ApplicationService) Update(ctx context.Context, userID, id uint, req *dtos.ApplicationUpdateRequest) (*models.Application, error) {
	app, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	appliedDate, err := dtos.ParseDate(req.AppliedDate)
	if err != nil {
		return nil, err
	}

	datesChanged := !appliedDate.Equal(app.AppliedDate)

	app.Company = req.Company
	app.Position = req.Position
	app.Location = req.Location
	app.JobLink = req.JobLink
	app.SalaryRange = req.SalaryRange
	app.Notes = req.Notes
	app.AppliedDate = appliedDate

	if req.Priority != "" {
		if !models.ValidPriority(req.Priority) {
			return nil, apperrors.InvalidPriority
		}
		app.Priority = req.Priority
	}

	switch {
	case req.ClearDeadline:
		if app.Deadline != nil {
			datesChanged = true
		}
		app.Deadline = nil
	case req.Deadline != "":
		deadline, err := dtos.ParseDate(req.Deadline)
		if err != nil {
			return nil, err
		}
		if app.Deadline == nil || !deadline.Equal(*app.Deadline) {
			datesChanged = true
		}
		app.Deadline = &deadline
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(app).Error; err != nil {
			return err
		}
		event := &models.ApplicationEvent{
			ApplicationID: app.ID,
			EventType:     EventUpdated,
			Details:       "Application details updated",
		}
		if err := tx.Create(event).Error; err != nil {
			return err
		}
		if !datesChanged {
			return nil
		}
		pref, err := s.Preferences.GetOrCreate(ctx, userID)
		if err != nil {
			return err
		}
		return s.rescheduleFollowUp(tx, app, pref.DefaultFollowUpDays)
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) Delete(ctx context.Context, userID, id uint) error {
	app, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("application_id = ?", app.ID).Delete(&models.Reminder{}).Error; err != nil {
			return err
		}
		return tx.Delete(app).Error
	})
}

// UpdateStatus transitions an application and records the event. Closing
// statuses drop any open follow-up reminder, there is nothing left to
// follow up on.
func (s *ApplicationService) UpdateStatus(ctx context.Context, userID, id uint, req *dtos.StatusUpdateRequest) (*models.Application, error) {
	if !models.ValidStatus(req.Status) {
		return nil, apperrors.InvalidStatus
	}

	app, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	previous := app.Status
	app.Status = req.Status

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(app).Error; err != nil {
			return err
		}
		details := req.Details
		if details == "" {
			details = fmt.Sprintf("Status changed from %s to %s", previous, req.Status)
		}
		event := &models.ApplicationEvent{
			ApplicationID: app.ID,
			EventType:     EventStatusChanged,
			Details:       details,
		}
		if err := tx.Create(event).Error; err != nil {
			return err
		}
		if req.Status == models.StatusRejected || req.Status == models.StatusWithdrawn {
			return tx.Where("application_id = ? AND sent = ?", app.ID, false).
				Delete(&models.Reminder{}).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) Events(ctx context.Context, userID, id uint) ([]models.ApplicationEvent, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}

	var events []models.ApplicationEvent
	err := s.DB.WithContext(ctx).
		Where("application_id = ?", id).
		Order("created_at ASC, id ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// rescheduleFollowUp replaces the open follow-up reminder with one
// computed from the application's current dates.
func (s *ApplicationService) rescheduleFollowUp(tx *gorm.DB, app *models.Application, followUpDays int) error {
	err := tx.Where("application_id = ? AND type = ? AND sent = ?",
		app.ID, models.ReminderTypeFollowUp, false).
		Delete(&models.Reminder{}).Error
	if err != nil {
		return err
	}

	remindAt := scheduler.ComputeFollowUpDate(app.AppliedDate, app.Deadline, followUpDays)
	reminder := &models.Reminder{
		ApplicationID: app.ID,
		UserID:        app.UserID,
		Type:          models.ReminderTypeFollowUp,
		RemindAt:      remindAt,
	}
	return tx.Create(reminder).Error
}
