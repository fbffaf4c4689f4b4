package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jobtrail/jobtrail/internal/models"
	"github.com/jobtrail/jobtrail/internal/scheduler"
	"github.com/jobtrail/jobtrail/pkg/apperrors"
)

type ReminderService struct {
	DB *gorm.DB
}

func NewReminderService(db *gorm.DB) *ReminderService {
	return &ReminderService{DB: db}
}

// Upcoming lists the user's open reminders, soonest first.
func (s *ReminderService) Upcoming(ctx context.Context, userID uint) ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND sent = ?", userID, false).
		Order("remind_at ASC, id ASC").
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

// Complete marks a reminder as handled.
func (s *ReminderService) Complete(ctx context.Context, userID, id uint) (*models.Reminder, error) {
	var reminder models.Reminder
	err := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&reminder).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ReminderNotFound
	}
	if err != nil {
		return nil, err
	}

	reminder.Sent = true
	if err := s.DB.WithContext(ctx).Save(&reminder).Error; err != nil {
		return nil, err
	}
	return &reminder, nil
}

// rescheduleFollowUps recomputes every open follow-up reminder for the
// user with a new follow-up window. It runs inside the caller's
// transaction so the preference row and the reminders move together.
func (s *ReminderService) rescheduleFollowUps(tx *gorm.DB, userID uint, followUpDays int) error {
	var reminders []models.Reminder
	err := tx.
		Where("user_id = ? AND type = ? AND sent = ?", userID, models.ReminderTypeFollowUp, false).
		Find(&reminders).Error
	if err != nil {
		return err
	}

	for i := range reminders {
		var app models.Application
		if err := tx.First(&app, reminders[i].ApplicationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return err
		}
		reminders[i].RemindAt = scheduler.ComputeFollowUpDate(app.AppliedDate, app.Deadline, followUpDays)
		if err := tx.Save(&reminders[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
