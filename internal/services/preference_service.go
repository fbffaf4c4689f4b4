package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/jobtrail/jobtrail/internal/dtos"
	"github.com/jobtrail/jobtrail/internal/models"
	"github.com/jobtrail/jobtrail/pkg/apperrors"
)

type PreferenceService struct {
	DB        *gorm.DB
	Reminders *ReminderService
}

func NewPreferenceService(db *gorm.DB, reminders *ReminderService) *PreferenceService {
	return &PreferenceService{
		DB:        db,
		Reminders: reminders,
	}
}

// GetOrCreate returns the user's preferences, creating the row with
// system defaults on first access.
func (s *PreferenceService) GetOrCreate(ctx context.Context, userID uint) (*models.Preference, error) {
	pref := &models.Preference{
		UserID:              userID,
		DefaultFollowUpDays: 7,
		DefaultStatus:       models.StatusApplied,
		Theme:               models.ThemeSystem,
	}
	err := s.DB.WithContext(ctx).
		Where(models.Preference{UserID: userID}).
		FirstOrCreate(pref).Error
	if err != nil {
		return nil, err
	}
	return pref, nil
}

// ValidateUpdate checks the request before anything touches the database.
// The 1-30 range here is what lets the scheduler skip revalidating.
func (s *PreferenceService) ValidateUpdate(req *dtos.PreferenceUpdateRequest) error {
	if req.DefaultFollowUpDays < 1 || req.DefaultFollowUpDays > 30 {
		return apperrors.FollowUpDaysOutOfRange
	}
	if !models.ValidStatus(req.DefaultStatus) {
		return apperrors.InvalidStatus
	}
	if !models.ValidTheme(req.Theme) {
		return apperrors.InvalidTheme
	}
	return nil
}

// Update persists new preferences. A changed follow-up window also
// rewrites every open follow-up reminder, in the same transaction, so
// a failed reschedule rolls the preference row back too.
func (s *PreferenceService) Update(ctx context.Context, userID uint, req *dtos.PreferenceUpdateRequest) (*models.Preference, error) {
	if err := s.ValidateUpdate(req); err != nil {
		return nil, err
	}

	pref := &models.Preference{
		UserID:              userID,
		DefaultFollowUpDays: 7,
		DefaultStatus:       models.StatusApplied,
		Theme:               models.ThemeSystem,
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(models.Preference{UserID: userID}).FirstOrCreate(pref).Error; err != nil {
			return err
		}

		daysChanged := pref.DefaultFollowUpDays != req.DefaultFollowUpDays

		pref.DefaultFollowUpDays = req.DefaultFollowUpDays
		pref.DefaultStatus = req.DefaultStatus
		pref.Theme = req.Theme

		if err := tx.Save(pref).Error; err != nil {
			return err
		}

		if daysChanged {
			return s.Reminders.rescheduleFollowUps(tx, userID, req.DefaultFollowUpDays)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pref, nil
}
