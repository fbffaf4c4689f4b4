package models

import (
	"time"

	"gorm.io/gorm"
)

// Application statuses. Stored as plain strings so the dashboard
// group-by stays a single SQL query.
const (
	StatusApplied   = "applied"
	StatusScreening = "screening"
	StatusInterview = "interview"
	StatusOffer     = "offer"
	StatusRejected  = "rejected"
	StatusWithdrawn = "withdrawn"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// ReminderTypeFollowUp is the only reminder type we create today.
const ReminderTypeFollowUp = "follow_up"

func ValidStatus(s string) bool {
	switch s {
	case StatusApplied, StatusScreening, StatusInterview,
		StatusOffer, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func ValidTheme(t string) bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Name         string `json:"name"`
}

type Application struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint `gorm:"index;not null" json:"user_id"`

	Company     string `gorm:"not null" json:"company"`
	Position    string `gorm:"not null" json:"position"`
	Location    string `json:"location"`
	JobLink     string `json:"job_link"`
	SalaryRange string `json:"salary_range"`
	Notes       string `gorm:"type:text" json:"notes"`
	Status      string `gorm:"default:'applied';index" json:"status"`
	Priority    string `gorm:"default:'medium'" json:"priority"`

	// AppliedDate is a calendar date, midnight-anchored UTC.
	// Deadline is optional; nil means the posting has no close date.
	AppliedDate time.Time  `gorm:"type:date;not null" json:"applied_date"`
	Deadline    *time.Time `gorm:"type:date" json:"deadline,omitempty"`
}

// ApplicationEvent is an append-only audit row, written on creation
// and on every status change.
type ApplicationEvent struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	ApplicationID uint      `gorm:"index;not null" json:"application_id"`
	EventType     string    `gorm:"not null" json:"event_type"`
	Details       string    `gorm:"type:text" json:"details"`
}

type Reminder struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ApplicationID uint `gorm:"index;not null" json:"application_id"`
	UserID        uint `gorm:"index;not null" json:"user_id"`

	Type     string    `gorm:"default:'follow_up'" json:"type"`
	RemindAt time.Time `gorm:"type:date;not null" json:"remind_at"`
	Sent     bool      `gorm:"default:false;index" json:"sent"`
}

// Preference holds the per-user defaults. One row per user, created
// lazily with system defaults on first access.
type Preference struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	DefaultFollowUpDays int    `gorm:"default:7" json:"default_follow_up_days"`
	DefaultStatus       string `gorm:"default:'applied'" json:"default_status"`
	Theme               string `gorm:"default:'system'" json:"theme"`
}

type PasswordResetToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Used      bool      `gorm:"default:false" json:"used"`
}

// Expired reports whether the token is past its expiry at the given time.
func (t *PasswordResetToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
