package dtos

import (
	"time"

	"github.com/jobtrail/jobtrail/pkg/apperrors"
)

// DateFormat is how every calendar date crosses the API boundary.
// Time-of-day carries no meaning anywhere in the tracker.
const DateFormat = "2006-01-02"

// ParseDate parses a request date into a midnight-anchored UTC value.
// Malformed input surfaces as apperrors.InvalidDate.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, apperrors.InvalidDate
	}
	return t, nil
}

type ApplicationCreateRequest struct {
	Company  string `json:"company" binding:"required"`
	Position string `json:"position" binding:"required"`

	// Optional fields
	Location    string `json:"location"`
	JobLink     string `json:"job_link"`
	SalaryRange string `json:"salary_range"`
	Notes       string `json:"notes"`
	Status      string `json:"status"`   // defaults to the user's preference
	Priority    string `json:"priority"` // defaults to "medium"

	AppliedDate string `json:"applied_date"` // YYYY-MM-DD, defaults to today
	Deadline    string `json:"deadline"`     // YYYY-MM-DD, empty means none
}

type ApplicationUpdateRequest struct {
	Company     string `json:"company" binding:"required"`
	Position    string `json:"position" binding:"required"`
	Location    string `json:"location"`
	JobLink     string `json:"job_link"`
	SalaryRange string `json:"salary_range"`
	Notes       string `json:"notes"`
	Priority    string `json:"priority"`

	AppliedDate string `json:"applied_date" binding:"required"`
	// ClearDeadline removes an existing deadline; an empty Deadline alone
	// leaves it untouched.
	Deadline      string `json:"deadline"`
	ClearDeadline bool   `json:"clear_deadline"`
}

type StatusUpdateRequest struct {
	Status  string `json:"status" binding:"required"`
	Details string `json:"details"`
}
