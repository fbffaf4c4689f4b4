package scheduler

import (
	"math"
	"time"
)

// ComputeFollowUpDate derives the date a follow-up reminder should fire.
//
// With no deadline the reminder lands followUpDays after the applied date.
// With a deadline close enough that the default window would land on or
// past it, the reminder moves to the day before the deadline instead.
//
// The function is pure: no clock, no I/O. Callers default the applied date
// to today and validate followUpDays (positive, 1-30) before calling.
// A deadline earlier than the applied date is not guarded; the arithmetic
// below then yields a date before the applied date. That behavior is kept
// as-is pending product review, and pinned by a test.
func ComputeFollowUpDate(applied time.Time, deadline *time.Time, followUpDays int) time.Time {
	if deadline == nil {
		return applied.AddDate(0, 0, followUpDays)
	}

	daysUntilDeadline := int(math.Ceil(deadline.Sub(applied).Hours() / 24))
	if daysUntilDeadline <= followUpDays {
		return deadline.AddDate(0, 0, -1)
	}
	return applied.AddDate(0, 0, followUpDays)
}
