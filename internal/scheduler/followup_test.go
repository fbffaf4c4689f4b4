package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestComputeFollowUpDate(t *testing.T) {
	tests := []struct {
		name         string
		applied      time.Time
		deadline     *time.Time
		followUpDays int
		want         time.Time
	}{
		{
			name:         "no deadline uses default window",
			applied:      date(2024, time.January, 1),
			deadline:     nil,
			followUpDays: 7,
			want:         date(2024, time.January, 8),
		},
		{
			name:         "no deadline single day window",
			applied:      date(2024, time.June, 15),
			deadline:     nil,
			followUpDays: 1,
			want:         date(2024, time.June, 16),
		},
		{
			name:         "no deadline crosses month boundary",
			applied:      date(2024, time.January, 28),
			deadline:     nil,
			followUpDays: 7,
			want:         date(2024, time.February, 4),
		},
		{
			name:         "far deadline is ignored",
			applied:      date(2024, time.January, 1),
			deadline:     datePtr(2024, time.March, 1),
			followUpDays: 7,
			want:         date(2024, time.January, 8),
		},
		{
			name:         "near deadline reminds the day before",
			applied:      date(2024, time.January, 1),
			deadline:     datePtr(2024, time.January, 5),
			followUpDays: 7,
			want:         date(2024, time.January, 4),
		},
		{
			name:         "deadline exactly at window takes the deadline branch",
			applied:      date(2024, time.January, 1),
			deadline:     datePtr(2024, time.January, 8),
			followUpDays: 7,
			want:         date(2024, time.January, 7),
		},
		{
			name:         "deadline one day past window is far enough",
			applied:      date(2024, time.January, 1),
			deadline:     datePtr(2024, time.January, 9),
			followUpDays: 7,
			want:         date(2024, time.January, 8),
		},
		{
			// Deliberately not "fixed": a deadline before the applied date
			// still takes the deadline branch and produces a date before
			// the applied date. See DESIGN.md.
			name:         "deadline before applied date yields past reminder",
			applied:      date(2024, time.January, 10),
			deadline:     datePtr(2024, time.January, 5),
			followUpDays: 7,
			want:         date(2024, time.January, 4),
		},
		{
			name:         "deadline on applied date",
			applied:      date(2024, time.January, 10),
			deadline:     datePtr(2024, time.January, 10),
			followUpDays: 3,
			want:         date(2024, time.January, 9),
		},
		{
			name:         "leap day deadline",
			applied:      date(2024, time.February, 25),
			deadline:     datePtr(2024, time.February, 29),
			followUpDays: 14,
			want:         date(2024, time.February, 28),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeFollowUpDate(tt.applied, tt.deadline, tt.followUpDays)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeFollowUpDateIsIdempotent(t *testing.T) {
	applied := date(2024, time.January, 1)
	deadline := datePtr(2024, time.January, 5)

	first := ComputeFollowUpDate(applied, deadline, 7)
	second := ComputeFollowUpDate(applied, deadline, 7)

	assert.Equal(t, first, second)
	// Inputs must not be mutated either.
	assert.Equal(t, date(2024, time.January, 1), applied)
	assert.Equal(t, date(2024, time.January, 5), *deadline)
}

func TestComputeFollowUpDateNeverBeforeAppliedWithoutDeadline(t *testing.T) {
	applied := date(2024, time.March, 15)
	for days := 1; days <= 30; days++ {
		got := ComputeFollowUpDate(applied, nil, days)
		assert.False(t, got.Before(applied), "followUpDays=%d", days)
		assert.Equal(t, applied.AddDate(0, 0, days), got)
	}
}
