package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jobtrail/jobtrail/internal/dtos"
	"github.com/jobtrail/jobtrail/internal/models"
	"github.com/jobtrail/jobtrail/pkg/apperrors"
)

func TestDateOnly(t *testing.T) {
	in := time.Date(2024, time.May, 3, 17, 45, 12, 999, time.FixedZone("X", 3600))
	got := dateOnly(in)

	assert.Equal(t, time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC), got)
}

func TestCreateRejectsInvalidStatus(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewApplicationService(db, NewPreferenceService(db, NewReminderService(db)), zap.NewNop())

	mock.ExpectQuery(`SELECT \* FROM "preferences"`).
		WillReturnRows(prefRows().AddRow(1, 42, 7, models.StatusApplied, models.ThemeSystem))

	_, err := svc.Create(context.Background(), 42, &dtos.ApplicationCreateRequest{
		Company:  "Stripe",
		Position: "Backend Engineer",
		Status:   "ghosted",
	})
	assert.ErrorIs(t, err, apperrors.InvalidStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsInvalidPriority(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewApplicationService(db, NewPreferenceService(db, NewReminderService(db)), zap.NewNop())

	mock.ExpectQuery(`SELECT \* FROM "preferences"`).
		WillReturnRows(prefRows().AddRow(1, 42, 7, models.StatusApplied, models.ThemeSystem))

	_, err := svc.Create(context.Background(), 42, &dtos.ApplicationCreateRequest{
		Company:  "Stripe",
		Position: "Backend Engineer",
		Priority: "urgent",
	})
	assert.ErrorIs(t, err, apperrors.InvalidPriority)
}

func TestCreateRejectsMalformedDates(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewApplicationService(db, NewPreferenceService(db, NewReminderService(db)), zap.NewNop())

	for _, field := range []string{"applied_date", "deadline"} {
		mock.ExpectQuery(`SELECT \* FROM "preferences"`).
			WillReturnRows(prefRows().AddRow(1, 42, 7, models.StatusApplied, models.ThemeSystem))

		req := &dtos.ApplicationCreateRequest{
			Company:  "Stripe",
			Position: "Backend Engineer",
		}
		if field == "applied_date" {
			req.AppliedDate = "01/02/2024"
		} else {
			req.Deadline = "next friday"
		}

		_, err := svc.Create(context.Background(), 42, req)
		require.Error(t, err, field)
		assert.ErrorIs(t, err, apperrors.InvalidDate, field)
	}
}

func TestCreateSchedulesFollowUpReminder(t *testing.T) {
	tests := []struct {
		name     string
		deadline string
		want     time.Time
	}{
		{
			name: "no deadline uses the full window",
			want: time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "near deadline pulls the reminder to the day before",
			deadline: "2024-01-05",
			want:     time.Date(2024, time.January, 4, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			svc := NewApplicationService(db, NewPreferenceService(db, NewReminderService(db)), zap.NewNop())

			mock.ExpectQuery(`SELECT \* FROM "preferences"`).
				WillReturnRows(prefRows().AddRow(1, 42, 7, models.StatusApplied, models.ThemeSystem))

			mock.ExpectBegin()
			mock.ExpectQuery(`INSERT INTO "applications"`).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
			mock.ExpectQuery(`INSERT INTO "application_events"`).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
			mock.ExpectExec(`DELETE FROM "reminders"`).
				WithArgs(int64(7), models.ReminderTypeFollowUp, false).
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectQuery(`INSERT INTO "reminders"`).
				WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), int64(7), int64(42),
					models.ReminderTypeFollowUp, tt.want, false).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
			mock.ExpectCommit()

			app, err := svc.Create(context.Background(), 42, &dtos.ApplicationCreateRequest{
				Company:     "Stripe",
				Position:    "Backend Engineer",
				AppliedDate: "2024-01-01",
				Deadline:    tt.deadline,
			})
			require.NoError(t, err)
			assert.Equal(t, uint(7), app.ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateReschedulesFollowUpWhenDatesChange(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewApplicationService(db, NewPreferenceService(db, NewReminderService(db)), zap.NewNop())

	appCols := []string{"id", "user_id", "company", "position", "status", "priority", "applied_date", "deadline"}
	mock.ExpectQuery(`SELECT \* FROM "applications"`).
		WillReturnRows(sqlmock.NewRows(appCols).
			AddRow(7, 42, "Stripe", "Backend Engineer", models.StatusApplied, models.PriorityMedium,
				time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), nil))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "applications" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "application_events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectQuery(`SELECT \* FROM "preferences"`).
		WillReturnRows(prefRows().AddRow(1, 42, 7, models.StatusApplied, models.ThemeSystem))
	mock.ExpectExec(`DELETE FROM "reminders"`).
		WithArgs(int64(7), models.ReminderTypeFollowUp, false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "reminders"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), int64(7), int64(42),
			models.ReminderTypeFollowUp, time.Date(2024, time.February, 8, 0, 0, 0, 0, time.UTC), false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectCommit()

	app, err := svc.Update(context.Background(), 42, 7, &dtos.ApplicationUpdateRequest{
		Company:     "Stripe",
		Position:    "Backend Engineer",
		AppliedDate: "2024-02-01",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), app.AppliedDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateKeepsReminderWhenDatesUnchanged(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewApplicationService(db, NewPreferenceService(db, NewReminderService(db)), zap.NewNop())

	appCols := []string{"id", "user_id", "company", "position", "status", "priority", "applied_date", "deadline"}
	mock.ExpectQuery(`SELECT \* FROM "applications"`).
		WillReturnRows(sqlmock.NewRows(appCols).
			AddRow(7, 42, "Stripe", "Backend Engineer", models.StatusApplied, models.PriorityMedium,
				time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), nil))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "applications" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "application_events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectCommit()

	_, err := svc.Update(context.Background(), 42, 7, &dtos.ApplicationUpdateRequest{
		Company:     "Stripe",
		Position:    "Staff Engineer",
		AppliedDate: "2024-01-01",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRejectsInvalidStatusFilter(t *testing.T) {
	db, _ := setupMockDB(t)
	svc := NewApplicationService(db, NewPreferenceService(db, NewReminderService(db)), zap.NewNop())

	_, err := svc.List(context.Background(), 42, "ghosted")
	assert.ErrorIs(t, err, apperrors.InvalidStatus)
}
