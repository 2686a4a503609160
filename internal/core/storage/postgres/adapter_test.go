package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/coursehive-lab/coursehive/internal/core/storage"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestAdapter_SaveEnrollment(t *testing.T) {
	now := time.Date(2026, 2, 8, 12, 0, 0, 0, time.UTC)
	enrollment := &storage.Enrollment{
		ID:             "enr-1",
		UserID:         "user-1",
		ContributionID: "c0ffee00-0000-0000-0000-000000000001",
		EnrolledAt:     now,
	}

	tests := []struct {
		name       string
		mockResult func(mock sqlmock.Sqlmock)
		assertions func(t *testing.T, err error)
	}{
		{
			name: "success",
			mockResult: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(querySaveEnrollment)).
					WithArgs(enrollment.ID, enrollment.UserID, enrollment.ContributionID, enrollment.EnrolledAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(enrollment.ID))
			},
			assertions: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "conflict maps to ErrDuplicate",
			mockResult: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(querySaveEnrollment)).
					WithArgs(enrollment.ID, enrollment.UserID, enrollment.ContributionID, enrollment.EnrolledAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			assertions: func(t *testing.T, err error) {
				require.ErrorIs(t, err, storage.ErrDuplicate)
			},
		},
		{
			name: "unique violation maps to ErrDuplicate",
			mockResult: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(querySaveEnrollment)).
					WithArgs(enrollment.ID, enrollment.UserID, enrollment.ContributionID, enrollment.EnrolledAt).
					WillReturnError(&pq.Error{Code: pqUniqueViolation})
			},
			assertions: func(t *testing.T, err error) {
				require.ErrorIs(t, err, storage.ErrDuplicate)
			},
		},
		{
			name: "foreign key violation maps to ErrNotFound",
			mockResult: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(querySaveEnrollment)).
					WithArgs(enrollment.ID, enrollment.UserID, enrollment.ContributionID, enrollment.EnrolledAt).
					WillReturnError(&pq.Error{Code: pqForeignKeyViolation})
			},
			assertions: func(t *testing.T, err error) {
				require.ErrorIs(t, err, storage.ErrNotFound)
			},
		},
		{
			name: "other errors are wrapped",
			mockResult: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(querySaveEnrollment)).
					WithArgs(enrollment.ID, enrollment.UserID, enrollment.ContributionID, enrollment.EnrolledAt).
					WillReturnError(errors.New("connection reset"))
			},
			assertions: func(t *testing.T, err error) {
				require.ErrorContains(t, err, "failed to save enrollment")
				require.NotErrorIs(t, err, storage.ErrDuplicate)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			adapter, mock, db := newMockAdapter(t)
			defer db.Close()

			tc.mockResult(mock)

			err := adapter.SaveEnrollment(context.Background(), enrollment)
			tc.assertions(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAdapter_ListEnrollmentsOrdersByRecency(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	newer := time.Date(2026, 2, 8, 12, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(queryListEnrollments)).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "contribution_id", "enrolled_at",
			"title", "price", "ratings", "total_views", "active",
		}).
			AddRow("enr-2", "user-1", "c-2", newer, "Algorithms", "10.00", "4.50", int64(12), true).
			AddRow("enr-1", "user-1", "c-1", older, "Calculus", "0.00", "0.00", int64(0), true),
		).RowsWillBeClosed()

	enrollments, err := adapter.ListEnrollments(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, enrollments, 2)
	require.Equal(t, "enr-2", enrollments[0].ID)
	require.Equal(t, "c-2", enrollments[0].Contribution.ID)
	require.Equal(t, "Algorithms", enrollments[0].Contribution.Title)
	require.True(t, decimal.RequireFromString("4.5").Equal(enrollments[0].Contribution.AverageRating))
	require.Equal(t, int64(12), enrollments[0].Contribution.TotalViews)
	require.Equal(t, "enr-1", enrollments[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_ListEnrollmentsEmpty(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queryListEnrollments)).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "contribution_id", "enrolled_at",
			"title", "price", "ratings", "total_views", "active",
		}))

	enrollments, err := adapter.ListEnrollments(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, enrollments)
	require.Empty(t, enrollments)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_GetContribution(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(queryGetContribution)).
		WithArgs("c-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "owner_id", "title", "price", "active",
			"requires_enrollment", "ratings", "total_views", "created_at",
		}).AddRow("c-1", "owner-1", "Calculus", "25.00", true, false, "3.67", int64(9), created))

	c, err := adapter.GetContribution(context.Background(), "c-1")
	require.NoError(t, err)
	require.Equal(t, "owner-1", c.OwnerID)
	require.True(t, c.Active)
	require.NotNil(t, c.RequiresEnrollment)
	require.False(t, *c.RequiresEnrollment)
	require.Equal(t, "3.67", c.AverageRating.StringFixed(2))
	require.Equal(t, int64(9), c.TotalViews)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_GetContributionNotFound(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queryGetContribution)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := adapter.GetContribution(context.Background(), "missing")
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_GetVideoInvalidIDIsNotFound(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queryGetVideo)).
		WithArgs("not-a-uuid").
		WillReturnError(&pq.Error{Code: pqInvalidTextRepr})

	_, err := adapter.GetVideo(context.Background(), "not-a-uuid")
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_HasEnrollment(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queryHasEnrollment)).
		WithArgs("user-1", "c-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := adapter.HasEnrollment(context.Background(), "user-1", "c-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_OwnerStats(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queryOwnerStats)).
		WithArgs("owner-1").
		WillReturnRows(sqlmock.NewRows([]string{"views", "contributions", "ratings", "enrollments"}).
			AddRow(int64(40), int64(3), int64(7), int64(11)))

	stats, err := adapter.OwnerStats(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Equal(t, storage.OwnerStats{
		OwnerID:            "owner-1",
		TotalViews:         40,
		TotalContributions: 3,
		TotalRatings:       7,
		TotalEnrollments:   11,
	}, *stats)
	require.NoError(t, mock.ExpectationsWereMet())
}

func newMockAdapter(t *testing.T) (*Adapter, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	adapter := &Adapter{
		db:                  db,
		stmtGetContribution: mustPrepareStmt(t, db, mock, queryGetContribution),
		stmtGetVideo:        mustPrepareStmt(t, db, mock, queryGetVideo),
		stmtSaveEnrollment:  mustPrepareStmt(t, db, mock, querySaveEnrollment),
		stmtHasEnrollment:   mustPrepareStmt(t, db, mock, queryHasEnrollment),
		stmtListEnrollments: mustPrepareStmt(t, db, mock, queryListEnrollments),
		stmtGetEnrollment:   mustPrepareStmt(t, db, mock, queryGetEnrollment),
		stmtOwnerStats:      mustPrepareStmt(t, db, mock, queryOwnerStats),
	}

	return adapter, mock, db
}

func mustPrepareStmt(t *testing.T, db *sql.DB, mock sqlmock.Sqlmock, query string) *sql.Stmt {
	t.Helper()

	mock.ExpectPrepare(regexp.QuoteMeta(query))
	stmt, err := db.Prepare(query)
	require.NoError(t, err)

	return stmt
}
