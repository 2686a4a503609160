package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/coursehive-lab/coursehive/internal/core/storage"
	"github.com/shopspring/decimal"
)

// ratingScale is the number of decimal places kept for cached averages.
const ratingScale = 2

// EngagementAdapter implements storage.ViewStore, storage.RatingStore and
// storage.Reconciler using PostgreSQL transactions. A fact write and the
// derived field it drives always commit together.
type EngagementAdapter struct {
	db  *sql.DB
	now func() time.Time
}

// NewEngagementAdapter creates an EngagementAdapter sharing the given connection.
func NewEngagementAdapter(db *sql.DB) *EngagementAdapter {
	return &EngagementAdapter{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// RecordView inserts the view fact and, only when this call created it,
// increments the video and contribution counters in the same transaction.
//
// Concurrent callers for the same (user, video) block on the unique index until
// the first transaction commits; they then see the conflict and fall through to
// the read-only path, so exactly one increment happens.
func (a *EngagementAdapter) RecordView(ctx context.Context, view *storage.View) (*storage.ViewRecord, error) {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("record view: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	record := &storage.ViewRecord{VideoID: view.VideoID}

	var insertedID string
	err = tx.QueryRowContext(ctx, queryInsertView,
		view.ID,
		view.UserID,
		view.VideoID,
		view.ViewedAt,
	).Scan(&insertedID)

	switch {
	case err == sql.ErrNoRows:
		// Duplicate watch: report current counters, mutate nothing.
		err = tx.QueryRowContext(ctx, queryReadViewCounters, view.VideoID).Scan(
			&record.ContributionID,
			&record.VideoTotalViews,
			&record.ContributionTotalViews,
		)
		if err != nil {
			if translated := translateError(err); errors.Is(translated, storage.ErrNotFound) {
				return nil, translated
			}
			return nil, fmt.Errorf("record view: read counters: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("record view: commit: %w", err)
		}
		return record, nil

	case err != nil:
		if translated := translateError(err); errors.Is(translated, storage.ErrNotFound) {
			return nil, translated
		}
		return nil, fmt.Errorf("record view: insert fact: %w", err)
	}

	now := a.now()

	err = tx.QueryRowContext(ctx, queryIncrementVideoViews, view.VideoID, now).Scan(
		&record.ContributionID,
		&record.VideoTotalViews,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("record view: increment video: %w", err)
	}

	err = tx.QueryRowContext(ctx, queryIncrementContributionViews, record.ContributionID, now).
		Scan(&record.ContributionTotalViews)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("record view: increment contribution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("record view: commit: %w", err)
	}
	record.Counted = true

	slog.Debug("[EngagementAdapter] Counted view",
		"view_id", insertedID,
		"user_id", view.UserID,
		"video_id", view.VideoID,
		"video_total_views", record.VideoTotalViews,
		"contribution_total_views", record.ContributionTotalViews)
	return record, nil
}

// UpsertRating writes the caller's rating and recomputes the cached average
// from the full fact set, all under the contribution row lock.
func (a *EngagementAdapter) UpsertRating(ctx context.Context, rating *storage.Rating) (*storage.RatingSummary, error) {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("upsert rating: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var active bool
	if err := tx.QueryRowContext(ctx, queryLockContribution, rating.ContributionID).Scan(&active); err != nil {
		if translated := translateError(err); errors.Is(translated, storage.ErrNotFound) {
			return nil, translated
		}
		return nil, fmt.Errorf("upsert rating: lock contribution: %w", err)
	}
	if !active {
		return nil, storage.ErrNotFound
	}

	err = tx.QueryRowContext(ctx, queryUpsertRating,
		rating.ID,
		rating.UserID,
		rating.ContributionID,
		rating.Value,
		rating.CreatedAt,
		rating.UpdatedAt,
	).Scan(&rating.ID, &rating.Value, &rating.CreatedAt, &rating.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert rating: write fact: %w", err)
	}

	var (
		average decimal.Decimal
		count   int64
	)
	if err := tx.QueryRowContext(ctx, queryAverageRating, rating.ContributionID).Scan(&average, &count); err != nil {
		return nil, fmt.Errorf("upsert rating: compute average: %w", err)
	}
	average = average.Round(ratingScale)

	if _, err := tx.ExecContext(ctx, queryUpdateCachedRating, rating.ContributionID, average, a.now()); err != nil {
		return nil, fmt.Errorf("upsert rating: write average: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("upsert rating: commit: %w", err)
	}

	slog.Debug("[EngagementAdapter] Rating recorded",
		"user_id", rating.UserID,
		"contribution_id", rating.ContributionID,
		"rating", rating.Value.String(),
		"average", average.String(),
		"count", count)

	return &storage.RatingSummary{
		ContributionID: rating.ContributionID,
		YourRating:     decimal.NullDecimal{Decimal: rating.Value, Valid: true},
		AverageRating:  average,
		RatingCount:    count,
	}, nil
}

// GetRating returns the caller's rating (if any) and the cached average.
// Returns storage.ErrNotFound when the contribution is missing or inactive.
func (a *EngagementAdapter) GetRating(ctx context.Context, userID, contributionID string) (*storage.RatingSummary, error) {
	summary := storage.RatingSummary{ContributionID: contributionID}
	err := a.db.QueryRowContext(ctx, queryGetRatingSummary, userID, contributionID).Scan(
		&summary.YourRating,
		&summary.AverageRating,
		&summary.RatingCount,
	)
	if err != nil {
		if translated := translateError(err); errors.Is(translated, storage.ErrNotFound) {
			return nil, translated
		}
		return nil, fmt.Errorf("get rating: %w", err)
	}
	return &summary, nil
}

// Reconcile recomputes video counters, contribution counters and cached
// averages from their fact tables in one transaction. Video counters are
// repaired first so contribution sums see the corrected values. Writers
// block while it runs.
func (a *EngagementAdapter) Reconcile(ctx context.Context) (*storage.ReconcileReport, error) {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("reconcile: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var report storage.ReconcileReport
	steps := []struct {
		name  string
		query string
		dst   *int64 // nil for lock steps
	}{
		{"lock view facts", queryLockViewFacts, nil},
		{"video views", queryReconcileVideoViews, &report.VideosFixed},
		{"contribution views", queryReconcileContributionViews, &report.ContributionsFixed},
		{"lock contributions", queryLockContributionRows, nil},
		{"lock rating facts", queryLockRatingFacts, nil},
		{"ratings", queryReconcileRatings, &report.RatingsFixed},
	}

	for _, step := range steps {
		result, err := tx.ExecContext(ctx, step.query)
		if err != nil {
			return nil, fmt.Errorf("reconcile %s: %w", step.name, err)
		}
		if step.dst == nil {
			continue
		}
		n, err := result.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("reconcile %s: rows affected: %w", step.name, err)
		}
		*step.dst = n
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("reconcile: commit: %w", err)
	}
	return &report, nil
}

var (
	_ storage.ViewStore   = (*EngagementAdapter)(nil)
	_ storage.RatingStore = (*EngagementAdapter)(nil)
	_ storage.Reconciler  = (*EngagementAdapter)(nil)
)
