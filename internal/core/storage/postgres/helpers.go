package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/coursehive-lab/coursehive/internal/core/storage"
	"github.com/lib/pq"
)

// PostgreSQL error codes the adapters translate into storage sentinels.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqInvalidTextRepr     = "22P02"
)

// translateError maps constraint violations onto storage sentinels so raw
// driver errors never leave this package. Unknown errors pass through unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqUniqueViolation:
			return storage.ErrDuplicate
		case pqForeignKeyViolation, pqInvalidTextRepr:
			// Dangling reference or an id that is not a uuid: nothing to point at.
			return storage.ErrNotFound
		}
	}
	return err
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanContribution scans a queryGetContribution row.
func scanContribution(row scanner) (*storage.Contribution, error) {
	var c storage.Contribution
	err := row.Scan(
		&c.ID,
		&c.OwnerID,
		&c.Title,
		&c.Price,
		&c.Active,
		&c.RequiresEnrollment,
		&c.AverageRating,
		&c.TotalViews,
		&c.CreatedAt,
	)
	if err != nil {
		if translated := translateError(err); errors.Is(translated, storage.ErrNotFound) {
			return nil, translated
		}
		return nil, fmt.Errorf("failed to scan contribution row: %w", err)
	}
	return &c, nil
}

// scanEnrollment scans a queryGetEnrollment row.
func scanEnrollment(row scanner) (*storage.Enrollment, error) {
	var e storage.Enrollment
	err := row.Scan(&e.ID, &e.UserID, &e.ContributionID, &e.EnrolledAt)
	if err != nil {
		if translated := translateError(err); errors.Is(translated, storage.ErrNotFound) {
			return nil, translated
		}
		return nil, fmt.Errorf("failed to scan enrollment row: %w", err)
	}
	return &e, nil
}

// scanEnrollmentWithContribution scans a queryListEnrollments row.
func scanEnrollmentWithContribution(row scanner) (storage.EnrollmentWithContribution, error) {
	var out storage.EnrollmentWithContribution
	err := row.Scan(
		&out.ID,
		&out.UserID,
		&out.ContributionID,
		&out.EnrolledAt,
		&out.Contribution.Title,
		&out.Contribution.Price,
		&out.Contribution.AverageRating,
		&out.Contribution.TotalViews,
		&out.Contribution.Active,
	)
	if err != nil {
		return out, fmt.Errorf("failed to scan enrollment row: %w", err)
	}
	out.Contribution.ID = out.ContributionID
	return out, nil
}
