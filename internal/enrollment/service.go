package enrollment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/coursehive-lab/coursehive/internal/api/v1"
	"github.com/coursehive-lab/coursehive/internal/core/storage"
	"github.com/coursehive-lab/coursehive/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	// ErrAlreadyEnrolled is returned when the user already holds an enrollment.
	ErrAlreadyEnrolled = errors.New("already enrolled in this contribution")

	// ErrContributionNotFound is returned when the contribution is missing or inactive.
	ErrContributionNotFound = errors.New("contribution not found")

	// ErrEnrollmentNotFound is returned when the enrollment does not belong to the caller.
	ErrEnrollmentNotFound = errors.New("enrollment not found")
)

// Service is the enrollment ledger. It owns enrollment facts and nothing else.
type Service struct {
	catalog storage.CatalogStore
	store   storage.EnrollmentStore
	now     func() time.Time
}

func NewService(catalog storage.CatalogStore, store storage.EnrollmentStore) *Service {
	if catalog == nil {
		panic("enrollment: catalog must not be nil")
	}
	if store == nil {
		panic("enrollment: store must not be nil")
	}
	return &Service{
		catalog: catalog,
		store:   store,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// RegisterRoutes registers the enrollment routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	// Canonical enrollment endpoints.
	r.POST("/v1/enrollments", s.EnrollHandler)
	r.GET("/v1/enrollments", s.ListHandler)
	r.GET("/v1/enrollments/:enrollment_id", s.GetHandler)

	// Backward-compatible aliases for the legacy web client.
	r.POST("/api/enrollment/create/", s.EnrollHandler)
	r.GET("/api/enrollment/list/", s.ListHandler)
	r.GET("/api/enrollment/detail/:enrollment_id/", s.GetHandler)
}

// Enroll records that userID is enrolled in contributionID.
// Uniqueness is enforced by the store; a conflict becomes ErrAlreadyEnrolled.
func (s *Service) Enroll(ctx context.Context, userID, contributionID string) (*storage.Enrollment, error) {
	if !v1.ValidID(contributionID) {
		return nil, ErrContributionNotFound
	}

	contribution, err := s.catalog.GetContribution(ctx, contributionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrContributionNotFound
		}
		return nil, fmt.Errorf("enroll: load contribution: %w", err)
	}
	if !contribution.Active {
		return nil, ErrContributionNotFound
	}

	enrollment := &storage.Enrollment{
		ID:             uuid.NewString(),
		UserID:         userID,
		ContributionID: contributionID,
		EnrolledAt:     s.now(),
	}

	if err := s.store.SaveEnrollment(ctx, enrollment); err != nil {
		switch {
		case errors.Is(err, storage.ErrDuplicate):
			metrics.RecordEnrollment("duplicate")
			return nil, ErrAlreadyEnrolled
		case errors.Is(err, storage.ErrNotFound):
			// Contribution deleted between the read and the insert.
			return nil, ErrContributionNotFound
		}
		return nil, fmt.Errorf("enroll: save: %w", err)
	}

	metrics.RecordEnrollment("created")
	slog.Info("[Enrollment] User enrolled",
		"enrollment_id", enrollment.ID,
		"user_id", userID,
		"contribution_id", contributionID)
	return enrollment, nil
}

// IsEnrolled reports whether userID holds an enrollment for contributionID.
func (s *Service) IsEnrolled(ctx context.Context, userID, contributionID string) (bool, error) {
	ok, err := s.store.HasEnrollment(ctx, userID, contributionID)
	if err != nil {
		return false, fmt.Errorf("is enrolled: %w", err)
	}
	return ok, nil
}

// ListEnrollments returns the user's enrollments, most recent first.
func (s *Service) ListEnrollments(ctx context.Context, userID string) ([]storage.EnrollmentWithContribution, error) {
	items, err := s.store.ListEnrollments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return items, nil
}

// GetEnrollment returns one of the caller's own enrollments.
func (s *Service) GetEnrollment(ctx context.Context, userID, enrollmentID string) (*storage.Enrollment, error) {
	if !v1.ValidID(enrollmentID) {
		return nil, ErrEnrollmentNotFound
	}

	e, err := s.store.GetEnrollment(ctx, userID, enrollmentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("get enrollment: %w", err)
	}
	return e, nil
}
