package rating

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
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidRating is returned for values outside [0, 5] or with more than two decimal places.
	ErrInvalidRating = errors.New("invalid rating")

	// ErrContributionNotFound is returned when the contribution is missing or inactive.
	ErrContributionNotFound = errors.New("contribution not found")
)

// Service is the rating aggregator. It owns rating facts and the cached
// average derived from them.
type Service struct {
	store storage.RatingStore
	now   func() time.Time
}

func NewService(store storage.RatingStore) *Service {
	if store == nil {
		panic("rating: store must not be nil")
	}
	return &Service{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// RegisterRoutes registers the rating routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/contributions/:contribution_id/rate", s.RateHandler)
	r.GET("/v1/contributions/:contribution_id/rating", s.GetRatingHandler)

	// Backward-compatible alias for the legacy web client.
	r.POST("/api/contributions/:contribution_id/rate/", s.RateHandler)
}

// Rate creates or overwrites userID's rating and returns the recomputed average.
func (s *Service) Rate(ctx context.Context, userID, contributionID string, value decimal.Decimal) (*storage.RatingSummary, error) {
	if err := v1.ValidateRating(value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRating, err)
	}
	if !v1.ValidID(contributionID) {
		return nil, ErrContributionNotFound
	}

	now := s.now()
	summary, err := s.store.UpsertRating(ctx, &storage.Rating{
		ID:             uuid.NewString(),
		UserID:         userID,
		ContributionID: contributionID,
		Value:          value,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrContributionNotFound
		}
		metrics.RecordRating("error")
		return nil, fmt.Errorf("rate: %w", err)
	}

	metrics.RecordRating("stored")
	slog.Info("[Rating] Rating stored",
		"user_id", userID,
		"contribution_id", contributionID,
		"rating", value.StringFixed(v1.RatingScale),
		"average", summary.AverageRating.StringFixed(v1.RatingScale),
		"count", summary.RatingCount)
	return summary, nil
}

// GetRating returns userID's rating, if any, with the cached average.
func (s *Service) GetRating(ctx context.Context, userID, contributionID string) (*storage.RatingSummary, error) {
	if !v1.ValidID(contributionID) {
		return nil, ErrContributionNotFound
	}

	summary, err := s.store.GetRating(ctx, userID, contributionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrContributionNotFound
		}
		return nil, fmt.Errorf("get rating: %w", err)
	}
	return summary, nil
}
