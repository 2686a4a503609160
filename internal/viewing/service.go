package viewing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/coursehive-lab/coursehive/internal/access"
	v1 "github.com/coursehive-lab/coursehive/internal/api/v1"
	"github.com/coursehive-lab/coursehive/internal/core/storage"
	"github.com/coursehive-lab/coursehive/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	// ErrVideoNotFound is returned when the video or its contribution is missing,
	// or the contribution is inactive and the caller is not its owner.
	ErrVideoNotFound = errors.New("video not found")

	// ErrNotEnrolled is returned when the video is gated and the caller holds no enrollment.
	ErrNotEnrolled = errors.New("enrollment required to watch this video")
)

// EnrollmentChecker answers the access question the tracker needs from the ledger.
type EnrollmentChecker interface {
	IsEnrolled(ctx context.Context, userID, contributionID string) (bool, error)
}

// catalogInvalidator is implemented by catalog caches such as storage.CachedCatalog.
type catalogInvalidator interface {
	Invalidate(id string)
}

// Service is the view tracker: it gates playback and counts each
// (user, video) pair at most once.
type Service struct {
	catalog     storage.CatalogStore
	enrollments EnrollmentChecker
	views       storage.ViewStore
	decider     *access.Decider
	now         func() time.Time
}

func NewService(catalog storage.CatalogStore, enrollments EnrollmentChecker, views storage.ViewStore, decider *access.Decider) *Service {
	if catalog == nil {
		panic("viewing: catalog must not be nil")
	}
	if enrollments == nil {
		panic("viewing: enrollment checker must not be nil")
	}
	if views == nil {
		panic("viewing: view store must not be nil")
	}
	if decider == nil {
		panic("viewing: access decider must not be nil")
	}
	return &Service{
		catalog:     catalog,
		enrollments: enrollments,
		views:       views,
		decider:     decider,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// RegisterRoutes registers the viewing routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/watch/:video_id", s.WatchHandler)
}

// Watch authorizes userID to play videoID and records the view.
// Only the first watch of a (user, video) pair increments the counters.
func (s *Service) Watch(ctx context.Context, userID, videoID string) (*v1.WatchResponse, error) {
	if !v1.ValidID(videoID) {
		return nil, ErrVideoNotFound
	}

	video, err := s.catalog.GetVideo(ctx, videoID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("watch: load video: %w", err)
	}

	contribution, err := s.catalog.GetContribution(ctx, video.ContributionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("watch: load contribution: %w", err)
	}

	decision := s.decider.Decide(userID, videoID, contribution)
	if !contribution.Active && decision.Reason != access.ReasonOwner {
		return nil, ErrVideoNotFound
	}

	if decision.RequiresEnrollment {
		enrolled, err := s.enrollments.IsEnrolled(ctx, userID, contribution.ID)
		if err != nil {
			return nil, fmt.Errorf("watch: check enrollment: %w", err)
		}
		if !enrolled {
			metrics.RecordWatch(metrics.WatchDenied, string(decision.Reason))
			return nil, ErrNotEnrolled
		}
	}

	record, err := s.views.RecordView(ctx, &storage.View{
		ID:       uuid.NewString(),
		UserID:   userID,
		VideoID:  videoID,
		ViewedAt: s.now(),
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Video deleted after the catalog read; the cached copy is stale.
			if inv, ok := s.catalog.(catalogInvalidator); ok {
				inv.Invalidate(video.ID)
				inv.Invalidate(video.ContributionID)
			}
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("watch: record view: %w", err)
	}

	if record.Counted {
		metrics.RecordWatch(metrics.WatchCounted, string(decision.Reason))
		slog.Info("[Viewing] First view recorded",
			"user_id", userID,
			"video_id", videoID,
			"contribution_id", record.ContributionID,
			"total_views", record.VideoTotalViews)
	} else {
		metrics.RecordWatch(metrics.WatchDuplicate, string(decision.Reason))
	}

	resp := v1.NewWatchResponse(video, record)
	return &resp, nil
}
