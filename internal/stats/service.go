package stats

import (
	"context"
	"fmt"

	"github.com/coursehive-lab/coursehive/internal/core/storage"
	"github.com/gin-gonic/gin"
)

// Service serves read-only engagement totals for contribution owners.
type Service struct {
	store storage.StatsStore
}

func NewService(store storage.StatsStore) *Service {
	if store == nil {
		panic("stats: store must not be nil")
	}
	return &Service{store: store}
}

// RegisterRoutes registers the stats routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/me/stats", s.HandleOwnerStats)
}

// OwnerStats returns lifetime totals across every contribution ownerID owns.
func (s *Service) OwnerStats(ctx context.Context, ownerID string) (*storage.OwnerStats, error) {
	stats, err := s.store.OwnerStats(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("owner stats: %w", err)
	}
	return stats, nil
}
