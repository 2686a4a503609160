package v1

import "github.com/coursehive-lab/coursehive/internal/core/storage"

// StatsResponse is the body of GET /v1/me/stats.
type StatsResponse struct {
	TotalViews         int64 `json:"total_views"`
	TotalContributions int64 `json:"total_contributions"`
	TotalRatings       int64 `json:"total_contribution_ratings"`
	TotalEnrollments   int64 `json:"total_enrollments"`
}

func NewStatsResponse(s *storage.OwnerStats) StatsResponse {
	return StatsResponse{
		TotalViews:         s.TotalViews,
		TotalContributions: s.TotalContributions,
		TotalRatings:       s.TotalRatings,
		TotalEnrollments:   s.TotalEnrollments,
	}
}
