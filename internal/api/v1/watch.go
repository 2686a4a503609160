package v1

import "github.com/coursehive-lab/coursehive/internal/core/storage"

// WatchResponse is the body of GET /v1/watch/:video_id.
type WatchResponse struct {
	VideoID                string `json:"video_id"`
	Title                  string `json:"title"`
	VideoURL               string `json:"video_url"`
	TotalViews             int64  `json:"total_views"`
	ContributionTotalViews int64  `json:"contribution_total_views"`
	FirstView              bool   `json:"first_view"`
}

// NewWatchResponse combines the catalog video with the counters from RecordView.
func NewWatchResponse(video *storage.Video, record *storage.ViewRecord) WatchResponse {
	return WatchResponse{
		VideoID:                video.ID,
		Title:                  video.Title,
		VideoURL:               video.URL,
		TotalViews:             record.VideoTotalViews,
		ContributionTotalViews: record.ContributionTotalViews,
		FirstView:              record.Counted,
	}
}
