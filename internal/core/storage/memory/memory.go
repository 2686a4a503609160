package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/coursehive-lab/coursehive/internal/core/storage"
	"github.com/shopspring/decimal"
)

const ratingScale = 2

type pairKey struct {
	userID string
	target string
}

// Store is an in-memory implementation of every storage interface.
// Useful for testing and development. One mutex stands in for the database's
// unique constraints and transactions: each method is a single atomic unit.
type Store struct {
	mu            sync.RWMutex
	contributions map[string]*storage.Contribution
	videos        map[string]*storage.Video
	enrollments   map[pairKey]*storage.Enrollment
	views         map[pairKey]*storage.View
	ratings       map[pairKey]*storage.Rating
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		contributions: make(map[string]*storage.Contribution),
		videos:        make(map[string]*storage.Video),
		enrollments:   make(map[pairKey]*storage.Enrollment),
		views:         make(map[pairKey]*storage.View),
		ratings:       make(map[pairKey]*storage.Rating),
	}
}

// PutContribution inserts or replaces a catalog contribution.
func (s *Store) PutContribution(c storage.Contribution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contributions[c.ID] = &c
}

// PutVideo inserts or replaces a catalog video.
func (s *Store) PutVideo(v storage.Video) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videos[v.ID] = &v
}

// SetVideoViews overwrites a video counter without touching facts.
// Only used to simulate drift written by external tools.
func (s *Store) SetVideoViews(videoID string, total int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.videos[videoID]; ok {
		v.TotalViews = total
	}
}

// CountViews returns the number of view facts for the video.
func (s *Store) CountViews(videoID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for key := range s.views {
		if key.target == videoID {
			n++
		}
	}
	return n
}

// CountEnrollments returns the number of enrollment facts for the pair.
func (s *Store) CountEnrollments(userID, contributionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.enrollments[pairKey{userID, contributionID}]; ok {
		return 1
	}
	return 0
}

// CountRatings returns the number of rating facts for the contribution.
func (s *Store) CountRatings(contributionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ratingsFor(contributionID))
}

func (s *Store) GetContribution(_ context.Context, id string) (*storage.Contribution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.contributions[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *Store) GetVideo(_ context.Context, id string) (*storage.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.videos[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (s *Store) SaveEnrollment(_ context.Context, e *storage.Enrollment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.contributions[e.ContributionID]; !ok {
		return storage.ErrNotFound
	}

	key := pairKey{e.UserID, e.ContributionID}
	if _, exists := s.enrollments[key]; exists {
		return storage.ErrDuplicate
	}

	cp := *e
	s.enrollments[key] = &cp
	return nil
}

func (s *Store) HasEnrollment(_ context.Context, userID, contributionID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.enrollments[pairKey{userID, contributionID}]
	return ok, nil
}

func (s *Store) ListEnrollments(_ context.Context, userID string) ([]storage.EnrollmentWithContribution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []storage.EnrollmentWithContribution{}
	for key, e := range s.enrollments {
		if key.userID != userID {
			continue
		}
		c, ok := s.contributions[e.ContributionID]
		if !ok {
			continue
		}
		result = append(result, storage.EnrollmentWithContribution{
			Enrollment: *e,
			Contribution: storage.ContributionSummary{
				ID:            c.ID,
				Title:         c.Title,
				Price:         c.Price,
				AverageRating: c.AverageRating,
				TotalViews:    c.TotalViews,
				Active:        c.Active,
			},
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].EnrolledAt.Equal(result[j].EnrolledAt) {
			return result[i].EnrolledAt.After(result[j].EnrolledAt)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (s *Store) GetEnrollment(_ context.Context, userID, enrollmentID string) (*storage.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for key, e := range s.enrollments {
		if key.userID == userID && e.ID == enrollmentID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) RecordView(_ context.Context, view *storage.View) (*storage.ViewRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.videos[view.VideoID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	c, ok := s.contributions[v.ContributionID]
	if !ok {
		return nil, storage.ErrNotFound
	}

	key := pairKey{view.UserID, view.VideoID}
	_, seen := s.views[key]
	if !seen {
		cp := *view
		s.views[key] = &cp
		v.TotalViews++
		c.TotalViews++
	}

	return &storage.ViewRecord{
		VideoID:                v.ID,
		ContributionID:         c.ID,
		VideoTotalViews:        v.TotalViews,
		ContributionTotalViews: c.TotalViews,
		Counted:                !seen,
	}, nil
}

func (s *Store) UpsertRating(_ context.Context, rating *storage.Rating) (*storage.RatingSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contributions[rating.ContributionID]
	if !ok || !c.Active {
		return nil, storage.ErrNotFound
	}

	key := pairKey{rating.UserID, rating.ContributionID}
	if existing, ok := s.ratings[key]; ok {
		existing.Value = rating.Value
		existing.UpdatedAt = rating.UpdatedAt
		*rating = *existing
	} else {
		cp := *rating
		s.ratings[key] = &cp
	}

	average, count := s.average(rating.ContributionID)
	c.AverageRating = average

	return &storage.RatingSummary{
		ContributionID: rating.ContributionID,
		YourRating:     decimal.NullDecimal{Decimal: rating.Value, Valid: true},
		AverageRating:  average,
		RatingCount:    count,
	}, nil
}

func (s *Store) GetRating(_ context.Context, userID, contributionID string) (*storage.RatingSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.contributions[contributionID]
	if !ok || !c.Active {
		return nil, storage.ErrNotFound
	}

	summary := &storage.RatingSummary{
		ContributionID: contributionID,
		AverageRating:  c.AverageRating,
		RatingCount:    int64(len(s.ratingsFor(contributionID))),
	}
	if r, ok := s.ratings[pairKey{userID, contributionID}]; ok {
		summary.YourRating = decimal.NullDecimal{Decimal: r.Value, Valid: true}
	}
	return summary, nil
}

func (s *Store) OwnerStats(_ context.Context, ownerID string) (*storage.OwnerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &storage.OwnerStats{OwnerID: ownerID}
	owned := make(map[string]bool)
	for _, c := range s.contributions {
		if c.OwnerID != ownerID {
			continue
		}
		owned[c.ID] = true
		stats.TotalContributions++
		stats.TotalViews += c.TotalViews
	}
	for key := range s.ratings {
		if owned[key.target] {
			stats.TotalRatings++
		}
	}
	for key := range s.enrollments {
		if owned[key.target] {
			stats.TotalEnrollments++
		}
	}
	return stats, nil
}

func (s *Store) Reconcile(_ context.Context) (*storage.ReconcileReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var report storage.ReconcileReport

	viewCounts := make(map[string]int64)
	for key := range s.views {
		viewCounts[key.target]++
	}
	viewSums := make(map[string]int64)
	for _, v := range s.videos {
		if v.TotalViews != viewCounts[v.ID] {
			v.TotalViews = viewCounts[v.ID]
			report.VideosFixed++
		}
		viewSums[v.ContributionID] += v.TotalViews
	}

	for _, c := range s.contributions {
		if c.TotalViews != viewSums[c.ID] {
			c.TotalViews = viewSums[c.ID]
			report.ContributionsFixed++
		}
		average, _ := s.average(c.ID)
		if !c.AverageRating.Equal(average) {
			c.AverageRating = average
			report.RatingsFixed++
		}
	}
	return &report, nil
}

// average must be called with s.mu held.
func (s *Store) average(contributionID string) (decimal.Decimal, int64) {
	ratings := s.ratingsFor(contributionID)
	if len(ratings) == 0 {
		return decimal.Zero, 0
	}
	values := make([]decimal.Decimal, 0, len(ratings))
	for _, r := range ratings {
		values = append(values, r.Value)
	}
	return decimal.Avg(values[0], values[1:]...).Round(ratingScale), int64(len(values))
}

func (s *Store) ratingsFor(contributionID string) []*storage.Rating {
	var out []*storage.Rating
	for key, r := range s.ratings {
		if key.target == contributionID {
			out = append(out, r)
		}
	}
	return out
}

var (
	_ storage.CatalogStore    = (*Store)(nil)
	_ storage.EnrollmentStore = (*Store)(nil)
	_ storage.ViewStore       = (*Store)(nil)
	_ storage.RatingStore     = (*Store)(nil)
	_ storage.StatsStore      = (*Store)(nil)
	_ storage.Reconciler      = (*Store)(nil)
)
