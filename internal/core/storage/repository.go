package storage

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrDuplicate is returned when a fact with the same unique key already exists.
	ErrDuplicate = errors.New("record already exists")

	// ErrNotFound is returned when the referenced row does not exist, or is not
	// visible to the operation (inactive contribution, dangling foreign key).
	ErrNotFound = errors.New("record not found")
)

// Contribution is the catalog view of a unit of shared course content.
type Contribution struct {
	ID                 string
	OwnerID            string
	Title              string
	Price              decimal.Decimal
	Active             bool
	RequiresEnrollment *bool // nil when the catalog leaves gating unspecified
	AverageRating      decimal.Decimal
	TotalViews         int64
	CreatedAt          time.Time
}

// Video is a child video of a contribution.
type Video struct {
	ID             string
	ContributionID string
	Title          string
	URL            string
	TotalViews     int64
}

// Enrollment grants UserID access to the gated content of ContributionID.
// At most one exists per (UserID, ContributionID).
type Enrollment struct {
	ID             string
	UserID         string
	ContributionID string
	EnrolledAt     time.Time
}

// ContributionSummary is the slice of a contribution shown next to an enrollment.
type ContributionSummary struct {
	ID            string
	Title         string
	Price         decimal.Decimal
	AverageRating decimal.Decimal
	TotalViews    int64
	Active        bool
}

// EnrollmentWithContribution joins an enrollment with its contribution summary.
type EnrollmentWithContribution struct {
	Enrollment
	Contribution ContributionSummary
}

// View is the durable evidence that UserID has watched VideoID at least once.
type View struct {
	ID       string
	UserID   string
	VideoID  string
	ViewedAt time.Time
}

// ViewRecord is the outcome of RecordView.
// Counted is true only for the call that created the view fact.
type ViewRecord struct {
	VideoID                string
	ContributionID         string
	VideoTotalViews        int64
	ContributionTotalViews int64
	Counted                bool
}

// Rating is one user's rating of a contribution.
type Rating struct {
	ID             string
	UserID         string
	ContributionID string
	Value          decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RatingSummary is the caller's rating plus the contribution's cached average.
// YourRating is invalid when the caller has not rated the contribution.
type RatingSummary struct {
	ContributionID string
	YourRating     decimal.NullDecimal
	AverageRating  decimal.Decimal
	RatingCount    int64
}

// OwnerStats are lifetime engagement totals across an owner's contributions.
type OwnerStats struct {
	OwnerID            string
	TotalViews         int64
	TotalContributions int64
	TotalRatings       int64
	TotalEnrollments   int64
}

// ReconcileReport counts rows whose derived fields were repaired.
type ReconcileReport struct {
	VideosFixed        int64
	ContributionsFixed int64
	RatingsFixed       int64
}

// Total returns the number of repaired rows.
func (r ReconcileReport) Total() int64 {
	return r.VideosFixed + r.ContributionsFixed + r.RatingsFixed
}

// CatalogStore reads contribution and video records owned by the catalog.
type CatalogStore interface {
	GetContribution(ctx context.Context, id string) (*Contribution, error)
	GetVideo(ctx context.Context, id string) (*Video, error)
}

// EnrollmentStore persists enrollment facts.
type EnrollmentStore interface {
	// SaveEnrollment inserts the fact. The store enforces uniqueness atomically and
	// returns ErrDuplicate on conflict, ErrNotFound if the contribution vanished.
	SaveEnrollment(ctx context.Context, enrollment *Enrollment) error

	HasEnrollment(ctx context.Context, userID, contributionID string) (bool, error)

	// ListEnrollments returns the user's enrollments, most recent first, ties broken by id.
	ListEnrollments(ctx context.Context, userID string) ([]EnrollmentWithContribution, error)

	GetEnrollment(ctx context.Context, userID, enrollmentID string) (*Enrollment, error)
}

// ViewStore persists view facts and the counters they drive.
type ViewStore interface {
	// RecordView creates the view fact if absent and, in the same atomic unit,
	// increments the video and contribution counters. A duplicate fact leaves
	// counters untouched and reports Counted=false.
	RecordView(ctx context.Context, view *View) (*ViewRecord, error)
}

// RatingStore persists rating facts and the cached average derived from them.
type RatingStore interface {
	// UpsertRating creates or overwrites the caller's fact and recomputes the
	// contribution average in the same atomic unit. Returns ErrNotFound when the
	// contribution is missing or inactive.
	UpsertRating(ctx context.Context, rating *Rating) (*RatingSummary, error)

	GetRating(ctx context.Context, userID, contributionID string) (*RatingSummary, error)
}

// StatsStore serves read-only engagement totals.
type StatsStore interface {
	OwnerStats(ctx context.Context, ownerID string) (*OwnerStats, error)
}

// Reconciler recomputes derived counters and averages from their fact tables.
type Reconciler interface {
	Reconcile(ctx context.Context) (*ReconcileReport, error)
}
