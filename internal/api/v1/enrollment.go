package v1

import (
	"fmt"
	"time"

	"github.com/coursehive-lab/coursehive/internal/core/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EnrollRequest is the body of POST /v1/enrollments.
type EnrollRequest struct {
	ContributionID string `json:"contribution_id"`
}

// Validate ensures the request carries a contribution id.
func (r *EnrollRequest) Validate() error {
	if r.ContributionID == "" {
		return fmt.Errorf("contribution_id is required")
	}
	return nil
}

// EnrollmentResponse is returned when an enrollment is created or fetched.
type EnrollmentResponse struct {
	EnrollmentID   string    `json:"enrollment_id"`
	ContributionID string    `json:"contribution_id"`
	EnrolledAt     time.Time `json:"enrolled_at"`
}

// ContributionSummary mirrors the catalog fields shown beside an enrollment.
// Decimal fields are rendered with two fixed places ("4.50").
type ContributionSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Price         string `json:"price"`
	AverageRating string `json:"ratings"`
	TotalViews    int64  `json:"total_views"`
	Active        bool   `json:"active"`
}

// EnrollmentListItem pairs an enrollment with its contribution.
type EnrollmentListItem struct {
	EnrollmentResponse
	Contribution ContributionSummary `json:"contribution"`
}

// EnrollmentListResponse is the body of GET /v1/enrollments.
type EnrollmentListResponse struct {
	Data []EnrollmentListItem `json:"data"`
}

// NewEnrollmentResponse converts a stored enrollment.
func NewEnrollmentResponse(e *storage.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		EnrollmentID:   e.ID,
		ContributionID: e.ContributionID,
		EnrolledAt:     e.EnrolledAt,
	}
}

// NewEnrollmentListResponse converts stored enrollments, preserving order.
func NewEnrollmentListResponse(items []storage.EnrollmentWithContribution) EnrollmentListResponse {
	resp := EnrollmentListResponse{Data: make([]EnrollmentListItem, 0, len(items))}
	for i := range items {
		item := items[i]
		resp.Data = append(resp.Data, EnrollmentListItem{
			EnrollmentResponse: NewEnrollmentResponse(&item.Enrollment),
			Contribution: ContributionSummary{
				ID:            item.Contribution.ID,
				Title:         item.Contribution.Title,
				Price:         FormatDecimal(item.Contribution.Price),
				AverageRating: FormatDecimal(item.Contribution.AverageRating),
				TotalViews:    item.Contribution.TotalViews,
				Active:        item.Contribution.Active,
			},
		})
	}
	return resp
}

// FormatDecimal renders d with exactly two decimal places.
func FormatDecimal(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ValidID reports whether id is a well-formed UUID.
// Malformed ids are treated as not-found by callers.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
