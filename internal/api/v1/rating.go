package v1

import (
	"fmt"

	"github.com/coursehive-lab/coursehive/internal/core/storage"
	"github.com/shopspring/decimal"
)

// RatingScale is the number of decimal places a rating may carry.
const RatingScale = 2

// Accepted exponent band for an incoming rating. Comparing or rounding a
// decimal rescales it to 10^|exp|, so the exponent is checked first.
const (
	minRatingExponent = -10
	maxRatingExponent = 1
)

var (
	minRating = decimal.Zero
	maxRating = decimal.NewFromInt(5)
)

// RateRequest is the body of POST /v1/contributions/:contribution_id/rate.
// Rating accepts a JSON number or a numeric string.
type RateRequest struct {
	Rating *decimal.Decimal `json:"rating"`
}

// Validate checks presence, the closed range [0, 5] and the scale.
func (r *RateRequest) Validate() error {
	if r.Rating == nil {
		return fmt.Errorf("rating is required")
	}
	return ValidateRating(*r.Rating)
}

// ValidateRating checks the closed range [0, 5] and at most two decimal places.
func ValidateRating(rating decimal.Decimal) error {
	switch exp := rating.Exponent(); {
	case exp > maxRatingExponent:
		return fmt.Errorf("rating must be between 0 and 5")
	case exp < minRatingExponent:
		return fmt.Errorf("rating must have at most %d decimal places", RatingScale)
	}
	if rating.LessThan(minRating) || rating.GreaterThan(maxRating) {
		return fmt.Errorf("rating must be between 0 and 5")
	}
	if !rating.Equal(rating.Truncate(RatingScale)) {
		return fmt.Errorf("rating must have at most %d decimal places", RatingScale)
	}
	return nil
}

// RateResponse is returned after a rating is stored.
type RateResponse struct {
	YourRating    string `json:"your_rating"`
	AverageRating string `json:"average_rating"`
}

// RatingResponse is the body of GET /v1/contributions/:contribution_id/rating.
// YourRating is null when the caller has not rated the contribution.
type RatingResponse struct {
	ContributionID string  `json:"contribution_id"`
	YourRating     *string `json:"your_rating"`
	AverageRating  string  `json:"average_rating"`
	RatingCount    int64   `json:"rating_count"`
}

// NewRateResponse converts the summary returned by UpsertRating.
func NewRateResponse(s *storage.RatingSummary) RateResponse {
	return RateResponse{
		YourRating:    FormatDecimal(s.YourRating.Decimal),
		AverageRating: FormatDecimal(s.AverageRating),
	}
}

// NewRatingResponse converts the summary returned by GetRating.
func NewRatingResponse(s *storage.RatingSummary) RatingResponse {
	resp := RatingResponse{
		ContributionID: s.ContributionID,
		AverageRating:  FormatDecimal(s.AverageRating),
		RatingCount:    s.RatingCount,
	}
	if s.YourRating.Valid {
		v := FormatDecimal(s.YourRating.Decimal)
		resp.YourRating = &v
	}
	return resp
}
