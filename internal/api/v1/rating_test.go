package v1

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/coursehive-lab/coursehive/internal/core/storage"
	"github.com/shopspring/decimal"
)

func TestRateRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "integer", body: `{"rating": 4}`},
		{name: "lower bound", body: `{"rating": 0}`},
		{name: "upper bound", body: `{"rating": 5}`},
		{name: "two places", body: `{"rating": 3.75}`},
		{name: "numeric string", body: `{"rating": "4.50"}`},
		{name: "trailing zeros beyond scale", body: `{"rating": 4.500}`},
		{name: "missing", body: `{}`, wantErr: true},
		{name: "negative", body: `{"rating": -0.01}`, wantErr: true},
		{name: "above max", body: `{"rating": 5.01}`, wantErr: true},
		{name: "three places", body: `{"rating": 3.333}`, wantErr: true},
		{name: "zero with exponent", body: `{"rating": 0e1}`},
		{name: "tiny exponent", body: `{"rating": 1e-50000000}`, wantErr: true},
		{name: "huge exponent", body: `{"rating": 1e50000000}`, wantErr: true},
		{name: "zero with huge exponent", body: `{"rating": 0e50000000}`, wantErr: true},
		{name: "in range with tiny exponent", body: `{"rating": 4.000000000000000000001}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req RateRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			start := time.Now()
			err := req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if elapsed := time.Since(start); elapsed > time.Second {
				t.Errorf("Validate() took %v", elapsed)
			}
		})
	}
}

func TestNewRatingResponse(t *testing.T) {
	withRating := NewRatingResponse(&storage.RatingSummary{
		ContributionID: "c-1",
		YourRating:     decimal.NullDecimal{Decimal: decimal.NewFromInt(4), Valid: true},
		AverageRating:  decimal.RequireFromString("3.5"),
		RatingCount:    2,
	})
	if withRating.YourRating == nil || *withRating.YourRating != "4.00" {
		t.Errorf("YourRating = %v, want 4.00", withRating.YourRating)
	}
	if withRating.AverageRating != "3.50" {
		t.Errorf("AverageRating = %q, want 3.50", withRating.AverageRating)
	}

	without := NewRatingResponse(&storage.RatingSummary{ContributionID: "c-1"})
	if without.YourRating != nil {
		t.Errorf("YourRating = %v, want nil", *without.YourRating)
	}
	if without.AverageRating != "0.00" {
		t.Errorf("AverageRating = %q, want 0.00", without.AverageRating)
	}

	body, err := json.Marshal(without)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v, ok := decoded["your_rating"]; !ok || v != nil {
		t.Errorf("your_rating should be present and null, got %v", v)
	}
}

func TestEnrollRequest_Validation(t *testing.T) {
	if err := (&EnrollRequest{}).Validate(); err == nil {
		t.Error("expected error for empty contribution_id")
	}
	if err := (&EnrollRequest{ContributionID: "c-1"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidID(t *testing.T) {
	if !ValidID("c0ffee00-0000-0000-0000-000000000001") {
		t.Error("expected valid uuid")
	}
	if ValidID("not-a-uuid") {
		t.Error("expected invalid uuid")
	}
}
