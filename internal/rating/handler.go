package rating

import (
	"errors"
	"log/slog"
	"net/http"

	v1 "github.com/coursehive-lab/coursehive/internal/api/v1"
	"github.com/coursehive-lab/coursehive/internal/auth"
	httperr "github.com/coursehive-lab/coursehive/internal/core/errors"
	"github.com/gin-gonic/gin"
)

// RateHandler handles POST /v1/contributions/:contribution_id/rate.
func (s *Service) RateHandler(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, httperr.HttpUnauthenticatedError, "Authentication credentials were not provided")
		return
	}

	var req v1.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("[Rating] Invalid JSON body received", "error", err)
		httperr.Abort(c, http.StatusBadRequest, httperr.HttpInvalidRatingError, "Rating must be a number between 0 and 5")
		return
	}
	if err := req.Validate(); err != nil {
		httperr.Abort(c, http.StatusBadRequest, httperr.HttpInvalidRatingError, err.Error())
		return
	}

	contributionID := c.Param("contribution_id")
	summary, err := s.Rate(c.Request.Context(), userID, contributionID, *req.Rating)
	if err != nil {
		s.writeError(c, err, userID, contributionID)
		return
	}

	c.JSON(http.StatusOK, v1.NewRateResponse(summary))
}

// GetRatingHandler handles GET /v1/contributions/:contribution_id/rating.
func (s *Service) GetRatingHandler(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, httperr.HttpUnauthenticatedError, "Authentication credentials were not provided")
		return
	}

	contributionID := c.Param("contribution_id")
	summary, err := s.GetRating(c.Request.Context(), userID, contributionID)
	if err != nil {
		s.writeError(c, err, userID, contributionID)
		return
	}

	c.JSON(http.StatusOK, v1.NewRatingResponse(summary))
}

func (s *Service) writeError(c *gin.Context, err error, userID, contributionID string) {
	switch {
	case errors.Is(err, ErrInvalidRating):
		httperr.Abort(c, http.StatusBadRequest, httperr.HttpInvalidRatingError, err.Error())
	case errors.Is(err, ErrContributionNotFound):
		httperr.Abort(c, http.StatusNotFound, httperr.HttpContributionNotFoundError, "Contribution not found")
	default:
		slog.Error("[Rating] Request failed", "error", err, "user_id", userID, "contribution_id", contributionID)
		httperr.Abort(c, http.StatusInternalServerError, httperr.HttpInternalError, "Internal server error")
	}
}
