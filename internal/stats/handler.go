package stats

import (
	"log/slog"
	"net/http"

	v1 "github.com/coursehive-lab/coursehive/internal/api/v1"
	"github.com/coursehive-lab/coursehive/internal/auth"
	httperr "github.com/coursehive-lab/coursehive/internal/core/errors"
	"github.com/gin-gonic/gin"
)

// HandleOwnerStats handles GET /v1/me/stats
func (s *Service) HandleOwnerStats(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, httperr.HttpUnauthenticatedError, "Authentication credentials were not provided")
		return
	}

	stats, err := s.OwnerStats(c.Request.Context(), userID)
	if err != nil {
		slog.Error("[Stats] Failed to query owner stats", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to query stats",
		})
		return
	}

	c.JSON(http.StatusOK, v1.NewStatsResponse(stats))
}
