package viewing

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/coursehive-lab/coursehive/internal/auth"
	httperr "github.com/coursehive-lab/coursehive/internal/core/errors"
	"github.com/gin-gonic/gin"
)

// WatchHandler handles GET /v1/watch/:video_id.
func (s *Service) WatchHandler(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, httperr.HttpUnauthenticatedError, "Authentication credentials were not provided")
		return
	}

	videoID := c.Param("video_id")
	resp, err := s.Watch(c.Request.Context(), userID, videoID)
	if err != nil {
		switch {
		case errors.Is(err, ErrVideoNotFound):
			httperr.Abort(c, http.StatusNotFound, httperr.HttpVideoNotFoundError, "Video not found")
		case errors.Is(err, ErrNotEnrolled):
			httperr.Abort(c, http.StatusForbidden, httperr.HttpNotEnrolledError, "You must enroll in this contribution to watch this video")
		default:
			slog.Error("[Viewing] Watch failed", "error", err, "user_id", userID, "video_id", videoID)
			httperr.Abort(c, http.StatusInternalServerError, httperr.HttpInternalError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
