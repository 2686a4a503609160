package stats

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coursehive-lab/coursehive/internal/auth"
	"github.com/coursehive-lab/coursehive/internal/core/storage"
	storagemocks "github.com/coursehive-lab/coursehive/internal/mocks/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func serve(svc *Service, userID string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			auth.SetUserID(c, userID)
		}
		c.Next()
	})
	svc.RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/v1/me/stats", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestHandleOwnerStats(t *testing.T) {
	store := storagemocks.NewStatsStore(t)
	store.EXPECT().
		OwnerStats(mock.Anything, "owner-1").
		Return(&storage.OwnerStats{
			OwnerID:            "owner-1",
			TotalViews:         120,
			TotalContributions: 4,
			TotalRatings:       9,
			TotalEnrollments:   31,
		}, nil).
		Once()

	resp := serve(NewService(store), "owner-1")
	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, `{
		"total_views": 120,
		"total_contributions": 4,
		"total_contribution_ratings": 9,
		"total_enrollments": 31
	}`, resp.Body.String())
}

func TestHandleOwnerStats_Errors(t *testing.T) {
	store := storagemocks.NewStatsStore(t)
	store.EXPECT().
		OwnerStats(mock.Anything, "owner-1").
		Return(nil, errors.New("statement timeout")).
		Once()

	resp := serve(NewService(store), "owner-1")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	require.NotContains(t, resp.Body.String(), "statement timeout")

	resp = serve(NewService(storagemocks.NewStatsStore(t)), "")
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestOwnerStats_WrapsError(t *testing.T) {
	store := storagemocks.NewStatsStore(t)
	cause := errors.New("boom")
	store.EXPECT().OwnerStats(mock.Anything, "owner-1").Return(nil, cause).Once()

	_, err := NewService(store).OwnerStats(context.Background(), "owner-1")
	require.ErrorIs(t, err, cause)
}
