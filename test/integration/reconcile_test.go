//go:build integration

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestReconcile_RepairsDriftedCounters(t *testing.T) {
	h := startHarness(t)
	defer h.close(t)

	c := seedCatalog(t, h.db, false)
	student := "student-" + uuid.NewString()

	status, body := h.do(t, http.MethodGet, "/v1/watch/"+c.videoIDs[0], student, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	status, body = h.do(t, http.MethodPost, "/v1/contributions/"+c.contributionID+"/rate", student,
		map[string]interface{}{"rating": 4.5})
	require.Equal(t, http.StatusOK, status, string(body))

	// Simulate writes that bypassed the service.
	_, err := h.db.Exec(`UPDATE videos SET total_views = 99 WHERE id = $1`, c.videoIDs[0])
	require.NoError(t, err)
	_, err = h.db.Exec(`UPDATE contributions SET total_views = 7, ratings = 1.00 WHERE id = $1`, c.contributionID)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	report, err := h.scheduler.RunOnce(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, report.VideosFixed, int64(1))
	require.GreaterOrEqual(t, report.ContributionsFixed, int64(1))
	require.GreaterOrEqual(t, report.RatingsFixed, int64(1))

	var videoViews, contributionViews int64
	var average string
	require.NoError(t, h.db.QueryRow(`SELECT total_views FROM videos WHERE id = $1`, c.videoIDs[0]).Scan(&videoViews))
	require.NoError(t, h.db.QueryRow(`SELECT total_views, ratings::text FROM contributions WHERE id = $1`, c.contributionID).
		Scan(&contributionViews, &average))
	require.Equal(t, int64(1), videoViews)
	require.Equal(t, int64(1), contributionViews)
	require.Equal(t, "4.50", average)

	again, err := h.scheduler.RunOnce(ctx)
	require.NoError(t, err)
	require.Zero(t, again.Total())
}

func TestHealthAndMetrics(t *testing.T) {
	h := startHarness(t)
	defer h.close(t)

	for _, path := range []string{"/health", "/metrics"} {
		resp, err := h.client.Get(h.baseURL + path)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
	}

	// API routes require a bearer token.
	resp, err := h.client.Get(h.baseURL + "/v1/enrollments")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
