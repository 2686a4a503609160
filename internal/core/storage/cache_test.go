package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type countingCatalog struct {
	contributions map[string]Contribution
	calls         int
}

func (c *countingCatalog) GetContribution(_ context.Context, id string) (*Contribution, error) {
	c.calls++
	contribution, ok := c.contributions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &contribution, nil
}

func (c *countingCatalog) GetVideo(_ context.Context, id string) (*Video, error) {
	c.calls++
	return &Video{ID: id, ContributionID: "c-1"}, nil
}

func newCountingCatalog() *countingCatalog {
	return &countingCatalog{contributions: map[string]Contribution{
		"c-1": {ID: "c-1", Title: "Calculus"},
		"c-2": {ID: "c-2", Title: "Algebra"},
		"c-3": {ID: "c-3", Title: "Geometry"},
	}}
}

func TestCachedCatalog_ReadThrough(t *testing.T) {
	next := newCountingCatalog()
	cache := NewCachedCatalog(next, 10, time.Minute)
	ctx := context.Background()

	first, err := cache.GetContribution(ctx, "c-1")
	require.NoError(t, err)
	second, err := cache.GetContribution(ctx, "c-1")
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, 1, next.calls)

	// Mutating a returned value must not leak into the cache.
	second.Title = "changed"
	third, err := cache.GetContribution(ctx, "c-1")
	require.NoError(t, err)
	require.Equal(t, "Calculus", third.Title)
}

func TestCachedCatalog_ErrorsAreNotCached(t *testing.T) {
	next := newCountingCatalog()
	cache := NewCachedCatalog(next, 10, time.Minute)
	ctx := context.Background()

	_, err := cache.GetContribution(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = cache.GetContribution(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, 2, next.calls)
	require.Zero(t, cache.size())
}

func TestCachedCatalog_EvictsLeastRecentlyUsed(t *testing.T) {
	next := newCountingCatalog()
	cache := NewCachedCatalog(next, 2, time.Minute)
	ctx := context.Background()

	_, _ = cache.GetContribution(ctx, "c-1")
	_, _ = cache.GetContribution(ctx, "c-2")
	_, _ = cache.GetContribution(ctx, "c-1") // c-1 becomes most recent
	_, _ = cache.GetContribution(ctx, "c-3") // evicts c-2
	require.Equal(t, 3, next.calls)
	require.Equal(t, 2, cache.size())

	_, _ = cache.GetContribution(ctx, "c-1")
	require.Equal(t, 3, next.calls)

	_, _ = cache.GetContribution(ctx, "c-2")
	require.Equal(t, 4, next.calls)
}

func TestCachedCatalog_ExpiresAfterTTL(t *testing.T) {
	next := newCountingCatalog()
	cache := NewCachedCatalog(next, 10, time.Minute)
	now := time.Date(2026, 2, 8, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	_, _ = cache.GetVideo(ctx, "v-1")
	now = now.Add(30 * time.Second)
	_, _ = cache.GetVideo(ctx, "v-1")
	require.Equal(t, 1, next.calls)

	now = now.Add(time.Minute)
	_, _ = cache.GetVideo(ctx, "v-1")
	require.Equal(t, 2, next.calls)
}

func TestCachedCatalog_InvalidateAndDisabled(t *testing.T) {
	next := newCountingCatalog()
	cache := NewCachedCatalog(next, 10, time.Minute)
	ctx := context.Background()

	_, _ = cache.GetContribution(ctx, "c-1")
	cache.Invalidate("c-1")
	_, _ = cache.GetContribution(ctx, "c-1")
	require.Equal(t, 2, next.calls)

	disabled := NewCachedCatalog(newCountingCatalog(), 0, time.Minute)
	_, _ = disabled.GetContribution(ctx, "c-1")
	_, _ = disabled.GetContribution(ctx, "c-1")
	require.Equal(t, 2, disabled.next.(*countingCatalog).calls)
}
