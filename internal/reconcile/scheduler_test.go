package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coursehive-lab/coursehive/internal/core/storage"
	"github.com/coursehive-lab/coursehive/internal/core/storage/memory"
	storagemocks "github.com/coursehive-lab/coursehive/internal/mocks/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunOnceRepairsDrift(t *testing.T) {
	store := memory.NewStore()
	store.PutContribution(storage.Contribution{ID: "c-1", Active: true, TotalViews: 40, AverageRating: decimal.NewFromInt(5)})
	store.PutVideo(storage.Video{ID: "v-1", ContributionID: "c-1"})
	store.PutVideo(storage.Video{ID: "v-2", ContributionID: "c-1"})

	ctx := context.Background()
	_, err := store.RecordView(ctx, &storage.View{ID: "view-1", UserID: "u-1", VideoID: "v-1"})
	require.NoError(t, err)
	store.SetVideoViews("v-2", 7)

	s := NewScheduler(time.Minute, store)
	report, err := s.RunOnce(ctx)
	require.NoError(t, err)
	require.Equal(t, storage.ReconcileReport{VideosFixed: 1, ContributionsFixed: 1, RatingsFixed: 1}, *report)

	c, err := store.GetContribution(ctx, "c-1")
	require.NoError(t, err)
	require.Equal(t, int64(1), c.TotalViews)
	require.True(t, c.AverageRating.IsZero())

	// A second pass finds nothing left to fix.
	report, err = s.RunOnce(ctx)
	require.NoError(t, err)
	require.Zero(t, report.Total())
}

func TestScheduler_RunOnceWrapsError(t *testing.T) {
	reconciler := storagemocks.NewReconciler(t)
	cause := errors.New("lock timeout")
	reconciler.EXPECT().Reconcile(mock.Anything).Return(nil, cause).Once()

	_, err := NewScheduler(time.Minute, reconciler).RunOnce(context.Background())
	require.ErrorIs(t, err, cause)
}

func TestScheduler_StartRunsInitialAndFinalPass(t *testing.T) {
	passes := make(chan struct{}, 2)
	reconciler := storagemocks.NewReconciler(t)
	reconciler.EXPECT().
		Reconcile(mock.Anything).
		Run(func(context.Context) { passes <- struct{}{} }).
		Return(&storage.ReconcileReport{}, nil).
		Times(2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewScheduler(time.Hour, reconciler).Start(ctx)
	}()

	select {
	case <-passes:
	case <-time.After(5 * time.Second):
		t.Fatal("initial pass did not run")
	}
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
		require.Len(t, passes, 1)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}
