package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/coursehive-lab/coursehive/internal/core/storage"
	"github.com/coursehive-lab/coursehive/internal/metrics"
)

const finalRunTimeout = 30 * time.Second

// Scheduler repairs drifted view counters and cached averages on a periodic
// interval. Each tick recomputes everything from the fact tables, so a
// missed tick loses nothing.
type Scheduler struct {
	interval   time.Duration
	reconciler storage.Reconciler
}

// NewScheduler creates a reconciliation scheduler.
func NewScheduler(interval time.Duration, reconciler storage.Reconciler) *Scheduler {
	if reconciler == nil {
		panic("reconcile: reconciler must not be nil")
	}
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Scheduler{
		interval:   interval,
		reconciler: reconciler,
	}
}

// Start begins periodic reconciliation.
// Runs until context is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("[Reconciler] Starting reconciliation scheduler", "interval", s.interval)

	// Repair anything left behind while the process was down.
	s.runOnce(ctx)

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-ctx.Done():
			slog.Info("[Reconciler] Stopping (context cancelled)")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), finalRunTimeout)
			defer cancel()

			slog.Info("[Reconciler] Running final pass before shutdown...")
			s.runOnce(shutdownCtx)
			slog.Info("[Reconciler] Final pass complete")

			return nil
		}
	}
}

// RunOnce performs a single reconciliation pass and returns its report.
func (s *Scheduler) RunOnce(ctx context.Context) (*storage.ReconcileReport, error) {
	started := time.Now()
	report, err := s.reconciler.Reconcile(ctx)
	if err != nil {
		return nil, fmt.Errorf("reconcile: %w", err)
	}
	metrics.RecordReconcile(report.VideosFixed, report.ContributionsFixed, report.RatingsFixed, time.Since(started))
	return report, nil
}

func (s *Scheduler) runOnce(ctx context.Context) {
	report, err := s.RunOnce(ctx)
	if err != nil {
		slog.Error("[Reconciler] Pass failed", "error", err)
		return
	}

	if report.Total() == 0 {
		slog.Debug("[Reconciler] No drift detected")
		return
	}

	slog.Warn("[Reconciler] Repaired drifted derived fields",
		"videos_fixed", report.VideosFixed,
		"contributions_fixed", report.ContributionsFixed,
		"ratings_fixed", report.RatingsFixed)
}
