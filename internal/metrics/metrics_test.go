package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordWatch(t *testing.T) {
	before := testutil.ToFloat64(WatchesTotal.WithLabelValues(WatchCounted, "owner"))
	RecordWatch(WatchCounted, "owner")
	RecordWatch(WatchCounted, "owner")
	require.Equal(t, before+2, testutil.ToFloat64(WatchesTotal.WithLabelValues(WatchCounted, "owner")))
}

func TestRecordReconcile(t *testing.T) {
	before := testutil.ToFloat64(ReconcileFixedTotal.WithLabelValues("ratings"))
	RecordReconcile(0, 0, 3, 10*time.Millisecond)
	require.Equal(t, before+3, testutil.ToFloat64(ReconcileFixedTotal.WithLabelValues("ratings")))
}
