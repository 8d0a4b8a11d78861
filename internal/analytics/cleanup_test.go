package analytics

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunCleanupPurgesUntilCancelled(t *testing.T) {
	ctx := context.Background()
	c := &clock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := openStore(t, c)
	require.NoError(t, s.Record(ctx, "10.0.0.1", "ua", "/"))
	c.t = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		s.RunCleanup(runCtx, 365*24*time.Hour, 10*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
		close(done)
	}()

	require.Eventually(t, func() bool {
		st, err := s.Stats(ctx)
		return err == nil && st.TotalVisits == 0
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("cleanup loop did not stop")
	}
}
