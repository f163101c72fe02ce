package mailbox

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/posturekit/kioskauth/internal/kioskauth/store/drivers/sqlite"
)

var errPollBroken = errors.New("poll broken")

func newTestWatcher(t *testing.T) *Watcher {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "mailbox_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	return &Watcher{
		Store:         st,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		CheckInterval: 5 * time.Millisecond,
		SearchWindow:  time.Minute,
	}
}

func TestIngestUnhealthyWhenFirstPollFails(t *testing.T) {
	w := newTestWatcher(t)

	healthy, err := w.ingest(context.Background(), func(context.Context, time.Time) ([]Verification, error) {
		return nil, errPollBroken
	})
	require.ErrorIs(t, err, errPollBroken)
	require.False(t, healthy)
}

func TestIngestHealthyAfterOneSuccessfulPoll(t *testing.T) {
	w := newTestWatcher(t)

	calls := 0
	healthy, err := w.ingest(context.Background(), func(context.Context, time.Time) ([]Verification, error) {
		calls++
		if calls == 1 {
			return []Verification{{Code: "device-uid-1", PhoneNumber: "01012345678"}}, nil
		}
		return nil, errPollBroken
	})
	require.ErrorIs(t, err, errPollBroken)
	require.True(t, healthy)

	// The successful poll's verification was recorded.
	auth, err := w.Store.PendingAuths().GetPendingAuthByUID(context.Background(), "device-uid-1")
	require.NoError(t, err)
	require.Equal(t, "01012345678", auth.PhoneNumber)
}

func TestIngestStopsOnContextCancel(t *testing.T) {
	w := newTestWatcher(t)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	healthy, err := w.ingest(ctx, func(context.Context, time.Time) ([]Verification, error) {
		return nil, nil
	})
	require.ErrorIs(t, err, context.Canceled)
	require.True(t, healthy)
}
