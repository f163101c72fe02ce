package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/posturekit/kioskauth/internal/kioskauth/domain"
	"github.com/posturekit/kioskauth/internal/kioskauth/store"
	"github.com/posturekit/kioskauth/pkg/cryptox"
)

func seedSessionAt(t *testing.T, st store.Store, createdAt time.Time) string {
	t.Helper()

	key, err := cryptox.NewSessionKey()
	require.NoError(t, err)
	require.NoError(t, st.Sessions().CreateSession(context.Background(), domain.Session{
		SessionKey: key,
		KioskID:    "kiosk-1",
		CreatedAt:  createdAt,
	}))
	return key
}

func TestCleanupReapsOnlyStaleSessions(t *testing.T) {
	st := newTestStore(t)
	svc := NewHousekeepingService(st, slog.New(slog.NewTextHandler(io.Discard, nil)), time.Hour, 30*24*time.Hour)
	ctx := context.Background()

	stale := seedSessionAt(t, st, time.Now().Add(-31*24*time.Hour))
	fresh := seedSessionAt(t, st, time.Now().Add(-time.Hour))

	svc.cleanup()

	_, err := st.Sessions().GetSession(ctx, stale)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Sessions().GetSession(ctx, fresh)
	require.NoError(t, err)
}

func TestCleanupRetainsSessionAtExactCutoff(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	cutoff := time.Now().Add(-30 * 24 * time.Hour).Truncate(time.Second)
	atCutoff := seedSessionAt(t, st, cutoff)
	justBefore := seedSessionAt(t, st, cutoff.Add(-time.Second))

	deleted, err := st.Sessions().DeleteSessionsBefore(ctx, cutoff)
	require.NoError(t, err)
	require.EqualValues(t, 1, deleted)

	_, err = st.Sessions().GetSession(ctx, justBefore)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Sessions().GetSession(ctx, atCutoff)
	require.NoError(t, err)
}

func TestHousekeepingLifecycle(t *testing.T) {
	st := newTestStore(t)
	svc := NewHousekeepingService(st, slog.New(slog.NewTextHandler(io.Discard, nil)), time.Hour, 30*24*time.Hour)

	stale := seedSessionAt(t, st, time.Now().Add(-40*24*time.Hour))

	svc.Start()

	// The reaper runs once immediately on startup.
	require.Eventually(t, func() bool {
		_, err := st.Sessions().GetSession(context.Background(), stale)
		return err != nil
	}, 2*time.Second, 10*time.Millisecond)

	svc.Stop()
}
