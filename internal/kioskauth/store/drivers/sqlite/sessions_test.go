package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/posturekit/kioskauth/internal/kioskauth/domain"
	"github.com/posturekit/kioskauth/internal/kioskauth/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(filepath.Join(t.TempDir(), "sqlite_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestMarkIssuedFlipsAtMostOnce(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Sessions().CreateSession(ctx, domain.Session{
		SessionKey: "aaaabbbbccccddddaaaabbbbccccdddd",
		KioskID:    "kiosk-1",
		CreatedAt:  time.Now(),
	}))

	require.NoError(t, st.Sessions().MarkIssued(ctx, "aaaabbbbccccddddaaaabbbbccccdddd"))

	_, err := st.Sessions().GetUnissuedSession(ctx, "aaaabbbbccccddddaaaabbbbccccdddd")
	require.ErrorIs(t, err, store.ErrNotFound)

	// The flag never flips twice, even without a prior unissued read.
	err = st.Sessions().MarkIssued(ctx, "aaaabbbbccccddddaaaabbbbccccdddd")
	require.ErrorIs(t, err, store.ErrNotFound)

	// The session itself is still there.
	s, err := st.Sessions().GetSession(ctx, "aaaabbbbccccddddaaaabbbbccccdddd")
	require.NoError(t, err)
	require.True(t, s.IsIssued)
}

func TestMarkIssuedUnknownSession(t *testing.T) {
	st := newTestStore(t)

	err := st.Sessions().MarkIssued(context.Background(), "deadbeefdeadbeefdeadbeefdeadbeef")
	require.ErrorIs(t, err, store.ErrNotFound)
}
