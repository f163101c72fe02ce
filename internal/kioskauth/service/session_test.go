package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionCreateMintsDistinctKeys(t *testing.T) {
	svc := &SessionService{Store: newTestStore(t), Signer: newTestSigner()}
	ctx := context.Background()

	first, err := svc.Create(ctx, "kiosk-1")
	require.NoError(t, err)
	second, err := svc.Create(ctx, "kiosk-1")
	require.NoError(t, err)

	require.Len(t, first, 32)
	require.NotEqual(t, first, second)
}

func TestSessionResolveBeforeBinding(t *testing.T) {
	svc := &SessionService{Store: newTestStore(t), Signer: newTestSigner()}
	ctx := context.Background()

	key, err := svc.Create(ctx, "kiosk-1")
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, key)
	require.ErrorIs(t, err, ErrNotBound)
}

func TestSessionBindQR(t *testing.T) {
	st := newTestStore(t)
	svc := &SessionService{Store: st, Signer: newTestSigner()}
	ctx := context.Background()

	user := seedUser(t, st, "01012345678", "secret")
	key, err := svc.Create(ctx, "kiosk-1")
	require.NoError(t, err)

	require.NoError(t, svc.BindQR(ctx, key, user.ID))

	resolved, err := svc.Resolve(ctx, key)
	require.NoError(t, err)
	require.Equal(t, user.ID, resolved.ID)
}

func TestSessionBindQRUnknownSession(t *testing.T) {
	svc := &SessionService{Store: newTestStore(t), Signer: newTestSigner()}

	err := svc.BindQR(context.Background(), "deadbeefdeadbeefdeadbeefdeadbeef", "u1")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRebindOverwritesPreviousUser(t *testing.T) {
	st := newTestStore(t)
	svc := &SessionService{Store: st, Signer: newTestSigner()}
	ctx := context.Background()

	first := seedUser(t, st, "01011112222", "secret")
	second := seedUser(t, st, "01033334444", "secret")

	key, err := svc.Create(ctx, "kiosk-1")
	require.NoError(t, err)
	require.NoError(t, svc.BindQR(ctx, key, first.ID))
	require.NoError(t, svc.BindQR(ctx, key, second.ID))

	resolved, err := svc.Resolve(ctx, key)
	require.NoError(t, err)
	require.Equal(t, second.ID, resolved.ID)
}

func TestSessionBindPassword(t *testing.T) {
	st := newTestStore(t)
	svc := &SessionService{Store: st, Signer: newTestSigner()}
	ctx := context.Background()

	user := seedUser(t, st, "01012345678", "hunter2")
	key, err := svc.Create(ctx, "kiosk-1")
	require.NoError(t, err)

	require.NoError(t, svc.BindPassword(ctx, key, "01012345678", "hunter2"))

	resolved, err := svc.Resolve(ctx, key)
	require.NoError(t, err)
	require.Equal(t, user.ID, resolved.ID)
}

func TestSessionBindPasswordWrongPasswordLeavesSessionUnbound(t *testing.T) {
	st := newTestStore(t)
	svc := &SessionService{Store: st, Signer: newTestSigner()}
	ctx := context.Background()

	seedUser(t, st, "01012345678", "hunter2")
	key, err := svc.Create(ctx, "kiosk-1")
	require.NoError(t, err)

	err = svc.BindPassword(ctx, key, "01012345678", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Resolve(ctx, key)
	require.ErrorIs(t, err, ErrNotBound)
}

func TestSessionBindPasswordUnknownUser(t *testing.T) {
	svc := &SessionService{Store: newTestStore(t), Signer: newTestSigner()}
	ctx := context.Background()

	key, err := svc.Create(ctx, "kiosk-1")
	require.NoError(t, err)

	err = svc.BindPassword(ctx, key, "01000000000", "whatever")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestSessionEndThenResolveFails(t *testing.T) {
	st := newTestStore(t)
	svc := &SessionService{Store: st, Signer: newTestSigner()}
	ctx := context.Background()

	user := seedUser(t, st, "01012345678", "secret")
	key, err := svc.Create(ctx, "kiosk-1")
	require.NoError(t, err)
	require.NoError(t, svc.BindQR(ctx, key, user.ID))

	require.NoError(t, svc.End(ctx, key))

	_, err = svc.Resolve(ctx, key)
	require.ErrorIs(t, err, ErrSessionNotFound)

	require.ErrorIs(t, svc.End(ctx, key), ErrSessionNotFound)
}

func TestSessionRedeemIsOneShot(t *testing.T) {
	st := newTestStore(t)
	signer := newTestSigner()
	svc := &SessionService{Store: st, Signer: signer}
	ctx := context.Background()

	user := seedUser(t, st, "01012345678", "secret")
	key, err := svc.Create(ctx, "kiosk-1")
	require.NoError(t, err)
	require.NoError(t, svc.BindQR(ctx, key, user.ID))

	redeemed, pair, err := svc.Redeem(ctx, key)
	require.NoError(t, err)
	require.Equal(t, user.ID, redeemed.ID)

	claims, err := signer.Verify(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.Subject)

	_, _, err = svc.Redeem(ctx, key)
	require.ErrorIs(t, err, ErrNoData)

	// Redemption does not end the session: the kiosk can keep resolving it.
	resolved, err := svc.Resolve(ctx, key)
	require.NoError(t, err)
	require.Equal(t, user.ID, resolved.ID)
}

func TestSessionRedeemUnboundSession(t *testing.T) {
	svc := &SessionService{Store: newTestStore(t), Signer: newTestSigner()}
	ctx := context.Background()

	key, err := svc.Create(ctx, "kiosk-1")
	require.NoError(t, err)

	_, _, err = svc.Redeem(ctx, key)
	require.ErrorIs(t, err, ErrNoData)
}
