package service

import (
	"context"
	"errors"
	"time"

	"github.com/posturekit/kioskauth/internal/kioskauth/domain"
	"github.com/posturekit/kioskauth/internal/kioskauth/store"
	"github.com/posturekit/kioskauth/pkg/cryptox"
	"github.com/posturekit/kioskauth/pkg/jwtx"
	"github.com/posturekit/kioskauth/pkg/slogx"
)

var (
	ErrSessionNotFound    = errors.New("session_key_not_found")
	ErrUserNotFound       = errors.New("user_not_found")
	ErrInvalidCredentials = errors.New("incorrect_password")
	ErrNotBound           = errors.New("user_not_bound")
	ErrNoData             = errors.New("no_data")
)

// SessionService drives the kiosk pairing state machine:
// CREATED (kiosk only) -> BOUND (user paired) -> optionally REDEEMED
// (one-shot token issue) -> ENDED (row removed, explicitly or by housekeeping).
type SessionService struct {
	Store  store.Store
	Signer *jwtx.Signer
}

// Create mints a session for a kiosk terminal and returns its key, which the
// kiosk renders as a QR code.
func (s *SessionService) Create(ctx context.Context, kioskID string) (string, error) {
	sessionKey, err := cryptox.NewSessionKey()
	if err != nil {
		return "", err
	}

	err = s.Store.Sessions().CreateSession(ctx, domain.Session{
		SessionKey: sessionKey,
		KioskID:    kioskID,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		return "", err
	}

	slogx.FromContext(ctx).Info("session created", "kiosk_id", kioskID)
	return sessionKey, nil
}

// BindQR pairs an already-authenticated user into the session. Rebinding a
// bound session overwrites the previous user: sessions are short-lived and
// single-kiosk-scoped, so last write wins.
func (s *SessionService) BindQR(ctx context.Context, sessionKey, userID string) error {
	if err := s.Store.Sessions().BindUser(ctx, sessionKey, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("session bound via qr", "user_id", userID)
	return nil
}

// BindPassword pairs a user into the session by phone number and password.
// The password is verified before anything is written: on a failed login the
// session must remain unbound.
func (s *SessionService) BindPassword(ctx context.Context, sessionKey, phoneNumber, password string) error {
	// Fail fast on a dead session before touching the identity store.
	if _, err := s.Store.Sessions().GetSession(ctx, sessionKey); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}

	user, err := s.Store.Users().GetUserByPhone(ctx, phoneNumber)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return ErrInvalidCredentials
	}

	if err := s.Store.Sessions().BindUser(ctx, sessionKey, user.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Session reaped between lookup and bind.
			return ErrSessionNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("session bound via password", "user_id", user.ID)
	return nil
}

// Resolve returns the identity bound into the session. The kiosk polls this
// until the pairing completes.
func (s *SessionService) Resolve(ctx context.Context, sessionKey string) (domain.User, error) {
	session, err := s.Store.Sessions().GetSession(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrSessionNotFound
		}
		return domain.User{}, err
	}

	if !session.Bound() {
		return domain.User{}, ErrNotBound
	}

	user, err := s.Store.Users().GetUserByID(ctx, *session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}

	return user, nil
}

// End deletes the session immediately; any later resolve fails.
func (s *SessionService) End(ctx context.Context, sessionKey string) error {
	if err := s.Store.Sessions().DeleteSession(ctx, sessionKey); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("session ended")
	return nil
}

// Redeem is the one-shot token issue for a bound session: the is_issued flag
// flips inside the same transaction that reads the session, so a duplicated
// call or replaying poller can never obtain tokens twice. Unbound or
// already-issued sessions both report ErrNoData.
func (s *SessionService) Redeem(ctx context.Context, sessionKey string) (domain.User, jwtx.TokenPair, error) {
	var (
		user domain.User
		pair jwtx.TokenPair
	)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		session, err := tx.Sessions().GetUnissuedSession(ctx, sessionKey)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNoData
			}
			return err
		}
		if !session.Bound() {
			return ErrNoData
		}

		user, err = tx.Users().GetUserByID(ctx, *session.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNoData
			}
			return err
		}

		if err := tx.Sessions().MarkIssued(ctx, sessionKey); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Lost the race to another redeem.
				return ErrNoData
			}
			return err
		}

		pair, err = s.Signer.IssuePair(user.ID)
		return err
	})
	if err != nil {
		return domain.User{}, jwtx.TokenPair{}, err
	}

	slogx.FromContext(ctx).Info("session redeemed", "user_id", user.ID)
	return user, pair, nil
}
