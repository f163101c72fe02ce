package service

import (
	"context"
	"errors"
	"time"

	"github.com/posturekit/kioskauth/internal/kioskauth/domain"
	"github.com/posturekit/kioskauth/internal/kioskauth/store"
	"github.com/posturekit/kioskauth/pkg/cryptox"
	"github.com/posturekit/kioskauth/pkg/idx"
	"github.com/posturekit/kioskauth/pkg/jwtx"
	"github.com/posturekit/kioskauth/pkg/slogx"
)

// ErrUnauthorized is returned when no pending-auth record exists for the
// presented mobile uid: either the verification mail never arrived, or the
// record was already consumed by an earlier exchange.
var ErrUnauthorized = errors.New("unauthorized")

// ExchangeService turns a one-time pending-auth record into a durable
// identity plus a token pair.
type ExchangeService struct {
	Store  store.Store
	Signer *jwtx.Signer

	// DefaultPassword is hashed into freshly provisioned guest accounts.
	DefaultPassword string
}

// ExchangeMobileUID consumes the pending-auth record for uid. The identity
// upsert, the classification write, the record deletion and the token issue
// all happen inside one transaction: either the caller gets tokens and the
// record is gone, or nothing changed.
func (s *ExchangeService) ExchangeMobileUID(ctx context.Context, uid string) (domain.User, jwtx.TokenPair, error) {
	var (
		user domain.User
		pair jwtx.TokenPair
	)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		auth, err := tx.PendingAuths().GetPendingAuthByUID(ctx, uid)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUnauthorized
			}
			return err
		}

		user, err = s.upsertByPhone(ctx, tx, auth.PhoneNumber)
		if err != nil {
			return err
		}

		if err := tx.PendingAuths().DeletePendingAuth(ctx, auth.PhoneNumber); err != nil {
			return err
		}

		pair, err = s.Signer.IssuePair(user.ID)
		return err
	})
	if err != nil {
		return domain.User{}, jwtx.TokenPair{}, err
	}

	slogx.FromContext(ctx).Info("mobile auth exchanged", "user_id", user.ID, "user_type", user.UserType)
	return user, pair, nil
}

// upsertByPhone resolves the identity for a verified phone number,
// provisioning a guest account on first contact, and persists the affiliation
// classification (School over Organization over Guest).
func (s *ExchangeService) upsertByPhone(ctx context.Context, tx store.Tx, phoneNumber string) (domain.User, error) {
	user, err := tx.Users().GetUserByPhone(ctx, phoneNumber)
	if errors.Is(err, store.ErrNotFound) {
		hash, herr := cryptox.HashPassword(s.DefaultPassword)
		if herr != nil {
			return domain.User{}, herr
		}

		now := time.Now()
		user = domain.User{
			ID:           idx.New().String(),
			Username:     phoneNumber,
			PhoneNumber:  phoneNumber,
			PasswordHash: hash,
			UserType:     domain.UserTypeGuest,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return domain.User{}, err
		}
		return user, nil
	}
	if err != nil {
		return domain.User{}, err
	}

	if userType := user.ClassifyType(); userType != user.UserType {
		if err := tx.Users().UpdateUserType(ctx, user.ID, userType); err != nil {
			return domain.User{}, err
		}
		user.UserType = userType
	}

	return user, nil
}
