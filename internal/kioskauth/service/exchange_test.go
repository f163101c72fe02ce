package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/posturekit/kioskauth/internal/kioskauth/domain"
)

func seedPendingAuth(t *testing.T, svc *ExchangeService, phoneNumber, uid string) {
	t.Helper()
	err := svc.Store.PendingAuths().UpsertPendingAuth(context.Background(), domain.PendingAuth{
		PhoneNumber: phoneNumber,
		UID:         uid,
		CreatedAt:   time.Now(),
	})
	require.NoError(t, err)
}

func TestExchangeProvisionsGuestOnFirstContact(t *testing.T) {
	st := newTestStore(t)
	signer := newTestSigner()
	svc := &ExchangeService{Store: st, Signer: signer, DefaultPassword: "default-pw"}
	ctx := context.Background()

	seedPendingAuth(t, svc, "01012345678", "device-uid-1")

	user, pair, err := svc.ExchangeMobileUID(ctx, "device-uid-1")
	require.NoError(t, err)
	require.Equal(t, "01012345678", user.PhoneNumber)
	require.Equal(t, "01012345678", user.Username)
	require.Equal(t, domain.UserTypeGuest, user.UserType)

	claims, err := signer.Verify(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.Subject)

	// The provisioned account is persisted and can log in with the default
	// password afterwards.
	stored, err := st.Users().GetUserByPhone(ctx, "01012345678")
	require.NoError(t, err)
	require.Equal(t, user.ID, stored.ID)
}

func TestExchangeIsSingleUse(t *testing.T) {
	svc := &ExchangeService{Store: newTestStore(t), Signer: newTestSigner(), DefaultPassword: "default-pw"}
	ctx := context.Background()

	seedPendingAuth(t, svc, "01012345678", "device-uid-1")

	_, _, err := svc.ExchangeMobileUID(ctx, "device-uid-1")
	require.NoError(t, err)

	_, _, err = svc.ExchangeMobileUID(ctx, "device-uid-1")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestExchangeUnknownUID(t *testing.T) {
	svc := &ExchangeService{Store: newTestStore(t), Signer: newTestSigner(), DefaultPassword: "default-pw"}

	_, _, err := svc.ExchangeMobileUID(context.Background(), "never-seen")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestExchangeReturnsExistingUser(t *testing.T) {
	st := newTestStore(t)
	svc := &ExchangeService{Store: st, Signer: newTestSigner(), DefaultPassword: "default-pw"}
	ctx := context.Background()

	existing := seedUser(t, st, "01012345678", "their-own-pw")
	seedPendingAuth(t, svc, "01012345678", "device-uid-1")

	user, _, err := svc.ExchangeMobileUID(ctx, "device-uid-1")
	require.NoError(t, err)
	require.Equal(t, existing.ID, user.ID)
}

func TestExchangeClassifiesSchoolOverOrganization(t *testing.T) {
	st := newTestStore(t)
	svc := &ExchangeService{Store: st, Signer: newTestSigner(), DefaultPassword: "default-pw"}
	ctx := context.Background()

	school := "SCH-001"
	org := "ORG-001"
	seedUser(t, st, "01012345678", "pw", func(u *domain.User) {
		u.SchoolID = &school
		u.Organization = &org
	})
	seedPendingAuth(t, svc, "01012345678", "device-uid-1")

	user, _, err := svc.ExchangeMobileUID(ctx, "device-uid-1")
	require.NoError(t, err)
	require.Equal(t, domain.UserTypeSchool, user.UserType)

	stored, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, domain.UserTypeSchool, stored.UserType)
}

func TestExchangeClassifiesOrganizationMember(t *testing.T) {
	st := newTestStore(t)
	svc := &ExchangeService{Store: st, Signer: newTestSigner(), DefaultPassword: "default-pw"}
	ctx := context.Background()

	org := "ORG-001"
	seedUser(t, st, "01012345678", "pw", func(u *domain.User) {
		u.Organization = &org
	})
	seedPendingAuth(t, svc, "01012345678", "device-uid-1")

	user, _, err := svc.ExchangeMobileUID(ctx, "device-uid-1")
	require.NoError(t, err)
	require.Equal(t, domain.UserTypeOrganization, user.UserType)
}
