package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/posturekit/kioskauth/internal/kioskauth/domain"
	"github.com/posturekit/kioskauth/internal/kioskauth/store"
	"github.com/posturekit/kioskauth/internal/kioskauth/store/drivers/sqlite"
	"github.com/posturekit/kioskauth/pkg/cryptox"
	"github.com/posturekit/kioskauth/pkg/idx"
	"github.com/posturekit/kioskauth/pkg/jwtx"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "kioskauth_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTestSigner() *jwtx.Signer {
	return jwtx.NewSigner([]byte("test-secret"), "kioskauth-test", 0, 0)
}

// seedUser inserts a guest user with the given phone number and password.
// Mutators run before the insert so tests can add affiliations.
func seedUser(t *testing.T, st store.Store, phoneNumber, password string, mutate ...func(*domain.User)) domain.User {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	now := time.Now()
	user := domain.User{
		ID:           idx.New().String(),
		Username:     phoneNumber,
		PhoneNumber:  phoneNumber,
		PasswordHash: hash,
		UserType:     domain.UserTypeGuest,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, fn := range mutate {
		fn(&user)
	}

	require.NoError(t, st.Users().CreateUser(context.Background(), user))
	return user
}
