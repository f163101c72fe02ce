package jwtx_test

import (
	"testing"
	"time"

	"github.com/posturekit/kioskauth/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestSigner() *jwtx.Signer {
	return jwtx.NewSigner([]byte("test-secret"), "kioskauth-test", time.Minute, time.Hour)
}

func TestIssueAndVerifyPair(t *testing.T) {
	s := newTestSigner()

	pair, err := s.IssuePair("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := s.Verify(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "user-42", claims.Subject)
	require.Equal(t, jwtx.TokenTypeAccess, claims.TokenType)

	claims, err = s.VerifyRefresh(pair.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, jwtx.TokenTypeRefresh, claims.TokenType)
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	s := newTestSigner()

	pair, err := s.IssuePair("user-42")
	require.NoError(t, err)

	_, err = s.Verify(pair.RefreshToken)
	require.ErrorIs(t, err, jwtx.ErrWrongType)

	_, err = s.VerifyRefresh(pair.AccessToken)
	require.ErrorIs(t, err, jwtx.ErrWrongType)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	s := newTestSigner()

	pair, err := s.IssuePair("user-42")
	require.NoError(t, err)

	other := jwtx.NewSigner([]byte("different-secret"), "kioskauth-test", time.Minute, time.Hour)
	_, err = other.Verify(pair.AccessToken)
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	s := jwtx.NewSigner([]byte("test-secret"), "kioskauth-test", -time.Minute, time.Hour)

	pair, err := s.IssuePair("user-42")
	require.NoError(t, err)

	_, err = s.Verify(pair.AccessToken)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestRefreshMintsNewAccessToken(t *testing.T) {
	s := newTestSigner()

	pair, err := s.IssuePair("user-42")
	require.NoError(t, err)

	access, err := s.Refresh(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := s.Verify(access)
	require.NoError(t, err)
	require.Equal(t, "user-42", claims.Subject)

	// An access token must not be usable to refresh.
	_, err = s.Refresh(pair.AccessToken)
	require.ErrorIs(t, err, jwtx.ErrWrongType)
}
