// Package jwtx issues and verifies the HS256 access/refresh token pairs used
// by the mobile app. It is deliberately small: one symmetric signing secret,
// two token types, no key rotation.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/posturekit/kioskauth/pkg/idx"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	DefaultAccessTokenTTL  = 30 * time.Minute
	DefaultRefreshTokenTTL = 14 * 24 * time.Hour
)

var (
	ErrInvalidToken = errors.New("jwtx: invalid token")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrWrongType    = errors.New("jwtx: wrong token type")
)

// Claims are the registered claims plus a type discriminator so a refresh
// token can never be presented as an access token.
type Claims struct {
	jwt.RegisteredClaims

	TokenType string `json:"token_type"`
}

// TokenPair is an access/refresh pair as returned to the mobile client.
type TokenPair struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    time.Duration `json:"-"`
}

// Verifier validates an access token and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// Signer issues and verifies token pairs with a single HS256 secret.
type Signer struct {
	Secret     []byte
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// NewSigner returns a Signer with default TTLs applied where unset.
func NewSigner(secret []byte, issuer string, accessTTL, refreshTTL time.Duration) *Signer {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTokenTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTokenTTL
	}
	return &Signer{Secret: secret, Issuer: issuer, AccessTTL: accessTTL, RefreshTTL: refreshTTL}
}

// IssuePair signs a fresh access/refresh pair for the given subject.
func (s *Signer) IssuePair(subject string) (TokenPair, error) {
	access, err := s.sign(subject, TokenTypeAccess, s.AccessTTL)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := s.sign(subject, TokenTypeRefresh, s.RefreshTTL)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    s.AccessTTL,
	}, nil
}

// Verify validates an access token.
func (s *Signer) Verify(token string) (Claims, error) {
	return s.verify(token, TokenTypeAccess)
}

// VerifyRefresh validates a refresh token.
func (s *Signer) VerifyRefresh(token string) (Claims, error) {
	return s.verify(token, TokenTypeRefresh)
}

// Refresh validates a refresh token and mints a new access token for the
// same subject.
func (s *Signer) Refresh(refreshToken string) (string, error) {
	claims, err := s.VerifyRefresh(refreshToken)
	if err != nil {
		return "", err
	}
	return s.sign(claims.Subject, TokenTypeAccess, s.AccessTTL)
}

func (s *Signer) sign(subject, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        idx.New().String(),
			Issuer:    s.Issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		TokenType: tokenType,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.Secret)
}

func (s *Signer) verify(token, wantType string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (any, error) { return s.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, ErrInvalidToken
	}

	if claims.TokenType != wantType {
		return Claims{}, ErrWrongType
	}

	return claims, nil
}
