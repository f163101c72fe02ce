package store

import (
	"context"
	"errors"
	"time"

	"github.com/posturekit/kioskauth/internal/kioskauth/domain"
)

var ErrNotFound = errors.New("store: not found")

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Sessions() Sessions
	PendingAuths() PendingAuths
	Users() Users

	ApplyMigrations() error

	// WithTx executes fn within a transaction.
	// If fn returns an error, the transaction is rolled back, otherwise it is
	// committed. Use it for multi-step operations that must be atomic
	// (e.g., the mobile token exchange and one-shot session redemption).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store scope.
type Tx interface {
	Sessions() Sessions
	PendingAuths() PendingAuths
	Users() Users
}

type Sessions interface {
	// CreateSession inserts a fresh CREATED session (user_id null, is_issued false).
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSession returns a session by its key.
	GetSession(ctx context.Context, sessionKey string) (domain.Session, error)

	// BindUser sets user_id on the session. Last write wins; rebinding an
	// already bound session overwrites the previous user.
	BindUser(ctx context.Context, sessionKey, userID string) error

	// GetUnissuedSession returns the session only if is_issued is still false.
	// Used by the one-shot redemption path.
	GetUnissuedSession(ctx context.Context, sessionKey string) (domain.Session, error)

	// MarkIssued flips is_issued to true. The flag never reverts.
	MarkIssued(ctx context.Context, sessionKey string) error

	// DeleteSession removes the session immediately.
	DeleteSession(ctx context.Context, sessionKey string) error

	// DeleteSessionsBefore bulk-deletes every session created strictly before
	// cutoff, regardless of binding state. Returns the number of rows removed.
	// Must run as a single filtered DELETE so it is safe under concurrent
	// request traffic.
	DeleteSessionsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type PendingAuths interface {
	// UpsertPendingAuth inserts or replaces the record keyed by phone number
	// (last-write-wins, matching the mail ingestion semantics).
	UpsertPendingAuth(ctx context.Context, a domain.PendingAuth) error

	// GetPendingAuthByUID looks up a record by the mobile correlation id.
	GetPendingAuthByUID(ctx context.Context, uid string) (domain.PendingAuth, error)

	// DeletePendingAuth removes the record for a phone number. Called in the
	// same transaction as a successful exchange so the record can never be
	// redeemed twice.
	DeletePendingAuth(ctx context.Context, phoneNumber string) error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByPhone resolves an identity by phone number.
	GetUserByPhone(ctx context.Context, phoneNumber string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUserType persists the affiliation classification and bumps updated_at.
	UpdateUserType(ctx context.Context, userID, userType string) error
}
