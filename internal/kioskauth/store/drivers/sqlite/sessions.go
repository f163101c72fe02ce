package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/posturekit/kioskauth/internal/kioskauth/domain"
	"github.com/posturekit/kioskauth/internal/kioskauth/store"
)

type sessionsRepo struct {
	db dbtx
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (session_key, kiosk_id, user_id, is_issued, created_at)
		VALUES (?, ?, NULL, 0, ?)`,
		s.SessionKey, s.KioskID, s.CreatedAt.UTC(),
	)
	return err
}

func (r *sessionsRepo) GetSession(ctx context.Context, sessionKey string) (domain.Session, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT session_key, kiosk_id, user_id, is_issued, created_at
		FROM sessions WHERE session_key = ?`,
		sessionKey,
	)
	return scanSession(row)
}

func (r *sessionsRepo) BindUser(ctx context.Context, sessionKey, userID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE sessions SET user_id = ? WHERE session_key = ?`,
		userID, sessionKey,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *sessionsRepo) GetUnissuedSession(ctx context.Context, sessionKey string) (domain.Session, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT session_key, kiosk_id, user_id, is_issued, created_at
		FROM sessions WHERE session_key = ? AND is_issued = 0`,
		sessionKey,
	)
	return scanSession(row)
}

func (r *sessionsRepo) MarkIssued(ctx context.Context, sessionKey string) error {
	// Guarded so the one-shot flip never depends on how the driver
	// serializes concurrent transactions.
	res, err := r.db.ExecContext(ctx, `
		UPDATE sessions SET is_issued = 1 WHERE session_key = ? AND is_issued = 0`,
		sessionKey,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *sessionsRepo) DeleteSession(ctx context.Context, sessionKey string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE session_key = ?`, sessionKey)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *sessionsRepo) DeleteSessionsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE created_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanSession(row *sql.Row) (domain.Session, error) {
	var (
		s      domain.Session
		userID sql.NullString
	)
	if err := row.Scan(&s.SessionKey, &s.KioskID, &userID, &s.IsIssued, &s.CreatedAt); err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	s.UserID = mapNullStringPtr(userID)
	return s, nil
}

// requireRow converts a zero-row UPDATE/DELETE into store.ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
