package sqlite

import (
	"context"

	"github.com/posturekit/kioskauth/internal/kioskauth/domain"
)

type pendingAuthsRepo struct {
	db dbtx
}

func (r *pendingAuthsRepo) UpsertPendingAuth(ctx context.Context, a domain.PendingAuth) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pending_auths (phone_number, uid, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (phone_number) DO UPDATE SET
			uid = excluded.uid,
			created_at = excluded.created_at`,
		a.PhoneNumber, a.UID, a.CreatedAt.UTC(),
	)
	return err
}

func (r *pendingAuthsRepo) GetPendingAuthByUID(ctx context.Context, uid string) (domain.PendingAuth, error) {
	var a domain.PendingAuth
	err := r.db.QueryRowContext(ctx, `
		SELECT phone_number, uid, created_at
		FROM pending_auths WHERE uid = ?`,
		uid,
	).Scan(&a.PhoneNumber, &a.UID, &a.CreatedAt)
	if err != nil {
		return domain.PendingAuth{}, mapNotFound(err)
	}
	return a, nil
}

func (r *pendingAuthsRepo) DeletePendingAuth(ctx context.Context, phoneNumber string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pending_auths WHERE phone_number = ?`, phoneNumber)
	if err != nil {
		return err
	}
	return requireRow(res)
}
