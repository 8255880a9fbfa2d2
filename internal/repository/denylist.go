package repository

import (
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type DenylistRepository interface {
	Revoke(jti string, photographerID int64, reason string) error
	IsRevoked(jti string) (bool, error)
	// DeleteOlderThan removes entries created before the cutoff. Entries that
	// old belong to session tokens past their natural expiry, so the jti can
	// never resurface.
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

type denylistRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewDenylistRepository(db *sqlx.DB, logger *zap.Logger) DenylistRepository {
	return &denylistRepository{db: db, logger: logger}
}

// Revoke is idempotent: revoking the same jti twice is harmless.
func (r *denylistRepository) Revoke(jti string, photographerID int64, reason string) error {
	query := `INSERT INTO tokens_denylist (token_jti, fotografo_id, motivo)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (token_jti) DO NOTHING`
	_, err := r.db.Exec(query, jti, photographerID, reason)
	return err
}

func (r *denylistRepository) IsRevoked(jti string) (bool, error) {
	var revoked bool
	query := `SELECT EXISTS (SELECT 1 FROM tokens_denylist WHERE token_jti = $1)`
	if err := r.db.Get(&revoked, query, jti); err != nil {
		return false, err
	}
	return revoked, nil
}

func (r *denylistRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM tokens_denylist WHERE criado_em < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
