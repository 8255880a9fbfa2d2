package repository

import (
	"database/sql"
	"errors"
	"time"

	"portfolio-backend/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

var (
	// ErrTokenNotFound means no recovery token row matched the given string.
	ErrTokenNotFound = errors.New("recovery token not found")
	// ErrTokenUsed means the token was already consumed by an earlier reset.
	ErrTokenUsed = errors.New("recovery token already used")
	// ErrTokenExpired means the token's validity window has passed.
	ErrTokenExpired = errors.New("recovery token expired")
)

type RecoveryTokenRepository interface {
	Create(token string, photographerID int64, expiresAt time.Time) error
	// ConsumeAndResetPassword atomically validates the token and rewrites the
	// photographer's password hash. It returns the photographer id on success.
	ConsumeAndResetPassword(token, newPasswordHash string) (int64, error)
}

type recoveryTokenRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewRecoveryTokenRepository(db *sqlx.DB, logger *zap.Logger) RecoveryTokenRepository {
	return &recoveryTokenRepository{db: db, logger: logger}
}

func (r *recoveryTokenRepository) Create(token string, photographerID int64, expiresAt time.Time) error {
	query := `INSERT INTO tokens_recuperacao (token, fotografo_id, usado, expira_em)
	          VALUES ($1, $2, FALSE, $3)`
	_, err := r.db.Exec(query, token, photographerID, expiresAt)
	return err
}

// ConsumeAndResetPassword runs the whole reset as one transaction. The token
// row is locked with FOR UPDATE before the usado/expira_em checks so that two
// concurrent resets with the same token serialize: the first one flips usado
// and commits, the second finds usado=true and rolls back.
func (r *recoveryTokenRepository) ConsumeAndResetPassword(token, newPasswordHash string) (int64, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	var rt models.RecoveryToken
	query := `SELECT token, fotografo_id, usado, criado_em, expira_em
	          FROM tokens_recuperacao WHERE token = $1 FOR UPDATE`
	if err := tx.Get(&rt, query, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrTokenNotFound
		}
		return 0, err
	}

	if rt.Used {
		return 0, ErrTokenUsed
	}
	if rt.ExpiresAt.Before(time.Now()) {
		return 0, ErrTokenExpired
	}

	if _, err := tx.Exec(`UPDATE fotografo SET senha_hash = $1 WHERE id = $2`,
		newPasswordHash, rt.PhotographerID); err != nil {
		return 0, err
	}
	if _, err := tx.Exec(`UPDATE tokens_recuperacao SET usado = TRUE WHERE token = $1`,
		token); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return rt.PhotographerID, nil
}
