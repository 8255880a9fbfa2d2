package repository

import (
	"database/sql"
	"errors"
	"strings"

	"portfolio-backend/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert violates a uniqueness constraint.
var ErrDuplicate = errors.New("duplicate row")

type PhotographerRepository interface {
	Create(email, passwordHash string) error
	GetByEmail(email string) (*models.Photographer, error)
	EmailExists(email string) (bool, error)
}

type photographerRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPhotographerRepository(db *sqlx.DB, logger *zap.Logger) PhotographerRepository {
	return &photographerRepository{db: db, logger: logger}
}

// Create inserts the singleton photographer row. The fixed primary key and
// the unique email constraint make a second registration fail with
// ErrDuplicate, even under concurrent requests.
func (r *photographerRepository) Create(email, passwordHash string) error {
	query := `INSERT INTO fotografo (id, email, senha_hash) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(query, models.PhotographerID, email, passwordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *photographerRepository) GetByEmail(email string) (*models.Photographer, error) {
	var p models.Photographer
	query := `SELECT id, email, senha_hash, criado_em FROM fotografo WHERE email = $1`
	err := r.db.Get(&p, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *photographerRepository) EmailExists(email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM fotografo WHERE email = $1)`
	if err := r.db.Get(&exists, query, email); err != nil {
		return false, err
	}
	return exists, nil
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (class 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	// lib/pq wraps some driver paths without the typed error
	return strings.Contains(err.Error(), "unique constraint") || strings.Contains(err.Error(), "duplicate key")
}
