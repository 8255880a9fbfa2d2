package repository

import (
	"database/sql"
	"errors"

	"portfolio-backend/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type ContactRepository interface {
	InsertContact(contact *models.Contact) error
	GetContactMethods() (*models.ContactMethod, error)
	UpdateContactMethods(id int64, m *models.ContactMethod) error
}

type contactRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewContactRepository(db *sqlx.DB, logger *zap.Logger) ContactRepository {
	return &contactRepository{db: db, logger: logger}
}

func (r *contactRepository) InsertContact(contact *models.Contact) error {
	query := `INSERT INTO contatos (nome, telefone, email, mensagem)
	          VALUES ($1, $2, $3, $4) RETURNING id, criado_em`
	return r.db.QueryRowx(query, contact.Name, contact.Phone, contact.Email, contact.Message).
		Scan(&contact.ID, &contact.CreatedAt)
}

func (r *contactRepository) GetContactMethods() (*models.ContactMethod, error) {
	var m models.ContactMethod
	query := `SELECT id, redesocial_nome, redesocial_perfil, email, telefone, atualizado_em
	          FROM formas_contato ORDER BY id LIMIT 1`
	if err := r.db.Get(&m, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *contactRepository) UpdateContactMethods(id int64, m *models.ContactMethod) error {
	query := `UPDATE formas_contato
	          SET redesocial_nome = $1, redesocial_perfil = $2, telefone = $3, email = $4,
	              atualizado_em = CURRENT_TIMESTAMP
	          WHERE id = $5`
	res, err := r.db.Exec(query, m.SocialNetwork, m.SocialProfile, m.Phone, m.Email, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
