package models

import (
	"database/sql"
	"time"
)

// Contact is a message left through the public contact form.
type Contact struct {
	ID        int64          `db:"id"`
	Name      string         `db:"nome"`
	Phone     sql.NullString `db:"telefone"`
	Email     sql.NullString `db:"email"`
	Message   string         `db:"mensagem"`
	CreatedAt time.Time      `db:"criado_em"`
}

// ContactMethod holds the photographer's editable contact information shown
// on the site. The table holds a single row the admin updates in place.
type ContactMethod struct {
	ID            int64     `db:"id" json:"id"`
	SocialNetwork string    `db:"redesocial_nome" json:"redesocial_nome"`
	SocialProfile string    `db:"redesocial_perfil" json:"redesocial_perfil"`
	Email         string    `db:"email" json:"email"`
	Phone         string    `db:"telefone" json:"telefone"`
	UpdatedAt     time.Time `db:"atualizado_em" json:"atualizado_em"`
}
