package repository

import (
	"portfolio-backend/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type AuditLogRepository interface {
	Insert(entry *models.AuditEntry) error
}

type auditLogRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewAuditLogRepository(db *sqlx.DB, logger *zap.Logger) AuditLogRepository {
	return &auditLogRepository{db: db, logger: logger}
}

func (r *auditLogRepository) Insert(entry *models.AuditEntry) error {
	query := `INSERT INTO logs (tipo_log, ip_usuario, user_agent, url, metodo, status)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(query, entry.Type, entry.IP, entry.UserAgent, entry.URL, entry.Method, entry.Status)
	return err
}
