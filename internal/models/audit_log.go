package models

import "time"

// AuditEntry is one row of the append-only audit trail. The application only
// ever writes these; they exist for external inspection.
type AuditEntry struct {
	ID        int64     `db:"id"`
	Type      string    `db:"tipo_log"`
	IP        string    `db:"ip_usuario"`
	UserAgent string    `db:"user_agent"`
	URL       string    `db:"url"`
	Method    string    `db:"metodo"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"criado_em"`
}
