package models

import "time"

// DenylistEntry records a revoked session-token jti. Entries are consulted
// on every authenticated request and never mutated.
type DenylistEntry struct {
	TokenJTI       string    `db:"token_jti"`
	PhotographerID int64     `db:"fotografo_id"`
	Reason         string    `db:"motivo"`
	CreatedAt      time.Time `db:"criado_em"`
}
