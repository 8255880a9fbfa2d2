package models

import "time"

// RecoveryToken is a single-use password-recovery token. A token is usable
// only while Used is false and ExpiresAt is in the future; consumption flips
// Used inside the same transaction that rewrites the password hash.
type RecoveryToken struct {
	Token          string    `db:"token"`
	PhotographerID int64     `db:"fotografo_id"`
	Used           bool      `db:"usado"`
	CreatedAt      time.Time `db:"criado_em"`
	ExpiresAt      time.Time `db:"expira_em"`
}
