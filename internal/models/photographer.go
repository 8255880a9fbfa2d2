package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// PhotographerID is the fixed id of the single account the system manages.
// The portfolio belongs to exactly one photographer; registration inserts
// this id and the unique constraint rejects any second attempt.
const PhotographerID int64 = 1

type Photographer struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"senha_hash"`
	CreatedAt    time.Time `db:"criado_em"`
}

// Claims defines the structure of the session JWT claims. The jti
// (RegisteredClaims.ID) is what the denylist stores on logout.
type Claims struct {
	PhotographerID int64 `json:"fotografo_id"`
	jwt.RegisteredClaims
}
