package models

import (
	"time"

	"github.com/google/uuid"
)

// Family is the tenant unit: profiles, albums and media all belong to one family.
type Family struct {
	ID         uuid.UUID `db:"id" json:"id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	FamilyName string    `db:"family_name" json:"family_name"`
}
