package models

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	FirstName string     `db:"first_name" json:"first_name"`
	LastName  string     `db:"last_name" json:"last_name"`
	Email     string     `db:"email" json:"email"`
	BirthDate *time.Time `db:"birth_date" json:"birth_date,omitempty"`
	Country   *string    `db:"country" json:"country,omitempty"`
	City      *string    `db:"city" json:"city,omitempty"`
	IsPaying  bool       `db:"is_paying" json:"is_paying"`
	FamilyID  *uuid.UUID `db:"family_id" json:"family_id"`
	IsActive  bool       `db:"is_active" json:"is_active"`
}

// BelongsTo reports whether the profile is a member of familyID.
func (p Profile) BelongsTo(familyID uuid.UUID) bool {
	return p.FamilyID != nil && *p.FamilyID == familyID
}
