package models

import (
	"github.com/google/uuid"
)

type TokenPair struct {
	UserID       uuid.UUID `json:"user_id"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    int64     `json:"expires_at"`
}

// Identity is the verified caller of a request. It is produced by the session
// verifier and passed explicitly to every service call.
type Identity struct {
	UserID uuid.UUID
	Email  string
}
