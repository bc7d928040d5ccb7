package models

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Media is a photo or video hosted elsewhere; only its URL is stored.
type Media struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	IsImage     bool       `db:"is_image" json:"is_image"`
	URL         string     `db:"url" json:"url"`
	Description *string    `db:"description" json:"description"`
	FamilyID    uuid.UUID  `db:"family_id" json:"family_id"`
	AlbumID     *uuid.UUID `db:"album_id" json:"album_id"`
	IsActive    bool       `db:"is_active" json:"is_active"`
}

// Validate checks the fields a caller supplies when registering media.
func (m *Media) Validate() error {
	var validationErrors []string

	if m.FamilyID == uuid.Nil {
		validationErrors = append(validationErrors, "family ID is required")
	}
	if m.URL == "" {
		validationErrors = append(validationErrors, "url is required")
	} else if u, err := url.Parse(m.URL); err != nil || u.Scheme == "" || u.Host == "" {
		validationErrors = append(validationErrors, fmt.Sprintf("invalid url '%s'", m.URL))
	}
	if m.Description != nil && len(*m.Description) > 2000 {
		validationErrors = append(validationErrors, "description must be 2000 characters or less")
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("%w: media validation failed: %s", ErrValidation, strings.Join(validationErrors, "; "))
	}

	return nil
}

// NewMedia is the caller-supplied part of a media registration.
type NewMedia struct {
	URL         string
	IsImage     bool
	Description *string
}
