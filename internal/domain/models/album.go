package models

import (
	"time"

	"github.com/google/uuid"
)

// Album is a node of a family's album forest. A nil ParentAlbumID marks a root album.
type Album struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	Name          string     `db:"name" json:"name"`
	ParentAlbumID *uuid.UUID `db:"parent_album_id" json:"parent_album_id"`
	FamilyID      uuid.UUID  `db:"family_id" json:"family_id"`
	CoverImage    *string    `db:"cover_image" json:"cover_image"`
	IsActive      bool       `db:"is_active" json:"is_active"`
}

func (a Album) IsRoot() bool {
	return a.ParentAlbumID == nil
}

type NewAlbum struct {
	Name          string
	FamilyID      uuid.UUID
	ParentAlbumID *uuid.UUID
	CoverImage    *string
}

// AlbumPatch carries a partial update. Fields that are not Set are left untouched.
type AlbumPatch struct {
	Name          Nullable[string]
	ParentAlbumID Nullable[uuid.UUID]
	CoverImage    Nullable[string]
}

func (p AlbumPatch) IsEmpty() bool {
	return !p.Name.Set && !p.ParentAlbumID.Set && !p.CoverImage.Set
}

// AlbumDetails is an album together with its direct active children and media.
type AlbumDetails struct {
	Album       Album   `json:"album"`
	ChildAlbums []Album `json:"childAlbums"`
	MediaItems  []Media `json:"mediaItems"`
}
