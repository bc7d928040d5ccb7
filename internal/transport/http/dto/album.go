package dto

import (
	"dearly/internal/domain/models"

	"github.com/google/uuid"
)

type CreateAlbumRequest struct {
	Name          string     `json:"name" validate:"max=255"`
	FamilyID      uuid.UUID  `json:"familyId"`
	ParentAlbumID *uuid.UUID `json:"parentAlbumId,omitempty"`
	CoverImage    *string    `json:"coverImage,omitempty"`
}

func (r CreateAlbumRequest) ToModel() models.NewAlbum {
	return models.NewAlbum{
		Name:          r.Name,
		FamilyID:      r.FamilyID,
		ParentAlbumID: r.ParentAlbumID,
		CoverImage:    r.CoverImage,
	}
}

// UpdateAlbumRequest is a partial update. An absent key leaves the field as is;
// an explicit null clears parentAlbumId or coverImage.
type UpdateAlbumRequest struct {
	Name          models.Nullable[string]    `json:"name" swaggertype:"string"`
	ParentAlbumID models.Nullable[uuid.UUID] `json:"parentAlbumId" swaggertype:"string"`
	CoverImage    models.Nullable[string]    `json:"coverImage" swaggertype:"string"`
}

func (r UpdateAlbumRequest) ToPatch() models.AlbumPatch {
	return models.AlbumPatch{
		Name:          r.Name,
		ParentAlbumID: r.ParentAlbumID,
		CoverImage:    r.CoverImage,
	}
}

type ListAlbumsQuery struct {
	FamilyID        string `query:"familyId"`
	IncludeInactive bool   `query:"includeInactive"`
}
