package dto

import "dearly/internal/domain/models"

type AddMediaRequest struct {
	URL         string  `json:"url" validate:"required,url"`
	IsImage     *bool   `json:"isImage,omitempty"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// ToModel defaults isImage to true.
func (r AddMediaRequest) ToModel() models.NewMedia {
	isImage := true
	if r.IsImage != nil {
		isImage = *r.IsImage
	}

	return models.NewMedia{
		URL:         r.URL,
		IsImage:     isImage,
		Description: r.Description,
	}
}
