package dto

import (
	"fmt"
	"time"

	"dearly/internal/domain/models"
)

const birthDateLayout = "2006-01-02"

type SignUpRequest struct {
	FirstName  string  `json:"firstName" validate:"required"`
	LastName   string  `json:"lastName" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required"`
	FamilyName *string `json:"familyName,omitempty"`
	Country    *string `json:"country,omitempty"`
	City       *string `json:"city,omitempty"`
	BirthDate  *string `json:"birthDate,omitempty" example:"1990-04-21"`
}

func (r SignUpRequest) ToModel() (models.SignUpInput, error) {
	input := models.SignUpInput{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Password:   r.Password,
		FamilyName: r.FamilyName,
		Country:    r.Country,
		City:       r.City,
	}

	if r.BirthDate != nil && *r.BirthDate != "" {
		d, err := time.Parse(birthDateLayout, *r.BirthDate)
		if err != nil {
			return models.SignUpInput{}, fmt.Errorf("%w: birthDate must look like %s", models.ErrValidation, birthDateLayout)
		}
		input.BirthDate = &d
	}

	return input, nil
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}
