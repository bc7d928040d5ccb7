package models

import "time"

// SignUpInput is everything needed to open an account and its family.
type SignUpInput struct {
	FirstName  string
	LastName   string
	Email      string
	Password   string
	FamilyName *string
	Country    *string
	City       *string
	BirthDate  *time.Time
}

// Account is the signed-in user's profile together with their family.
type Account struct {
	Profile Profile `json:"profile"`
	Family  *Family `json:"family"`
}
