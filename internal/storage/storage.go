package storage

import "errors"

var (
	ErrUserExists     = errors.New("user already exists")
	ErrUserNotFound   = errors.New("user not found")
	ErrAlbumNotFound  = errors.New("album not found")
	ErrFamilyNotFound = errors.New("family not found")
	ErrProfileMissing = errors.New("profile not found")
	ErrMediaNotFound  = errors.New("media not found")
)
