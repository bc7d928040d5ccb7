package repository

import (
	"context"
	"time"

	"dearly/internal/domain/models"

	"github.com/google/uuid"
)

type UserRepository interface {
	SaveUser(ctx context.Context, user models.User) (uuid.UUID, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

type TokenRepository interface {
	SaveRefreshToken(ctx context.Context, userID, token string, exp time.Duration) error
	// ConsumeRefreshToken deletes the token and reports whether it was stored.
	ConsumeRefreshToken(ctx context.Context, userID, token string) (bool, error)
	DeleteAllUserTokens(ctx context.Context, userID string) error
}

type FamilyRepository interface {
	CreateFamily(ctx context.Context, familyName string) (models.Family, error)
	GetFamily(ctx context.Context, familyID uuid.UUID) (models.Family, error)
	DeleteFamily(ctx context.Context, familyID uuid.UUID) error
}

type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile models.Profile) error
	GetProfile(ctx context.Context, userID uuid.UUID) (models.Profile, error)
}

type AlbumRepository interface {
	CreateAlbum(ctx context.Context, album models.NewAlbum) (models.Album, error)
	GetAlbum(ctx context.Context, albumID uuid.UUID) (models.Album, error)
	UpdateAlbumFields(ctx context.Context, albumID uuid.UUID, updates map[string]interface{}) (models.Album, error)
	ListActiveChildren(ctx context.Context, parentID, familyID uuid.UUID) ([]models.Album, error)
	ListByFamily(ctx context.Context, familyID uuid.UUID, includeInactive bool) ([]models.Album, error)
	DeactivateAlbums(ctx context.Context, albumIDs []uuid.UUID) (int64, error)
}

type MediaRepository interface {
	CreateMedia(ctx context.Context, media models.Media) (models.Media, error)
	ListActiveByAlbum(ctx context.Context, albumID uuid.UUID) ([]models.Media, error)
}
