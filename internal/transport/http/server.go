package http

import (
	"context"
	"log/slog"

	"dearly/internal/domain/models"

	"github.com/google/uuid"

	_ "dearly/docs"
)

type UserService interface {
	SignUp(ctx context.Context, input models.SignUpInput) (models.User, error)
	SignIn(ctx context.Context, email, password string) (models.User, *models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	SignOut(ctx context.Context, identity models.Identity) error
	Me(ctx context.Context, identity models.Identity) (models.Account, error)
}

type AlbumService interface {
	Create(ctx context.Context, identity models.Identity, input models.NewAlbum) (models.Album, error)
	Update(ctx context.Context, identity models.Identity, albumID uuid.UUID, patch models.AlbumPatch) (models.Album, error)
	CascadeDeactivate(ctx context.Context, identity models.Identity, albumID uuid.UUID) error
	GetByID(ctx context.Context, identity models.Identity, albumID uuid.UUID) (models.AlbumDetails, error)
	ListForFamily(ctx context.Context, identity models.Identity, familyID uuid.UUID, includeInactive bool) ([]models.Album, error)
}

type MediaService interface {
	AddMedia(ctx context.Context, identity models.Identity, albumID uuid.UUID, input models.NewMedia) (models.Media, error)
}

// CookieOptions control the session cookie written at sign-in.
type CookieOptions struct {
	Secure bool
}

type Routers struct {
	log          *slog.Logger
	UserService  UserService
	AlbumService AlbumService
	MediaService MediaService
	cookie       CookieOptions
}

func NewRouter(
	log *slog.Logger,
	userService UserService,
	albumService AlbumService,
	mediaService MediaService,
	cookie CookieOptions,
) *Routers {
	return &Routers{
		log:          log,
		UserService:  userService,
		AlbumService: albumService,
		MediaService: mediaService,
		cookie:       cookie,
	}
}
