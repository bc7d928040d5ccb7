package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"dearly/internal/domain/models"
	"dearly/internal/lib/logger/sl"
	"dearly/internal/repository"
	"dearly/internal/storage"

	"github.com/google/uuid"
)

type AlbumProvider interface {
	GetAlbum(ctx context.Context, albumID uuid.UUID) (models.Album, error)
}

type Authorizer interface {
	Authorize(ctx context.Context, userID, familyID uuid.UUID) error
}

type MediaService struct {
	log    *slog.Logger
	repo   repository.MediaRepository
	albums AlbumProvider
	access Authorizer
}

func NewMediaService(log *slog.Logger, repo repository.MediaRepository, albums AlbumProvider, access Authorizer) *MediaService {
	return &MediaService{
		log:    log,
		repo:   repo,
		albums: albums,
		access: access,
	}
}

// AddMedia records an already hosted photo or video in an active album.
func (s *MediaService) AddMedia(ctx context.Context, identity models.Identity, albumID uuid.UUID, input models.NewMedia) (models.Media, error) {
	const op = "media_service.AddMedia"

	log := s.log.With(
		slog.String("op", op),
		slog.String("user_id", identity.UserID.String()),
		slog.String("album_id", albumID.String()),
	)

	log.Info("add media")

	album, err := s.albums.GetAlbum(ctx, albumID)
	if err != nil {
		if errors.Is(err, storage.ErrAlbumNotFound) {
			return models.Media{}, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		log.Error("failed to load album", sl.Err(err))
		return models.Media{}, fmt.Errorf("%s: %w", op, models.NewStoreError(op, "", err))
	}

	if err := s.access.Authorize(ctx, identity.UserID, album.FamilyID); err != nil {
		return models.Media{}, fmt.Errorf("%s: %w", op, err)
	}

	if !album.IsActive {
		return models.Media{}, fmt.Errorf("%s: %w: album is deleted", op, models.ErrValidation)
	}

	media := models.Media{
		IsImage:     input.IsImage,
		URL:         strings.TrimSpace(input.URL),
		Description: input.Description,
		FamilyID:    album.FamilyID,
		AlbumID:     &album.ID,
	}

	if err := media.Validate(); err != nil {
		log.Warn("media validation failed", sl.Err(err))
		return models.Media{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.repo.CreateMedia(ctx, media)
	if err != nil {
		log.Error("failed to save media to database", sl.Err(err))
		return models.Media{}, fmt.Errorf("%s: %w", op, models.NewStoreError(op, "", err))
	}

	log.Info("media added", slog.String("media_id", created.ID.String()))

	return created, nil
}
