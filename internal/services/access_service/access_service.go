package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dearly/internal/domain/models"
	"dearly/internal/lib/logger/sl"
	"dearly/internal/repository"
	"dearly/internal/storage"

	"github.com/google/uuid"
)

// AccessService decides whether a user may act inside a family.
// The profile is read on every call so membership changes apply immediately.
type AccessService struct {
	log      *slog.Logger
	profiles repository.ProfileRepository
}

func NewAccessService(log *slog.Logger, profiles repository.ProfileRepository) *AccessService {
	return &AccessService{
		log:      log,
		profiles: profiles,
	}
}

// Authorize returns nil when userID is a member of familyID and models.ErrForbidden otherwise.
func (s *AccessService) Authorize(ctx context.Context, userID, familyID uuid.UUID) error {
	const op = "services.AccessService.Authorize"

	log := s.log.With(
		slog.String("op", op),
		slog.String("user_id", userID.String()),
		slog.String("family_id", familyID.String()),
	)

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrProfileMissing) {
			log.Warn("profile missing")
			return fmt.Errorf("%s: %w", op, models.ErrForbidden)
		}
		log.Error("failed to load profile", sl.Err(err))
		return fmt.Errorf("%s: %w", op, models.NewStoreError(op, "", err))
	}

	if !profile.BelongsTo(familyID) {
		log.Warn("access denied")
		return fmt.Errorf("%s: %w", op, models.ErrForbidden)
	}

	return nil
}

// FamilyOf returns the family the user belongs to.
func (s *AccessService) FamilyOf(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	const op = "services.AccessService.FamilyOf"

	log := s.log.With(
		slog.String("op", op),
		slog.String("user_id", userID.String()),
	)

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrProfileMissing) {
			log.Warn("profile missing")
			return uuid.Nil, fmt.Errorf("%s: %w", op, models.ErrForbidden)
		}
		log.Error("failed to load profile", sl.Err(err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, models.NewStoreError(op, "", err))
	}

	if profile.FamilyID == nil {
		log.Warn("profile has no family")
		return uuid.Nil, fmt.Errorf("%s: %w", op, models.ErrForbidden)
	}

	return *profile.FamilyID, nil
}
