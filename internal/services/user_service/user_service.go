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

type AuthProvider interface {
	SignUp(ctx context.Context, email, password, firstName, lastName string) (models.User, error)
	SignInWithPassword(ctx context.Context, email, password string) (models.User, error)
	AdminDeleteUser(ctx context.Context, userID uuid.UUID) error
}

type TokenProvider interface {
	GenerateTokens(ctx context.Context, user models.User) (*models.TokenPair, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	RevokeAll(ctx context.Context, userID uuid.UUID) error
}

// UserService runs the account flows that span the auth collaborator and the
// family/profile tables.
type UserService struct {
	log      *slog.Logger
	auth     AuthProvider
	tokens   TokenProvider
	families repository.FamilyRepository
	profiles repository.ProfileRepository
}

func NewUserService(
	log *slog.Logger,
	auth AuthProvider,
	tokens TokenProvider,
	families repository.FamilyRepository,
	profiles repository.ProfileRepository,
) *UserService {
	return &UserService{
		log:      log,
		auth:     auth,
		tokens:   tokens,
		families: families,
		profiles: profiles,
	}
}

// SignUp creates the auth user, a family and the user's profile, in that order.
// When a later step fails the earlier ones are undone best effort; failures of
// the undo are only logged.
func (s *UserService) SignUp(ctx context.Context, input models.SignUpInput) (models.User, error) {
	const op = "services.UserService.SignUp"

	log := s.log.With(
		slog.String("op", op),
		slog.String("email", input.Email),
	)

	log.Info("signing up user")

	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return models.User{}, fmt.Errorf("%s: %w: first and last name are required", op, models.ErrValidation)
	}

	user, err := s.auth.SignUp(ctx, input.Email, input.Password, input.FirstName, input.LastName)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	family, err := s.families.CreateFamily(ctx, familyName(input))
	if err != nil {
		log.Error("failed to create family", sl.Err(err))
		s.compensate(log, user.ID, nil)

		return models.User{}, fmt.Errorf("%s: %w", op, models.NewStoreError(op, "", err))
	}

	profile := models.Profile{
		ID:        user.ID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     user.Email,
		BirthDate: input.BirthDate,
		Country:   input.Country,
		City:      input.City,
		FamilyID:  &family.ID,
		IsActive:  true,
	}

	if err := s.profiles.CreateProfile(ctx, profile); err != nil {
		log.Error("failed to create profile", sl.Err(err))
		s.compensate(log, user.ID, &family.ID)

		return models.User{}, fmt.Errorf("%s: %w", op, models.NewStoreError(op, "", err))
	}

	log.Info("user signed up",
		slog.String("user_id", user.ID.String()),
		slog.String("family_id", family.ID.String()),
	)

	return user, nil
}

// compensate removes what a failed sign-up already created. It uses a fresh
// context so a cancelled request still gets cleaned up.
func (s *UserService) compensate(log *slog.Logger, userID uuid.UUID, familyID *uuid.UUID) {
	ctx := context.Background()

	if familyID != nil {
		if err := s.families.DeleteFamily(ctx, *familyID); err != nil {
			log.Error("compensation: failed to delete family", sl.Err(err))
		}
	}

	if err := s.auth.AdminDeleteUser(ctx, userID); err != nil {
		log.Error("compensation: failed to delete auth user", sl.Err(err))
	}
}

func (s *UserService) SignIn(ctx context.Context, email, password string) (models.User, *models.TokenPair, error) {
	const op = "services.UserService.SignIn"

	user, err := s.auth.SignInWithPassword(ctx, email, password)
	if err != nil {
		return models.User{}, nil, fmt.Errorf("%s: %w", op, err)
	}

	tokens, err := s.tokens.GenerateTokens(ctx, user)
	if err != nil {
		s.log.Error("failed to issue tokens", slog.String("op", op), sl.Err(err))
		return models.User{}, nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, tokens, nil
}

func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	const op = "services.UserService.Refresh"

	tokens, err := s.tokens.RefreshTokens(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tokens, nil
}

func (s *UserService) SignOut(ctx context.Context, identity models.Identity) error {
	const op = "services.UserService.SignOut"

	if err := s.tokens.RevokeAll(ctx, identity.UserID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user signed out", slog.String("op", op), slog.String("user_id", identity.UserID.String()))

	return nil
}

// Me returns the caller's profile and, when set, their family.
func (s *UserService) Me(ctx context.Context, identity models.Identity) (models.Account, error) {
	const op = "services.UserService.Me"

	profile, err := s.profiles.GetProfile(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrProfileMissing) {
			return models.Account{}, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		return models.Account{}, fmt.Errorf("%s: %w", op, models.NewStoreError(op, "", err))
	}

	account := models.Account{Profile: profile}
	if profile.FamilyID == nil {
		return account, nil
	}

	family, err := s.families.GetFamily(ctx, *profile.FamilyID)
	if err != nil {
		if errors.Is(err, storage.ErrFamilyNotFound) {
			return account, nil
		}
		return models.Account{}, fmt.Errorf("%s: %w", op, models.NewStoreError(op, "", err))
	}
	account.Family = &family

	return account, nil
}

func familyName(input models.SignUpInput) string {
	if input.FamilyName != nil {
		if name := strings.TrimSpace(*input.FamilyName); name != "" {
			return name
		}
	}
	return strings.TrimSpace(input.LastName) + " Family"
}
