package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dearly/internal/domain/models"
	"dearly/internal/lib/jwt"
	"dearly/internal/lib/logger/sl"
	"dearly/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvalidToken      = fmt.Errorf("%w: invalid token", models.ErrUnauthorized)
	ErrTokenNotInStorage = fmt.Errorf("%w: token not found in storage", models.ErrUnauthorized)
)

type TokenService struct {
	log        *slog.Logger
	repo       repository.TokenRepository
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(
	log *slog.Logger,
	repo repository.TokenRepository,
	secret []byte,
	accessTTL, refreshTTL time.Duration,
) *TokenService {
	return &TokenService{
		log:        log,
		repo:       repo,
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GenerateTokens issues an access/refresh pair and remembers the refresh token.
func (s *TokenService) GenerateTokens(ctx context.Context, user models.User) (*models.TokenPair, error) {
	const op = "services.TokenService.GenerateTokens"

	accessToken, expiresAt, err := jwt.NewToken(user, jwt.TypeAccess, s.accessTTL, s.secret)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refreshToken, _, err := jwt.NewToken(user, jwt.TypeRefresh, s.refreshTTL, s.secret)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.SaveRefreshToken(ctx, user.ID.String(), refreshToken, s.refreshTTL); err != nil {
		s.log.Error("failed to save refresh token", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt.Unix(),
	}, nil
}

// RefreshTokens exchanges a stored refresh token for a new pair. The old
// refresh token is deleted so it cannot be used twice.
func (s *TokenService) RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	const op = "services.TokenService.RefreshTokens"

	log := s.log.With(slog.String("op", op))

	claims, err := jwt.Parse(refreshToken, jwt.TypeRefresh, s.secret)
	if err != nil {
		log.Warn("rejected refresh token", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	consumed, err := s.repo.ConsumeRefreshToken(ctx, userID.String(), refreshToken)
	if err != nil {
		log.Error("failed to consume refresh token", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !consumed {
		log.Warn("refresh token unknown or already used")
		return nil, fmt.Errorf("%s: %w", op, ErrTokenNotInStorage)
	}

	return s.GenerateTokens(ctx, models.User{ID: userID, Email: claims.Email})
}

// ValidateAccessToken verifies an access token and returns the caller it names.
func (s *TokenService) ValidateAccessToken(accessToken string) (models.Identity, error) {
	const op = "services.TokenService.ValidateAccessToken"

	claims, err := jwt.Parse(accessToken, jwt.TypeAccess, s.secret)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%s: %w: %w", op, ErrInvalidToken, err)
	}

	userID, err := claims.UserID()
	if err != nil {
		return models.Identity{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return models.Identity{UserID: userID, Email: claims.Email}, nil
}

// RevokeAll forgets every refresh token of the user.
func (s *TokenService) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	const op = "services.TokenService.RevokeAll"

	if err := s.repo.DeleteAllUserTokens(ctx, userID.String()); err != nil {
		s.log.Error("failed to revoke tokens", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
