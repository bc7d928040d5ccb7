package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"dearly/internal/domain/models"
	"dearly/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) CreateProfile(ctx context.Context, profile models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetProfile(ctx context.Context, userID uuid.UUID) (models.Profile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(models.Profile), args.Error(1)
}

func TestAccessService_Authorize(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	userID := uuid.New()
	familyID := uuid.New()
	otherFamily := uuid.New()
	dbErr := errors.New("connection reset")

	tests := []struct {
		name      string
		familyID  uuid.UUID
		mockSetup func(repo *MockProfileRepository)
		wantErr   error
		wantStore bool
	}{
		{
			name:     "member is allowed",
			familyID: familyID,
			mockSetup: func(repo *MockProfileRepository) {
				repo.On("GetProfile", ctx, userID).Return(models.Profile{ID: userID, FamilyID: &familyID}, nil)
			},
		},
		{
			name:     "other family is forbidden",
			familyID: otherFamily,
			mockSetup: func(repo *MockProfileRepository) {
				repo.On("GetProfile", ctx, userID).Return(models.Profile{ID: userID, FamilyID: &familyID}, nil)
			},
			wantErr: models.ErrForbidden,
		},
		{
			name:     "profile without family is forbidden",
			familyID: familyID,
			mockSetup: func(repo *MockProfileRepository) {
				repo.On("GetProfile", ctx, userID).Return(models.Profile{ID: userID}, nil)
			},
			wantErr: models.ErrForbidden,
		},
		{
			name:     "missing profile is forbidden",
			familyID: familyID,
			mockSetup: func(repo *MockProfileRepository) {
				repo.On("GetProfile", ctx, userID).Return(models.Profile{}, storage.ErrProfileMissing)
			},
			wantErr: models.ErrForbidden,
		},
		{
			name:     "store failure is propagated",
			familyID: familyID,
			mockSetup: func(repo *MockProfileRepository) {
				repo.On("GetProfile", ctx, userID).Return(models.Profile{}, dbErr)
			},
			wantErr:   dbErr,
			wantStore: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockProfileRepository)
			tt.mockSetup(repo)
			svc := NewAccessService(log, repo)

			err := svc.Authorize(ctx, userID, tt.familyID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantStore, models.IsStoreError(err))
			repo.AssertExpectations(t)
		})
	}
}

func TestAccessService_Authorize_ReadsProfileEveryCall(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	userID := uuid.New()
	familyID := uuid.New()

	repo := new(MockProfileRepository)
	repo.On("GetProfile", ctx, userID).Return(models.Profile{ID: userID, FamilyID: &familyID}, nil).Once()
	repo.On("GetProfile", ctx, userID).Return(models.Profile{ID: userID}, nil).Once()
	svc := NewAccessService(log, repo)

	assert.NoError(t, svc.Authorize(ctx, userID, familyID))
	assert.ErrorIs(t, svc.Authorize(ctx, userID, familyID), models.ErrForbidden)
	repo.AssertExpectations(t)
}

func TestAccessService_FamilyOf(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	userID := uuid.New()
	familyID := uuid.New()

	t.Run("returns family", func(t *testing.T) {
		repo := new(MockProfileRepository)
		repo.On("GetProfile", ctx, userID).Return(models.Profile{ID: userID, FamilyID: &familyID}, nil)

		got, err := NewAccessService(log, repo).FamilyOf(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, familyID, got)
	})

	t.Run("no family", func(t *testing.T) {
		repo := new(MockProfileRepository)
		repo.On("GetProfile", ctx, userID).Return(models.Profile{ID: userID}, nil)

		_, err := NewAccessService(log, repo).FamilyOf(ctx, userID)
		assert.ErrorIs(t, err, models.ErrForbidden)
	})

	t.Run("store failure", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		repo := new(MockProfileRepository)
		repo.On("GetProfile", ctx, userID).Return(models.Profile{}, dbErr)

		_, err := NewAccessService(log, repo).FamilyOf(ctx, userID)
		assert.ErrorIs(t, err, dbErr)
		assert.True(t, models.IsStoreError(err))
		assert.NotErrorIs(t, err, models.ErrForbidden)
	})
}
