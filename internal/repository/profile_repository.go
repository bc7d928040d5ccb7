package repository

import (
	"context"
	"errors"
	"fmt"

	"dearly/internal/domain/models"
	"dearly/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type ProfileRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ProfileRepo) CreateProfile(ctx context.Context, p models.Profile) error {
	const op = "repository.profile_repository.CreateProfile"

	query, args, err := r.sb.Insert("profiles").
		Columns(
			"id",
			"first_name",
			"last_name",
			"email",
			"birth_date",
			"country",
			"city",
			"is_paying",
			"family_id",
			"is_active",
		).
		Values(
			p.ID,
			p.FirstName,
			p.LastName,
			p.Email,
			p.BirthDate,
			p.Country,
			p.City,
			p.IsPaying,
			p.FamilyID,
			true,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *ProfileRepo) GetProfile(ctx context.Context, userID uuid.UUID) (models.Profile, error) {
	const op = "repository.profile_repository.GetProfile"

	query, args, err := r.sb.Select(
		"id",
		"created_at",
		"first_name",
		"last_name",
		"email",
		"birth_date",
		"country",
		"city",
		"is_paying",
		"family_id",
		"is_active",
	).
		From("profiles").
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return models.Profile{}, fmt.Errorf("%s: %w", op, err)
	}

	var p models.Profile
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&p.ID,
		&p.CreatedAt,
		&p.FirstName,
		&p.LastName,
		&p.Email,
		&p.BirthDate,
		&p.Country,
		&p.City,
		&p.IsPaying,
		&p.FamilyID,
		&p.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Profile{}, fmt.Errorf("%s: %w", op, storage.ErrProfileMissing)
		}
		return models.Profile{}, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}
