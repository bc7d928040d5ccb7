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

type FamilyRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewFamilyRepository(db *pgxpool.Pool) *FamilyRepo {
	return &FamilyRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *FamilyRepo) CreateFamily(ctx context.Context, familyName string) (models.Family, error) {
	const op = "repository.family_repository.CreateFamily"

	query, args, err := r.sb.Insert("families").
		Columns("family_name").
		Values(familyName).
		Suffix("RETURNING id, created_at, family_name").
		ToSql()
	if err != nil {
		return models.Family{}, fmt.Errorf("%s: %w", op, err)
	}

	var f models.Family
	err = r.db.QueryRow(ctx, query, args...).Scan(&f.ID, &f.CreatedAt, &f.FamilyName)
	if err != nil {
		return models.Family{}, fmt.Errorf("%s: %w", op, err)
	}

	return f, nil
}

func (r *FamilyRepo) GetFamily(ctx context.Context, familyID uuid.UUID) (models.Family, error) {
	const op = "repository.family_repository.GetFamily"

	query, args, err := r.sb.Select("id", "created_at", "family_name").
		From("families").
		Where(sq.Eq{"id": familyID}).
		ToSql()
	if err != nil {
		return models.Family{}, fmt.Errorf("%s: %w", op, err)
	}

	var f models.Family
	err = r.db.QueryRow(ctx, query, args...).Scan(&f.ID, &f.CreatedAt, &f.FamilyName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Family{}, fmt.Errorf("%s: %w", op, storage.ErrFamilyNotFound)
		}
		return models.Family{}, fmt.Errorf("%s: %w", op, err)
	}

	return f, nil
}

func (r *FamilyRepo) DeleteFamily(ctx context.Context, familyID uuid.UUID) error {
	const op = "repository.family_repository.DeleteFamily"

	query, args, err := r.sb.Delete("families").
		Where(sq.Eq{"id": familyID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
