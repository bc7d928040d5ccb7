package repository

import (
	"context"
	"fmt"
	"strings"

	"dearly/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

var mediaColumns = []string{
	"id",
	"created_at",
	"is_image",
	"url",
	"description",
	"family_id",
	"album_id",
	"is_active",
}

type MediaRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewMediaRepository(db *pgxpool.Pool) *MediaRepo {
	return &MediaRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *MediaRepo) CreateMedia(ctx context.Context, media models.Media) (models.Media, error) {
	const op = "repository.media_repository.CreateMedia"

	query, args, err := r.sb.Insert("media").
		Columns(
			"is_image",
			"url",
			"description",
			"family_id",
			"album_id",
			"is_active",
		).
		Values(
			media.IsImage,
			media.URL,
			media.Description,
			media.FamilyID,
			media.AlbumID,
			true,
		).
		Suffix("RETURNING " + strings.Join(mediaColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Media{}, fmt.Errorf("failed to build query: %s %w", op, err)
	}

	created, err := scanMedia(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Media{}, fmt.Errorf("failed to create media: %s %w", op, err)
	}

	return created, nil
}

// ListActiveByAlbum returns the active media attached to albumID, oldest first.
func (r *MediaRepo) ListActiveByAlbum(ctx context.Context, albumID uuid.UUID) ([]models.Media, error) {
	const op = "repository.media_repository.ListActiveByAlbum"

	query, args, err := r.sb.Select(mediaColumns...).
		From("media").
		Where(sq.Eq{"album_id": albumID, "is_active": true}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %s %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]models.Media, 0)
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func scanMedia(row scanner) (models.Media, error) {
	var m models.Media
	err := row.Scan(
		&m.ID,
		&m.CreatedAt,
		&m.IsImage,
		&m.URL,
		&m.Description,
		&m.FamilyID,
		&m.AlbumID,
		&m.IsActive,
	)
	return m, err
}
