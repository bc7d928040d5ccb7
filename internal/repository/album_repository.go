package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dearly/internal/domain/models"
	"dearly/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

var albumColumns = []string{
	"id",
	"created_at",
	"name",
	"parent_album_id",
	"family_id",
	"cover_image",
	"is_active",
}

type AlbumRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewAlbumRepository(db *pgxpool.Pool) *AlbumRepo {
	return &AlbumRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *AlbumRepo) CreateAlbum(ctx context.Context, album models.NewAlbum) (models.Album, error) {
	const op = "repository.AlbumRepo.CreateAlbum"

	query, args, err := r.sb.Insert("albums").
		Columns(
			"name",
			"parent_album_id",
			"family_id",
			"cover_image",
			"is_active",
		).
		Values(
			album.Name,
			album.ParentAlbumID,
			album.FamilyID,
			album.CoverImage,
			true,
		).
		Suffix("RETURNING " + strings.Join(albumColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Album{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := scanAlbum(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Album{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (r *AlbumRepo) GetAlbum(ctx context.Context, albumID uuid.UUID) (models.Album, error) {
	const op = "repository.AlbumRepo.GetAlbum"

	query, args, err := r.sb.Select(albumColumns...).
		From("albums").
		Where(sq.Eq{"id": albumID}).
		ToSql()
	if err != nil {
		return models.Album{}, fmt.Errorf("%s: %w", op, err)
	}

	album, err := scanAlbum(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Album{}, fmt.Errorf("%s: %w", op, storage.ErrAlbumNotFound)
		}
		return models.Album{}, fmt.Errorf("%s: %w", op, err)
	}

	return album, nil
}

// UpdateAlbumFields writes only the given columns and returns the updated row.
//
//	repo.UpdateAlbumFields(ctx, id, map[string]interface{}{
//	    "name":        "Summer 2024",
//	    "cover_image": nil,
//	})
func (r *AlbumRepo) UpdateAlbumFields(ctx context.Context, albumID uuid.UUID, updates map[string]interface{}) (models.Album, error) {
	const op = "repository.AlbumRepo.UpdateAlbumFields"

	allowedFields := map[string]bool{
		"name":            true,
		"parent_album_id": true,
		"cover_image":     true,
	}

	if len(updates) == 0 {
		return models.Album{}, fmt.Errorf("%s: no fields to update", op)
	}

	updateBuilder := r.sb.Update("albums")

	for field, value := range updates {
		if !allowedFields[field] {
			return models.Album{}, fmt.Errorf("%s: field '%s' is not allowed for update", op, field)
		}

		updateBuilder = updateBuilder.Set(field, value)
	}

	query, args, err := updateBuilder.
		Where(sq.Eq{"id": albumID}).
		Suffix("RETURNING " + strings.Join(albumColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Album{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := scanAlbum(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Album{}, fmt.Errorf("%s: %w", op, storage.ErrAlbumNotFound)
		}
		return models.Album{}, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

// ListActiveChildren returns the direct active children of parentID inside familyID.
func (r *AlbumRepo) ListActiveChildren(ctx context.Context, parentID, familyID uuid.UUID) ([]models.Album, error) {
	const op = "repository.AlbumRepo.ListActiveChildren"

	query, args, err := r.sb.Select(albumColumns...).
		From("albums").
		Where(sq.Eq{
			"parent_album_id": parentID,
			"family_id":       familyID,
			"is_active":       true,
		}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	albums, err := r.queryAlbums(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return albums, nil
}

func (r *AlbumRepo) ListByFamily(ctx context.Context, familyID uuid.UUID, includeInactive bool) ([]models.Album, error) {
	const op = "repository.AlbumRepo.ListByFamily"

	where := sq.Eq{"family_id": familyID}
	if !includeInactive {
		where["is_active"] = true
	}

	query, args, err := r.sb.Select(albumColumns...).
		From("albums").
		Where(where).
		OrderBy("created_at DESC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	albums, err := r.queryAlbums(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return albums, nil
}

// DeactivateAlbums sets is_active = false on the given albums that are still active,
// in a single statement, and returns how many rows changed.
func (r *AlbumRepo) DeactivateAlbums(ctx context.Context, albumIDs []uuid.UUID) (int64, error) {
	const op = "repository.AlbumRepo.DeactivateAlbums"

	if len(albumIDs) == 0 {
		return 0, nil
	}

	query, args, err := r.sb.Update("albums").
		Set("is_active", false).
		Where(sq.Eq{"id": albumIDs, "is_active": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return result.RowsAffected(), nil
}

func (r *AlbumRepo) queryAlbums(ctx context.Context, query string, args []interface{}) ([]models.Album, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	albums := make([]models.Album, 0)
	for rows.Next() {
		a, err := scanAlbum(rows)
		if err != nil {
			return nil, err
		}
		albums = append(albums, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return albums, nil
}

func scanAlbum(row scanner) (models.Album, error) {
	var a models.Album
	err := row.Scan(
		&a.ID,
		&a.CreatedAt,
		&a.Name,
		&a.ParentAlbumID,
		&a.FamilyID,
		&a.CoverImage,
		&a.IsActive,
	)
	return a, err
}
