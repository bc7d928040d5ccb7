package repository

import (
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4/pgxpool"
)

const uniqueViolation = "23505"

// Repository bundles the Postgres-backed repositories around one shared pool.
type Repository struct {
	db      *pgxpool.Pool
	User    UserRepository
	Family  FamilyRepository
	Profile ProfileRepository
	Album   AlbumRepository
	Media   MediaRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		db:      db,
		User:    NewUserRepository(db),
		Family:  NewFamilyRepository(db),
		Profile: NewProfileRepository(db),
		Album:   NewAlbumRepository(db),
		Media:   NewMediaRepository(db),
	}
}

func (r *Repository) Close() {
	r.db.Close()
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
