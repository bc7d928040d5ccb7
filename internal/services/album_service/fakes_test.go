package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"dearly/internal/domain/models"
	"dearly/internal/storage"

	"github.com/google/uuid"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memAlbums is an in-memory album table.
type memAlbums struct {
	rows    map[uuid.UUID]models.Album
	order   map[uuid.UUID]int
	seq     int
	inserts int
	writes  int
	failOn  string
}

func newMemAlbums() *memAlbums {
	return &memAlbums{
		rows:  make(map[uuid.UUID]models.Album),
		order: make(map[uuid.UUID]int),
	}
}

func (m *memAlbums) put(a models.Album) models.Album {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	m.seq++
	m.rows[a.ID] = a
	m.order[a.ID] = m.seq
	return a
}

func (m *memAlbums) fail(method string) error {
	if m.failOn == method {
		return fmt.Errorf("%s: connection refused", method)
	}
	return nil
}

func (m *memAlbums) CreateAlbum(ctx context.Context, in models.NewAlbum) (models.Album, error) {
	if err := m.fail("CreateAlbum"); err != nil {
		return models.Album{}, err
	}
	m.inserts++
	return m.put(models.Album{
		Name:          in.Name,
		ParentAlbumID: in.ParentAlbumID,
		FamilyID:      in.FamilyID,
		CoverImage:    in.CoverImage,
		IsActive:      true,
	}), nil
}

func (m *memAlbums) GetAlbum(ctx context.Context, id uuid.UUID) (models.Album, error) {
	if err := m.fail("GetAlbum"); err != nil {
		return models.Album{}, err
	}
	a, ok := m.rows[id]
	if !ok {
		return models.Album{}, storage.ErrAlbumNotFound
	}
	return a, nil
}

func (m *memAlbums) UpdateAlbumFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (models.Album, error) {
	if err := m.fail("UpdateAlbumFields"); err != nil {
		return models.Album{}, err
	}
	a, ok := m.rows[id]
	if !ok {
		return models.Album{}, storage.ErrAlbumNotFound
	}
	m.writes++
	for field, value := range updates {
		switch field {
		case "name":
			a.Name = value.(string)
		case "parent_album_id":
			if value == nil {
				a.ParentAlbumID = nil
			} else {
				p := value.(uuid.UUID)
				a.ParentAlbumID = &p
			}
		case "cover_image":
			if value == nil {
				a.CoverImage = nil
			} else {
				c := value.(string)
				a.CoverImage = &c
			}
		default:
			return models.Album{}, fmt.Errorf("field %q not allowed", field)
		}
	}
	m.rows[id] = a
	return a, nil
}

func (m *memAlbums) ListActiveChildren(ctx context.Context, parentID, familyID uuid.UUID) ([]models.Album, error) {
	if err := m.fail("ListActiveChildren"); err != nil {
		return nil, err
	}
	var out []models.Album
	for _, a := range m.rows {
		if a.ParentAlbumID != nil && *a.ParentAlbumID == parentID && a.FamilyID == familyID && a.IsActive {
			out = append(out, a)
		}
	}
	m.sort(out)
	return out, nil
}

func (m *memAlbums) ListByFamily(ctx context.Context, familyID uuid.UUID, includeInactive bool) ([]models.Album, error) {
	if err := m.fail("ListByFamily"); err != nil {
		return nil, err
	}
	out := make([]models.Album, 0)
	for _, a := range m.rows {
		if a.FamilyID == familyID && (includeInactive || a.IsActive) {
			out = append(out, a)
		}
	}
	m.sort(out)
	return out, nil
}

func (m *memAlbums) DeactivateAlbums(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if err := m.fail("DeactivateAlbums"); err != nil {
		return 0, err
	}
	m.writes++
	var n int64
	for _, id := range ids {
		if a, ok := m.rows[id]; ok && a.IsActive {
			a.IsActive = false
			m.rows[id] = a
			n++
		}
	}
	return n, nil
}

func (m *memAlbums) sort(albums []models.Album) {
	sort.Slice(albums, func(i, j int) bool {
		return m.order[albums[i].ID] < m.order[albums[j].ID]
	})
}

func (m *memAlbums) snapshot() map[uuid.UUID]models.Album {
	out := make(map[uuid.UUID]models.Album, len(m.rows))
	for k, v := range m.rows {
		out[k] = v
	}
	return out
}

type memMedia struct {
	items []models.Media
}

func (m *memMedia) CreateMedia(ctx context.Context, media models.Media) (models.Media, error) {
	media.ID = uuid.New()
	media.IsActive = true
	m.items = append(m.items, media)
	return media, nil
}

func (m *memMedia) ListActiveByAlbum(ctx context.Context, albumID uuid.UUID) ([]models.Media, error) {
	out := make([]models.Media, 0)
	for _, it := range m.items {
		if it.AlbumID != nil && *it.AlbumID == albumID && it.IsActive {
			out = append(out, it)
		}
	}
	return out, nil
}

// memAccess maps users to families.
type memAccess struct {
	members map[uuid.UUID]uuid.UUID
	calls   int
}

func (m *memAccess) Authorize(ctx context.Context, userID, familyID uuid.UUID) error {
	m.calls++
	if fam, ok := m.members[userID]; ok && fam == familyID {
		return nil
	}
	return models.ErrForbidden
}

func (m *memAccess) FamilyOf(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	fam, ok := m.members[userID]
	if !ok {
		return uuid.Nil, models.ErrForbidden
	}
	return fam, nil
}
