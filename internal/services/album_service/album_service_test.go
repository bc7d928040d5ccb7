package services

import (
	"context"
	"math/rand"
	"testing"

	"dearly/internal/domain/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AlbumServiceSuite struct {
	suite.Suite

	ctx     context.Context
	albums  *memAlbums
	media   *memMedia
	access  *memAccess
	service *AlbumService

	f1, f2     uuid.UUID
	alice, bob models.Identity
}

func TestAlbumServiceSuite(t *testing.T) {
	suite.Run(t, new(AlbumServiceSuite))
}

func (s *AlbumServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.albums = newMemAlbums()
	s.media = &memMedia{}
	s.f1, s.f2 = uuid.New(), uuid.New()
	s.alice = models.Identity{UserID: uuid.New(), Email: "alice@example.com"}
	s.bob = models.Identity{UserID: uuid.New(), Email: "bob@example.com"}
	s.access = &memAccess{members: map[uuid.UUID]uuid.UUID{
		s.alice.UserID: s.f1,
		s.bob.UserID:   s.f2,
	}}
	s.service = NewAlbumService(discardLogger(), s.albums, s.media, s.access)
}

func (s *AlbumServiceSuite) album(family uuid.UUID, parent *models.Album, name string) models.Album {
	a := models.Album{Name: name, FamilyID: family, IsActive: true}
	if parent != nil {
		a.ParentAlbumID = &parent.ID
	}
	return s.albums.put(a)
}

func (s *AlbumServiceSuite) TestCreate() {
	parent := s.album(s.f1, nil, "Root")
	cover := "https://img.example.com/cover.jpg"

	got, err := s.service.Create(s.ctx, s.alice, models.NewAlbum{
		Name:          "  Summer  ",
		FamilyID:      s.f1,
		ParentAlbumID: &parent.ID,
		CoverImage:    &cover,
	})
	s.Require().NoError(err)
	s.Equal("Summer", got.Name)
	s.True(got.IsActive)
	s.Require().NotNil(got.ParentAlbumID)
	s.Equal(parent.ID, *got.ParentAlbumID)
	s.Equal(1, s.albums.inserts)
}

func (s *AlbumServiceSuite) TestCreate_ValidationPerformsNoInsert() {
	cases := []models.NewAlbum{
		{Name: "", FamilyID: s.f1},
		{Name: "   ", FamilyID: s.f1},
		{Name: "Trip", FamilyID: uuid.Nil},
	}
	for _, in := range cases {
		_, err := s.service.Create(s.ctx, s.alice, in)
		s.ErrorIs(err, models.ErrValidation)
	}
	s.Equal(0, s.albums.inserts)
	s.Equal(0, s.access.calls)
}

func (s *AlbumServiceSuite) TestCreate_Forbidden() {
	_, err := s.service.Create(s.ctx, s.alice, models.NewAlbum{Name: "Trip", FamilyID: s.f2})
	s.ErrorIs(err, models.ErrForbidden)
	s.Equal(0, s.albums.inserts)
}

func (s *AlbumServiceSuite) TestCreate_ParentRules() {
	foreign := s.album(s.f2, nil, "Foreign")
	deleted := s.album(s.f1, nil, "Deleted")
	deleted.IsActive = false
	s.albums.rows[deleted.ID] = deleted
	missing := uuid.New()

	for _, parentID := range []uuid.UUID{foreign.ID, deleted.ID, missing} {
		id := parentID
		_, err := s.service.Create(s.ctx, s.alice, models.NewAlbum{Name: "Child", FamilyID: s.f1, ParentAlbumID: &id})
		s.ErrorIs(err, models.ErrValidation)
	}
	s.Equal(0, s.albums.inserts)
}

func (s *AlbumServiceSuite) TestCreate_StoreError() {
	s.albums.failOn = "CreateAlbum"

	_, err := s.service.Create(s.ctx, s.alice, models.NewAlbum{Name: "Trip", FamilyID: s.f1})
	s.True(models.IsStoreError(err))
	s.Contains(err.Error(), "connection refused")
}

func (s *AlbumServiceSuite) TestUpdate_OnlyPatchedFieldsChange() {
	root := s.album(s.f1, nil, "Root")
	cover := "https://img.example.com/a.jpg"
	a := s.album(s.f1, &root, "Old")
	a.CoverImage = &cover
	s.albums.rows[a.ID] = a

	got, err := s.service.Update(s.ctx, s.alice, a.ID, models.AlbumPatch{Name: models.Some("X")})
	s.Require().NoError(err)
	s.Equal("X", got.Name)
	s.Require().NotNil(got.ParentAlbumID)
	s.Equal(root.ID, *got.ParentAlbumID)
	s.Require().NotNil(got.CoverImage)
	s.Equal(cover, *got.CoverImage)
}

func (s *AlbumServiceSuite) TestUpdate_NullClearsOptionalFields() {
	root := s.album(s.f1, nil, "Root")
	cover := "https://img.example.com/a.jpg"
	a := s.album(s.f1, &root, "Child")
	a.CoverImage = &cover
	s.albums.rows[a.ID] = a

	got, err := s.service.Update(s.ctx, s.alice, a.ID, models.AlbumPatch{
		ParentAlbumID: models.Null[uuid.UUID](),
		CoverImage:    models.Null[string](),
	})
	s.Require().NoError(err)
	s.Nil(got.ParentAlbumID)
	s.Nil(got.CoverImage)
	s.Equal("Child", got.Name)

	_, err = s.service.Update(s.ctx, s.alice, a.ID, models.AlbumPatch{Name: models.Null[string]()})
	s.ErrorIs(err, models.ErrValidation)
}

func (s *AlbumServiceSuite) TestUpdate_EmptyPatchWritesNothing() {
	a := s.album(s.f1, nil, "Root")

	got, err := s.service.Update(s.ctx, s.alice, a.ID, models.AlbumPatch{})
	s.Require().NoError(err)
	s.Equal(a, got)
	s.Equal(0, s.albums.writes)
}

func (s *AlbumServiceSuite) TestUpdate_NotFoundAndForbidden() {
	_, err := s.service.Update(s.ctx, s.alice, uuid.New(), models.AlbumPatch{Name: models.Some("X")})
	s.ErrorIs(err, models.ErrNotFound)

	a := s.album(s.f2, nil, "Theirs")
	_, err = s.service.Update(s.ctx, s.alice, a.ID, models.AlbumPatch{Name: models.Some("X")})
	s.ErrorIs(err, models.ErrForbidden)
	s.Equal("Theirs", s.albums.rows[a.ID].Name)
}

func (s *AlbumServiceSuite) TestUpdate_Reparent() {
	a := s.album(s.f1, nil, "A")
	b := s.album(s.f1, &a, "B")
	c := s.album(s.f1, &b, "C")
	other := s.album(s.f1, nil, "Other")
	foreign := s.album(s.f2, nil, "Foreign")

	_, err := s.service.Update(s.ctx, s.alice, a.ID, models.AlbumPatch{ParentAlbumID: models.Some(a.ID)})
	s.ErrorIs(err, models.ErrCycleDetected)

	_, err = s.service.Update(s.ctx, s.alice, a.ID, models.AlbumPatch{ParentAlbumID: models.Some(c.ID)})
	s.ErrorIs(err, models.ErrCycleDetected)

	_, err = s.service.Update(s.ctx, s.alice, b.ID, models.AlbumPatch{ParentAlbumID: models.Some(foreign.ID)})
	s.ErrorIs(err, models.ErrValidation)

	got, err := s.service.Update(s.ctx, s.alice, b.ID, models.AlbumPatch{ParentAlbumID: models.Some(other.ID)})
	s.Require().NoError(err)
	s.Equal(other.ID, *got.ParentAlbumID)
}

func (s *AlbumServiceSuite) TestCascade_Scenario() {
	a := s.album(s.f1, nil, "A")
	b := s.album(s.f1, &a, "B")
	c := s.album(s.f1, &a, "C")
	d := s.album(s.f1, &b, "D")
	untouched := s.album(s.f1, nil, "Untouched")

	s.Require().NoError(s.service.CascadeDeactivate(s.ctx, s.alice, a.ID))

	for _, id := range []uuid.UUID{a.ID, b.ID, c.ID, d.ID} {
		s.False(s.albums.rows[id].IsActive)
	}
	s.True(s.albums.rows[untouched.ID].IsActive)
	s.Equal(1, s.albums.writes)
}

func (s *AlbumServiceSuite) TestCascade_Idempotent() {
	a := s.album(s.f1, nil, "A")
	s.album(s.f1, &a, "B")

	s.Require().NoError(s.service.CascadeDeactivate(s.ctx, s.alice, a.ID))
	after := s.albums.snapshot()

	s.Require().NoError(s.service.CascadeDeactivate(s.ctx, s.alice, a.ID))
	s.Equal(after, s.albums.snapshot())
}

func (s *AlbumServiceSuite) TestCascade_SkipsInactiveBranches() {
	a := s.album(s.f1, nil, "A")
	b := s.album(s.f1, &a, "B")
	d := s.album(s.f1, &b, "D")
	b.IsActive = false
	s.albums.rows[b.ID] = b

	s.Require().NoError(s.service.CascadeDeactivate(s.ctx, s.alice, a.ID))

	s.False(s.albums.rows[a.ID].IsActive)
	s.True(s.albums.rows[d.ID].IsActive, "children of an already inactive album are not revisited")
}

func (s *AlbumServiceSuite) TestCascade_CycleFailsBeforeWriting() {
	a := s.album(s.f1, nil, "A")
	b := s.album(s.f1, &a, "B")
	a.ParentAlbumID = &b.ID
	s.albums.rows[a.ID] = a

	err := s.service.CascadeDeactivate(s.ctx, s.alice, a.ID)
	s.ErrorIs(err, models.ErrCycleDetected)
	s.Equal(0, s.albums.writes)
	s.True(s.albums.rows[a.ID].IsActive)
	s.True(s.albums.rows[b.ID].IsActive)
}

func (s *AlbumServiceSuite) TestCascade_StaysInsideFamily() {
	a := s.album(s.f1, nil, "A")
	stray := s.album(s.f2, &a, "Stray")

	s.Require().NoError(s.service.CascadeDeactivate(s.ctx, s.alice, a.ID))
	s.True(s.albums.rows[stray.ID].IsActive)
}

func (s *AlbumServiceSuite) TestCascade_ForbiddenAndNotFound() {
	a := s.album(s.f2, nil, "Theirs")

	s.ErrorIs(s.service.CascadeDeactivate(s.ctx, s.alice, a.ID), models.ErrForbidden)
	s.True(s.albums.rows[a.ID].IsActive)

	s.ErrorIs(s.service.CascadeDeactivate(s.ctx, s.alice, uuid.New()), models.ErrNotFound)
	s.Equal(0, s.albums.writes)
}

func (s *AlbumServiceSuite) TestCascade_StoreError() {
	a := s.album(s.f1, nil, "A")
	s.albums.failOn = "DeactivateAlbums"

	err := s.service.CascadeDeactivate(s.ctx, s.alice, a.ID)
	s.True(models.IsStoreError(err))
}

func (s *AlbumServiceSuite) TestGetByID() {
	a := s.album(s.f1, nil, "A")
	b := s.album(s.f1, &a, "B")
	s.album(s.f1, &b, "Grandchild")
	gone := s.album(s.f1, &a, "Gone")
	gone.IsActive = false
	s.albums.rows[gone.ID] = gone

	photo, err := s.media.CreateMedia(s.ctx, models.Media{URL: "https://img.example.com/1.jpg", FamilyID: s.f1, AlbumID: &a.ID})
	s.Require().NoError(err)

	got, err := s.service.GetByID(s.ctx, s.alice, a.ID)
	s.Require().NoError(err)
	s.Equal(a.ID, got.Album.ID)
	s.Require().Len(got.ChildAlbums, 1)
	s.Equal(b.ID, got.ChildAlbums[0].ID)
	s.Require().Len(got.MediaItems, 1)
	s.Equal(photo.ID, got.MediaItems[0].ID)
}

func (s *AlbumServiceSuite) TestGetByID_OtherFamilyIsForbiddenWithoutMutation() {
	a := s.album(s.f2, nil, "Theirs")
	before := s.albums.snapshot()

	_, err := s.service.GetByID(s.ctx, s.alice, a.ID)
	s.ErrorIs(err, models.ErrForbidden)
	s.Equal(before, s.albums.snapshot())
	s.Equal(0, s.albums.writes)

	_, err = s.service.GetByID(s.ctx, s.alice, uuid.New())
	s.ErrorIs(err, models.ErrNotFound)
}

func (s *AlbumServiceSuite) TestListForFamily() {
	a := s.album(s.f1, nil, "A")
	b := s.album(s.f1, nil, "B")
	b.IsActive = false
	s.albums.rows[b.ID] = b
	s.album(s.f2, nil, "Theirs")

	active, err := s.service.ListForFamily(s.ctx, s.alice, uuid.Nil, false)
	s.Require().NoError(err)
	s.Require().Len(active, 1)
	s.Equal(a.ID, active[0].ID)

	all, err := s.service.ListForFamily(s.ctx, s.alice, s.f1, true)
	s.Require().NoError(err)
	s.Len(all, 2)

	_, err = s.service.ListForFamily(s.ctx, s.alice, s.f2, false)
	s.ErrorIs(err, models.ErrForbidden)
}

// Every operation on another family's album is forbidden.
func (s *AlbumServiceSuite) TestAuthorizationIsUniformAcrossOperations() {
	a := s.album(s.f1, nil, "Mine")

	_, err := s.service.GetByID(s.ctx, s.bob, a.ID)
	s.ErrorIs(err, models.ErrForbidden)
	_, err = s.service.Update(s.ctx, s.bob, a.ID, models.AlbumPatch{Name: models.Some("X")})
	s.ErrorIs(err, models.ErrForbidden)
	s.ErrorIs(s.service.CascadeDeactivate(s.ctx, s.bob, a.ID), models.ErrForbidden)
	s.True(s.albums.rows[a.ID].IsActive)
}

// randomForest builds n albums in family where each album's parent is an
// earlier album or nil, so the result is acyclic.
func randomForest(r *rand.Rand, store *memAlbums, family uuid.UUID, n int) []models.Album {
	albums := make([]models.Album, 0, n)
	for i := 0; i < n; i++ {
		a := models.Album{Name: "n", FamilyID: family, IsActive: r.Intn(5) != 0}
		if i > 0 && r.Intn(4) != 0 {
			p := albums[r.Intn(len(albums))].ID
			a.ParentAlbumID = &p
		}
		albums = append(albums, store.put(a))
	}
	return albums
}

func reachableActive(rows map[uuid.UUID]models.Album, root uuid.UUID) map[uuid.UUID]bool {
	out := map[uuid.UUID]bool{root: true}
	queue := []uuid.UUID{root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, a := range rows {
			if a.ParentAlbumID != nil && *a.ParentAlbumID == cur && a.IsActive && !out[a.ID] {
				out[a.ID] = true
				queue = append(queue, a.ID)
			}
		}
	}
	return out
}

func TestCascadeDeactivate_RandomForests(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	ctx := context.Background()

	for round := 0; round < 50; round++ {
		store := newMemAlbums()
		family := uuid.New()
		user := models.Identity{UserID: uuid.New()}
		access := &memAccess{members: map[uuid.UUID]uuid.UUID{user.UserID: family}}
		svc := NewAlbumService(discardLogger(), store, &memMedia{}, access)

		albums := randomForest(r, store, family, 1+r.Intn(30))
		root := albums[r.Intn(len(albums))]

		before := store.snapshot()
		want := reachableActive(before, root.ID)

		require.NoError(t, svc.CascadeDeactivate(ctx, user, root.ID))
		after := store.snapshot()

		for id, a := range after {
			if want[id] {
				assert.False(t, a.IsActive, "round %d: album reachable from root stays active", round)
			} else {
				assert.Equal(t, before[id], a, "round %d: album outside the subtree changed", round)
			}
		}

		require.NoError(t, svc.CascadeDeactivate(ctx, user, root.ID))
		assert.Equal(t, after, store.snapshot(), "round %d: second cascade changed state", round)
	}
}
