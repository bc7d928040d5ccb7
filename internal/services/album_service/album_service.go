package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"dearly/internal/domain/models"
	"dearly/internal/lib/logger/sl"
	"dearly/internal/metrics"
	"dearly/internal/repository"
	"dearly/internal/storage"

	"github.com/google/uuid"
)

const maxAlbumNameLength = 255

// Authorizer answers family membership questions for a user.
type Authorizer interface {
	Authorize(ctx context.Context, userID, familyID uuid.UUID) error
	FamilyOf(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
}

type AlbumService struct {
	log    *slog.Logger
	albums repository.AlbumRepository
	media  repository.MediaRepository
	access Authorizer
}

func NewAlbumService(
	log *slog.Logger,
	albums repository.AlbumRepository,
	media repository.MediaRepository,
	access Authorizer,
) *AlbumService {
	return &AlbumService{
		log:    log,
		albums: albums,
		media:  media,
		access: access,
	}
}

func (s *AlbumService) Create(ctx context.Context, identity models.Identity, input models.NewAlbum) (models.Album, error) {
	const op = "services.AlbumService.Create"

	log := s.log.With(
		slog.String("op", op),
		slog.String("user_id", identity.UserID.String()),
	)

	input.Name = strings.TrimSpace(input.Name)
	if err := validateAlbumName(input.Name); err != nil {
		log.Warn("invalid album", sl.Err(err))
		return models.Album{}, fmt.Errorf("%s: %w", op, err)
	}
	if input.FamilyID == uuid.Nil {
		return models.Album{}, fmt.Errorf("%s: %w: familyId is required", op, models.ErrValidation)
	}

	if err := s.access.Authorize(ctx, identity.UserID, input.FamilyID); err != nil {
		return models.Album{}, fmt.Errorf("%s: %w", op, err)
	}

	if input.ParentAlbumID != nil {
		parent, err := s.loadAlbum(ctx, op, *input.ParentAlbumID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return models.Album{}, fmt.Errorf("%s: %w: parent album does not exist", op, models.ErrValidation)
			}
			return models.Album{}, err
		}
		if err := checkParent(parent, input.FamilyID); err != nil {
			log.Warn("rejected parent album", sl.Err(err))
			return models.Album{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	album, err := s.albums.CreateAlbum(ctx, input)
	if err != nil {
		log.Error("failed to create album", sl.Err(err))
		return models.Album{}, storeFailure(op, err)
	}

	log.Info("album created", slog.String("album_id", album.ID.String()))

	return album, nil
}

func (s *AlbumService) Update(ctx context.Context, identity models.Identity, albumID uuid.UUID, patch models.AlbumPatch) (models.Album, error) {
	const op = "services.AlbumService.Update"

	log := s.log.With(
		slog.String("op", op),
		slog.String("user_id", identity.UserID.String()),
		slog.String("album_id", albumID.String()),
	)

	current, err := s.loadAlbum(ctx, op, albumID)
	if err != nil {
		return models.Album{}, err
	}

	if err := s.access.Authorize(ctx, identity.UserID, current.FamilyID); err != nil {
		return models.Album{}, fmt.Errorf("%s: %w", op, err)
	}

	if patch.IsEmpty() {
		return current, nil
	}

	updates := make(map[string]interface{}, 3)

	if patch.Name.Set {
		if patch.Name.Value == nil {
			return models.Album{}, fmt.Errorf("%s: %w: name cannot be cleared", op, models.ErrValidation)
		}
		name := strings.TrimSpace(*patch.Name.Value)
		if err := validateAlbumName(name); err != nil {
			return models.Album{}, fmt.Errorf("%s: %w", op, err)
		}
		updates["name"] = name
	}

	if patch.ParentAlbumID.Set {
		if patch.ParentAlbumID.Value == nil {
			updates["parent_album_id"] = nil
		} else {
			parentID := *patch.ParentAlbumID.Value
			if err := s.checkReparent(ctx, op, current, parentID); err != nil {
				log.Warn("rejected reparent", sl.Err(err))
				return models.Album{}, err
			}
			updates["parent_album_id"] = parentID
		}
	}

	if patch.CoverImage.Set {
		if patch.CoverImage.Value == nil {
			updates["cover_image"] = nil
		} else {
			updates["cover_image"] = *patch.CoverImage.Value
		}
	}

	updated, err := s.albums.UpdateAlbumFields(ctx, albumID, updates)
	if err != nil {
		if errors.Is(err, storage.ErrAlbumNotFound) {
			return models.Album{}, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		log.Error("failed to update album", sl.Err(err))
		return models.Album{}, storeFailure(op, err)
	}

	log.Info("album updated")

	return updated, nil
}

// CascadeDeactivate soft-deletes albumID and every active album below it.
//
// The subtree is collected first, depth-first with an explicit stack, and only
// then written with one UPDATE. A node reached twice means the parent links form
// a cycle; nothing is written in that case.
func (s *AlbumService) CascadeDeactivate(ctx context.Context, identity models.Identity, albumID uuid.UUID) (err error) {
	const op = "services.AlbumService.CascadeDeactivate"

	log := s.log.With(
		slog.String("op", op),
		slog.String("user_id", identity.UserID.String()),
		slog.String("album_id", albumID.String()),
	)

	defer func() {
		switch {
		case err == nil:
			metrics.CascadeRuns.WithLabelValues("ok").Inc()
		case errors.Is(err, models.ErrCycleDetected):
			metrics.CascadeRuns.WithLabelValues("cycle").Inc()
		default:
			metrics.CascadeRuns.WithLabelValues("error").Inc()
		}
	}()

	root, err := s.loadAlbum(ctx, op, albumID)
	if err != nil {
		return err
	}

	if err := s.access.Authorize(ctx, identity.UserID, root.FamilyID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ids, err := s.collectSubtree(ctx, root)
	if err != nil {
		if errors.Is(err, models.ErrCycleDetected) {
			log.Error("album hierarchy is cyclic", sl.Err(err))
			return fmt.Errorf("%s: %w", op, err)
		}
		log.Error("failed to collect subtree", sl.Err(err))
		return storeFailure(op, err)
	}

	changed, err := s.albums.DeactivateAlbums(ctx, ids)
	if err != nil {
		log.Error("failed to deactivate albums", sl.Err(err))
		return storeFailure(op, err)
	}

	metrics.AlbumsDeactivated.Add(float64(changed))
	log.Info("albums deactivated",
		slog.Int("visited", len(ids)),
		slog.Int64("changed", changed),
	)

	return nil
}

// collectSubtree returns root followed by its active descendants in depth-first
// preorder. Only albums of the root's family are followed.
func (s *AlbumService) collectSubtree(ctx context.Context, root models.Album) ([]uuid.UUID, error) {
	visited := map[uuid.UUID]struct{}{root.ID: {}}
	stack := []uuid.UUID{root.ID}
	var ids []uuid.UUID

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ids = append(ids, current)

		children, err := s.albums.ListActiveChildren(ctx, current, root.FamilyID)
		if err != nil {
			return nil, err
		}

		// reversed so the first child is popped first
		for i := len(children) - 1; i >= 0; i-- {
			child := children[i]
			if _, seen := visited[child.ID]; seen {
				return nil, fmt.Errorf("%w: album %s reached twice", models.ErrCycleDetected, child.ID)
			}
			visited[child.ID] = struct{}{}
			stack = append(stack, child.ID)
		}
	}

	return ids, nil
}

func (s *AlbumService) GetByID(ctx context.Context, identity models.Identity, albumID uuid.UUID) (models.AlbumDetails, error) {
	const op = "services.AlbumService.GetByID"

	log := s.log.With(
		slog.String("op", op),
		slog.String("user_id", identity.UserID.String()),
		slog.String("album_id", albumID.String()),
	)

	album, err := s.loadAlbum(ctx, op, albumID)
	if err != nil {
		return models.AlbumDetails{}, err
	}

	if err := s.access.Authorize(ctx, identity.UserID, album.FamilyID); err != nil {
		return models.AlbumDetails{}, fmt.Errorf("%s: %w", op, err)
	}

	children, err := s.albums.ListActiveChildren(ctx, album.ID, album.FamilyID)
	if err != nil {
		log.Error("failed to list child albums", sl.Err(err))
		return models.AlbumDetails{}, storeFailure(op, err)
	}

	items, err := s.media.ListActiveByAlbum(ctx, album.ID)
	if err != nil {
		log.Error("failed to list media", sl.Err(err))
		return models.AlbumDetails{}, storeFailure(op, err)
	}

	return models.AlbumDetails{
		Album:       album,
		ChildAlbums: children,
		MediaItems:  items,
	}, nil
}

// ListForFamily lists the albums of familyID. When familyID is uuid.Nil the
// caller's own family is used. Inactive albums are only included on request.
func (s *AlbumService) ListForFamily(ctx context.Context, identity models.Identity, familyID uuid.UUID, includeInactive bool) ([]models.Album, error) {
	const op = "services.AlbumService.ListForFamily"

	log := s.log.With(
		slog.String("op", op),
		slog.String("user_id", identity.UserID.String()),
	)

	if familyID == uuid.Nil {
		own, err := s.access.FamilyOf(ctx, identity.UserID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		familyID = own
	} else if err := s.access.Authorize(ctx, identity.UserID, familyID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	albums, err := s.albums.ListByFamily(ctx, familyID, includeInactive)
	if err != nil {
		log.Error("failed to list albums", sl.Err(err))
		return nil, storeFailure(op, err)
	}

	log.Debug("albums listed", slog.Int("count", len(albums)), slog.Bool("include_inactive", includeInactive))

	return albums, nil
}

// checkReparent rejects a new parent that is missing, inactive, in another
// family, or that is the album itself or one of its descendants.
func (s *AlbumService) checkReparent(ctx context.Context, op string, album models.Album, parentID uuid.UUID) error {
	if parentID == album.ID {
		return fmt.Errorf("%s: %w: album cannot be its own parent", op, models.ErrCycleDetected)
	}

	parent, err := s.loadAlbum(ctx, op, parentID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("%s: %w: parent album does not exist", op, models.ErrValidation)
		}
		return err
	}

	if err := checkParent(parent, album.FamilyID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	visited := map[uuid.UUID]struct{}{parent.ID: {}}
	next := parent.ParentAlbumID

	for next != nil {
		if *next == album.ID {
			return fmt.Errorf("%s: %w: new parent is a descendant of the album", op, models.ErrCycleDetected)
		}
		if _, seen := visited[*next]; seen {
			return fmt.Errorf("%s: %w: ancestors of %s loop", op, models.ErrCycleDetected, parent.ID)
		}
		visited[*next] = struct{}{}

		ancestor, err := s.loadAlbum(ctx, op, *next)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return nil
			}
			return err
		}
		next = ancestor.ParentAlbumID
	}

	return nil
}

func (s *AlbumService) loadAlbum(ctx context.Context, op string, albumID uuid.UUID) (models.Album, error) {
	album, err := s.albums.GetAlbum(ctx, albumID)
	if err != nil {
		if errors.Is(err, storage.ErrAlbumNotFound) {
			return models.Album{}, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		s.log.Error("failed to load album", slog.String("op", op), sl.Err(err))
		return models.Album{}, storeFailure(op, err)
	}

	return album, nil
}

func checkParent(parent models.Album, familyID uuid.UUID) error {
	if parent.FamilyID != familyID {
		return fmt.Errorf("%w: parent album belongs to another family", models.ErrValidation)
	}
	if !parent.IsActive {
		return fmt.Errorf("%w: parent album is deleted", models.ErrValidation)
	}
	return nil
}

func validateAlbumName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", models.ErrValidation)
	}
	if len(name) > maxAlbumNameLength {
		return fmt.Errorf("%w: name must be %d characters or less", models.ErrValidation, maxAlbumNameLength)
	}
	return nil
}

func storeFailure(op string, err error) error {
	return fmt.Errorf("%s: %w", op, models.NewStoreError(op, "", err))
}
