package http

import (
	"log/slog"
	"net/http"

	"dearly/internal/transport/http/dto"
	"dearly/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ListAlbums godoc
// @Summary List albums of a family
// @Description Returns active albums of the given family, or of the caller's family when familyId is omitted.
// @Tags albums
// @Produce json
// @Param familyId query string false "Family UUID" format(uuid)
// @Param includeInactive query boolean false "Include soft-deleted albums"
// @Success 200 {object} response.AlbumsResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /albums [get]
func (r *Routers) ListAlbums(c echo.Context) error {
	const op = "http.routers.ListAlbums"

	log := r.log.With(slog.String("op", op))

	caller, err := identity(c)
	if err != nil {
		return r.fail(c, log, err)
	}

	var query dto.ListAlbumsQuery
	if err := c.Bind(&query); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequest)
	}

	familyID := uuid.Nil
	if query.FamilyID != "" {
		familyID, err = uuid.Parse(query.FamilyID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, response.Error("Invalid family id"))
		}
	}

	albums, err := r.AlbumService.ListForFamily(c.Request().Context(), caller, familyID, query.IncludeInactive)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.AlbumsResponse{Albums: albums})
}

// CreateAlbum godoc
// @Summary Create an album
// @Description Creates an album in the caller's family, optionally under a parent album of the same family.
// @Tags albums
// @Accept json
// @Produce json
// @Param request body dto.CreateAlbumRequest true "Album"
// @Success 201 {object} response.AlbumResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /albums [post]
func (r *Routers) CreateAlbum(c echo.Context) error {
	const op = "http.routers.CreateAlbum"

	log := r.log.With(slog.String("op", op))

	caller, err := identity(c)
	if err != nil {
		return r.fail(c, log, err)
	}

	var req dto.CreateAlbumRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequest)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	album, err := r.AlbumService.Create(c.Request().Context(), caller, req.ToModel())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.AlbumResponse{Album: album})
}

// GetAlbum godoc
// @Summary Get an album
// @Description Returns the album with its direct active sub-albums and active media.
// @Tags albums
// @Produce json
// @Param id path string true "Album UUID" format(uuid)
// @Success 200 {object} models.AlbumDetails
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /albums/{id} [get]
func (r *Routers) GetAlbum(c echo.Context) error {
	const op = "http.routers.GetAlbum"

	log := r.log.With(slog.String("op", op))

	caller, err := identity(c)
	if err != nil {
		return r.fail(c, log, err)
	}

	albumID, ok := albumIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidAlbumID)
	}

	details, err := r.AlbumService.GetByID(c.Request().Context(), caller, albumID)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, details)
}

// UpdateAlbum godoc
// @Summary Update an album
// @Description Partial update: only keys present in the body change. null clears parentAlbumId or coverImage.
// @Tags albums
// @Accept json
// @Produce json
// @Param id path string true "Album UUID" format(uuid)
// @Param request body dto.UpdateAlbumRequest true "Fields to change"
// @Success 200 {object} response.AlbumResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Reparenting would create a cycle"
// @Security BearerAuth
// @Router /albums/{id} [patch]
func (r *Routers) UpdateAlbum(c echo.Context) error {
	const op = "http.routers.UpdateAlbum"

	log := r.log.With(slog.String("op", op))

	caller, err := identity(c)
	if err != nil {
		return r.fail(c, log, err)
	}

	albumID, ok := albumIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidAlbumID)
	}

	var req dto.UpdateAlbumRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequest)
	}

	album, err := r.AlbumService.Update(c.Request().Context(), caller, albumID, req.ToPatch())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.AlbumResponse{Album: album})
}

// DeleteAlbum godoc
// @Summary Delete an album
// @Description Soft-deletes the album and every active album below it.
// @Tags albums
// @Produce json
// @Param id path string true "Album UUID" format(uuid)
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Album hierarchy contains a cycle"
// @Security BearerAuth
// @Router /albums/{id} [delete]
func (r *Routers) DeleteAlbum(c echo.Context) error {
	const op = "http.routers.DeleteAlbum"

	log := r.log.With(slog.String("op", op))

	caller, err := identity(c)
	if err != nil {
		return r.fail(c, log, err)
	}

	albumID, ok := albumIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidAlbumID)
	}

	if err := r.AlbumService.CascadeDeactivate(c.Request().Context(), caller, albumID); err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.MessageResponse{Message: "Album and all sub-albums deleted"})
}

// AddMedia godoc
// @Summary Add media to an album
// @Description Registers an already hosted photo or video URL in the album.
// @Tags media
// @Accept json
// @Produce json
// @Param id path string true "Album UUID" format(uuid)
// @Param request body dto.AddMediaRequest true "Media"
// @Success 201 {object} response.MediaResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /albums/{id}/media [post]
func (r *Routers) AddMedia(c echo.Context) error {
	const op = "http.routers.AddMedia"

	log := r.log.With(slog.String("op", op))

	caller, err := identity(c)
	if err != nil {
		return r.fail(c, log, err)
	}

	albumID, ok := albumIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidAlbumID)
	}

	var req dto.AddMediaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequest)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	media, err := r.MediaService.AddMedia(c.Request().Context(), caller, albumID, req.ToModel())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.MediaResponse{Media: media})
}
