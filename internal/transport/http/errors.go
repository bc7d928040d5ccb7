package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"dearly/internal/domain/models"
	"dearly/internal/lib/logger/sl"
	"dearly/internal/middleware"
	"dearly/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// fail writes err as a JSON error with the status its kind maps to.
func (r *Routers) fail(c echo.Context, log *slog.Logger, err error) error {
	var storeErr *models.StoreError

	switch {
	case errors.Is(err, models.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, response.ErrUnauthorized)
	case errors.Is(err, models.ErrForbidden):
		log.Warn("forbidden", sl.Err(err))
		return c.JSON(http.StatusForbidden, response.ErrForbidden)
	case errors.Is(err, models.ErrNotFound):
		return c.JSON(http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, models.ErrCycleDetected):
		log.Warn("cycle detected", sl.Err(err))
		return c.JSON(http.StatusConflict, response.Error(models.ErrCycleDetected.Error()))
	case errors.Is(err, models.ErrTooManyAttempts):
		return c.JSON(http.StatusTooManyRequests, response.ErrTooManyTries)
	case errors.Is(err, models.ErrValidation):
		return c.JSON(http.StatusBadRequest, response.Error(validationMessage(err)))
	case errors.As(err, &storeErr):
		log.Warn("store error", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Error(storeErr.Error()))
	default:
		log.Error("internal error", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}
}

// validationMessage strips the op prefixes and keeps the part after the
// validation sentinel, e.g. "validation failed: name is required".
func validationMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, models.ErrValidation.Error()); i >= 0 {
		return msg[i:]
	}

	return models.ErrValidation.Error()
}

func identity(c echo.Context) (models.Identity, error) {
	id, ok := middleware.Identity(c)
	if !ok {
		return models.Identity{}, models.ErrUnauthorized
	}
	return id, nil
}

func albumIDParam(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
