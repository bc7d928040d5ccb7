package response

import "dearly/internal/domain/models"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"Forbidden"`
}

var (
	ErrUnauthorized   = ErrorResponse{Error: "Unauthorized"}
	ErrForbidden      = ErrorResponse{Error: "Forbidden"}
	ErrNotFound       = ErrorResponse{Error: "Not found"}
	ErrInvalidRequest = ErrorResponse{Error: "Invalid request body"}
	ErrInvalidAlbumID = ErrorResponse{Error: "Invalid album id"}
	ErrTooManyTries   = ErrorResponse{Error: "Too many sign-in attempts, try again later"}
	ErrInternal       = ErrorResponse{Error: "Internal server error"}
)

func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

type MessageResponse struct {
	Message string `json:"message" example:"Album and all sub-albums deleted"`
}

type AlbumsResponse struct {
	Albums []models.Album `json:"albums"`
}

type AlbumResponse struct {
	Album models.Album `json:"album"`
}

type MediaResponse struct {
	Media models.Media `json:"media"`
}

type UserResponse struct {
	User models.User `json:"user"`
}

type SessionResponse struct {
	User    models.User       `json:"user"`
	Session *models.TokenPair `json:"session"`
}

type RefreshResponse struct {
	Session *models.TokenPair `json:"session"`
}
