package http

import (
	"log/slog"
	"net/http"
	"time"

	"dearly/internal/lib/logger/sl"
	"dearly/internal/middleware"
	"dearly/internal/transport/http/dto"
	"dearly/internal/transport/http/dto/response"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// SignUp godoc
// @Summary Register a new user
// @Description Creates the account, a family (familyName or "<lastName> Family") and the profile.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignUpRequest true "Sign-up data"
// @Success 201 {object} response.UserResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /auth/signup [post]
func (r *Routers) SignUp(c echo.Context) error {
	const op = "http.routers.SignUp"

	log := r.log.With(slog.String("op", op))

	var req dto.SignUpRequest
	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequest)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	input, err := req.ToModel()
	if err != nil {
		return r.fail(c, log, err)
	}

	user, err := r.UserService.SignUp(c.Request().Context(), input)
	if err != nil {
		return r.fail(c, log, err)
	}

	log.Info("user registered successfully", slog.String("user_id", user.ID.String()))

	return c.JSON(http.StatusCreated, response.UserResponse{User: user})
}

// SignIn godoc
// @Summary Sign in with email and password
// @Description Returns the user and a token pair, and sets the session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignInRequest true "Credentials"
// @Success 200 {object} response.SessionResponse
// @Failure 400 {object} response.ErrorResponse "Invalid login credentials"
// @Failure 429 {object} response.ErrorResponse
// @Router /auth/signin [post]
func (r *Routers) SignIn(c echo.Context) error {
	const op = "http.routers.SignIn"

	log := r.log.With(slog.String("op", op))

	var req dto.SignInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequest)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	user, tokens, err := r.UserService.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return r.fail(c, log, err)
	}

	maxAge := int(time.Until(time.Unix(tokens.ExpiresAt, 0)).Seconds())
	if err := r.writeSession(c, tokens.AccessToken, maxAge); err != nil {
		log.Error("failed to save session", sl.Err(err))
	}

	return c.JSON(http.StatusOK, response.SessionResponse{User: user, Session: tokens})
}

// Refresh godoc
// @Summary Rotate the token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} response.RefreshResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/refresh [post]
func (r *Routers) Refresh(c echo.Context) error {
	const op = "http.routers.Refresh"

	log := r.log.With(slog.String("op", op))

	var req dto.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequest)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	tokens, err := r.UserService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return r.fail(c, log, err)
	}

	maxAge := int(time.Until(time.Unix(tokens.ExpiresAt, 0)).Seconds())
	if err := r.writeSession(c, tokens.AccessToken, maxAge); err != nil {
		log.Error("failed to save session", sl.Err(err))
	}

	return c.JSON(http.StatusOK, response.RefreshResponse{Session: tokens})
}

// SignOut godoc
// @Summary Sign out
// @Description Revokes every refresh token of the caller and clears the session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Failure 401 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /auth/signout [post]
func (r *Routers) SignOut(c echo.Context) error {
	const op = "http.routers.SignOut"

	log := r.log.With(slog.String("op", op))

	caller, err := identity(c)
	if err != nil {
		return r.fail(c, log, err)
	}

	if err := r.UserService.SignOut(c.Request().Context(), caller); err != nil {
		return r.fail(c, log, err)
	}

	if err := r.writeSession(c, "", -1); err != nil {
		log.Error("failed to clear session", sl.Err(err))
	}

	return c.JSON(http.StatusOK, response.MessageResponse{Message: "Signed out"})
}

// Me godoc
// @Summary Current user
// @Description Returns the caller's profile and family.
// @Tags auth
// @Produce json
// @Success 200 {object} models.Account
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (r *Routers) Me(c echo.Context) error {
	const op = "http.routers.Me"

	log := r.log.With(slog.String("op", op))

	caller, err := identity(c)
	if err != nil {
		return r.fail(c, log, err)
	}

	account, err := r.UserService.Me(c.Request().Context(), caller)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, account)
}

// writeSession stores the access token in the session cookie. A negative
// maxAge deletes the cookie.
func (r *Routers) writeSession(c echo.Context, accessToken string, maxAge int) error {
	sess, err := session.Get(middleware.SessionName, c)
	if err != nil {
		return err
	}

	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   r.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	if maxAge < 0 {
		delete(sess.Values, middleware.SessionTokenKey)
	} else {
		sess.Values[middleware.SessionTokenKey] = accessToken
	}

	return sess.Save(c.Request(), c.Response())
}
