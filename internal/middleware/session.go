package middleware

import (
	"net/http"
	"strings"

	"dearly/internal/domain/models"
	"dearly/internal/transport/http/dto/response"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// SessionName is the cookie that carries the access token for browsers.
	SessionName = "dearly_session"
	// SessionTokenKey is the session value holding the access token.
	SessionTokenKey = "access_token"

	identityKey = "identity"
)

type TokenValidator interface {
	ValidateAccessToken(accessToken string) (models.Identity, error)
}

// RequireSession rejects requests without a valid access token with 401.
// The token is read from "Authorization: Bearer", then from the session cookie.
func RequireSession(validator TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := tokenFromRequest(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, response.ErrUnauthorized)
			}

			identity, err := validator.ValidateAccessToken(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, response.ErrUnauthorized)
			}

			c.Set(identityKey, identity)

			return next(c)
		}
	}
}

// Identity returns the caller stored by RequireSession.
func Identity(c echo.Context) (models.Identity, bool) {
	identity, ok := c.Get(identityKey).(models.Identity)
	return identity, ok
}

func tokenFromRequest(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if scheme, token, found := strings.Cut(header, " "); found && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}

	sess, err := session.Get(SessionName, c)
	if err != nil {
		return ""
	}

	token, _ := sess.Values[SessionTokenKey].(string)

	return token
}
