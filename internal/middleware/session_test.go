package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dearly/internal/domain/models"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator map[string]models.Identity

func (s stubValidator) ValidateAccessToken(token string) (models.Identity, error) {
	if id, ok := s[token]; ok {
		return id, nil
	}
	return models.Identity{}, errors.New("bad token")
}

func newTestEcho(v TokenValidator, store sessions.Store) *echo.Echo {
	e := echo.New()
	e.Use(session.Middleware(store))
	e.Use(PrometheusMetrics)
	e.GET("/private", func(c echo.Context) error {
		id, ok := Identity(c)
		if !ok {
			return c.NoContent(http.StatusTeapot)
		}
		return c.String(http.StatusOK, id.UserID.String())
	}, RequireSession(v))
	e.GET("/login", func(c echo.Context) error {
		sess, err := session.Get(SessionName, c)
		if err != nil {
			return err
		}
		sess.Values[SessionTokenKey] = c.QueryParam("token")
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	})
	return e
}

func TestRequireSession(t *testing.T) {
	user := models.Identity{UserID: uuid.New(), Email: "a@b.c"}
	v := stubValidator{"good": user}
	e := newTestEcho(v, sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef")))

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "bearer token", header: "Bearer good", wantStatus: http.StatusOK},
		{name: "lowercase scheme", header: "bearer good", wantStatus: http.StatusOK},
		{name: "invalid token", header: "Bearer bad", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic good", wantStatus: http.StatusUnauthorized},
		{name: "missing", header: "", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, user.UserID.String(), rec.Body.String())
			} else {
				assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
			}
		})
	}
}

func TestRequireSession_Cookie(t *testing.T) {
	user := models.Identity{UserID: uuid.New()}
	e := newTestEcho(stubValidator{"good": user}, sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef")))

	login := httptest.NewRecorder()
	e.ServeHTTP(login, httptest.NewRequest(http.MethodGet, "/login?token=good", nil))
	require.Equal(t, http.StatusOK, login.Code)
	cookies := login.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.UserID.String(), rec.Body.String())
}
