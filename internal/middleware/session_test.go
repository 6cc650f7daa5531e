package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"croche-storefront/internal/model"
	"croche-storefront/internal/session"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestWithSession_SetsUserFromCookie(t *testing.T) {
	e := echo.New()
	codec := session.NewCodec("test-secret", time.Hour)

	token, err := codec.Issue(&session.User{ID: 5, Email: "a@b.c", Role: model.RoleCustomer})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	c := e.NewContext(req, httptest.NewRecorder())

	var seen *session.User
	err = WithSession(codec)(func(c echo.Context) error {
		seen = CurrentUser(c)
		return nil
	})(c)
	require.NoError(t, err)

	require.NotNil(t, seen)
	assert.Equal(t, uint(5), seen.ID)
}

func TestWithSession_AnonymousPassesThrough(t *testing.T) {
	e := echo.New()
	codec := session.NewCodec("test-secret", time.Hour)

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	err := WithSession(codec)(func(c echo.Context) error {
		assert.Nil(t, CurrentUser(c))
		return nil
	})(c)
	require.NoError(t, err)
}

func TestRequireUser_RedirectsAnonymousToLogin(t *testing.T) {
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/pedido/1", nil), rec)

	called := false
	err := RequireUser()(func(c echo.Context) error {
		called = true
		return nil
	})(c)
	require.NoError(t, err)

	assert.False(t, called)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestRequireUser_AllowsSessionUser(t *testing.T) {
	e := echo.New()

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/pedido/1", nil), httptest.NewRecorder())
	c.Set("user", &session.User{ID: 1, Role: model.RoleCustomer})

	called := false
	err := RequireUser()(func(c echo.Context) error {
		called = true
		return okHandler(c)
	})(c)
	require.NoError(t, err)
	assert.True(t, called)
}

func TestRequireAdmin_DeniesAnonymous(t *testing.T) {
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/adm", nil), rec)

	called := false
	err := RequireAdmin()(func(c echo.Context) error {
		called = true
		return nil
	})(c)
	require.NoError(t, err)

	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Acesso negado", rec.Body.String())
}

func TestRequireAdmin_DeniesNonAdmin(t *testing.T) {
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/adm", nil), rec)
	c.Set("user", &session.User{ID: 2, Email: "customer@example.com", Role: model.RoleCustomer})

	called := false
	err := RequireAdmin()(func(c echo.Context) error {
		called = true
		return nil
	})(c)
	require.NoError(t, err)

	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Acesso negado", rec.Body.String())
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	e := echo.New()

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/adm", nil), httptest.NewRecorder())
	c.Set("user", &session.User{ID: 1, Email: "admin@example.com", Role: model.RoleAdmin})

	called := false
	err := RequireAdmin()(func(c echo.Context) error {
		called = true
		return okHandler(c)
	})(c)
	require.NoError(t, err)
	assert.True(t, called)
}
