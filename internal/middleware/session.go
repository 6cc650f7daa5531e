package middleware

import (
	"net/http"

	"croche-storefront/internal/model"
	"croche-storefront/internal/session"

	"github.com/labstack/echo/v4"
)

const userContextKey = "user"

// WithSession decodes the session cookie and, when present, puts the user
// summary on the request context. Anonymous requests pass through untouched.
func WithSession(codec *session.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if u := codec.Read(c); u != nil {
				c.Set(userContextKey, u)
			}
			return next(c)
		}
	}
}

// CurrentUser returns the session user set by WithSession, or nil.
func CurrentUser(c echo.Context) *session.User {
	u, _ := c.Get(userContextKey).(*session.User)
	return u
}

// RequireUser redirects anonymous requests to /login. The original request is
// dropped, not replayed after login.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentUser(c) == nil {
				return c.Redirect(http.StatusFound, "/login")
			}
			return next(c)
		}
	}
}

// RequireAdmin short-circuits every admin route with the access-denied body
// unless the session user carries the admin role.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u := CurrentUser(c)
			if u == nil || u.Role != model.RoleAdmin {
				return c.String(http.StatusForbidden, "Acesso negado")
			}
			return next(c)
		}
	}
}
