package handler

import (
	"net/http"

	"croche-storefront/internal/service"
	"croche-storefront/internal/session"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	authService service.AuthService
	codec       *session.Codec
}

func NewAuthHandler(authService service.AuthService, codec *session.Codec) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		codec:       codec,
	}
}

func (h *AuthHandler) Login(c echo.Context) error {
	state := uuid.NewString()
	session.WriteState(c, state)

	return c.Redirect(http.StatusFound, h.authService.LoginURL(state))
}

func (h *AuthHandler) Callback(c echo.Context) error {
	ctx := c.Request().Context()

	state := c.QueryParam("state")
	if state == "" || state != session.ReadState(c) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid oauth state")
	}

	user, err := h.authService.CompleteLogin(ctx, c.QueryParam("code"))
	if err != nil {
		return err
	}

	if err := h.codec.Write(c, user); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c echo.Context) error {
	h.codec.Clear(c)
	return c.Redirect(http.StatusFound, "/")
}
