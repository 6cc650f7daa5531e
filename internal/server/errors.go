package server

import (
	"errors"
	"fmt"
	"net/http"

	"croche-storefront/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler maps domain errors to deterministic status codes and
// logs unexpected ones without leaking their cause to the client.
func NewHTTPErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, logger, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, logger zerolog.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, model.ErrProductNotFound):
		return http.StatusNotFound, "product not found"
	case errors.Is(err, model.ErrOrderNotFound):
		return http.StatusNotFound, "order not found"
	case errors.Is(err, model.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, model.ErrOrderAlreadyDecided):
		return http.StatusConflict, "order already decided"
	case errors.Is(err, model.ErrInvalidPrice):
		return http.StatusBadRequest, "invalid price"
	case errors.Is(err, model.ErrProvider):
		logger.Error().Err(err).Msg("identity provider failure")
		return http.StatusBadGateway, "identity provider error"
	}

	logger.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
