package handler

import (
	"net/http"
	"strconv"

	"croche-storefront/internal/middleware"
	"croche-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// Place creates a pending order for the product in the path. Gated by
// RequireUser, so the session user is always present here.
func (h *OrderHandler) Place(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}

	user := middleware.CurrentUser(c)

	if _, err := h.orderService.PlaceOrder(ctx, user.ID, productID); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, "/")
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
