package handler

import (
	"net/http"

	"croche-storefront/internal/middleware"
	"croche-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// Index lists every product together with the session user, which is null for
// anonymous visitors.
func (h *CatalogHandler) Index(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.catalogService.ListProducts(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"products": products,
		"user":     middleware.CurrentUser(c),
	})
}
