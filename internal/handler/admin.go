package handler

import (
	"net/http"

	"croche-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	orderService   service.OrderService
	catalogService service.CatalogService
}

func NewAdminHandler(orderService service.OrderService, catalogService service.CatalogService) *AdminHandler {
	return &AdminHandler{
		orderService:   orderService,
		catalogService: catalogService,
	}
}

type newProductForm struct {
	Nome      string `form:"nome" validate:"required,max=150"`
	Descricao string `form:"descricao"`
	Preco     string `form:"preco" validate:"required"`
	Imagem    string `form:"imagem" validate:"max=300"`
}

// Panel lists every order, newest first, together with the full catalog.
func (h *AdminHandler) Panel(c echo.Context) error {
	ctx := c.Request().Context()

	pedidos, err := h.orderService.ListOrders(ctx)
	if err != nil {
		return err
	}

	produtos, err := h.catalogService.ListProducts(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"pedidos":  pedidos,
		"produtos": produtos,
	})
}

func (h *AdminHandler) Approve(c echo.Context) error {
	ctx := c.Request().Context()

	pedidoID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}

	if _, err := h.orderService.Approve(ctx, pedidoID); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, "/adm")
}

func (h *AdminHandler) Reject(c echo.Context) error {
	ctx := c.Request().Context()

	pedidoID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}

	if _, err := h.orderService.Reject(ctx, pedidoID); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, "/adm")
}

func (h *AdminHandler) NewProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var form newProductForm
	if err := c.Bind(&form); err != nil {
		return err
	}
	if err := c.Validate(&form); err != nil {
		return err
	}

	if _, err := h.catalogService.AddProduct(ctx, form.Nome, form.Descricao, form.Preco, form.Imagem); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, "/adm")
}
