package server

import (
	"net/http"

	"croche-storefront/internal/handler"
	appmw "croche-storefront/internal/middleware"
	"croche-storefront/internal/service"
	"croche-storefront/internal/session"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

type Server struct {
	echo           *echo.Echo
	catalogHandler *handler.CatalogHandler
	authHandler    *handler.AuthHandler
	orderHandler   *handler.OrderHandler
	adminHandler   *handler.AdminHandler
}

func NewServer(
	logger zerolog.Logger,
	codec *session.Codec,
	authService service.AuthService,
	catalogService service.CatalogService,
	orderService service.OrderService,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewFormValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	}))
	e.Use(echoprometheus.NewMiddleware("storefront"))
	e.Use(appmw.WithSession(codec))

	s := &Server{
		echo:           e,
		catalogHandler: handler.NewCatalogHandler(catalogService),
		authHandler:    handler.NewAuthHandler(authService, codec),
		orderHandler:   handler.NewOrderHandler(orderService),
		adminHandler:   handler.NewAdminHandler(orderService, catalogService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	e := s.echo

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echoprometheus.NewHandler())

	e.GET("/", s.catalogHandler.Index)

	// -------- auth --------
	e.GET("/login", s.authHandler.Login)
	e.GET("/auth", s.authHandler.Callback)
	e.GET("/logout", s.authHandler.Logout)

	// -------- customer --------
	e.GET("/pedido/:id", s.orderHandler.Place, appmw.RequireUser())

	// -------- admin --------
	e.GET("/adm", s.adminHandler.Panel, appmw.RequireAdmin())
	e.GET("/aprovar/:id", s.adminHandler.Approve, appmw.RequireAdmin())
	e.GET("/rejeitar/:id", s.adminHandler.Reject, appmw.RequireAdmin())
	e.POST("/novo_produto", s.adminHandler.NewProduct, appmw.RequireAdmin())
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
