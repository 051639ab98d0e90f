package server

import (
	"net/http"

	"rocketshoes/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, cartH *handler.CartHandler, notifH *handler.NotificationHandler) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	cartH.RegisterRoutes(e)
	notifH.RegisterRoutes(e)
}
