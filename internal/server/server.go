package server

import (
	"rocketshoes/internal/handler"
	"rocketshoes/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// New はミドルウェアとルートを登録したechoを返す。
func New(log *logrus.Logger, cartH *handler.CartHandler, notifH *handler.NotificationHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(log))

	RegisterRoutes(e, cartH, notifH)
	return e
}

func Start(addr string, e *echo.Echo) error {
	return e.Start(addr)
}
