package handler

import (
	"net/http"

	"rocketshoes/internal/domain/model"

	"github.com/labstack/echo/v4"
)

// たまった通知を取り出す約束
type ToastSource interface {
	Drain() []model.Notification
}

// /notifications のHTTP
type NotificationHandler struct {
	toasts ToastSource
}

// DI
func NewNotificationHandler(toasts ToastSource) *NotificationHandler {
	return &NotificationHandler{toasts: toasts}
}

func (h *NotificationHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/notifications", h.drain)
}

// 読んだ通知は消える
func (h *NotificationHandler) drain(c echo.Context) error {
	return c.JSON(http.StatusOK, h.toasts.Drain())
}
