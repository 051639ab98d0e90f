package handler

import (
	"net/http"

	"rocketshoes/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if ce, ok := usecase.AsCartError(err); ok {
		return c.JSON(statusForKind(ce.Kind), ErrorResponse{Error: ce.Message, Kind: string(ce.Kind)})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func statusForKind(kind usecase.CartErrorKind) int {
	switch kind {
	case usecase.CartErrorOutOfStock:
		return http.StatusConflict
	case usecase.CartErrorNotInCart:
		return http.StatusNotFound
	case usecase.CartErrorFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
