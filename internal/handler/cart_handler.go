package handler

import (
	"net/http"
	"strconv"

	"rocketshoes/internal/domain/model"
	"rocketshoes/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddCartRequest struct {
	ProductID int64 `json:"product_id"`
}

type UpdateCartItemRequest struct {
	Amount int64 `json:"amount"`
}

// 画面に返すカート
type CartResponse struct {
	Items   model.Cart          `json:"items"`
	Summary usecase.CartSummary `json:"summary"`
}

// /cart, /cart/{id} を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/cart")

	g.GET("", h.getCart)
	g.POST("", h.addProduct)
	g.PATCH("/:id", h.updateAmount)
	g.DELETE("/:id", h.removeProduct)
}

func (h *CartHandler) getCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.cartResponse())
}

func (h *CartHandler) addProduct(c echo.Context) error {
	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.ProductID <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product_id"})
	}

	if err := h.uc.AddProduct(c.Request().Context(), req.ProductID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.cartResponse())
}

func (h *CartHandler) updateAmount(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || productID <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err = h.uc.UpdateProductAmount(c.Request().Context(), usecase.UpdateProductAmountInput{
		ProductID: productID,
		Amount:    req.Amount,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.cartResponse())
}

func (h *CartHandler) removeProduct(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || productID <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.RemoveProduct(c.Request().Context(), productID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.cartResponse())
}

// 明細と集計は同じスナップショットから作る
func (h *CartHandler) cartResponse() CartResponse {
	items := h.uc.Cart()
	if items == nil {
		items = model.Cart{}
	}
	return CartResponse{Items: items, Summary: usecase.SummaryOf(items)}
}
