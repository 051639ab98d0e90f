package repository

import (
	"context"
	"errors"

	"rocketshoes/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// カタログAPI（商品・在庫）の取得だけを約束。
type CatalogRepository interface {
	// GET /stock/:id
	FindStock(ctx context.Context, productID int64) (model.Stock, error)
	// GET /products/:id
	FindProduct(ctx context.Context, productID int64) (model.Product, error)
}
