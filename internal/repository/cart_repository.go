package repository

import (
	"context"

	"rocketshoes/internal/domain/model"
)

// カートの保存・復元。保存は常に全体を上書き。
type CartRepository interface {
	// 保存値が無ければ空カート
	Load(ctx context.Context) (model.Cart, error)
	Save(ctx context.Context, cart model.Cart) error
}
