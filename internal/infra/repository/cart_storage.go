package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"rocketshoes/internal/domain/model"
	repo "rocketshoes/internal/repository"

	"github.com/sirupsen/logrus"
)

// localStorageと同じキー
const DefaultCartKey = "@RocketShoes:cart"

// CartStorageRepository はカートをJSON配列にしてkey-valueストアの1キーに保存する。
type CartStorageRepository struct {
	store repo.KeyValueStore
	key   string
	log   *logrus.Logger
}

// DI
func NewCartStorageRepository(store repo.KeyValueStore, key string, log *logrus.Logger) *CartStorageRepository {
	if key == "" {
		key = DefaultCartKey
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &CartStorageRepository{store: store, key: key, log: log}
}

// 保存されたカートを読む。
// 値が無い・壊れている場合は空カート（壊れているときは警告ログ）。
func (r *CartStorageRepository) Load(ctx context.Context) (model.Cart, error) {
	raw, ok, err := r.store.GetItem(ctx, r.key)
	if err != nil {
		return model.Cart{}, fmt.Errorf("load cart %q: %w", r.key, err)
	}
	if !ok || raw == "" {
		return model.Cart{}, nil
	}

	var cart model.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		r.log.WithError(err).WithField("key", r.key).Warn("cart: persisted value is not valid JSON, resetting to empty cart")
		return model.Cart{}, nil
	}
	if cart == nil {
		return model.Cart{}, nil
	}

	cart, dropped := cart.Normalize()
	if dropped > 0 {
		r.log.WithFields(logrus.Fields{
			"key":     r.key,
			"dropped": dropped,
		}).Warn("cart: dropped invalid persisted entries")
	}
	return cart, nil
}

// カート全体で上書き
func (r *CartStorageRepository) Save(ctx context.Context, cart model.Cart) error {
	if cart == nil {
		cart = model.Cart{}
	}
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := r.store.SetItem(ctx, r.key, string(data)); err != nil {
		return fmt.Errorf("save cart %q: %w", r.key, err)
	}
	return nil
}
