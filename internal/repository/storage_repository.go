package repository

import "context"

// ブラウザのlocalStorage相当のkey-valueストア
type KeyValueStore interface {
	// 無ければ ok=false
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, key string, value string) error
	RemoveItem(ctx context.Context, key string) error
}
