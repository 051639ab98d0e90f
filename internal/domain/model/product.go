package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// カタログAPIの商品（/products/:id）
// Amountはカート内の数量。APIの値は追加時に1で上書きする。
type Product struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"imageUrl"`
	Amount   int64           `json:"amount"`
}

// priceは文字列ではなく数値で書く（localStorageの既存データと同じ形）
func (p Product) MarshalJSON() ([]byte, error) {
	type plain Product
	return json.Marshal(struct {
		plain
		Price json.RawMessage `json:"price"`
	}{
		plain: plain(p),
		Price: json.RawMessage(p.Price.String()),
	})
}

// 明細の小計（price × amount）
func (p Product) Subtotal() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(p.Amount))
}
