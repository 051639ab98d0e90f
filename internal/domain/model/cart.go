package model

import "github.com/shopspring/decimal"

// Cart はカートの中身。ID重複なし・順序あり。
// 変更系メソッドは常に新しいCartを返し、受け取り側の要素は書き換えない。
type Cart []Product

// IDで明細を探す
func (c Cart) Find(productID int64) (Product, bool) {
	for _, p := range c {
		if p.ID == productID {
			return p, true
		}
	}
	return Product{}, false
}

func (c Cart) Contains(productID int64) bool {
	_, ok := c.Find(productID)
	return ok
}

// 末尾に追加（既にあればそのまま）
func (c Cart) WithProduct(p Product) Cart {
	if c.Contains(p.ID) {
		return c.Clone()
	}
	next := make(Cart, 0, len(c)+1)
	next = append(next, c...)
	return append(next, p)
}

// 1明細だけ数量を差し替える。他の明細と順序はそのまま。
func (c Cart) WithAmount(productID int64, amount int64) Cart {
	next := make(Cart, 0, len(c))
	for _, p := range c {
		if p.ID == productID {
			p.Amount = amount
		}
		next = append(next, p)
	}
	return next
}

// 明細を取り除く
func (c Cart) Without(productID int64) Cart {
	next := make(Cart, 0, len(c))
	for _, p := range c {
		if p.ID != productID {
			next = append(next, p)
		}
	}
	return next
}

func (c Cart) Clone() Cart {
	next := make(Cart, len(c))
	copy(next, c)
	return next
}

// 数量<=0と重複IDを落とす（保存値の読み込み時）
func (c Cart) Normalize() (Cart, int) {
	next := make(Cart, 0, len(c))
	seen := make(map[int64]struct{}, len(c))
	dropped := 0
	for _, p := range c {
		if p.Amount <= 0 {
			dropped++
			continue
		}
		if _, ok := seen[p.ID]; ok {
			dropped++
			continue
		}
		seen[p.ID] = struct{}{}
		next = append(next, p)
	}
	return next, dropped
}

// 合計点数
func (c Cart) ItemCount() int64 {
	var n int64
	for _, p := range c {
		n += p.Amount
	}
	return n
}

// 合計金額
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, p := range c {
		total = total.Add(p.Subtotal())
	}
	return total
}
