package model

// 在庫（/stock/:id）。読み取り専用。
type Stock struct {
	ID     int64 `json:"id"`
	Amount int64 `json:"amount"`
}

// 1つ以上あるか
func (s Stock) Available() bool {
	return s.Amount > 0
}

// 指定数量をまかなえるか
func (s Stock) Covers(amount int64) bool {
	return amount <= s.Amount
}
