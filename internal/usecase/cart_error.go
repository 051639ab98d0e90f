package usecase

import (
	"errors"
	"fmt"
)

// 画面に出す固定メッセージ（pt-BR）
const (
	MsgOutOfStock   = "Quantidade solicitada fora de estoque"
	MsgAddFailed    = "Erro na adição do produto"
	MsgRemoveFailed = "Erro na remoção do produto"
	MsgUpdateFailed = "Erro na alteração de quantidade do produto"
)

type CartErrorKind string

const (
	// 在庫不足（業務ルール）
	CartErrorOutOfStock CartErrorKind = "out_of_stock"
	// カートに無い商品を操作した
	CartErrorNotInCart CartErrorKind = "not_in_cart"
	// 通信・パース・保存の失敗
	CartErrorFailure CartErrorKind = "failure"
)

// CartError はカート操作の失敗。Messageは通知と同じ文言。
type CartError struct {
	Kind      CartErrorKind
	Message   string
	ProductID int64
	Err       error
}

func (e *CartError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *CartError) Unwrap() error {
	return e.Err
}

func NewCartError(kind CartErrorKind, message string, productID int64, cause error) error {
	return &CartError{
		Kind:      kind,
		Message:   message,
		ProductID: productID,
		Err:       cause,
	}
}

func AsCartError(err error) (*CartError, bool) {
	var ce *CartError
	ok := errors.As(err, &ce)
	return ce, ok
}

// errの種類がkindか
func IsCartErrorKind(err error, kind CartErrorKind) bool {
	ce, ok := AsCartError(err)
	return ok && ce.Kind == kind
}
