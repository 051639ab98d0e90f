package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"rocketshoes/internal/domain/model"
	repo "rocketshoes/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// commit直前に明細が消えていた
var errEntryGone = errors.New("cart entry no longer present")

// commit直前に同じ商品が追加されていた
var errAlreadyInCart = errors.New("product already in cart")

// CartUsecase はカートの状態管理です。
// メモリ上のカートを持ち、変更が成功するたびに保存先へ全体を書き込みます。
// ロックはスナップショット取得とcommitの間だけ持ち、API呼び出し中は持ちません。
type CartUsecase struct {
	catalog  repo.CatalogRepository
	cartRepo repo.CartRepository
	notifier Notifier
	log      *logrus.Logger

	mu   sync.Mutex
	cart model.Cart
}

// DI
func NewCartUsecase(
	catalog repo.CatalogRepository,
	cartRepo repo.CartRepository,
	notifier Notifier,
	log *logrus.Logger,
) *CartUsecase {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &CartUsecase{
		catalog:  catalog,
		cartRepo: cartRepo,
		notifier: notifier,
		log:      log,
		cart:     model.Cart{},
	}
}

// UpdateProductAmountInput は数量変更の入力
type UpdateProductAmountInput struct {
	ProductID int64
	Amount    int64
}

// CartLineSummary はカート画面の1行
type CartLineSummary struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"image_url"`
	Price     decimal.Decimal `json:"price"`
	Amount    int64           `json:"amount"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartSummary はヘッダーの点数とカート画面の合計
type CartSummary struct {
	Lines     []CartLineSummary `json:"lines"`
	ItemCount int64             `json:"item_count"`
	Total     decimal.Decimal   `json:"total"`
}

// Init は保存先からカートを復元する。
// 読めなかった場合は空カートで始め、エラーを返す（起動は止めない）。
func (u *CartUsecase) Init(ctx context.Context) error {
	cart, err := u.cartRepo.Load(ctx)
	if err != nil {
		u.log.WithError(err).Warn("cart: could not restore persisted cart, starting empty")
		u.setCart(model.Cart{})
		return fmt.Errorf("restore cart: %w", err)
	}

	u.setCart(cart)
	u.log.WithField("items", len(cart)).Debug("cart: restored")
	return nil
}

// Cart は現在のカートのコピーを返す。
func (u *CartUsecase) Cart() model.Cart {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.cart.Clone()
}

// Summary は小計・点数・合計を返す。
func (u *CartUsecase) Summary() CartSummary {
	return SummaryOf(u.Cart())
}

// SummaryOf は渡されたカートから集計する（同じスナップショットで明細と合計を出すとき用）。
func SummaryOf(cart model.Cart) CartSummary {
	lines := make([]CartLineSummary, 0, len(cart))
	for _, p := range cart {
		lines = append(lines, CartLineSummary{
			ProductID: p.ID,
			Name:      p.Name,
			ImageURL:  p.ImageURL,
			Price:     p.Price,
			Amount:    p.Amount,
			Subtotal:  p.Subtotal(),
		})
	}

	return CartSummary{
		Lines:     lines,
		ItemCount: cart.ItemCount(),
		Total:     cart.Total(),
	}
}

// AddProduct は商品を1つ追加する。
// 既にあれば数量+1の変更として扱い、無ければ在庫と商品をAPIから取って末尾に追加する。
func (u *CartUsecase) AddProduct(ctx context.Context, productID int64) error {
	if existing, ok := u.Cart().Find(productID); ok {
		return u.UpdateProductAmount(ctx, UpdateProductAmountInput{
			ProductID: productID,
			Amount:    existing.Amount + 1,
		})
	}

	// 在庫→商品の順に取得（両方必須）
	stock, err := u.catalog.FindStock(ctx, productID)
	if err != nil {
		return u.fail(ctx, CartErrorFailure, MsgAddFailed, productID, err)
	}
	product, err := u.catalog.FindProduct(ctx, productID)
	if err != nil {
		return u.fail(ctx, CartErrorFailure, MsgAddFailed, productID, err)
	}

	if !stock.Available() {
		return u.fail(ctx, CartErrorOutOfStock, MsgOutOfStock, productID, nil)
	}

	product.Amount = 1
	var current model.Product
	err = u.commit(ctx, func(c model.Cart) (model.Cart, error) {
		if p, ok := c.Find(product.ID); ok {
			current = p
			return nil, errAlreadyInCart
		}
		return c.WithProduct(product), nil
	})
	if errors.Is(err, errAlreadyInCart) {
		// 取得中に別の操作で追加された。+1の変更として続ける。
		u.log.WithField("product_id", productID).Debug("cart: product added concurrently, incrementing")
		return u.UpdateProductAmount(ctx, UpdateProductAmountInput{
			ProductID: current.ID,
			Amount:    current.Amount + 1,
		})
	}
	if err != nil {
		return u.fail(ctx, CartErrorFailure, MsgAddFailed, productID, err)
	}

	u.log.WithField("product_id", productID).Info("cart: product added")
	return nil
}

// RemoveProduct は明細を削除する。無ければエラー通知のみ。
func (u *CartUsecase) RemoveProduct(ctx context.Context, productID int64) error {
	if !u.Cart().Contains(productID) {
		return u.fail(ctx, CartErrorNotInCart, MsgRemoveFailed, productID, nil)
	}

	err := u.commit(ctx, func(c model.Cart) (model.Cart, error) {
		if !c.Contains(productID) {
			return nil, errEntryGone
		}
		return c.Without(productID), nil
	})
	if errors.Is(err, errEntryGone) {
		return u.fail(ctx, CartErrorNotInCart, MsgRemoveFailed, productID, nil)
	}
	if err != nil {
		return u.fail(ctx, CartErrorFailure, MsgRemoveFailed, productID, err)
	}

	u.log.WithField("product_id", productID).Info("cart: product removed")
	return nil
}

// UpdateProductAmount は数量を変更する。
// amount<=0 は何もしない（削除扱いにはしない）。
func (u *CartUsecase) UpdateProductAmount(ctx context.Context, in UpdateProductAmountInput) error {
	if in.Amount <= 0 {
		return nil
	}

	if !u.Cart().Contains(in.ProductID) {
		return u.fail(ctx, CartErrorNotInCart, MsgUpdateFailed, in.ProductID, nil)
	}

	stock, err := u.catalog.FindStock(ctx, in.ProductID)
	if err != nil {
		return u.fail(ctx, CartErrorFailure, MsgUpdateFailed, in.ProductID, err)
	}

	if !stock.Covers(in.Amount) {
		return u.fail(ctx, CartErrorOutOfStock, MsgOutOfStock, in.ProductID, nil)
	}

	err = u.commit(ctx, func(c model.Cart) (model.Cart, error) {
		if !c.Contains(in.ProductID) {
			return nil, errEntryGone
		}
		return c.WithAmount(in.ProductID, in.Amount), nil
	})
	if errors.Is(err, errEntryGone) {
		return u.fail(ctx, CartErrorNotInCart, MsgUpdateFailed, in.ProductID, nil)
	}
	if err != nil {
		return u.fail(ctx, CartErrorFailure, MsgUpdateFailed, in.ProductID, err)
	}

	u.log.WithFields(logrus.Fields{
		"product_id": in.ProductID,
		"amount":     in.Amount,
	}).Info("cart: amount updated")
	return nil
}

// 最新のカートに変更を当てて保存し、保存できたときだけ差し替える。
func (u *CartUsecase) commit(ctx context.Context, apply func(model.Cart) (model.Cart, error)) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	next, err := apply(u.cart)
	if err != nil {
		return err
	}
	if err := u.cartRepo.Save(ctx, next); err != nil {
		return err
	}
	u.cart = next
	return nil
}

func (u *CartUsecase) setCart(c model.Cart) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.cart = c
}

// 通知してCartErrorを返す
func (u *CartUsecase) fail(ctx context.Context, kind CartErrorKind, message string, productID int64, cause error) error {
	entry := u.log.WithFields(logrus.Fields{
		"product_id": productID,
		"kind":       kind,
	})
	if cause != nil {
		entry = entry.WithError(cause)
	}
	entry.Warn(message)

	u.notifier.Notify(ctx, model.Notification{
		Level:     model.NotificationError,
		Message:   message,
		ProductID: productID,
	})
	return NewCartError(kind, message, productID, cause)
}
