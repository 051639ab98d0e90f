package notify

import (
	"context"
	"sync"
	"time"

	"rocketshoes/internal/domain/model"

	"github.com/google/uuid"
)

const DefaultQueueSize = 50

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string { return uuid.NewString() }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// ToastQueue は画面側が取りに来るまで通知をためておく。
// 上限を超えたら古いものから捨てる。
type ToastQueue struct {
	mu    sync.Mutex
	items []model.Notification
	size  int
	ids   IDGenerator
	clock Clock
}

func NewToastQueue(size int) *ToastQueue {
	return NewToastQueueWith(size, uuidGenerator{}, realClock{})
}

func NewToastQueueWith(size int, ids IDGenerator, clock Clock) *ToastQueue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &ToastQueue{size: size, ids: ids, clock: clock}
}

func (q *ToastQueue) Notify(_ context.Context, n model.Notification) {
	if n.ID == "" {
		n.ID = q.ids.NewID()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = q.clock.Now()
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, n)
	if over := len(q.items) - q.size; over > 0 {
		q.items = append([]model.Notification(nil), q.items[over:]...)
	}
}

// Drain はたまった通知を古い順に返して空にする。
func (q *ToastQueue) Drain() []model.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.items
	q.items = nil
	if out == nil {
		return []model.Notification{}
	}
	return out
}

func (q *ToastQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
