package usecase

import (
	"context"

	"rocketshoes/internal/domain/model"
)

// ユーザー向けの通知（トースト）を出す約束
type Notifier interface {
	Notify(ctx context.Context, n model.Notification)
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, model.Notification) {}
