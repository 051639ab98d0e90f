package notify

import (
	"context"

	"rocketshoes/internal/domain/model"
	"rocketshoes/internal/usecase"
)

// Multi は複数の通知先へ順に流す
type Multi []usecase.Notifier

func (m Multi) Notify(ctx context.Context, n model.Notification) {
	for _, target := range m {
		if target != nil {
			target.Notify(ctx, n)
		}
	}
}
