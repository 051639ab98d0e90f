package notify

import (
	"context"

	"rocketshoes/internal/domain/model"

	"github.com/sirupsen/logrus"
)

// LogNotifier は通知をログに出すだけ（CLI・ヘッドレス用）
type LogNotifier struct {
	log *logrus.Logger
}

func NewLogNotifier(log *logrus.Logger) *LogNotifier {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LogNotifier{log: log}
}

func (l *LogNotifier) Notify(_ context.Context, n model.Notification) {
	entry := l.log.WithField("notification", n.Message)
	if n.ProductID != 0 {
		entry = entry.WithField("product_id", n.ProductID)
	}
	if n.Level == model.NotificationError {
		entry.Error("toast")
		return
	}
	entry.Info("toast")
}
