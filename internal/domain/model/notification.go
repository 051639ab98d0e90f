package model

import "time"

type NotificationLevel string

const (
	NotificationError NotificationLevel = "error"
	NotificationInfo  NotificationLevel = "info"
)

// 画面に出すトースト1件
type Notification struct {
	ID        string            `json:"id"`
	Level     NotificationLevel `json:"level"`
	Message   string            `json:"message"`
	ProductID int64             `json:"product_id,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
