package model

import "time"

// key-valueストアの1レコード（postgres用）
type StorageEntry struct {
	Key       string    `gorm:"primaryKey;type:varchar(255);column:key" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (StorageEntry) TableName() string {
	return "storage_entries"
}
