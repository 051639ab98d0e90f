package storage

import (
	"context"
	"errors"
	"time"

	"rocketshoes/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore は storage_entries テーブルを使うkey-valueストア
type GormStore struct {
	db *gorm.DB
}

// DI
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// キーで値を取得
func (s *GormStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	var entry model.StorageEntry

	err := s.db.WithContext(ctx).
		Where("key = ?", key).
		First(&entry).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

// 無ければ作成、あれば上書き
func (s *GormStore) SetItem(ctx context.Context, key string, value string) error {
	entry := model.StorageEntry{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

// キーを削除（無くてもエラーにしない）
func (s *GormStore) RemoveItem(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).
		Where("key = ?", key).
		Delete(&model.StorageEntry{}).Error
}
