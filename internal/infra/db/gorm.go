package db

import (
	"rocketshoes/internal/domain/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
}

// key-valueストア用のテーブルを作る
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(&model.StorageEntry{})
}
