package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// 保存先の種類
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	CatalogAPIURL  string        // カタログAPI（/stock, /products）
	CatalogTimeout time.Duration // API呼び出しのタイムアウト

	StorageDriver string // memory/file/postgres
	StoragePath   string // file用のパス
	CartKey       string // カートを保存するキー

	DatabaseURL      string // postgres用（あれば最優先）
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     int
	PostgresSSLMode  string

	LogLevel  string // debug/info/warn/error
	LogFormat string // text/json

	ToastQueueSize int // 通知をためておく件数
}

// Loadは環境変数
func Load() (Config, error) {
	timeout, err := durationOr("CATALOG_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	pgPort, err := atoiOr("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	queueSize, err := atoiOr("TOAST_QUEUE_SIZE", 50)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: getenv("PORT", "8080"),

		CatalogAPIURL:  os.Getenv("CATALOG_API_URL"),
		CatalogTimeout: timeout,

		StorageDriver: strings.ToLower(getenv("STORAGE_DRIVER", StorageFile)),
		StoragePath:   getenv("STORAGE_PATH", "./cart-storage.json"),
		CartKey:       getenv("CART_STORAGE_KEY", "@RocketShoes:cart"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "app"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     pgPort,
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "text"),

		ToastQueueSize: queueSize,
	}

	//必須チェック
	if cfg.CatalogAPIURL == "" {
		return Config{}, fmt.Errorf("CATALOG_API_URL is required")
	}
	switch cfg.StorageDriver {
	case StorageMemory, StoragePostgres:
	case StorageFile:
		if cfg.StoragePath == "" {
			return Config{}, fmt.Errorf("STORAGE_PATH is required for file storage")
		}
	default:
		return Config{}, fmt.Errorf("STORAGE_DRIVER must be one of memory/file/postgres: %q", cfg.StorageDriver)
	}
	if cfg.CatalogTimeout <= 0 {
		return Config{}, fmt.Errorf("CATALOG_TIMEOUT must be positive")
	}

	return cfg, nil
}

// postgresのDSN（DATABASE_URL があれば最優先）
func (c Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}

// ":8080" 形式
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiOr(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func durationOr(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration (e.g. 5s): %w", key, err)
	}
	return d, nil
}
