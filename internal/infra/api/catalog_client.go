package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rocketshoes/internal/domain/model"
	repo "rocketshoes/internal/repository"

	"github.com/sirupsen/logrus"
)

const defaultTimeout = 10 * time.Second

// 応答本文の上限
const maxBodyBytes = 1 << 20

// CatalogClient は /stock と /products を叩くHTTPクライアント。
// 失敗しても再試行はしない。
type CatalogClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

type Option func(*CatalogClient)

// http.Clientを差し替える（テスト用など）
func WithHTTPClient(h *http.Client) Option {
	return func(c *CatalogClient) {
		if h != nil {
			c.httpClient = h
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *CatalogClient) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

func WithLogger(l *logrus.Logger) Option {
	return func(c *CatalogClient) {
		if l != nil {
			c.log = l
		}
	}
}

// DI
func NewCatalogClient(baseURL string, opts ...Option) (*CatalogClient, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("catalog api: base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("catalog api: invalid base URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("catalog api: base URL must be absolute: %q", baseURL)
	}

	c := &CatalogClient{
		baseURL:    strings.TrimRight(parsed.String(), "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// 在庫を取得
func (c *CatalogClient) FindStock(ctx context.Context, productID int64) (model.Stock, error) {
	var s model.Stock
	if err := c.getJSON(ctx, fmt.Sprintf("/stock/%d", productID), &s); err != nil {
		return model.Stock{}, err
	}
	return s, nil
}

// 商品を取得
func (c *CatalogClient) FindProduct(ctx context.Context, productID int64) (model.Product, error) {
	var p model.Product
	if err := c.getJSON(ctx, fmt.Sprintf("/products/%d", productID), &p); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (c *CatalogClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("catalog api: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog api: GET %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("catalog api: read %s: %w", path, err)
	}

	c.log.WithFields(logrus.Fields{
		"path":     path,
		"status":   resp.StatusCode,
		"duration": time.Since(started),
	}).Debug("catalog api: response")

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("catalog api: GET %s: %w", path, repo.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{
			Method:     http.MethodGet,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("catalog api: decode %s: %w", path, err)
	}
	return nil
}
