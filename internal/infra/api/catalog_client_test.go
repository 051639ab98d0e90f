package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rocketshoes/internal/infra/api"
	repo "rocketshoes/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/stock/1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"amount":5}`))
	})
	mux.HandleFunc("/api/products/1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"name":"X","price":10,"imageUrl":"https://example.com/x.jpg","amount":3}`))
	})
	mux.HandleFunc("/api/stock/500", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	mux.HandleFunc("/api/stock/777", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewCatalogClient_InvalidBaseURL(t *testing.T) {
	_, err := api.NewCatalogClient("")
	assert.Error(t, err)

	_, err = api.NewCatalogClient("localhost:3333")
	assert.Error(t, err)
}

func TestCatalogClient_FindStock(t *testing.T) {
	srv := newCatalogServer(t)
	c, err := api.NewCatalogClient(srv.URL + "/api/")
	require.NoError(t, err)

	s, err := c.FindStock(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.ID)
	assert.Equal(t, int64(5), s.Amount)
}

func TestCatalogClient_FindProduct(t *testing.T) {
	srv := newCatalogServer(t)
	c, err := api.NewCatalogClient(srv.URL + "/api")
	require.NoError(t, err)

	p, err := c.FindProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "X", p.Name)
	assert.Equal(t, "https://example.com/x.jpg", p.ImageURL)
	assert.Equal(t, "10", p.Price.String())
}

func TestCatalogClient_NotFound(t *testing.T) {
	srv := newCatalogServer(t)
	c, err := api.NewCatalogClient(srv.URL + "/api")
	require.NoError(t, err)

	_, err = c.FindProduct(context.Background(), 2)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestCatalogClient_ServerError(t *testing.T) {
	srv := newCatalogServer(t)
	c, err := api.NewCatalogClient(srv.URL + "/api")
	require.NoError(t, err)

	_, err = c.FindStock(context.Background(), 500)

	var he *api.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusInternalServerError, he.StatusCode)
	assert.True(t, he.Temporary())
}

func TestCatalogClient_InvalidJSON(t *testing.T) {
	srv := newCatalogServer(t)
	c, err := api.NewCatalogClient(srv.URL + "/api")
	require.NoError(t, err)

	_, err = c.FindStock(context.Background(), 777)
	assert.ErrorContains(t, err, "decode")
}

func TestCatalogClient_ContextCanceled(t *testing.T) {
	srv := newCatalogServer(t)
	c, err := api.NewCatalogClient(srv.URL+"/api", api.WithTimeout(time.Second))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.FindStock(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
