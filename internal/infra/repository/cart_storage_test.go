package repository_test

import (
	"bytes"
	"context"
	"testing"

	"rocketshoes/internal/domain/model"
	infraRepo "rocketshoes/internal/infra/repository"
	"rocketshoes/internal/infra/storage"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferedLogger() (*logrus.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := logrus.New()
	l.SetOutput(buf)
	return l, buf
}

func TestCartStorageRepository_LoadMissingKey(t *testing.T) {
	log, _ := bufferedLogger()
	r := infraRepo.NewCartStorageRepository(storage.NewMemoryStore(), "", log)

	cart, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, cart)
	assert.Empty(t, cart)
}

func TestCartStorageRepository_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	log, _ := bufferedLogger()
	store := storage.NewMemoryStore()
	r := infraRepo.NewCartStorageRepository(store, "", log)

	in := model.Cart{
		{ID: 1, Name: "A", Price: decimal.RequireFromString("179.9"), ImageURL: "a.jpg", Amount: 2},
		{ID: 2, Name: "B", Price: decimal.NewFromInt(99), ImageURL: "b.jpg", Amount: 1},
	}
	require.NoError(t, r.Save(ctx, in))

	raw, ok, err := store.GetItem(ctx, "@RocketShoes:cart")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, `"imageUrl":"a.jpg"`)
	assert.Contains(t, raw, `"price":179.9`)
	assert.Contains(t, raw, `"price":99`)

	out, err := r.Load(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, int64(1), out[0].ID)
	assert.Equal(t, int64(2), out[0].Amount)
	assert.True(t, out[0].Price.Equal(decimal.RequireFromString("179.9")))
	assert.Equal(t, int64(2), out[1].ID)
}

func TestCartStorageRepository_LoadLegacyNumericPrice(t *testing.T) {
	ctx := context.Background()
	log, _ := bufferedLogger()
	store := storage.NewMemoryStore()
	require.NoError(t, store.SetItem(ctx, "@RocketShoes:cart",
		`[{"id":1,"name":"Tênis","price":139.9,"imageUrl":"x.jpg","amount":3}]`))

	cart, err := infraRepo.NewCartStorageRepository(store, "", log).Load(ctx)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.True(t, cart[0].Price.Equal(decimal.RequireFromString("139.9")))
}

func TestCartStorageRepository_LoadCorruptedResetsAndWarns(t *testing.T) {
	ctx := context.Background()
	log, buf := bufferedLogger()
	store := storage.NewMemoryStore()
	require.NoError(t, store.SetItem(ctx, "@RocketShoes:cart", `[{"id":1,`))

	cart, err := infraRepo.NewCartStorageRepository(store, "", log).Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart)
	assert.Contains(t, buf.String(), "level=warning")
}

func TestCartStorageRepository_LoadNullValue(t *testing.T) {
	ctx := context.Background()
	log, _ := bufferedLogger()
	store := storage.NewMemoryStore()
	require.NoError(t, store.SetItem(ctx, "@RocketShoes:cart", `null`))

	cart, err := infraRepo.NewCartStorageRepository(store, "", log).Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, cart)
	assert.Empty(t, cart)
}

func TestCartStorageRepository_LoadDropsInvalidEntries(t *testing.T) {
	ctx := context.Background()
	log, _ := bufferedLogger()
	store := storage.NewMemoryStore()
	require.NoError(t, store.SetItem(ctx, "@RocketShoes:cart",
		`[{"id":1,"amount":1},{"id":2,"amount":0},{"id":1,"amount":5}]`))

	cart, err := infraRepo.NewCartStorageRepository(store, "", log).Load(ctx)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, int64(1), cart[0].Amount)
}

func TestCartStorageRepository_CustomKey(t *testing.T) {
	ctx := context.Background()
	log, _ := bufferedLogger()
	store := storage.NewMemoryStore()
	r := infraRepo.NewCartStorageRepository(store, "tenant:cart", log)

	require.NoError(t, r.Save(ctx, nil))

	raw, ok, err := store.GetItem(ctx, "tenant:cart")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", raw)
}
