package storage_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"rocketshoes/internal/infra/storage"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileStore(t *testing.T, path string) (*storage.FileStore, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	log := logrus.New()
	log.SetOutput(buf)

	s, err := storage.NewFileStore(path, log)
	require.NoError(t, err)
	return s, buf
}

func TestFileStore(t *testing.T) {
	s, _ := newFileStore(t, filepath.Join(t.TempDir(), "nested", "kv.json"))
	exerciseStore(t, s)
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.json")
	s, _ := newFileStore(t, path)

	_, ok, err := s.GetItem(context.Background(), "@RocketShoes:cart")
	require.NoError(t, err)
	assert.False(t, ok)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "reading does not create the file")
}

func TestFileStore_EmptyFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	s, _ := newFileStore(t, path)

	_, ok, err := s.GetItem(context.Background(), "@RocketShoes:cart")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.json")

	first, _ := newFileStore(t, path)
	require.NoError(t, first.SetItem(ctx, "@RocketShoes:cart", `[{"id":2,"amount":1}]`))

	second, _ := newFileStore(t, path)
	v, ok, err := second.GetItem(ctx, "@RocketShoes:cart")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":2,"amount":1}]`, v)
}

func TestFileStore_RemoveMissingKeyIsNoop(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.json")
	s, _ := newFileStore(t, path)

	require.NoError(t, s.RemoveItem(ctx, "missing"))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	require.NoError(t, s.SetItem(ctx, "keep", "1"))
	require.NoError(t, s.RemoveItem(ctx, "missing"))
	v, ok, err := s.GetItem(ctx, "keep")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestFileStore_CanceledContext(t *testing.T) {
	s, _ := newFileStore(t, filepath.Join(t.TempDir(), "kv.json"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := s.GetItem(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.SetItem(ctx, "k", "v"), context.Canceled)
	assert.ErrorIs(t, s.RemoveItem(ctx, "k"), context.Canceled)
}

func TestFileStore_CorruptFileRecovers(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.json")
	require.NoError(t, os.WriteFile(path, []byte(`{garbage`), 0o644))
	s, logs := newFileStore(t, path)

	_, ok, err := s.GetItem(ctx, "@RocketShoes:cart")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, logs.String(), "level=warning")

	// 壊れた中身は退避されている
	moved, err := os.ReadFile(s.CorruptPath())
	require.NoError(t, err)
	assert.Equal(t, `{garbage`, string(moved))

	// 以降の書き込みは通る
	require.NoError(t, s.SetItem(ctx, "@RocketShoes:cart", `[]`))
	v, ok, err := s.GetItem(ctx, "@RocketShoes:cart")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, v)
}

func TestFileStore_CorruptFileSetItemSucceeds(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.json")
	require.NoError(t, os.WriteFile(path, []byte(`{garbage`), 0o644))
	s, _ := newFileStore(t, path)

	require.NoError(t, s.SetItem(ctx, "@RocketShoes:cart", `[{"id":1,"amount":1}]`))

	reopened, _ := newFileStore(t, path)
	v, ok, err := reopened.GetItem(ctx, "@RocketShoes:cart")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1,"amount":1}]`, v)
}

func TestFileStore_RequiresPath(t *testing.T) {
	_, err := storage.NewFileStore("", nil)
	assert.Error(t, err)
}
