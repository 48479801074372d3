package store

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/avc-dev/shortlink/internal/config/db"
	"github.com/avc-dev/shortlink/internal/migrations"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupTestDB подключается к тестовой базе из TEST_DATABASE_DSN и применяет миграции.
// Без переменной окружения тест пропускается
func setupTestDB(t *testing.T) *DatabaseStore {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN is not set")
	}

	ctx := context.Background()
	database, err := db.NewConfig(dsn).Connect(ctx)
	require.NoError(t, err)
	t.Cleanup(database.Close)

	migrator := migrations.NewMigrator(database.DB(), zap.NewNop())
	require.NoError(t, migrator.RunUp())

	adapter, ok := database.(*db.DBAdapter)
	require.True(t, ok, "Expected DBAdapter")
	_, err = adapter.Pool.Exec(ctx, "TRUNCATE mappings RESTART IDENTITY")
	require.NoError(t, err)

	store, err := NewDatabaseStore(database)
	require.NoError(t, err)

	return store
}

func TestNewDatabaseStore_RequiresAdapter(t *testing.T) {
	store, err := NewDatabaseStore(nil)

	require.Error(t, err)
	assert.Nil(t, store)
}

func TestDatabaseStore_InsertAndFind(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()
	mapping := model.Mapping{FullURL: "https://example.com/a", ShortURL: "abc123"}

	require.NoError(t, store.Insert(ctx, mapping))

	byShort, err := store.FindByShortURL(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, mapping, byShort)

	byFull, err := store.FindByFullURL(ctx, "https://example.com/a")
	require.NoError(t, err)
	assert.Equal(t, mapping, byFull)
}

func TestDatabaseStore_NotFound(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	_, err := store.FindByShortURL(ctx, "doesnotexist")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.FindByFullURL(ctx, "https://example.com/none")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDatabaseStore_Insert_Duplicate(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()
	require.NoError(t, store.Insert(ctx, model.Mapping{FullURL: "https://example.com/b", ShortURL: "custom1"}))

	err := store.Insert(ctx, model.Mapping{FullURL: "https://example.com/c", ShortURL: "custom1"})

	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestDatabaseStore_FindByFullURL_ReturnsEarliest(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()
	require.NoError(t, store.Insert(ctx, model.Mapping{FullURL: "https://example.com/a", ShortURL: "first"}))
	require.NoError(t, store.Insert(ctx, model.Mapping{FullURL: "https://example.com/a", ShortURL: "second"}))

	mapping, err := store.FindByFullURL(ctx, "https://example.com/a")

	require.NoError(t, err)
	assert.Equal(t, "first", mapping.ShortURL)
}

func TestDatabaseStore_List(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	empty, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	expected := []model.Mapping{
		{FullURL: "https://example.com/1", ShortURL: "code1"},
		{FullURL: "https://example.com/2", ShortURL: "code2"},
	}
	for _, mapping := range expected {
		require.NoError(t, store.Insert(ctx, mapping))
	}

	mappings, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, mappings)
}

func TestDatabaseStore_ConcurrentInsertSameKey(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()
	numGoroutines := 20
	var successes atomic.Int32
	wg := sync.WaitGroup{}
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(index int) {
			defer wg.Done()
			err := store.Insert(ctx, model.Mapping{
				FullURL:  fmt.Sprintf("https://example.com/%d", index),
				ShortURL: "shared",
			})
			if err == nil {
				successes.Add(1)
				return
			}
			assert.ErrorIs(t, err, ErrAlreadyExists)
		}(i)
	}

	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
}
