package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewStore проверяет создание нового хранилища
func TestNewStore(t *testing.T) {
	// Act
	store := NewStore()

	// Assert
	require.NotNil(t, store)
	assert.Empty(t, store.byShort)
	assert.Empty(t, store.byFull)
	assert.Empty(t, store.order)
}

// TestStore_Insert_Success проверяет успешную вставку и чтение по обоим полям
func TestStore_Insert_Success(t *testing.T) {
	tests := []struct {
		name    string
		mapping model.Mapping
	}{
		{
			name:    "Simple mapping",
			mapping: model.Mapping{FullURL: "https://example.com", ShortURL: "abc12345"},
		},
		{
			name:    "URL with query params",
			mapping: model.Mapping{FullURL: "https://example.com?param=value&other=test", ShortURL: "qwerty12"},
		},
		{
			name:    "Unicode URL",
			mapping: model.Mapping{FullURL: "https://example.com/путь", ShortURL: "unicode1"},
		},
		{
			name:    "Alias with dash and underscore",
			mapping: model.Mapping{FullURL: "https://example.com", ShortURL: "my-link_1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctx := context.Background()
			store := NewStore()

			// Act
			err := store.Insert(ctx, tt.mapping)

			// Assert
			require.NoError(t, err)

			byShort, err := store.FindByShortURL(ctx, tt.mapping.ShortURL)
			require.NoError(t, err)
			assert.Equal(t, tt.mapping, byShort)

			byFull, err := store.FindByFullURL(ctx, tt.mapping.FullURL)
			require.NoError(t, err)
			assert.Equal(t, tt.mapping, byFull)
		})
	}
}

// TestStore_Insert_Duplicate проверяет, что повторный shortURL отклоняется и старая запись не меняется
func TestStore_Insert_Duplicate(t *testing.T) {
	// Arrange
	ctx := context.Background()
	store := NewStore()
	first := model.Mapping{FullURL: "https://example.com/first", ShortURL: "custom1"}
	second := model.Mapping{FullURL: "https://example.com/second", ShortURL: "custom1"}
	require.NoError(t, store.Insert(ctx, first))

	// Act
	err := store.Insert(ctx, second)

	// Assert
	require.ErrorIs(t, err, ErrAlreadyExists)
	assert.Contains(t, err.Error(), "custom1")

	stored, err := store.FindByShortURL(ctx, "custom1")
	require.NoError(t, err)
	assert.Equal(t, first, stored)

	_, err = store.FindByFullURL(ctx, second.FullURL)
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestStore_FindByShortURL_NotFound проверяет ошибку при поиске несуществующего алиаса
func TestStore_FindByShortURL_NotFound(t *testing.T) {
	tests := []struct {
		name     string
		shortURL string
	}{
		{name: "Unknown alias", shortURL: "doesnotexist"},
		{name: "Empty alias", shortURL: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			store := NewStore()

			// Act
			mapping, err := store.FindByShortURL(context.Background(), tt.shortURL)

			// Assert
			require.ErrorIs(t, err, ErrNotFound)
			assert.Empty(t, mapping)
		})
	}
}

// TestStore_FindByFullURL_ReturnsEarliest проверяет, что при нескольких алиасах возвращается первый
func TestStore_FindByFullURL_ReturnsEarliest(t *testing.T) {
	// Arrange
	ctx := context.Background()
	store := NewStore()
	fullURL := "https://example.com/a"
	require.NoError(t, store.Insert(ctx, model.Mapping{FullURL: fullURL, ShortURL: "first"}))
	require.NoError(t, store.Insert(ctx, model.Mapping{FullURL: fullURL, ShortURL: "second"}))

	// Act
	mapping, err := store.FindByFullURL(ctx, fullURL)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "first", mapping.ShortURL)
}

// TestStore_List проверяет, что List возвращает записи в порядке вставки
func TestStore_List(t *testing.T) {
	// Arrange
	ctx := context.Background()
	store := NewStore()
	expected := []model.Mapping{
		{FullURL: "https://example.com/1", ShortURL: "code1"},
		{FullURL: "https://example.com/2", ShortURL: "code2"},
		{FullURL: "https://example.com/1", ShortURL: "code3"},
	}
	for _, mapping := range expected {
		require.NoError(t, store.Insert(ctx, mapping))
	}

	// Act
	mappings, err := store.List(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, expected, mappings)
}

// TestStore_List_Empty проверяет, что пустое хранилище возвращает пустой, а не nil срез
func TestStore_List_Empty(t *testing.T) {
	mappings, err := NewStore().List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, mappings)
	assert.Empty(t, mappings)
}

// TestStore_InitializeWith проверяет загрузку данных без дубликатов
func TestStore_InitializeWith(t *testing.T) {
	// Arrange
	ctx := context.Background()
	store := NewStore()
	data := []model.Mapping{
		{FullURL: "https://example.com/1", ShortURL: "code1"},
		{FullURL: "https://example.com/2", ShortURL: "code2"},
		{FullURL: "https://example.com/other", ShortURL: "code1"},
	}

	// Act
	store.InitializeWith(data)

	// Assert
	mappings, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, data[:2], mappings)
}

// TestStore_ConcurrentInsertSameKey проверяет, что из параллельных вставок одного алиаса проходит ровно одна
func TestStore_ConcurrentInsertSameKey(t *testing.T) {
	// Arrange
	ctx := context.Background()
	store := NewStore()
	numGoroutines := 50
	var successes atomic.Int32
	var conflicts atomic.Int32
	wg := sync.WaitGroup{}
	wg.Add(numGoroutines)

	// Act
	for i := 0; i < numGoroutines; i++ {
		go func(index int) {
			defer wg.Done()

			err := store.Insert(ctx, model.Mapping{
				FullURL:  fmt.Sprintf("https://example.com/%d", index),
				ShortURL: "shared",
			})
			switch {
			case err == nil:
				successes.Add(1)
			case assert.ErrorIs(t, err, ErrAlreadyExists):
				conflicts.Add(1)
			}
		}(i)
	}

	wg.Wait()

	// Assert
	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(numGoroutines-1), conflicts.Load())
}

// TestStore_ConcurrentReadWrite проверяет параллельное чтение и запись
func TestStore_ConcurrentReadWrite(t *testing.T) {
	// Arrange
	ctx := context.Background()
	store := NewStore()
	numOperations := 100
	for i := 0; i < 10; i++ {
		require.NoError(t, store.Insert(ctx, model.Mapping{
			FullURL:  fmt.Sprintf("https://example.com/initial/%d", i),
			ShortURL: fmt.Sprintf("initial%d", i),
		}))
	}

	wg := sync.WaitGroup{}
	wg.Add(numOperations * 2)

	// Act
	for i := 0; i < numOperations; i++ {
		go func(index int) {
			defer wg.Done()
			_, _ = store.FindByShortURL(ctx, fmt.Sprintf("initial%d", index%10))
		}(i)

		go func(index int) {
			defer wg.Done()
			_ = store.Insert(ctx, model.Mapping{
				FullURL:  fmt.Sprintf("https://example.com/new/%d", index),
				ShortURL: fmt.Sprintf("new%d", index),
			})
		}(i)
	}

	wg.Wait()

	// Assert
	mappings, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, mappings, 10+numOperations)
}

// TestStore_StoreIsolation проверяет изоляцию разных экземпляров Store
func TestStore_StoreIsolation(t *testing.T) {
	// Arrange
	ctx := context.Background()
	store1 := NewStore()
	store2 := NewStore()

	// Act
	err1 := store1.Insert(ctx, model.Mapping{FullURL: "https://example.com/store1", ShortURL: "testcode"})
	err2 := store2.Insert(ctx, model.Mapping{FullURL: "https://example.com/store2", ShortURL: "testcode"})

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2, "Both inserts should succeed in different stores")

	value1, _ := store1.FindByShortURL(ctx, "testcode")
	value2, _ := store2.FindByShortURL(ctx, "testcode")
	assert.NotEqual(t, value1, value2, "Stores should be isolated")
}
