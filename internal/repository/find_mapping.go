package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shortlink/internal/cache"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/store"
	"go.uber.org/zap"
)

// FindByShortURL ищет соответствие по алиасу.
// Возвращает found=false без ошибки если алиас свободен.
// Соответствия неизменяемы, поэтому найденные записи кэшируются без инвалидации
func (r *Repository) FindByShortURL(ctx context.Context, shortURL string) (model.Mapping, bool, error) {
	if fullURL, ok := r.fromCache(ctx, shortURL); ok {
		return model.Mapping{FullURL: fullURL, ShortURL: shortURL}, true, nil
	}

	mapping, err := r.underlying.FindByShortURL(ctx, shortURL)
	if errors.Is(err, store.ErrNotFound) {
		return model.Mapping{}, false, nil
	}
	if err != nil {
		return model.Mapping{}, false, fmt.Errorf("failed to find mapping by short URL: %w", err)
	}

	r.toCache(ctx, mapping)

	return mapping, true, nil
}

// FindByFullURL ищет самое раннее соответствие для полного URL
func (r *Repository) FindByFullURL(ctx context.Context, fullURL string) (model.Mapping, bool, error) {
	mapping, err := r.underlying.FindByFullURL(ctx, fullURL)
	if errors.Is(err, store.ErrNotFound) {
		return model.Mapping{}, false, nil
	}
	if err != nil {
		return model.Mapping{}, false, fmt.Errorf("failed to find mapping by full URL: %w", err)
	}

	return mapping, true, nil
}

// Ошибки кэша не влияют на результат, хранилище остается источником истины
func (r *Repository) fromCache(ctx context.Context, shortURL string) (string, bool) {
	if r.cache == nil {
		return "", false
	}

	fullURL, err := r.cache.Get(ctx, shortURL)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			r.logger.Warn("failed to read from cache",
				zap.String("short_url", shortURL),
				zap.Error(err),
			)
		}
		return "", false
	}

	return fullURL, true
}

func (r *Repository) toCache(ctx context.Context, mapping model.Mapping) {
	if r.cache == nil {
		return
	}

	if err := r.cache.Set(ctx, mapping.ShortURL, mapping.FullURL); err != nil {
		r.logger.Warn("failed to write to cache",
			zap.String("short_url", mapping.ShortURL),
			zap.Error(err),
		)
	}
}
