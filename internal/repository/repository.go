package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
	"go.uber.org/zap"
)

//go:generate mockery --name Store --output ../mocks --outpkg mocks --structname MockStore --with-expecter

// Store хранилище соответствий алиас -> полный URL.
// Поиск возвращает store.ErrNotFound, вставка существующего алиаса store.ErrAlreadyExists
type Store interface {
	FindByShortURL(ctx context.Context, shortURL string) (model.Mapping, error)
	FindByFullURL(ctx context.Context, fullURL string) (model.Mapping, error)
	Insert(ctx context.Context, mapping model.Mapping) error
	List(ctx context.Context) ([]model.Mapping, error)
}

//go:generate mockery --name Cache --output ../mocks --outpkg mocks --structname MockCache --with-expecter

// Cache кэш полных URL по алиасу. Промах возвращает cache.ErrMiss
type Cache interface {
	Get(ctx context.Context, shortURL string) (string, error)
	Set(ctx context.Context, shortURL, fullURL string) error
}

type Repository struct {
	underlying Store
	cache      Cache
	logger     *zap.Logger
}

// New создает репозиторий поверх хранилища. cache может быть nil
func New(underlying Store, cache Cache, logger *zap.Logger) *Repository {
	return &Repository{
		underlying: underlying,
		cache:      cache,
		logger:     logger,
	}
}

func (r *Repository) Insert(ctx context.Context, mapping model.Mapping) error {
	if err := r.underlying.Insert(ctx, mapping); err != nil {
		return fmt.Errorf("failed to insert mapping: %w", err)
	}

	return nil
}

func (r *Repository) List(ctx context.Context) ([]model.Mapping, error) {
	mappings, err := r.underlying.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list mappings: %w", err)
	}

	return mappings, nil
}
