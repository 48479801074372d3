package app

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/cache"
	"github.com/avc-dev/shortlink/internal/config/db"
	"github.com/avc-dev/shortlink/internal/handler"
	"github.com/avc-dev/shortlink/internal/migrations"
	"github.com/avc-dev/shortlink/internal/repository"
	"github.com/avc-dev/shortlink/internal/service"
	"github.com/avc-dev/shortlink/internal/store"
	"github.com/avc-dev/shortlink/internal/usecase"
	"go.uber.org/zap"
)

// initDependencies инициализирует все зависимости приложения.
// Открытые ресурсы сохраняются в App, чтобы Close освободил их и при ошибке
func (a *App) initDependencies(ctx context.Context) (*handler.Handler, error) {
	storage, err := a.initStorage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	resolveCache, err := a.initCache(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}

	repo := repository.New(storage, resolveCache, a.logger)
	generator := service.NewRandomGenerator(a.config.AliasLength)
	mappingUsecase := usecase.NewMappingUsecase(repo, generator, a.config, a.logger)

	return handler.New(mappingUsecase, a.logger, a.dbPool), nil
}

// initStorage выбирает хранилище: PostgreSQL, затем файл, затем память
func (a *App) initStorage(ctx context.Context) (repository.Store, error) {
	if a.config.DatabaseDSN != "" {
		database, err := db.NewConfig(a.config.DatabaseDSN).Connect(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		a.dbPool = database

		if err := migrations.NewMigrator(database.DB(), a.logger).RunUp(); err != nil {
			return nil, err
		}

		databaseStore, err := store.NewDatabaseStore(database)
		if err != nil {
			return nil, fmt.Errorf("failed to create database store: %w", err)
		}
		a.logger.Info("Using database storage")
		return databaseStore, nil
	}

	if a.config.FileStoragePath != "" {
		fileStore, err := store.NewFileStore(a.config.FileStoragePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create file store: %w", err)
		}
		a.logger.Info("Using file storage", zap.String("path", a.config.FileStoragePath))
		return fileStore, nil
	}

	a.logger.Info("Using in-memory storage")
	return store.NewStore(), nil
}

// initCache подключает Redis кэш, если задан адрес. Без адреса возвращает nil интерфейс
func (a *App) initCache(ctx context.Context) (repository.Cache, error) {
	if a.config.RedisAddr == "" {
		return nil, nil
	}

	redisCache, err := cache.NewRedisCache(ctx, a.config.RedisAddr, a.config.CacheTTL)
	if err != nil {
		return nil, err
	}
	a.cache = redisCache
	a.logger.Info("Using redis cache",
		zap.String("addr", a.config.RedisAddr),
		zap.Duration("ttl", a.config.CacheTTL),
	)

	return redisCache, nil
}
