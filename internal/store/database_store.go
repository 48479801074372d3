package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shortlink/internal/config/db"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DatabaseStore реализует Store для PostgreSQL.
// Уникальность short_url обеспечивается ограничением UNIQUE в таблице mappings
type DatabaseStore struct {
	pool *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(database db.Database) (*DatabaseStore, error) {
	adapter, ok := database.(*db.DBAdapter)
	if !ok {
		return nil, fmt.Errorf("database store requires *db.DBAdapter, got %T", database)
	}

	return &DatabaseStore{
		pool: adapter.Pool,
	}, nil
}

func (ds *DatabaseStore) FindByShortURL(ctx context.Context, shortURL string) (model.Mapping, error) {
	query := `
		SELECT full_url, short_url
		FROM mappings
		WHERE short_url = $1
	`

	return ds.findOne(ctx, query, shortURL)
}

// FindByFullURL возвращает самую раннюю запись с данным полным URL
func (ds *DatabaseStore) FindByFullURL(ctx context.Context, fullURL string) (model.Mapping, error) {
	query := `
		SELECT full_url, short_url
		FROM mappings
		WHERE full_url = $1
		ORDER BY id
		LIMIT 1
	`

	return ds.findOne(ctx, query, fullURL)
}

// Insert выполняет условную вставку одним запросом: при конфликте по short_url
// строка не вставляется и возвращается ErrAlreadyExists
func (ds *DatabaseStore) Insert(ctx context.Context, mapping model.Mapping) error {
	query := `
		INSERT INTO mappings (short_url, full_url)
		VALUES ($1, $2)
		ON CONFLICT (short_url) DO NOTHING
	`

	tag, err := ds.pool.Exec(ctx, query, mapping.ShortURL, mapping.FullURL)
	if err != nil {
		return fmt.Errorf("failed to insert into database: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("short URL %s: %w", mapping.ShortURL, ErrAlreadyExists)
	}

	return nil
}

func (ds *DatabaseStore) List(ctx context.Context) ([]model.Mapping, error) {
	query := `
		SELECT full_url, short_url
		FROM mappings
		ORDER BY id
	`

	rows, err := ds.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query mappings: %w", err)
	}

	mappings, err := pgx.CollectRows(rows, pgx.RowToStructByPos[model.Mapping])
	if err != nil {
		return nil, fmt.Errorf("failed to scan mappings: %w", err)
	}

	return mappings, nil
}

func (ds *DatabaseStore) findOne(ctx context.Context, query string, arg string) (model.Mapping, error) {
	var mapping model.Mapping

	err := ds.pool.QueryRow(ctx, query, arg).Scan(&mapping.FullURL, &mapping.ShortURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Mapping{}, fmt.Errorf("%s: %w", arg, ErrNotFound)
	}
	if err != nil {
		return model.Mapping{}, fmt.Errorf("failed to read from database: %w", err)
	}

	return mapping, nil
}
