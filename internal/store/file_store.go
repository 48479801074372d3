package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/google/uuid"
)

// FileStore декоратор над Store, который добавляет персистентность через файл
type FileStore struct {
	store       *Store
	fileStorage *FileStorage
	// insertMutex упорядочивает проверку алиаса, запись в файл и вставку в память
	insertMutex sync.Mutex
}

// NewFileStore создаёт FileStore и загружает данные из файла
func NewFileStore(filePath string) (*FileStore, error) {
	fs := &FileStore{
		store:       NewStore(),
		fileStorage: NewFileStorage(filePath),
	}

	if err := fs.loadFromFile(); err != nil {
		return nil, fmt.Errorf("failed to load data from file: %w", err)
	}

	return fs, nil
}

func (fs *FileStore) FindByShortURL(ctx context.Context, shortURL string) (model.Mapping, error) {
	return fs.store.FindByShortURL(ctx, shortURL)
}

func (fs *FileStore) FindByFullURL(ctx context.Context, fullURL string) (model.Mapping, error) {
	return fs.store.FindByFullURL(ctx, fullURL)
}

func (fs *FileStore) List(ctx context.Context) ([]model.Mapping, error) {
	return fs.store.List(ctx)
}

// Insert дописывает маппинг в файл и только после успешной записи делает его видимым в памяти
func (fs *FileStore) Insert(ctx context.Context, mapping model.Mapping) error {
	fs.insertMutex.Lock()
	defer fs.insertMutex.Unlock()

	if _, err := fs.store.FindByShortURL(ctx, mapping.ShortURL); err == nil {
		return fmt.Errorf("short URL %s: %w", mapping.ShortURL, ErrAlreadyExists)
	}

	entry := model.MappingEntry{
		UUID:     uuid.New().String(),
		ShortURL: mapping.ShortURL,
		FullURL:  mapping.FullURL,
	}

	if err := fs.fileStorage.Append(entry); err != nil {
		return fmt.Errorf("failed to append to file: %w", err)
	}

	return fs.store.Insert(ctx, mapping)
}

// loadFromFile загружает данные из файла в in-memory store
func (fs *FileStore) loadFromFile() error {
	entries, err := fs.fileStorage.Load()
	if err != nil {
		return err
	}

	mappings := make([]model.Mapping, 0, len(entries))
	for _, entry := range entries {
		mappings = append(mappings, entry.Mapping())
	}

	fs.store.InitializeWith(mappings)

	return nil
}
