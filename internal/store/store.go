package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/avc-dev/shortlink/internal/model"
)

var (
	ErrNotFound      = errors.New("mapping not found")
	ErrAlreadyExists = errors.New("short URL already exists")
)

// Store хранит маппинги в памяти.
// Уникальность shortURL проверяется и фиксируется под одной блокировкой.
type Store struct {
	byShort map[string]model.Mapping
	// byFull хранит алиас первой записи для каждого полного URL
	byFull map[string]string
	order  []string
	mutex  sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		byShort: make(map[string]model.Mapping),
		byFull:  make(map[string]string),
	}
}

func (s *Store) FindByShortURL(_ context.Context, shortURL string) (model.Mapping, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	mapping, ok := s.byShort[shortURL]
	if !ok {
		return model.Mapping{}, fmt.Errorf("short URL %s: %w", shortURL, ErrNotFound)
	}

	return mapping, nil
}

func (s *Store) FindByFullURL(_ context.Context, fullURL string) (model.Mapping, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	shortURL, ok := s.byFull[fullURL]
	if !ok {
		return model.Mapping{}, fmt.Errorf("full URL %s: %w", fullURL, ErrNotFound)
	}

	return s.byShort[shortURL], nil
}

func (s *Store) Insert(_ context.Context, mapping model.Mapping) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.byShort[mapping.ShortURL]; exists {
		return fmt.Errorf("short URL %s: %w", mapping.ShortURL, ErrAlreadyExists)
	}

	s.put(mapping)

	return nil
}

func (s *Store) List(_ context.Context) ([]model.Mapping, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	mappings := make([]model.Mapping, 0, len(s.order))
	for _, shortURL := range s.order {
		mappings = append(mappings, s.byShort[shortURL])
	}

	return mappings, nil
}

// InitializeWith загружает записи без проверки на существование.
// Используется для массовой загрузки данных, например, из файла
func (s *Store) InitializeWith(mappings []model.Mapping) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, mapping := range mappings {
		if _, exists := s.byShort[mapping.ShortURL]; exists {
			continue
		}
		s.put(mapping)
	}
}

func (s *Store) put(mapping model.Mapping) {
	s.byShort[mapping.ShortURL] = mapping
	if _, ok := s.byFull[mapping.FullURL]; !ok {
		s.byFull[mapping.FullURL] = mapping.ShortURL
	}
	s.order = append(s.order, mapping.ShortURL)
}
