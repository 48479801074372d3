package usecase

import (
	"context"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/model"
	"go.uber.org/zap"
)

//go:generate mockery --name MappingRepository --output ../mocks --outpkg mocks --structname MockMappingRepository --with-expecter

// MappingRepository определяет интерфейс для работы с хранилищем соответствий.
// Методы поиска возвращают found=false без ошибки если запись отсутствует
type MappingRepository interface {
	FindByShortURL(ctx context.Context, shortURL string) (model.Mapping, bool, error)
	FindByFullURL(ctx context.Context, fullURL string) (model.Mapping, bool, error)
	// Insert возвращает ошибку, оборачивающую store.ErrAlreadyExists, если алиас занят
	Insert(ctx context.Context, mapping model.Mapping) error
	List(ctx context.Context) ([]model.Mapping, error)
}

//go:generate mockery --name AliasGenerator --output ../mocks --outpkg mocks --structname MockAliasGenerator --with-expecter

// AliasGenerator генерирует случайные алиасы
type AliasGenerator interface {
	Generate() string
}

// MappingUsecase содержит бизнес-логику создания и разрешения коротких ссылок
type MappingUsecase struct {
	repo      MappingRepository
	generator AliasGenerator
	cfg       *config.Config
	logger    *zap.Logger
}

// NewMappingUsecase создает новый экземпляр MappingUsecase
func NewMappingUsecase(repo MappingRepository, generator AliasGenerator, cfg *config.Config, logger *zap.Logger) *MappingUsecase {
	return &MappingUsecase{
		repo:      repo,
		generator: generator,
		cfg:       cfg,
		logger:    logger,
	}
}
