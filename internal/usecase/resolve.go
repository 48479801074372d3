package usecase

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
	"go.uber.org/zap"
)

// Resolve возвращает соответствие для алиаса или ErrNotFound
func (u *MappingUsecase) Resolve(ctx context.Context, alias string) (model.Mapping, error) {
	mapping, found, err := u.repo.FindByShortURL(ctx, alias)
	if err != nil {
		return model.Mapping{}, u.storeFailure("failed to resolve alias", err, zap.String("alias", alias))
	}
	if !found {
		return model.Mapping{}, fmt.Errorf("%w: %s", ErrNotFound, alias)
	}

	return mapping, nil
}

// ListAll возвращает все сохраненные соответствия
func (u *MappingUsecase) ListAll(ctx context.Context) ([]model.Mapping, error) {
	mappings, err := u.repo.List(ctx)
	if err != nil {
		return nil, u.storeFailure("failed to list mappings", err)
	}

	return mappings, nil
}
