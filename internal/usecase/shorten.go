package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/store"
	"go.uber.org/zap"
)

const (
	requiredScheme = "https://"
	maxAliasLength = 64
)

// reservedAliases заняты собственными маршрутами сервиса, а "." и ".." клиенты сворачивают при нормализации пути
var reservedAliases = map[string]struct{}{
	"api":  {},
	"ping": {},
	".":    {},
	"..":   {},
}

// Shorten создает короткую ссылку для fullURL.
// С customAlias создается новое соответствие либо возвращается ErrAliasConflict.
// Без него повторный вызов для того же fullURL возвращает уже существующее соответствие.
// Две параллельные вставки одного нового fullURL без алиаса могут создать две записи
func (u *MappingUsecase) Shorten(ctx context.Context, fullURL, customAlias string) (model.Mapping, error) {
	if err := validateFullURL(fullURL); err != nil {
		return model.Mapping{}, err
	}

	if customAlias != "" {
		if err := validateAlias(customAlias); err != nil {
			return model.Mapping{}, err
		}
		return u.shortenWithAlias(ctx, fullURL, customAlias)
	}

	return u.shortenGenerated(ctx, fullURL)
}

func (u *MappingUsecase) shortenWithAlias(ctx context.Context, fullURL, alias string) (model.Mapping, error) {
	_, found, err := u.repo.FindByShortURL(ctx, alias)
	if err != nil {
		return model.Mapping{}, u.storeFailure("failed to check custom alias", err, zap.String("alias", alias))
	}
	if found {
		return model.Mapping{}, fmt.Errorf("%w: %s", ErrAliasConflict, alias)
	}

	mapping := model.Mapping{FullURL: fullURL, ShortURL: alias}
	err = u.repo.Insert(ctx, mapping)
	if errors.Is(err, store.ErrAlreadyExists) {
		return model.Mapping{}, fmt.Errorf("%w: %s", ErrAliasConflict, alias)
	}
	if err != nil {
		return model.Mapping{}, u.storeFailure("failed to save mapping", err, zap.String("alias", alias))
	}

	return mapping, nil
}

// shortenGenerated перегенерирует алиас при коллизии, в том числе проигранной гонке на вставке,
// не более cfg.Retry.MaxAttempts раз
func (u *MappingUsecase) shortenGenerated(ctx context.Context, fullURL string) (model.Mapping, error) {
	for attempt := 0; attempt < u.cfg.Retry.MaxAttempts; attempt++ {
		candidate := u.generator.Generate()

		_, found, err := u.repo.FindByShortURL(ctx, candidate)
		if err != nil {
			return model.Mapping{}, u.storeFailure("failed to check generated alias", err, zap.String("alias", candidate))
		}
		if found {
			u.logger.Warn("generated alias collision",
				zap.String("alias", candidate),
				zap.Int("attempt", attempt+1),
			)
			continue
		}

		existing, found, err := u.repo.FindByFullURL(ctx, fullURL)
		if err != nil {
			return model.Mapping{}, u.storeFailure("failed to find mapping by full URL", err, zap.String("full_url", fullURL))
		}
		if found {
			return existing, nil
		}

		mapping := model.Mapping{FullURL: fullURL, ShortURL: candidate}
		err = u.repo.Insert(ctx, mapping)
		if errors.Is(err, store.ErrAlreadyExists) {
			u.logger.Warn("generated alias taken concurrently",
				zap.String("alias", candidate),
				zap.Int("attempt", attempt+1),
			)
			continue
		}
		if err != nil {
			return model.Mapping{}, u.storeFailure("failed to save mapping", err, zap.String("alias", candidate))
		}

		return mapping, nil
	}

	return model.Mapping{}, fmt.Errorf("%w: no free alias after %d attempts", ErrAliasConflict, u.cfg.Retry.MaxAttempts)
}

func (u *MappingUsecase) storeFailure(msg string, err error, fields ...zap.Field) error {
	u.logger.Error(msg, append(fields, zap.Error(err))...)
	return fmt.Errorf("%w: %w", ErrStoreFailure, err)
}

func validateFullURL(fullURL string) error {
	if fullURL == "" {
		return fmt.Errorf("%w: empty URL", ErrInvalidInput)
	}
	if !strings.HasPrefix(fullURL, requiredScheme) {
		return fmt.Errorf("%w: URL must start with %s", ErrInvalidInput, requiredScheme)
	}

	return nil
}

// validateAlias допускает только незарезервированные символы сегмента пути (RFC 3986)
func validateAlias(alias string) error {
	if _, reserved := reservedAliases[alias]; reserved {
		return fmt.Errorf("%w: %q is reserved", ErrInvalidAlias, alias)
	}
	if len(alias) > maxAliasLength {
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidAlias, maxAliasLength)
	}

	for _, r := range alias {
		if !isAliasRune(r) {
			return fmt.Errorf("%w: contains invalid character %q", ErrInvalidAlias, r)
		}
	}

	return nil
}

func isAliasRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_' || r == '.' || r == '~':
		return true
	}
	return false
}
