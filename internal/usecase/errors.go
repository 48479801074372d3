package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrAliasConflict = errors.New("alias already in use")
	ErrNotFound      = errors.New("mapping not found")
	ErrStoreFailure  = errors.New("store failure")

	// ErrInvalidAlias частный случай ErrInvalidInput для пользовательского алиаса
	ErrInvalidAlias = fmt.Errorf("%w: invalid custom alias", ErrInvalidInput)
)
