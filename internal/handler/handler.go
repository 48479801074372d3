package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc-dev/shortlink/internal/config/db"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/usecase"
	"go.uber.org/zap"
)

const (
	msgInvalidBody   = "Invalid request body"
	msgInvalidURL    = `Invalid URL format. Must start with "https://"`
	msgInvalidAlias  = "Invalid custom short name. Use letters, digits, '-', '_', '.' or '~' (up to 64 characters), except reserved names."
	msgAliasConflict = "Custom short name already in use. Please choose another."
	msgNotFound      = "Short URL not found"
	msgInternalError = "Internal server error"
)

//go:generate mockery --name MappingUsecase --output ../mocks --outpkg mocks --structname MockMappingUsecase --with-expecter

// MappingUsecase определяет интерфейс бизнес-логики для обработчиков
type MappingUsecase interface {
	Shorten(ctx context.Context, fullURL, customAlias string) (model.Mapping, error)
	Resolve(ctx context.Context, alias string) (model.Mapping, error)
	ListAll(ctx context.Context) ([]model.Mapping, error)
}

// Handler содержит HTTP обработчики сервиса
type Handler struct {
	usecase MappingUsecase
	logger  *zap.Logger
	db      db.Database
}

// New создает новый экземпляр Handler. db может быть nil, если база не настроена
func New(usecase MappingUsecase, logger *zap.Logger, db db.Database) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
		db:      db,
	}
}

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError переводит ошибки usecase в HTTP статусы. Детали внутренних ошибок клиенту не отдаются
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidAlias):
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidAlias})
	case errors.Is(err, usecase.ErrInvalidInput):
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidURL})
	case errors.Is(err, usecase.ErrAliasConflict):
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgAliasConflict})
	case errors.Is(err, usecase.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, ErrorResponse{Error: msgNotFound})
	default:
		h.logger.Error("request failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
