package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ShortenRequest тело запроса на создание короткой ссылки
type ShortenRequest struct {
	FullURL     string `json:"fullUrl"`
	CustomShort string `json:"customShort,omitempty"`
}

// CreateMapping обрабатывает POST /api/shorten
func (h *Handler) CreateMapping(w http.ResponseWriter, req *http.Request) {
	var request ShortenRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
		return
	}

	mapping, err := h.usecase.Shorten(req.Context(), request.FullURL, request.CustomShort)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, mapping)
}
