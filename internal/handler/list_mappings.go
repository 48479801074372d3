package handler

import (
	"net/http"

	"github.com/avc-dev/shortlink/internal/model"
)

// ListResponse тело ответа со всеми ссылками
type ListResponse struct {
	URLs []model.Mapping `json:"urls"`
}

// ListMappings обрабатывает GET /api/urls
func (h *Handler) ListMappings(w http.ResponseWriter, req *http.Request) {
	mappings, err := h.usecase.ListAll(req.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	if mappings == nil {
		mappings = []model.Mapping{}
	}

	h.writeJSON(w, http.StatusOK, ListResponse{URLs: mappings})
}
