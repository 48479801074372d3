package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Redirect обрабатывает GET /{alias}
func (h *Handler) Redirect(w http.ResponseWriter, req *http.Request) {
	alias := chi.URLParam(req, "alias")

	mapping, err := h.usecase.Resolve(req.Context(), alias)
	if err != nil {
		h.handleError(w, err)
		return
	}

	http.Redirect(w, req, mapping.FullURL, http.StatusFound)
}

// NotFound отвечает на запросы к неизвестным маршрутам так же, как на неизвестный алиас
func (h *Handler) NotFound(w http.ResponseWriter, req *http.Request) {
	h.writeJSON(w, http.StatusNotFound, ErrorResponse{Error: msgNotFound})
}
