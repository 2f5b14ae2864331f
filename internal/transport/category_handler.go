package transport

import (
	"net/http"

	"pasarku-be/internal/category"
)

// CategoryHandler exposes the derived category listing.
type CategoryHandler struct {
	svc category.Service
}

func NewCategoryHandler(svc category.Service) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// List handles GET /categories?name=.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.List(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summaries)
}
