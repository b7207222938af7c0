package handlers

import (
	"net/http"

	"voltlink/internal/directory"
)

// ChargersHandler serves the charger directory.
type ChargersHandler struct {
	dir *directory.Directory
}

// NewChargersHandler builds handler.
func NewChargersHandler(dir *directory.Directory) *ChargersHandler {
	return &ChargersHandler{dir: dir}
}

// List handles GET /chargers.
func (h *ChargersHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"chargers": h.dir.List()})
}

// Get handles GET /chargers/get?id=.
func (h *ChargersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}
	charger, ok := h.dir.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "charger not found")
		return
	}
	writeJSON(w, http.StatusOK, charger)
}
