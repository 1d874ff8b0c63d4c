package shop

import (
	"encoding/json"
	"net/http"
)

// Handler serves the shop catalog.
type Handler struct{}

// NewHandler creates a shop handler.
func NewHandler() *Handler {
	return &Handler{}
}

type catalogResponse struct {
	Status     string            `json:"status"`
	Categories map[string][]Item `json:"categories"`
}

// ListItems handles GET /api/shop requests.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(catalogResponse{
		Status:     "success",
		Categories: ByCategory(),
	})
}
