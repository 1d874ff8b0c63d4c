package therapists

import (
	"encoding/json"
	"net/http"
)

// Handler serves the therapist directory.
type Handler struct{}

// NewHandler creates a therapists handler.
func NewHandler() *Handler {
	return &Handler{}
}

type listResponse struct {
	Status     string      `json:"status"`
	Therapists []Therapist `json:"therapists"`
}

// ListTherapists handles GET /api/therapists requests.
func (h *Handler) ListTherapists(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(listResponse{
		Status:     "success",
		Therapists: List(),
	})
}
