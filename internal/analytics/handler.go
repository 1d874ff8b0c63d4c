package analytics

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/moodmate-app/moodmate-backend/pkg/logging"
)

// Handler serves user analytics.
type Handler struct {
	repo   *Repository
	logger *logging.Logger
}

// NewHandler creates an analytics handler.
func NewHandler(repo *Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger}
}

type summaryResponse struct {
	Status    string   `json:"status"`
	Analytics *Summary `json:"analytics"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// GetAnalytics handles GET /api/analytics/{id} requests.
func (h *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(errorResponse{Status: "error", Message: "Invalid user id"})
		return
	}

	summary, err := h.repo.Summarize(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to summarize analytics", "error", err, "user_id", id)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(errorResponse{Status: "error", Message: "Failed to load analytics"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summaryResponse{Status: "success", Analytics: summary})
}
