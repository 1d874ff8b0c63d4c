package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/moodmate-app/moodmate-backend/internal/shop"
	"github.com/moodmate-app/moodmate-backend/pkg/logging"
)

// Handler handles HTTP requests for user accounts and wallets.
type Handler struct {
	repo   *Repository
	logger *logging.Logger
	now    func() time.Time
}

// NewHandler creates a users handler.
func NewHandler(repo *Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger, now: time.Now}
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func userIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// GetUser handles GET /api/user/{id} requests.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: "error", Message: "Invalid user id"})
		return
	}

	user, err := h.repo.GetByID(r.Context(), id)
	if errors.Is(err, ErrUserNotFound) {
		writeJSON(w, http.StatusNotFound, statusResponse{Status: "error", Message: "User not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed to load user", "error", err, "user_id", id)
		writeJSON(w, http.StatusInternalServerError, statusResponse{Status: "error", Message: "Failed to load user"})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		User   *User  `json:"user"`
	}{Status: "success", User: user})
}

// UpdateCoinsRequest is the POST /api/user/{id}/coins body.
type UpdateCoinsRequest struct {
	Coins int `json:"coins"`
}

// UpdateCoins handles POST /api/user/{id}/coins requests.
func (h *Handler) UpdateCoins(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: "error", Message: "Invalid user id"})
		return
	}

	var req UpdateCoinsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: "error", Message: "Invalid request body"})
		return
	}

	err := h.repo.AddCoins(r.Context(), id, req.Coins)
	if errors.Is(err, ErrUserNotFound) {
		writeJSON(w, http.StatusNotFound, statusResponse{Status: "error", Message: "User not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed to update coins", "error", err, "user_id", id)
		writeJSON(w, http.StatusInternalServerError, statusResponse{Status: "error", Message: "Failed to update coins"})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		Coins  int    `json:"coins"`
	}{Status: "success", Coins: req.Coins})
}

// PurchaseRequest is the POST /api/user/{id}/purchase body.
type PurchaseRequest struct {
	ItemID int64 `json:"item_id"`
}

// Purchase handles POST /api/user/{id}/purchase requests.
func (h *Handler) Purchase(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: "error", Message: "Invalid user id"})
		return
	}

	var req PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: "error", Message: "Invalid request body"})
		return
	}

	item, found := shop.ItemByID(req.ItemID)
	if !found {
		writeJSON(w, http.StatusNotFound, statusResponse{Status: "error", Message: "Item not found"})
		return
	}

	err := h.repo.Purchase(r.Context(), id, item.ID, item.Price)
	switch {
	case errors.Is(err, ErrInsufficientCoins):
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: "error", Message: "Not enough coins"})
		return
	case errors.Is(err, ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, statusResponse{Status: "error", Message: "User not found"})
		return
	case err != nil:
		h.logger.Error("failed to purchase item", "error", err, "user_id", id, "item_id", item.ID)
		writeJSON(w, http.StatusInternalServerError, statusResponse{Status: "error", Message: "Purchase failed"})
		return
	}

	h.logger.Info("item purchased", "user_id", id, "item_id", item.ID, "price", item.Price)
	writeJSON(w, http.StatusOK, statusResponse{Status: "success", Message: "Item purchased successfully"})
}

// UpdateStreak handles POST /api/user/{id}/streak requests.
func (h *Handler) UpdateStreak(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: "error", Message: "Invalid user id"})
		return
	}

	streak, coins, err := h.repo.UpdateStreak(r.Context(), id, h.now())
	if errors.Is(err, ErrUserNotFound) {
		writeJSON(w, http.StatusNotFound, statusResponse{Status: "error", Message: "User not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed to update streak", "error", err, "user_id", id)
		writeJSON(w, http.StatusInternalServerError, statusResponse{Status: "error", Message: "Failed to update streak"})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Status      string `json:"status"`
		Streak      int    `json:"streak"`
		CoinsEarned int    `json:"coinsEarned"`
	}{Status: "success", Streak: streak, CoinsEarned: coins})
}
