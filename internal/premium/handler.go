package premium

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/moodmate-app/moodmate-backend/internal/users"
	"github.com/moodmate-app/moodmate-backend/pkg/logging"
)

// Store reads and writes a user's premium plan.
type Store interface {
	SetPremium(ctx context.Context, userID int64, plan string, expiry *time.Time) error
	Premium(ctx context.Context, userID int64) (string, *time.Time, error)
}

// Handler handles HTTP requests for premium subscriptions.
type Handler struct {
	store  Store
	logger *logging.Logger
	now    func() time.Time
}

// NewHandler creates a premium handler.
func NewHandler(store Store, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{store: store, logger: logger, now: time.Now}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error string `json:"error"`
}

// ListPlans handles GET /premium/plans requests.
func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Plans []Plan `json:"plans"`
	}{Plans: Plans()})
}

// Status handles GET /premium/status/{id} requests.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid user id"})
		return
	}

	plan, expiry, err := h.store.Premium(r.Context(), id)
	if errors.Is(err, users.ErrUserNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "User not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed to load premium status", "error", err, "user_id", id)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to load premium status"})
		return
	}
	if plan == "" {
		plan = PlanFree
	}

	writeJSON(w, http.StatusOK, struct {
		Plan     string     `json:"plan"`
		Expiry   *time.Time `json:"expiry"`
		IsActive bool       `json:"is_active"`
	}{Plan: plan, Expiry: expiry, IsActive: IsActive(plan, expiry, h.now())})
}

// SubscribeRequest is the POST /premium/subscribe body.
type SubscribeRequest struct {
	UserID int64  `json:"user_id"`
	Plan   string `json:"plan"`
}

// Subscribe handles POST /premium/subscribe requests.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}
	if req.UserID == 0 || req.Plan == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing user_id or plan"})
		return
	}
	if !ValidPlan(req.Plan) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Unknown plan"})
		return
	}

	expiry := ExpiryFor(req.Plan, h.now())
	if err := h.store.SetPremium(r.Context(), req.UserID, req.Plan, expiry); err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "User not found"})
			return
		}
		h.logger.Error("failed to subscribe", "error", err, "user_id", req.UserID, "plan", req.Plan)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Subscription failed"})
		return
	}

	h.logger.Info("premium subscription", "user_id", req.UserID, "plan", req.Plan)
	writeJSON(w, http.StatusOK, struct {
		Success bool       `json:"success"`
		Message string     `json:"message"`
		Expiry  *time.Time `json:"expiry"`
	}{Success: true, Message: "Successfully subscribed to " + req.Plan + " plan", Expiry: expiry})
}

// Features handles GET /premium/features/{id} requests.
func (h *Handler) Features(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid user id"})
		return
	}

	plan, _, err := h.store.Premium(r.Context(), id)
	if errors.Is(err, users.ErrUserNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "User not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed to load premium features", "error", err, "user_id", id)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to load premium features"})
		return
	}
	if plan == "" {
		plan = PlanFree
	}

	writeJSON(w, http.StatusOK, struct {
		Plan     string          `json:"plan"`
		Features map[string]bool `json:"features"`
		IsActive bool            `json:"is_active"`
	}{Plan: plan, Features: FeaturesFor(plan), IsActive: plan != PlanFree})
}
