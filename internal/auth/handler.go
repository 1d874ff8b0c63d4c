package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/moodmate-app/moodmate-backend/internal/users"
	"github.com/moodmate-app/moodmate-backend/pkg/logging"
)

// Handler handles signup and login requests.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates an auth handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// SignupRequest is the POST /api/auth/signup body.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles POST /api/auth/signup requests.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Status: "error", Message: "Invalid request body"})
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || len(req.Password) < 6 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Status: "error", Message: "Username and a password of at least 6 characters are required"})
		return
	}

	user, token, err := h.service.Signup(r.Context(), req.Username, req.Email, req.Password)
	if errors.Is(err, users.ErrUsernameTaken) {
		writeJSON(w, http.StatusConflict, errorResponse{Status: "error", Message: "Username already taken"})
		return
	}
	if err != nil {
		h.logger.Error("signup failed", "error", err, "username", req.Username)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Status: "error", Message: "Signup failed"})
		return
	}

	writeJSON(w, http.StatusCreated, struct {
		Status string      `json:"status"`
		Token  string      `json:"token"`
		User   *users.User `json:"user"`
	}{Status: "success", Token: token, User: user})
}

// LoginRequest is the POST /api/auth/login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login requests.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Status: "error", Message: "Invalid request body"})
		return
	}

	id, token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Status: "error", Message: "Invalid username or password"})
		return
	}
	if err != nil {
		h.logger.Error("login failed", "error", err, "username", req.Username)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Status: "error", Message: "Login failed"})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		Token  string `json:"token"`
		UserID int64  `json:"user_id"`
	}{Status: "success", Token: token, UserID: id})
}
