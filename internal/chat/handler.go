package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/moodmate-app/moodmate-backend/internal/observability/metrics"
	"github.com/moodmate-app/moodmate-backend/internal/triage"
	"github.com/moodmate-app/moodmate-backend/pkg/logging"
)

const defaultSessionID = "default_session"

// HistoryLog persists and reads session transcripts.
type HistoryLog interface {
	Append(ctx context.Context, sessionID, role, content, mood string) error
	ListRecent(ctx context.Context, sessionID string, limit int) ([]Message, error)
}

// MoodDetector labels a message with a mood category.
type MoodDetector interface {
	Classify(ctx context.Context, message string) string
}

// Speech produces an audio clip URL for a reply. It never fails; an empty
// URL means no audio.
type Speech interface {
	Synthesize(ctx context.Context, text string) (audioURL string, fallbackUsed bool)
}

// CoinAwarder credits coins to a user's wallet.
type CoinAwarder interface {
	AddCoins(ctx context.Context, userID int64, amount int) error
}

// Handler handles HTTP requests for the conversation pipeline.
type Handler struct {
	history    HistoryLog
	moods      MoodDetector
	generator  *ReplyGenerator
	speech     Speech
	coins      CoinAwarder
	coinReward int
	window     int
	metrics    *metrics.ChatMetrics
	logger     *logging.Logger
}

// NewHandler creates a chat handler. speech and coins may be nil; the
// pipeline then skips audio and coin rewards.
func NewHandler(history HistoryLog, moods MoodDetector, generator *ReplyGenerator, speech Speech, coins CoinAwarder, coinReward, window int, m *metrics.ChatMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if coinReward <= 0 {
		coinReward = 5
	}
	if window <= 0 {
		window = historyWindowDefault
	}
	return &Handler{
		history:    history,
		moods:      moods,
		generator:  generator,
		speech:     speech,
		coins:      coins,
		coinReward: coinReward,
		window:     window,
		metrics:    m,
		logger:     logger,
	}
}

// ChatRequest is the POST /api/chat body.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	UserID    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
}

// ChatResponse is the successful chat reply payload.
type ChatResponse struct {
	Status       string   `json:"status"`
	Reply        string   `json:"reply"`
	Mood         string   `json:"mood"`
	MoodEmoji    string   `json:"moodEmoji"`
	Phrase       string   `json:"phrase"`
	Chips        []string `json:"chips"`
	SafetyCheck  bool     `json:"safetyCheck"`
	Challenge    string   `json:"challenge,omitempty"`
	AudioURL     *string  `json:"audioUrl"`
	FallbackUsed bool     `json:"fallbackUsed"`
	CoinsEarned  int      `json:"coinsEarned,omitempty"`
	Timestamp    string   `json:"timestamp"`
}

type crisisResponse struct {
	Status    string `json:"status"`
	Crisis    bool   `json:"crisis"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type errorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// Chat handles POST /api/chat requests.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		h.metrics.ObserveChatLatency(time.Since(start).Seconds())
	}()

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.ObserveChat("bad_request")
		writeJSON(w, http.StatusBadRequest, errorResponse{Status: "error", Error: "Invalid request body"})
		return
	}

	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		h.metrics.ObserveChat("bad_request")
		writeJSON(w, http.StatusBadRequest, errorResponse{Status: "error", Error: "Message cannot be empty"})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = defaultSessionID
	}
	userID := req.UserID
	if userID == 0 {
		userID = 1
	}

	ctx := r.Context()

	// Crisis messages short-circuit the whole pipeline and leave no trace in
	// the transcript.
	if triage.DetectCrisis(msg) {
		h.metrics.ObserveCrisis()
		h.metrics.ObserveChat("crisis")
		writeJSON(w, http.StatusOK, crisisResponse{
			Status:    "crisis",
			Crisis:    true,
			Message:   triage.CrisisResponse,
			Timestamp: time.Now().Format(time.RFC3339),
		})
		return
	}

	mood := h.moods.Classify(ctx, msg)

	if err := h.history.Append(ctx, sessionID, RoleUser, msg, mood); err != nil {
		h.logger.Error("failed to log user message", "error", err, "session_id", sessionID)
		h.serveFallback(w)
		return
	}

	recent, err := h.history.ListRecent(ctx, sessionID, h.window)
	if err != nil {
		h.logger.Error("failed to load history", "error", err, "session_id", sessionID)
		h.serveFallback(w)
		return
	}

	reply := h.generator.Generate(ctx, Turns(recent), msg, req.UserName)

	if err := h.history.Append(ctx, sessionID, RoleAssistant, reply.Message, ""); err != nil {
		h.logger.Error("failed to log assistant message", "error", err, "session_id", sessionID)
		h.serveFallback(w)
		return
	}

	var audioURL *string
	fallbackUsed := false
	if h.speech != nil {
		if url, usedFallback := h.speech.Synthesize(ctx, reply.Message); url != "" {
			audioURL = &url
			fallbackUsed = usedFallback
		} else {
			fallbackUsed = usedFallback
		}
	}

	coinsEarned := h.coinReward
	if h.coins != nil {
		if err := h.coins.AddCoins(ctx, userID, coinsEarned); err != nil {
			h.logger.Error("failed to award chat coins", "error", err, "user_id", userID)
			h.serveFallback(w)
			return
		}
	}

	h.metrics.ObserveChat("success")
	writeJSON(w, http.StatusOK, ChatResponse{
		Status:       "success",
		Reply:        reply.Message,
		Mood:         mood,
		MoodEmoji:    triage.MoodEmoji(mood),
		Phrase:       triage.MoodPhrase(mood),
		Chips:        reply.Chips,
		SafetyCheck:  reply.SafetyCheck,
		Challenge:    PickChallenge(),
		AudioURL:     audioURL,
		FallbackUsed: fallbackUsed,
		CoinsEarned:  coinsEarned,
		Timestamp:    time.Now().Format(time.RFC3339),
	})
}

// serveFallback answers with a generic supportive reply when the pipeline
// breaks. The client always gets something to show.
func (h *Handler) serveFallback(w http.ResponseWriter) {
	h.metrics.ObserveChat("fallback")
	writeJSON(w, http.StatusOK, ChatResponse{
		Status:       "success",
		Reply:        "I'm here for you. Would you like to talk more about how you're feeling?",
		Mood:         triage.MoodNeutral,
		MoodEmoji:    triage.MoodEmoji(triage.MoodNeutral),
		Phrase:       triage.DefaultMoodPhrase,
		Chips:        []string{"Tell me more", "I need help", "Journal"},
		SafetyCheck:  false,
		AudioURL:     nil,
		FallbackUsed: true,
		Timestamp:    time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
