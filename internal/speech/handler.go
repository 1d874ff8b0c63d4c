package speech

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/moodmate-app/moodmate-backend/pkg/logging"
)

// Handler serves stored audio clips.
type Handler struct {
	store  *AudioStore
	logger *logging.Logger
}

// NewHandler creates an audio handler.
func NewHandler(store *AudioStore, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{store: store, logger: logger}
}

// ServeAudio handles GET /static/audio/{name} requests.
func (h *Handler) ServeAudio(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "..") {
		http.Error(w, "invalid audio name", http.StatusBadRequest)
		return
	}

	audio, err := h.store.Get(r.Context(), name)
	if err != nil {
		h.logger.Warn("audio fetch failed", "name", name, "error", err)
		http.Error(w, "audio not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(audio)
}
